package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMovementID returns a movement ID like "2025-01-001".
func FormatMovementID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// ParseMovementID parses "2025-01-001" into year, month, seq.
func ParseMovementID(id string) (year, month, seq int, err error) {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid movement ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in movement ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in movement ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in movement ID %q: %w", id, err)
	}

	return year, month, seq, nil
}

// FormatSeqID returns a prefixed sequential ID like "P-001" or "C-014".
func FormatSeqID(prefix string, seq int) string {
	return fmt.Sprintf("%s-%03d", prefix, seq)
}

// ParseSeqID parses "P-001" into its sequence number.
func ParseSeqID(id string) (int, error) {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return 0, fmt.Errorf("invalid ID format: %q", id)
	}
	seq, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in ID %q: %w", id, err)
	}
	return seq, nil
}
