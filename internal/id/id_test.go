package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementID_RoundTrip(t *testing.T) {
	s := FormatMovementID(2025, 3, 7)
	assert.Equal(t, "2025-03-007", s)

	year, month, seq, err := ParseMovementID(s)
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 3, month)
	assert.Equal(t, 7, seq)
}

func TestParseMovementID_Invalid(t *testing.T) {
	for _, bad := range []string{"", "2025-03", "year-03-001", "2025-mm-001", "2025-03-abc"} {
		_, _, _, err := ParseMovementID(bad)
		assert.Error(t, err, bad)
	}
}

func TestSeqID_RoundTrip(t *testing.T) {
	assert.Equal(t, "P-001", FormatSeqID("P", 1))
	assert.Equal(t, "C-014", FormatSeqID("C", 14))

	seq, err := ParseSeqID("P-042")
	require.NoError(t, err)
	assert.Equal(t, 42, seq)
}

func TestParseSeqID_Invalid(t *testing.T) {
	_, err := ParseSeqID("P042")
	require.Error(t, err)

	_, err = ParseSeqID("P-xyz")
	require.Error(t, err)
}
