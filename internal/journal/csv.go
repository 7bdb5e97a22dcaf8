package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balanza-dev/balanza/internal/model"
)

// Header is the CSV header for movements.csv.
const Header = "movement_id,date,type,description,from_account,to_account,amount,reference,notes"

const (
	numFields  = 9
	dateFormat = "2006-01-02"
	colID      = 0
	colDate    = 1
	colType    = 2
	colDesc    = 3
	colFrom    = 4
	colTo      = 5
	colAmount  = 6
	colRef     = 7
	colNotes   = 8
)

// ReadMovements reads all movements from a movements.csv reader.
func ReadMovements(r io.Reader) ([]model.Movement, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading movements CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var movements []model.Movement
	for i, rec := range records[1:] {
		m, err := UnmarshalMovement(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		movements = append(movements, m)
	}
	return movements, nil
}

// WriteMovements writes movements to a movements.csv writer (including header).
func WriteMovements(w io.Writer, movements []model.Movement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, m := range movements {
		if err := cw.Write(MarshalMovement(m)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendMovements appends movements to an existing movements.csv writer (no header).
func AppendMovements(w io.Writer, movements []model.Movement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, m := range movements {
		if err := cw.Write(MarshalMovement(m)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalMovement converts a Movement to a CSV row.
func MarshalMovement(m model.Movement) []string {
	row := make([]string, numFields)
	row[colID] = m.ID
	row[colDate] = m.Date.Format(dateFormat)
	row[colType] = string(m.Type)
	row[colDesc] = m.Description
	row[colFrom] = m.FromAccount
	row[colTo] = m.ToAccount
	row[colAmount] = m.Amount.StringFixed(2)
	row[colRef] = m.Reference
	row[colNotes] = m.Notes
	return row
}

// UnmarshalMovement converts a CSV row to a Movement.
func UnmarshalMovement(record []string) (model.Movement, error) {
	if len(record) != numFields {
		return model.Movement{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Movement{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Movement{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Movement{
		ID:          record[colID],
		Date:        date,
		Type:        model.MovementType(record[colType]),
		Description: record[colDesc],
		FromAccount: record[colFrom],
		ToAccount:   record[colTo],
		Amount:      amount,
		Reference:   record[colRef],
		Notes:       record[colNotes],
	}, nil
}
