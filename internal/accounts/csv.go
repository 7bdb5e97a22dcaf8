package accounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/balanza-dev/balanza/internal/model"
)

const (
	numFields     = 7
	colID         = 0
	colLabel      = 1
	colShortLabel = 2
	colCategory   = 3
	colNature     = 4
	colHidden     = 5
	colDesc       = 6
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accts = append(accts, acct)
	}
	return accts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_id", "label", "short_label", "category", "nature", "hidden", "description"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colID] = acct.ID
	row[colLabel] = acct.Label
	row[colShortLabel] = acct.ShortLabel
	row[colCategory] = string(acct.Category)
	row[colNature] = string(acct.Nature)
	if acct.Hidden {
		row[colHidden] = "true"
	}
	row[colDesc] = acct.Description
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if record[colID] == "" {
		return model.Account{}, fmt.Errorf("empty account_id")
	}

	nature := model.Nature(record[colNature])
	switch nature {
	case model.NatureDebit, model.NatureCredit:
	default:
		return model.Account{}, fmt.Errorf("invalid nature %q for account %s", record[colNature], record[colID])
	}

	return model.Account{
		ID:          record[colID],
		Label:       record[colLabel],
		ShortLabel:  record[colShortLabel],
		Category:    model.Category(record[colCategory]),
		Nature:      nature,
		Hidden:      record[colHidden] == "true",
		Description: record[colDesc],
	}, nil
}
