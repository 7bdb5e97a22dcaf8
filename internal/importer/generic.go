package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balanza-dev/balanza/internal/model"
)

// GenericParser parses a minimal date,description,amount bank export.
// Positive amounts become income movements, negative ones expenses.
type GenericParser struct{}

const (
	genericDateFormat = "2006-01-02"
	genericNumFields  = 3
	genericColDate    = 0
	genericColDesc    = 1
	genericColAmount  = 2
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic CSV and returns account-less movements.
func (p *GenericParser) Parse(r io.Reader) ([]model.Movement, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading generic CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var movements []model.Movement
	for i, rec := range records[1:] {
		m, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		movements = append(movements, m)
	}
	return movements, nil
}

func parseGenericRow(rec []string) (model.Movement, error) {
	date, err := time.Parse(genericDateFormat, rec[genericColDate])
	if err != nil {
		return model.Movement{}, fmt.Errorf("parsing date %q: %w", rec[genericColDate], err)
	}

	amount, err := decimal.NewFromString(rec[genericColAmount])
	if err != nil {
		return model.Movement{}, fmt.Errorf("parsing amount %q: %w", rec[genericColAmount], err)
	}

	movementType := model.MovementIncome
	if amount.Sign() < 0 {
		movementType = model.MovementExpense
	}

	desc := rec[genericColDesc]
	return model.Movement{
		Date:        date,
		Type:        movementType,
		Description: desc,
		Amount:      amount.Abs(),
		Reference:   makeImportRef(date, desc),
	}, nil
}

// makeImportRef creates a reference like import_20250103_GITHUB.
func makeImportRef(date time.Time, desc string) string {
	prefix := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, desc)
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return fmt.Sprintf("import_%s_%s", date.Format("20060102"), prefix)
}
