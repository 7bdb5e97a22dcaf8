package invest

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balanza-dev/balanza/internal/model"
)

const dateFormat = "2006-01-02"

// PurchasesHeader is the CSV header for invest/purchases.csv.
var PurchasesHeader = []string{"purchase_id", "date", "description", "capital", "sale_price", "profit_movement", "notes"}

const (
	purchaseNumFields = 7
	pColID            = 0
	pColDate          = 1
	pColDesc          = 2
	pColCapital       = 3
	pColSalePrice     = 4
	pColProfitMov     = 5
	pColNotes         = 6
)

// CreditsHeader is the CSV header for invest/credits.csv.
var CreditsHeader = []string{"credit_id", "date", "borrower", "principal", "interest", "total_paid", "status", "interest_movement", "notes"}

const (
	creditNumFields = 9
	cColID          = 0
	cColDate        = 1
	cColBorrower    = 2
	cColPrincipal   = 3
	cColInterest    = 4
	cColTotalPaid   = 5
	cColStatus      = 6
	cColInterestMov = 7
	cColNotes       = 8
)

// ReadPurchases reads invest/purchases.csv.
func ReadPurchases(r io.Reader) ([]model.Purchase, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = purchaseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading purchases CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var purchases []model.Purchase
	for i, rec := range records[1:] {
		p, err := UnmarshalPurchase(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

// WritePurchases writes invest/purchases.csv (including header).
func WritePurchases(w io.Writer, purchases []model.Purchase) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(PurchasesHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, p := range purchases {
		if err := cw.Write(MarshalPurchase(p)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalPurchase converts a Purchase to a CSV row.
func MarshalPurchase(p model.Purchase) []string {
	row := make([]string, purchaseNumFields)
	row[pColID] = p.ID
	row[pColDate] = p.Date.Format(dateFormat)
	row[pColDesc] = p.Description
	row[pColCapital] = p.Capital.StringFixed(2)
	row[pColSalePrice] = p.SalePrice.StringFixed(2)
	row[pColProfitMov] = p.ProfitMovementID
	row[pColNotes] = p.Notes
	return row
}

// UnmarshalPurchase converts a CSV row to a Purchase.
func UnmarshalPurchase(record []string) (model.Purchase, error) {
	if len(record) != purchaseNumFields {
		return model.Purchase{}, fmt.Errorf("expected %d fields, got %d", purchaseNumFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[pColDate])
	if err != nil {
		return model.Purchase{}, fmt.Errorf("parsing date %q: %w", record[pColDate], err)
	}

	capital, err := decimal.NewFromString(record[pColCapital])
	if err != nil {
		return model.Purchase{}, fmt.Errorf("parsing capital %q: %w", record[pColCapital], err)
	}

	salePrice, err := decimal.NewFromString(record[pColSalePrice])
	if err != nil {
		return model.Purchase{}, fmt.Errorf("parsing sale_price %q: %w", record[pColSalePrice], err)
	}

	return model.Purchase{
		ID:               record[pColID],
		Date:             date,
		Description:      record[pColDesc],
		Capital:          capital,
		SalePrice:        salePrice,
		ProfitMovementID: record[pColProfitMov],
		Notes:            record[pColNotes],
	}, nil
}

// ReadCredits reads invest/credits.csv.
func ReadCredits(r io.Reader) ([]model.Credit, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = creditNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading credits CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var credits []model.Credit
	for i, rec := range records[1:] {
		c, err := UnmarshalCredit(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		credits = append(credits, c)
	}
	return credits, nil
}

// WriteCredits writes invest/credits.csv (including header).
func WriteCredits(w io.Writer, credits []model.Credit) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(CreditsHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, c := range credits {
		if err := cw.Write(MarshalCredit(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalCredit converts a Credit to a CSV row.
func MarshalCredit(c model.Credit) []string {
	row := make([]string, creditNumFields)
	row[cColID] = c.ID
	row[cColDate] = c.Date.Format(dateFormat)
	row[cColBorrower] = c.Borrower
	row[cColPrincipal] = c.Principal.StringFixed(2)
	row[cColInterest] = c.Interest.StringFixed(2)
	row[cColTotalPaid] = c.TotalPaid.StringFixed(2)
	row[cColStatus] = string(c.Status)
	row[cColInterestMov] = c.InterestMovementID
	row[cColNotes] = c.Notes
	return row
}

// UnmarshalCredit converts a CSV row to a Credit.
func UnmarshalCredit(record []string) (model.Credit, error) {
	if len(record) != creditNumFields {
		return model.Credit{}, fmt.Errorf("expected %d fields, got %d", creditNumFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[cColDate])
	if err != nil {
		return model.Credit{}, fmt.Errorf("parsing date %q: %w", record[cColDate], err)
	}

	principal, err := decimal.NewFromString(record[cColPrincipal])
	if err != nil {
		return model.Credit{}, fmt.Errorf("parsing principal %q: %w", record[cColPrincipal], err)
	}

	interest, err := decimal.NewFromString(record[cColInterest])
	if err != nil {
		return model.Credit{}, fmt.Errorf("parsing interest %q: %w", record[cColInterest], err)
	}

	totalPaid, err := decimal.NewFromString(record[cColTotalPaid])
	if err != nil {
		return model.Credit{}, fmt.Errorf("parsing total_paid %q: %w", record[cColTotalPaid], err)
	}

	return model.Credit{
		ID:                 record[cColID],
		Date:               date,
		Borrower:           record[cColBorrower],
		Principal:          principal,
		Interest:           interest,
		TotalPaid:          totalPaid,
		Status:             model.CreditStatus(record[cColStatus]),
		InterestMovementID: record[cColInterestMov],
		Notes:              record[cColNotes],
	}, nil
}
