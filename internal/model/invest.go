package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditStatus represents the lifecycle state of a credit.
type CreditStatus string

const (
	CreditActive    CreditStatus = "active"
	CreditCompleted CreditStatus = "completed"
)

// Purchase is a buy-to-resell investment (one row in invest/purchases.csv).
// Capital committed to it flows out of the investment fund; the realized
// profit only counts once it has been booked as a movement.
type Purchase struct {
	ID               string
	Date             time.Time
	Description      string
	Capital          decimal.Decimal
	SalePrice        decimal.Decimal
	ProfitMovementID string // movement that booked the realized profit, if any
	Notes            string
}

// Profit returns the margin between sale price and committed capital.
func (p Purchase) Profit() decimal.Decimal {
	return p.SalePrice.Sub(p.Capital)
}

// Credit is money lent to a third party (one row in invest/credits.csv).
type Credit struct {
	ID                 string
	Date               time.Time
	Borrower           string
	Principal          decimal.Decimal
	Interest           decimal.Decimal
	TotalPaid          decimal.Decimal
	Status             CreditStatus
	InterestMovementID string // movement that booked the earned interest, if any
	Notes              string
}

// TotalDue returns principal plus agreed interest.
func (c Credit) TotalDue() decimal.Decimal {
	return c.Principal.Add(c.Interest)
}

// Remaining returns the unpaid part of the total due, floored at zero.
func (c Credit) Remaining() decimal.Decimal {
	rem := c.TotalDue().Sub(c.TotalPaid)
	if rem.Sign() < 0 {
		return decimal.Zero
	}
	return rem
}
