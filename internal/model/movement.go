package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a transfer and selects the applicable flow rule.
type MovementType string

const (
	MovementIncome            MovementType = "income"
	MovementExpense           MovementType = "expense"
	MovementInvestmentCapital MovementType = "investment-capital"
	MovementInvestmentProfit  MovementType = "investment-profit"
)

// Movement is a single transfer between two accounts (one row in movements.csv).
// FromAccount/ToAccount may be empty, in which case the type's default
// account pair is applied during summarization.
type Movement struct {
	ID          string // "YYYY-MM-NNN"
	Date        time.Time
	Type        MovementType
	Description string
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	Reference   string
	Notes       string
}
