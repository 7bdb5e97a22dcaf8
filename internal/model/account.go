package model

// Nature determines the sign convention for an account's balance:
// debit-normal accounts grow with inflows, credit-normal accounts shrink.
type Nature string

const (
	NatureDebit  Nature = "debit"
	NatureCredit Nature = "credit"
)

// Category classifies accounts in the chart of accounts.
type Category string

const (
	CategoryAssets      Category = "assets"
	CategoryLiabilities Category = "liabilities"
	CategoryEquity      Category = "equity"
	CategoryIncome      Category = "income"
	CategoryExpenses    Category = "expenses"
)

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	ID          string
	Label       string
	ShortLabel  string
	Category    Category
	Nature      Nature
	Hidden      bool // excluded from pickers and listings, still posts to balances
	Description string
}
