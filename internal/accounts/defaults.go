package accounts

import "github.com/balanza-dev/balanza/internal/model"

// Well-known account IDs referenced by flow rules, fallback pairs, and
// the derived investment postings.
const (
	IDCash               = "cash"
	IDBank               = "bank"
	IDInvestmentFund     = "investment-fund"
	IDProductInvestments = "product-investments"
	IDLoansReceivable    = "loans-receivable"
	IDLoansPayable       = "loans-payable"
	IDCreditCards        = "credit-cards"
	IDOrdinaryIncome     = "ordinary-income"
	IDInvestmentGains    = "investment-gains"
	IDInterestIncome     = "interest-income"
	IDFood               = "food"
	IDTransport          = "transport"
	IDUtilities          = "utilities"
	IDPersonal           = "personal"
	IDOperating          = "operating"
)

// DefaultChart returns the default chart of accounts for a personal or
// small-business data directory.
func DefaultChart() []model.Account {
	return []model.Account{
		{ID: IDCash, Label: "Cash", ShortLabel: "Cash", Category: model.CategoryAssets, Nature: model.NatureDebit, Description: "Cash on hand"},
		{ID: IDBank, Label: "Bank", ShortLabel: "Bank", Category: model.CategoryAssets, Nature: model.NatureDebit, Description: "Bank account balances"},
		{ID: IDInvestmentFund, Label: "Investment fund", ShortLabel: "Inv. fund", Category: model.CategoryAssets, Nature: model.NatureDebit, Description: "Internal account to fund and recover investments"},
		{ID: IDProductInvestments, Label: "Product investments", ShortLabel: "Inv. products", Category: model.CategoryAssets, Nature: model.NatureDebit, Hidden: true, Description: "Inventory bought for resale"},
		{ID: IDLoansReceivable, Label: "Loans receivable", ShortLabel: "Loans recv.", Category: model.CategoryAssets, Nature: model.NatureDebit, Hidden: true, Description: "Money lent to third parties, outstanding principal"},
		{ID: IDLoansPayable, Label: "Loans payable", ShortLabel: "Loans pay.", Category: model.CategoryLiabilities, Nature: model.NatureCredit, Description: "Obligations for money received from third parties"},
		{ID: IDCreditCards, Label: "Credit cards", ShortLabel: "Cards", Category: model.CategoryLiabilities, Nature: model.NatureCredit, Description: "Outstanding credit card balances"},
		{ID: IDOrdinaryIncome, Label: "Ordinary income", ShortLabel: "Income", Category: model.CategoryIncome, Nature: model.NatureCredit, Description: "Regular sales and services"},
		{ID: IDInvestmentGains, Label: "Investment gains", ShortLabel: "Inv. gains", Category: model.CategoryIncome, Nature: model.NatureCredit, Description: "Realized gains from investments"},
		{ID: IDInterestIncome, Label: "Interest earned", ShortLabel: "Interest", Category: model.CategoryIncome, Nature: model.NatureCredit, Description: "Interest collected on loans and other yields"},
		{ID: IDFood, Label: "Food", ShortLabel: "Food", Category: model.CategoryExpenses, Nature: model.NatureDebit, Description: "Groceries and restaurants"},
		{ID: IDTransport, Label: "Transport", ShortLabel: "Transport", Category: model.CategoryExpenses, Nature: model.NatureDebit, Description: "Mobility expenses"},
		{ID: IDUtilities, Label: "Utilities", ShortLabel: "Utilities", Category: model.CategoryExpenses, Nature: model.NatureDebit, Description: "Utilities and subscriptions"},
		{ID: IDPersonal, Label: "Personal purchases", ShortLabel: "Personal", Category: model.CategoryExpenses, Nature: model.NatureDebit, Description: "Non-operating purchases"},
		{ID: IDOperating, Label: "Operating expenses", ShortLabel: "Operating", Category: model.CategoryExpenses, Nature: model.NatureDebit, Description: "Business costs and expenses"},
	}
}
