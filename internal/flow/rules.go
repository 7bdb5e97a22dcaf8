package flow

import (
	"github.com/balanza-dev/balanza/internal/accounts"
	"github.com/balanza-dev/balanza/internal/model"
)

// Rule constrains which accounts may serve as source and destination for a
// movement type. Entries in From/To match an account by id or by category.
type Rule struct {
	From    []string
	To      []string
	Message string
}

// RuleTable maps movement types to their flow constraints. Types absent
// from the table are permitted unconditionally unless the validator runs
// in strict mode.
type RuleTable map[model.MovementType]Rule

// Pair is a fallback source/destination applied to movements that carry
// no explicit accounts.
type Pair struct {
	From string
	To   string
}

// Defaults maps movement types to their fallback account pair.
type Defaults map[model.MovementType]Pair

// DefaultRules returns the flow constraints for the default chart.
func DefaultRules() RuleTable {
	return RuleTable{
		model.MovementIncome: {
			From:    []string{string(model.CategoryIncome)},
			To:      []string{accounts.IDBank, accounts.IDCash, accounts.IDInvestmentFund},
			Message: "income flows out of an income account and lands in cash, bank, or the investment fund",
		},
		model.MovementExpense: {
			From:    []string{accounts.IDBank, accounts.IDCash, accounts.IDInvestmentFund},
			To:      []string{string(model.CategoryExpenses), accounts.IDLoansPayable, accounts.IDCreditCards},
			Message: "expenses flow out of liquid assets into expense or liability accounts",
		},
		model.MovementInvestmentCapital: {
			From:    []string{accounts.IDInvestmentFund},
			To:      []string{accounts.IDProductInvestments, accounts.IDLoansReceivable},
			Message: "capital leaves the investment fund toward the investment's asset account",
		},
		model.MovementInvestmentProfit: {
			From:    []string{accounts.IDInvestmentGains, accounts.IDInterestIncome},
			To:      []string{accounts.IDBank, accounts.IDCash, accounts.IDInvestmentFund},
			Message: "profit is always income and ends in a liquid asset",
		},
	}
}

// DefaultPairs returns the fallback account pairs for the default chart.
func DefaultPairs() Defaults {
	return Defaults{
		model.MovementIncome:  {From: accounts.IDOrdinaryIncome, To: accounts.IDBank},
		model.MovementExpense: {From: accounts.IDBank, To: accounts.IDOperating},
	}
}

// matches reports whether an account satisfies a rule target set.
func matches(acct model.Account, targets []string) bool {
	for _, t := range targets {
		if t == acct.ID || t == string(acct.Category) {
			return true
		}
	}
	return false
}
