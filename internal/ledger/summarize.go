// Package ledger computes per-account balances from movements and
// investment events. Summarize is a pure fold: it builds a fresh ledger
// on every call, so results depend only on the inputs and concurrent
// callers need no coordination.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/balanza-dev/balanza/internal/accounts"
	"github.com/balanza-dev/balanza/internal/flow"
	"github.com/balanza-dev/balanza/internal/model"
)

// AccountBalance is one catalog account with its computed running totals.
type AccountBalance struct {
	Account  model.Account
	Balance  decimal.Decimal
	Inflows  decimal.Decimal
	Outflows decimal.Decimal
}

// Totals aggregates final balances by account nature.
type Totals struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
	Net     decimal.Decimal
}

// Warning is a non-fatal data-quality finding from one summarization pass.
type Warning struct {
	Source  string // "movement", "purchase", or "credit"
	ID      string
	Message string
}

// Input is the full set of events for one summarization pass.
type Input struct {
	Movements []model.Movement
	Purchases []model.Purchase
	Credits   []model.Credit
}

// Summary is the result of folding an Input over a fresh ledger.
type Summary struct {
	Accounts         []AccountBalance
	Totals           Totals
	Warnings         []Warning
	InvestmentProfit decimal.Decimal
}

// Summarizer computes balance summaries over a fixed catalog.
type Summarizer struct {
	catalog  *accounts.Catalog
	defaults flow.Defaults
}

// NewSummarizer creates a Summarizer. The defaults map supplies fallback
// account pairs for movements recorded without explicit accounts; nil
// means no fallback. Panics on a nil catalog.
func NewSummarizer(catalog *accounts.Catalog, defaults flow.Defaults) *Summarizer {
	if catalog == nil {
		panic("ledger: nil catalog")
	}
	return &Summarizer{catalog: catalog, defaults: defaults}
}

// Summarize folds all movements and investment events into per-account
// balances, totals, and warnings. Invalid rows never abort the pass; each
// produces exactly one warning and is skipped.
func (s *Summarizer) Summarize(in Input) Summary {
	entries := make(map[string]*AccountBalance, len(s.catalog.All(true)))
	for _, acct := range s.catalog.All(true) {
		entries[acct.ID] = &AccountBalance{Account: acct}
	}

	var warnings []Warning
	warn := func(source, id, format string, args ...any) {
		warnings = append(warnings, Warning{
			Source:  source,
			ID:      id,
			Message: fmt.Sprintf(format, args...),
		})
	}

	for _, m := range in.Movements {
		amount := m.Amount.Abs()
		if amount.Sign() <= 0 {
			warn("movement", m.ID, "movement %q has no valid amount to post", m.Description)
			continue
		}

		fromID, toID := m.FromAccount, m.ToAccount
		usedFallback := false
		if fromID == "" || toID == "" {
			pair := s.defaults[m.Type]
			if fromID == "" {
				fromID = pair.From
			}
			if toID == "" {
				toID = pair.To
			}
			usedFallback = true
		}

		if !s.apply(entries, fromID, toID, amount) {
			warn("movement", m.ID, "movement %q could not be assigned to ledger accounts", m.Description)
			continue
		}

		if usedFallback {
			warn("movement", m.ID, "movement %q was assigned using the default account pair for %q", m.Description, m.Type)
		}
	}

	profit := decimal.Zero

	for _, p := range in.Purchases {
		if p.Capital.Sign() > 0 {
			if !s.apply(entries, accounts.IDInvestmentFund, accounts.IDProductInvestments, p.Capital) {
				warn("purchase", p.ID, "purchase %q references accounts missing from the catalog", p.Description)
			}
		}

		if p.Profit().Sign() > 0 && p.ProfitMovementID != "" {
			profit = profit.Add(p.Profit())
		}
	}

	for _, c := range in.Credits {
		if c.Principal.Sign() > 0 {
			if !s.apply(entries, accounts.IDInvestmentFund, accounts.IDLoansReceivable, c.Principal) {
				warn("credit", c.ID, "credit for %q references accounts missing from the catalog", c.Borrower)
			}

			repaid := decimal.Min(c.TotalPaid, c.Principal)
			if repaid.Sign() > 0 {
				s.apply(entries, accounts.IDLoansReceivable, accounts.IDInvestmentFund, repaid)
			}
		}

		recognized := c.InterestMovementID != "" ||
			(c.Status == model.CreditCompleted && c.Interest.Sign() > 0)
		if c.Interest.Sign() > 0 && recognized {
			profit = profit.Add(c.Interest)
		}
	}

	ordered := make([]AccountBalance, 0, len(s.catalog.All(true)))
	totals := Totals{Debits: decimal.Zero, Credits: decimal.Zero, Net: decimal.Zero}
	for _, acct := range s.catalog.All(true) {
		e := entries[acct.ID]
		ordered = append(ordered, *e)

		if acct.Nature == model.NatureCredit {
			totals.Credits = totals.Credits.Add(e.Balance)
		} else {
			totals.Debits = totals.Debits.Add(e.Balance)
		}
		totals.Net = totals.Net.Add(e.Balance)
	}

	return Summary{
		Accounts:         ordered,
		Totals:           totals,
		Warnings:         warnings,
		InvestmentProfit: profit,
	}
}

// apply posts value v from account F to account T following the nature
// sign convention: debit-normal balances grow with inflows and shrink
// with outflows, credit-normal the opposite. Returns false without
// posting anything when either account does not resolve.
func (s *Summarizer) apply(entries map[string]*AccountBalance, fromID, toID string, v decimal.Decimal) bool {
	from, fromOK := entries[fromID]
	to, toOK := entries[toID]
	if !fromOK || !toOK {
		return false
	}

	from.Outflows = from.Outflows.Add(v)
	if from.Account.Nature == model.NatureDebit {
		from.Balance = from.Balance.Sub(v)
	} else {
		from.Balance = from.Balance.Add(v)
	}

	to.Inflows = to.Inflows.Add(v)
	if to.Account.Nature == model.NatureDebit {
		to.Balance = to.Balance.Add(v)
	} else {
		to.Balance = to.Balance.Sub(v)
	}

	return true
}
