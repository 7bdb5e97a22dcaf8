package flow

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/balanza-dev/balanza/internal/accounts"
	"github.com/balanza-dev/balanza/internal/model"
)

// ErrorKind classifies an expected flow validation failure.
type ErrorKind string

const (
	KindMissingAccounts ErrorKind = "missing-accounts"
	KindSameAccount     ErrorKind = "same-account"
	KindInvalidAmount   ErrorKind = "invalid-amount"
	KindUnknownAccount  ErrorKind = "unknown-account"
	KindFlowNotAllowed  ErrorKind = "flow-not-allowed"
)

// FlowError describes a rejected movement. It is a value, not a panic:
// every rejection a caller can cause with data comes back as one of these.
type FlowError struct {
	Kind    ErrorKind
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Direction selects which side of a rule AllowedAccounts filters on.
type Direction string

const (
	DirectionFrom Direction = "from"
	DirectionTo   Direction = "to"
)

// Validator answers whether moving an amount between two accounts is
// permitted for a movement type. Safe for concurrent use.
type Validator struct {
	catalog *accounts.Catalog
	rules   RuleTable
	strict  bool
}

// NewValidator creates a Validator over a catalog and rule table.
// Strict mode rejects movement types that have no rule instead of
// letting them through. Panics on a nil catalog or rule table; that is
// a construction bug, not a data condition.
func NewValidator(catalog *accounts.Catalog, rules RuleTable, strict bool) *Validator {
	if catalog == nil {
		panic("flow: nil catalog")
	}
	if rules == nil {
		panic("flow: nil rule table")
	}
	return &Validator{catalog: catalog, rules: rules, strict: strict}
}

// Validate checks a proposed movement and returns nil if it is allowed.
func (v *Validator) Validate(movementType model.MovementType, fromID, toID string, amount decimal.Decimal) *FlowError {
	if fromID == "" || toID == "" {
		return &FlowError{
			Kind:    KindMissingAccounts,
			Message: "select both a source and a destination account",
		}
	}

	if fromID == toID {
		return &FlowError{
			Kind:    KindSameAccount,
			Message: "source and destination accounts cannot be the same",
		}
	}

	if amount.Sign() <= 0 {
		return &FlowError{
			Kind:    KindInvalidAmount,
			Message: "amount must be greater than zero",
		}
	}

	fromAcct, fromOK := v.catalog.Get(fromID)
	toAcct, toOK := v.catalog.Get(toID)
	if !fromOK || !toOK {
		return &FlowError{
			Kind:    KindUnknownAccount,
			Message: "the selected accounts are not part of the chart of accounts",
		}
	}

	rule, ok := v.rules[movementType]
	if !ok {
		if v.strict {
			return &FlowError{
				Kind:    KindFlowNotAllowed,
				Message: fmt.Sprintf("no flow rule is defined for movement type %q", movementType),
			}
		}
		return nil
	}

	if !matches(fromAcct, rule.From) || !matches(toAcct, rule.To) {
		return &FlowError{Kind: KindFlowNotAllowed, Message: rule.Message}
	}

	return nil
}

// AllowedAccounts returns the non-hidden accounts that may serve as the
// given side of a movement type. With no rule for the type, every
// non-hidden account qualifies.
func (v *Validator) AllowedAccounts(movementType model.MovementType, direction Direction) []model.Account {
	rule, ok := v.rules[movementType]
	if !ok {
		return v.catalog.All(false)
	}

	targets := rule.From
	if direction == DirectionTo {
		targets = rule.To
	}

	var allowed []model.Account
	for _, acct := range v.catalog.All(false) {
		if matches(acct, targets) {
			allowed = append(allowed, acct)
		}
	}
	return allowed
}
