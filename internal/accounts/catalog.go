package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/balanza-dev/balanza/internal/model"
)

// Catalog is an immutable chart of accounts with id lookup.
// Construct one per configuration and share it freely; it is never
// mutated after NewCatalog returns.
type Catalog struct {
	accounts []model.Account
	byID     map[string]model.Account
}

// NewCatalog creates a Catalog from a slice of accounts, preserving order.
func NewCatalog(accounts []model.Account) *Catalog {
	byID := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Catalog{accounts: accounts, byID: byID}
}

// Load reads accounts/chart-of-accounts.csv from a data directory.
func Load(dataRoot string) (*Catalog, error) {
	path := filepath.Join(dataRoot, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewCatalog(accts), nil
}

// All returns accounts in catalog order. Hidden accounts are filtered out
// unless includeHidden is set.
func (c *Catalog) All(includeHidden bool) []model.Account {
	if includeHidden {
		return c.accounts
	}
	var visible []model.Account
	for _, a := range c.accounts {
		if !a.Hidden {
			visible = append(visible, a)
		}
	}
	return visible
}

// Get returns an account by ID.
func (c *Catalog) Get(id string) (model.Account, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// ByCategory returns all accounts in the given category, catalog order.
func (c *Catalog) ByCategory(category model.Category) []model.Account {
	var result []model.Account
	for _, a := range c.accounts {
		if a.Category == category {
			result = append(result, a)
		}
	}
	return result
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (c *Catalog) Save(dataRoot string) error {
	dir := filepath.Join(dataRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, c.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
