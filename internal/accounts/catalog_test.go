package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balanza-dev/balanza/internal/model"
)

func TestCatalog_Lookup(t *testing.T) {
	c := NewCatalog(DefaultChart())

	acct, ok := c.Get(IDCash)
	require.True(t, ok)
	assert.Equal(t, "Cash", acct.Label)
	assert.Equal(t, model.NatureDebit, acct.Nature)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	assert.True(t, c.Exists(IDBank))
	assert.False(t, c.Exists("missing"))
}

func TestCatalog_OrderPreserved(t *testing.T) {
	chart := DefaultChart()
	c := NewCatalog(chart)

	all := c.All(true)
	require.Len(t, all, len(chart))
	for i, a := range all {
		assert.Equal(t, chart[i].ID, a.ID)
	}
}

func TestCatalog_HiddenFiltering(t *testing.T) {
	c := NewCatalog(DefaultChart())

	visible := c.All(false)
	for _, a := range visible {
		assert.False(t, a.Hidden, "%s should not be hidden", a.ID)
	}
	assert.Len(t, c.All(true), len(visible)+2, "default chart hides two accounts")
}

func TestCatalog_ByCategory(t *testing.T) {
	c := NewCatalog(DefaultChart())

	income := c.ByCategory(model.CategoryIncome)
	require.Len(t, income, 3)
	for _, a := range income {
		assert.Equal(t, model.NatureCredit, a.Nature)
	}

	assert.Empty(t, c.ByCategory(model.CategoryEquity))
}

func TestDefaultChart_Natures(t *testing.T) {
	for _, a := range DefaultChart() {
		switch a.Category {
		case model.CategoryAssets, model.CategoryExpenses:
			assert.Equal(t, model.NatureDebit, a.Nature, "%s", a.ID)
		case model.CategoryLiabilities, model.CategoryIncome:
			assert.Equal(t, model.NatureCredit, a.Nature, "%s", a.ID)
		}
	}
}
