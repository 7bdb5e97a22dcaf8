package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balanza-dev/balanza/internal/model"
)

func TestAccountsCSV_RoundTrip(t *testing.T) {
	chart := DefaultChart()

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, chart))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, chart, got)
}

func TestUnmarshalAccount_InvalidNature(t *testing.T) {
	_, err := UnmarshalAccount([]string{"cash", "Cash", "Cash", "assets", "sideways", "", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nature")
}

func TestUnmarshalAccount_EmptyID(t *testing.T) {
	_, err := UnmarshalAccount([]string{"", "Cash", "Cash", "assets", "debit", "", ""})
	require.Error(t, err)
}

func TestReadAccounts_BadFieldCount(t *testing.T) {
	in := strings.NewReader("account_id,label\ncash,Cash\n")
	_, err := ReadAccounts(in)
	require.Error(t, err)
}

func TestMarshalAccount_HiddenFlag(t *testing.T) {
	row := MarshalAccount(model.Account{ID: "x", Nature: model.NatureDebit, Hidden: true})
	assert.Equal(t, "true", row[colHidden])

	row = MarshalAccount(model.Account{ID: "x", Nature: model.NatureDebit})
	assert.Empty(t, row[colHidden])
}
