package journal

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balanza-dev/balanza/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestMovementsCSV_RoundTrip(t *testing.T) {
	movements := []model.Movement{
		{
			ID:          "2025-03-001",
			Date:        date(2025, 3, 5),
			Type:        model.MovementIncome,
			Description: "march invoice",
			FromAccount: "ordinary-income",
			ToAccount:   "bank",
			Amount:      dec("1250.00"),
			Reference:   "inv-42",
		},
		{
			ID:     "2025-03-002",
			Date:   date(2025, 3, 9),
			Type:   model.MovementExpense,
			Amount: dec("80.50"),
			Notes:  "no accounts yet",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMovements(&buf, movements))

	got, err := ReadMovements(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, movements[0].ID, got[0].ID)
	assert.Equal(t, movements[0].Type, got[0].Type)
	assert.True(t, got[0].Amount.Equal(dec("1250.00")))
	assert.Empty(t, got[1].FromAccount)
	assert.Empty(t, got[1].ToAccount)
	assert.True(t, got[1].Amount.Equal(dec("80.50")))
}

func TestUnmarshalMovement_BadDate(t *testing.T) {
	_, err := UnmarshalMovement([]string{"2025-03-001", "03/05/2025", "income", "", "a", "b", "10.00", "", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}

func TestUnmarshalMovement_BadAmount(t *testing.T) {
	_, err := UnmarshalMovement([]string{"2025-03-001", "2025-03-05", "income", "", "a", "b", "ten", "", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestReadMovements_Empty(t *testing.T) {
	got, err := ReadMovements(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}
