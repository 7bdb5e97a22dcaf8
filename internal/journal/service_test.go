package journal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balanza-dev/balanza/internal/accounts"
	"github.com/balanza-dev/balanza/internal/flow"
	"github.com/balanza-dev/balanza/internal/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	catalog := accounts.NewCatalog(accounts.DefaultChart())
	validator := flow.NewValidator(catalog, flow.DefaultRules(), false)
	return NewService(t.TempDir(), validator)
}

func TestAdd_AssignsSequentialIDs(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Add(AddParams{
		Date:        date(2025, 3, 5),
		Type:        model.MovementIncome,
		FromAccount: accounts.IDOrdinaryIncome,
		ToAccount:   accounts.IDBank,
		Amount:      dec("100"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-001", first)

	second, err := svc.Add(AddParams{
		Date:        date(2025, 3, 7),
		Type:        model.MovementExpense,
		FromAccount: accounts.IDBank,
		ToAccount:   accounts.IDFood,
		Amount:      dec("25"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-002", second)

	movements, err := svc.ReadMonth(2025, 3)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, "2025-03-001", movements[0].ID)
	assert.Equal(t, "2025-03-002", movements[1].ID)
}

func TestAdd_SequencePerMonth(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(AddParams{
		Date: date(2025, 3, 5), Type: model.MovementIncome,
		FromAccount: accounts.IDOrdinaryIncome, ToAccount: accounts.IDBank, Amount: dec("10"),
	})
	require.NoError(t, err)

	id, err := svc.Add(AddParams{
		Date: date(2025, 4, 1), Type: model.MovementIncome,
		FromAccount: accounts.IDOrdinaryIncome, ToAccount: accounts.IDBank, Amount: dec("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-04-001", id, "each month starts its own sequence")
}

func TestAdd_RejectsInvalidFlow(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(AddParams{
		Date:        date(2025, 3, 5),
		Type:        model.MovementExpense,
		FromAccount: accounts.IDFood, // reversed direction
		ToAccount:   accounts.IDBank,
		Amount:      dec("25"),
	})
	require.Error(t, err)

	var ferr *flow.FlowError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, flow.KindFlowNotAllowed, ferr.Kind)

	// Nothing was written.
	movements, err := svc.ReadMonth(2025, 3)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestRecord_SkipsValidation(t *testing.T) {
	svc := newTestService(t)

	// Imported movements carry no accounts; Record accepts them anyway.
	id, err := svc.Record(model.Movement{
		Date:        date(2025, 3, 12),
		Type:        model.MovementExpense,
		Description: "card import",
		Amount:      dec("18.40"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-001", id)

	movements, err := svc.ReadMonth(2025, 3)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Empty(t, movements[0].FromAccount)
}

func TestReadMonth_MissingFile(t *testing.T) {
	svc := newTestService(t)
	movements, err := svc.ReadMonth(2024, 12)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestReadAll_OrderedAcrossMonths(t *testing.T) {
	svc := newTestService(t)

	for _, d := range []struct{ y, m int }{{2024, 12}, {2025, 1}, {2025, 2}} {
		_, err := svc.Add(AddParams{
			Date: date(d.y, d.m, 15), Type: model.MovementIncome,
			FromAccount: accounts.IDOrdinaryIncome, ToAccount: accounts.IDBank, Amount: dec("10"),
		})
		require.NoError(t, err)
	}

	all, err := svc.ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-12-001", all[0].ID)
	assert.Equal(t, "2025-01-001", all[1].ID)
	assert.Equal(t, "2025-02-001", all[2].ID)
}

func TestNextSeq_EmptyMonth(t *testing.T) {
	svc := newTestService(t)
	seq, err := svc.NextSeq(2025, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, seq)
}
