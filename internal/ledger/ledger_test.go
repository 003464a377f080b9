package ledger

import (
	"errors"
	"testing"
	"time"

	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"
	"fjacquet/accountbook/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate() time.Time {
	return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
}

func newTestLedger(t *testing.T) (*Ledger, *store.MockBackend) {
	t.Helper()
	backend := store.NewMockBackend()
	return New(store.New(backend, nil), logging.NewMockLogger()), backend
}

func makeTx(id, amount string, category models.Category, note string) models.Transaction {
	return models.NewTransactionBuilder().
		WithID(id).
		WithAmountFromString(amount, models.KRW).
		WithCategory(category).
		WithNote(note).
		WithDate(testDate()).
		MustBuild()
}

func TestLedger_AddRemove(t *testing.T) {
	l, _ := newTestLedger(t)

	require.NoError(t, l.Add(makeTx("a", "1000", models.ExpenseOf(models.ExpenseFood), "lunch")))
	require.NoError(t, l.Add(makeTx("b", "2000", models.IncomeOf(models.IncomeSalary), "pay")))
	assert.Equal(t, 2, l.Len())

	err := l.Add(makeTx("a", "5", models.ExpenseOf(models.ExpenseFood), ""))
	assert.ErrorIs(t, err, ErrDuplicateTransaction)

	removed, err := l.Remove("a")
	require.NoError(t, err)
	assert.Equal(t, "a", removed.ID)
	assert.Equal(t, 1, l.Len())

	_, err = l.Remove("a")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
	_, err = l.Get("a")
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	got, err := l.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "pay", got.Note)
}

func TestLedger_SnapshotIsCopy(t *testing.T) {
	l, _ := newTestLedger(t)
	require.NoError(t, l.Add(makeTx("a", "1000", models.ExpenseOf(models.ExpenseFood), "lunch")))

	snap := l.Transactions()
	snap[0].Note = "changed"

	got, _ := l.Get("a")
	assert.Equal(t, "lunch", got.Note)
}

func TestLedger_PersistsAndReloads(t *testing.T) {
	backend := store.NewMemoryBackend()
	repo := store.New(backend, nil)

	l := New(repo, nil)
	require.NoError(t, l.Add(makeTx("a", "1000", models.ExpenseOf(models.ExpenseFood), "lunch")))
	require.NoError(t, l.Add(makeTx("b", "3000", models.ExpenseOf(models.ExpenseTransport), "taxi")))
	_, err := l.Remove("a")
	require.NoError(t, err)

	reloaded := New(repo, nil)
	require.NoError(t, reloaded.Load())
	txns := reloaded.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, "b", txns[0].ID)
	assert.True(t, txns[0].Amount.Equal(decimal.NewFromInt(3000)))
}

func TestLedger_RollsBackOnSaveFailure(t *testing.T) {
	l, backend := newTestLedger(t)
	require.NoError(t, l.Add(makeTx("a", "1000", models.ExpenseOf(models.ExpenseFood), "lunch")))

	backend.FailWrites(errors.New("disk full"))

	err := l.Add(makeTx("b", "2000", models.ExpenseOf(models.ExpenseFood), "dinner"))
	require.Error(t, err)
	assert.Equal(t, 1, l.Len())

	_, err = l.Remove("a")
	require.Error(t, err)
	assert.Equal(t, 1, l.Len())

	backend.FailWrites(nil)
	require.NoError(t, l.Add(makeTx("b", "2000", models.ExpenseOf(models.ExpenseFood), "dinner")))
	assert.Equal(t, 2, l.Len())
}

func TestLedger_Search(t *testing.T) {
	l, _ := newTestLedger(t)
	require.NoError(t, l.Add(makeTx("a", "1000", models.ExpenseOf(models.ExpenseFood), "Coffee with Min")))
	require.NoError(t, l.Add(makeTx("b", "2000", models.ExpenseOf(models.ExpenseTransport), "bus card")))
	require.NoError(t, l.Add(makeTx("c", "3000", models.IncomeOf(models.IncomeSalary), "")))

	tests := []struct {
		query string
		ids   []string
	}{
		{query: "coffee", ids: []string{"a"}},
		{query: "TRANSPORT", ids: []string{"b"}},
		{query: "salary", ids: []string{"c"}},
		{query: "", ids: []string{"a", "b", "c"}},
		{query: "nothing", ids: nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var ids []string
			for _, tx := range l.Search(tt.query) {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestLedger_LoadSkipsDuplicateIDs(t *testing.T) {
	repo := store.New(store.NewMemoryBackend(), nil)
	tx := makeTx("a", "1000", models.ExpenseOf(models.ExpenseFood), "lunch")
	require.NoError(t, repo.SaveTransactions([]models.Transaction{tx, tx}))

	logger := logging.NewMockLogger()
	l := New(repo, logger)
	require.NoError(t, l.Load())
	assert.Equal(t, 1, l.Len())
	assert.True(t, logger.HasEntry("WARN", "Skipping duplicate stored transaction"))
}
