package ledger

import (
	"errors"
	"testing"
	"time"

	"fjacquet/accountbook/internal/ledgererror"
	"fjacquet/accountbook/internal/models"
	"fjacquet/accountbook/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetSettings(t *testing.T) {
	repo := store.New(store.NewMemoryBackend(), nil)
	s := NewBudgetSettings(repo, nil)

	assert.False(t, s.Budget().HasMonthlyLimit())

	require.NoError(t, s.SetMonthlyLimit(decimal.NewFromInt(1000000)))
	require.NoError(t, s.SetCategoryLimit(models.ExpenseFood, decimal.NewFromInt(300000)))
	require.NoError(t, s.SetCategoryLimit(models.ExpenseHousing, decimal.NewFromInt(500000)))
	require.NoError(t, s.ClearCategoryLimit(models.ExpenseHousing))

	err := s.SetMonthlyLimit(decimal.NewFromInt(-1))
	assert.True(t, ledgererror.IsValidation(err))
	err = s.SetCategoryLimit(models.ExpenseCategory(99), decimal.NewFromInt(1))
	assert.True(t, ledgererror.IsValidation(err))

	reloaded := NewBudgetSettings(repo, nil)
	require.NoError(t, reloaded.Load())
	b := reloaded.Budget()
	assert.Equal(t, "1000000", b.MonthlyLimit.String())
	limit, ok := b.LimitFor(models.ExpenseFood)
	assert.True(t, ok)
	assert.Equal(t, "300000", limit.String())
	_, ok = b.LimitFor(models.ExpenseHousing)
	assert.False(t, ok)
}

func TestBudgetSettings_RollbackOnSaveFailure(t *testing.T) {
	backend := store.NewMockBackend()
	s := NewBudgetSettings(store.New(backend, nil), nil)
	require.NoError(t, s.SetCategoryLimit(models.ExpenseFood, decimal.NewFromInt(10)))

	backend.FailWrites(errors.New("read-only"))
	assert.Error(t, s.SetCategoryLimit(models.ExpenseFood, decimal.NewFromInt(20)))
	assert.Error(t, s.SetMonthlyLimit(decimal.NewFromInt(20)))

	b := s.Budget()
	limit, _ := b.LimitFor(models.ExpenseFood)
	assert.Equal(t, "10", limit.String())
	assert.False(t, b.HasMonthlyLimit())
}

func TestGoalBook(t *testing.T) {
	repo := store.New(store.NewMemoryBackend(), nil)
	book := NewGoalBook(repo, nil)

	deadline := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	g, err := book.Add(models.Goal{
		Title:        " Emergency fund ",
		TargetAmount: decimal.NewFromInt(5000000),
		Deadline:     deadline,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "Emergency fund", g.Title)
	assert.Equal(t, models.GoalSavings, g.Type)

	_, err = book.Add(models.Goal{Title: "", TargetAmount: decimal.NewFromInt(1)})
	assert.True(t, ledgererror.IsValidation(err))
	_, err = book.Add(models.Goal{Title: "x", TargetAmount: decimal.Zero})
	assert.True(t, ledgererror.IsValidation(err))

	updated, err := book.UpdateProgress(g.ID, decimal.NewFromInt(2500000))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, updated.Progress(), 1e-9)

	_, err = book.UpdateProgress("missing", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrGoalNotFound)

	reloaded := NewGoalBook(repo, nil)
	require.NoError(t, reloaded.Load())
	goals := reloaded.Goals()
	require.Len(t, goals, 1)
	assert.True(t, goals[0].CurrentAmount.Equal(decimal.NewFromInt(2500000)))

	require.NoError(t, book.Remove(g.ID))
	assert.Empty(t, book.Goals())
	assert.ErrorIs(t, book.Remove(g.ID), ErrGoalNotFound)
}
