package budget

import (
	"testing"
	"time"

	"fjacquet/accountbook/internal/ledgererror"
	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		spent int64
		limit int64
		want  float64
	}{
		{name: "warning scenario", spent: 850000, limit: 1000000, want: 85},
		{name: "zero limit", spent: 850000, limit: 0, want: 0},
		{name: "negative limit", spent: 10, limit: -5, want: 0},
		{name: "nothing spent", spent: 0, limit: 1000, want: 0},
		{name: "over", spent: 1500, limit: 1000, want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(decimal.NewFromInt(tt.spent), decimal.NewFromInt(tt.limit))
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t, tt.want, CategoryPercentage(decimal.NewFromInt(tt.spent), decimal.NewFromInt(tt.limit)), 1e-9)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		p    float64
		want Band
	}{
		{0, BandGood},
		{50, BandGood},
		{50.0001, BandModerate},
		{80, BandModerate},
		{80.5, BandWarning},
		{85, BandWarning},
		{100, BandWarning},
		{100.01, BandOver},
		{250, BandOver},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.p), "p=%v", tt.p)
	}

	assert.Equal(t, "warning", Classify(85).String())
	assert.Equal(t, "over", BandOver.String())
}

func TestCheckLimit(t *testing.T) {
	err := CheckLimit("monthly limit", decimal.Zero)
	require.Error(t, err)
	assert.True(t, ledgererror.IsNotConfigured(err))
	assert.Contains(t, err.Error(), "monthly limit")

	assert.NoError(t, CheckLimit("monthly limit", decimal.NewFromInt(1)))
}

func expense(amount int64, c models.ExpenseCategory) models.Transaction {
	return models.NewTransactionBuilder().
		WithAmount(decimal.NewFromInt(amount), models.KRW).
		WithCategory(models.ExpenseOf(c)).
		WithDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).
		MustBuild()
}

func TestEvaluate(t *testing.T) {
	txns := []models.Transaction{
		expense(500000, models.ExpenseFood),
		expense(350000, models.ExpenseTransport),
		models.NewTransactionBuilder().
			WithAmount(decimal.NewFromInt(9000000), models.KRW).
			WithCategory(models.IncomeOf(models.IncomeSalary)).
			MustBuild(),
	}
	b := models.BudgetFromList(decimal.NewFromInt(1000000), []models.CategoryBudget{
		{Category: models.ExpenseOf(models.ExpenseFood), Limit: decimal.NewFromInt(400000)},
		{Category: models.ExpenseOf(models.ExpenseHealth), Limit: decimal.NewFromInt(100000)},
	})

	report := Evaluate(txns, b)

	assert.True(t, report.Overall.Configured)
	assert.Equal(t, "850000", report.Overall.Spent.String())
	assert.Equal(t, "150000", report.Overall.Remaining.String())
	assert.InDelta(t, 85, report.Overall.Percentage, 1e-9)
	assert.Equal(t, BandWarning, report.Overall.Band)

	require.Len(t, report.Categories, 2)
	assert.Equal(t, models.ExpenseFood, report.Categories[0].Category)
	assert.Equal(t, BandOver, report.Categories[0].Band)
	assert.True(t, report.Categories[0].Remaining.IsZero())
	assert.Equal(t, models.ExpenseHealth, report.Categories[1].Category)
	assert.Equal(t, BandGood, report.Categories[1].Band)
	assert.True(t, report.Categories[1].Spent.IsZero())

	exceeded := report.Exceeded()
	require.Len(t, exceeded, 1)
	assert.Equal(t, models.ExpenseFood, exceeded[0].Category)
}

func TestEvaluate_NoLimits(t *testing.T) {
	report := Evaluate([]models.Transaction{expense(1000, models.ExpenseFood)}, models.Budget{})

	assert.False(t, report.Overall.Configured)
	assert.Equal(t, 0.0, report.Overall.Percentage)
	assert.Equal(t, BandGood, report.Overall.Band)
	assert.Empty(t, report.Categories)
	assert.Empty(t, report.Exceeded())
}
