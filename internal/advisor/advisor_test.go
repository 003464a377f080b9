package advisor

import (
	"context"
	"testing"

	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCategory(t *testing.T) {
	a := NewKeywordAdvisor(nil, logging.NewMockLogger())

	tests := []struct {
		note string
		kind models.Kind
		want models.Category
	}{
		{note: "스타벅스 카페", kind: models.KindExpense, want: models.ExpenseOf(models.ExpenseFood)},
		{note: "Taxi home", kind: models.KindExpense, want: models.ExpenseOf(models.ExpenseTransport)},
		{note: "관리비 3월", kind: models.KindExpense, want: models.ExpenseOf(models.ExpenseUtilities)},
		{note: "월세", kind: models.KindExpense, want: models.ExpenseOf(models.ExpenseHousing)},
		{note: "unknown thing", kind: models.KindExpense, want: models.ExpenseOf(models.ExpenseOther)},
		{note: "", kind: models.KindExpense, want: models.ExpenseOf(models.ExpenseOther)},
		{note: "3월 월급", kind: models.KindIncome, want: models.IncomeOf(models.IncomeSalary)},
		{note: "Dividend payout", kind: models.KindIncome, want: models.IncomeOf(models.IncomeInvestment)},
		{note: "알바비", kind: models.KindIncome, want: models.IncomeOf(models.IncomeSideJob)},
		{note: "coffee", kind: models.KindIncome, want: models.IncomeOf(models.IncomeOther)},
	}

	for _, tt := range tests {
		t.Run(tt.note, func(t *testing.T) {
			got, err := a.SuggestCategory(context.Background(), tt.note, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestCategory_FirstRuleWins(t *testing.T) {
	a := NewKeywordAdvisor(nil, nil)
	// "카페" (food) is listed before "여행" (entertainment).
	got, err := a.SuggestCategory(context.Background(), "여행 중 카페", models.KindExpense)
	require.NoError(t, err)
	assert.Equal(t, models.ExpenseOf(models.ExpenseFood), got)
}

func TestSuggestCategory_CustomRulesFirst(t *testing.T) {
	custom := []models.KeywordRule{
		{Category: models.ExpenseOf(models.ExpenseEntertainment), Keywords: []string{"Coffee Tasting"}},
	}
	a := NewKeywordAdvisor(custom, nil)

	got, err := a.SuggestCategory(context.Background(), "coffee tasting event", models.KindExpense)
	require.NoError(t, err)
	assert.Equal(t, models.ExpenseOf(models.ExpenseEntertainment), got)

	got, err = a.SuggestCategory(context.Background(), "coffee", models.KindExpense)
	require.NoError(t, err)
	assert.Equal(t, models.ExpenseOf(models.ExpenseFood), got)
}

func TestSuggestCategory_Errors(t *testing.T) {
	a := NewKeywordAdvisor(nil, nil)

	_, err := a.SuggestCategory(context.Background(), "lunch", models.Kind(0))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.SuggestCategory(ctx, "lunch", models.KindExpense)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateAdvice(t *testing.T) {
	a := NewKeywordAdvisor(nil, nil)
	limit := decimal.NewFromInt(1000000)

	tests := []struct {
		name  string
		spent int64
		limit decimal.Decimal
		want  string
	}{
		{name: "over", spent: 1250000, limit: limit, want: "25% over budget"},
		{name: "warning", spent: 850000, limit: limit, want: "used 85%"},
		{name: "moderate", spent: 600000, limit: limit, want: "on track"},
		{name: "good", spent: 100000, limit: limit, want: "Great saving"},
		{name: "no limit", spent: 100000, limit: decimal.Zero, want: "No monthly budget configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, a.GenerateAdvice(decimal.NewFromInt(tt.spent), tt.limit), tt.want)
		})
	}
}
