// Package advisor suggests categories from transaction notes and turns
// budget consumption into a short piece of advice.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/accountbook/internal/budget"
	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
)

// Advisor is the advisory collaborator. Implementations may be backed by a
// language model; the ledger only depends on this contract.
type Advisor interface {
	SuggestCategory(ctx context.Context, note string, kind models.Kind) (models.Category, error)
	GenerateAdvice(totalExpense, limit decimal.Decimal) string
}

// KeywordAdvisor matches notes against ordered keyword rules.
type KeywordAdvisor struct {
	rules  []models.KeywordRule
	logger logging.Logger
}

// Ensure KeywordAdvisor implements Advisor
var _ Advisor = (*KeywordAdvisor)(nil)

// NewKeywordAdvisor creates an advisor. Custom rules are tried before the
// built-in ones.
func NewKeywordAdvisor(custom []models.KeywordRule, logger logging.Logger) *KeywordAdvisor {
	rules := make([]models.KeywordRule, 0, len(custom)+len(defaultRules))
	rules = append(rules, custom...)
	rules = append(rules, defaultRules...)
	return &KeywordAdvisor{rules: rules, logger: logging.OrDiscard(logger)}
}

// SuggestCategory returns the category of the first rule of the given kind
// with a keyword contained in note, or that kind's "other" category.
func (a *KeywordAdvisor) SuggestCategory(ctx context.Context, note string, kind models.Kind) (models.Category, error) {
	if err := ctx.Err(); err != nil {
		return models.Category{}, err
	}

	var fallback models.Category
	switch kind {
	case models.KindExpense:
		fallback = models.ExpenseOf(models.ExpenseOther)
	case models.KindIncome:
		fallback = models.IncomeOf(models.IncomeOther)
	default:
		return models.Category{}, fmt.Errorf("unknown category kind %d", kind)
	}

	text := strings.ToLower(note)
	if strings.TrimSpace(text) == "" {
		return fallback, nil
	}

	for _, rule := range a.rules {
		if rule.Category.Kind() != kind {
			continue
		}
		for _, keyword := range rule.Keywords {
			if keyword == "" || !strings.Contains(text, strings.ToLower(keyword)) {
				continue
			}
			a.logger.WithFields(
				logging.F("keyword", keyword),
				logging.F(logging.FieldCategory, rule.Category.String()),
			).Debug("Note categorized using keyword matching")
			return rule.Category, nil
		}
	}

	return fallback, nil
}

// GenerateAdvice describes how much of the monthly limit has been used.
func (a *KeywordAdvisor) GenerateAdvice(totalExpense, limit decimal.Decimal) string {
	if !limit.IsPositive() {
		return "ℹ️ No monthly budget configured. Set one to get spending advice."
	}

	p := budget.Percentage(totalExpense, limit)
	switch budget.Classify(p) {
	case budget.BandOver:
		return fmt.Sprintf("⚠️ You are %d%% over budget. Try to cut back on spending!", int(p-100))
	case budget.BandWarning:
		return fmt.Sprintf("💡 You have used %d%% of your budget. Be careful!", int(p))
	case budget.BandModerate:
		return "👍 Your spending is on track. Keep it up!"
	default:
		return "✨ Great saving so far. Keep going!"
	}
}
