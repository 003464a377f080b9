package models

import (
	"github.com/shopspring/decimal"
)

// Budget is the user's monthly spending limit and the sparse per-category
// limits. Zero means no limit is configured.
type Budget struct {
	MonthlyLimit   decimal.Decimal
	CategoryLimits map[ExpenseCategory]decimal.Decimal
}

// CategoryBudget is the persisted shape of one per-category limit.
type CategoryBudget struct {
	Category Category        `json:"category" yaml:"category"`
	Limit    decimal.Decimal `json:"limit" yaml:"limit"`
}

// HasMonthlyLimit reports whether an overall limit is configured.
func (b Budget) HasMonthlyLimit() bool {
	return b.MonthlyLimit.IsPositive()
}

// LimitFor returns the limit of c and whether one is configured.
func (b Budget) LimitFor(c ExpenseCategory) (decimal.Decimal, bool) {
	limit, ok := b.CategoryLimits[c]
	if !ok || !limit.IsPositive() {
		return decimal.Zero, false
	}
	return limit, true
}

// CategoryBudgets returns the configured category limits in enumeration order.
func (b Budget) CategoryBudgets() []CategoryBudget {
	var out []CategoryBudget
	for _, c := range AllExpenseCategories() {
		if limit, ok := b.LimitFor(c); ok {
			out = append(out, CategoryBudget{Category: ExpenseOf(c), Limit: limit})
		}
	}
	return out
}

// BudgetFromList rebuilds a Budget from its persisted parts. Entries that
// are not expense categories or carry no positive limit are skipped.
func BudgetFromList(monthly decimal.Decimal, list []CategoryBudget) Budget {
	b := Budget{
		MonthlyLimit:   monthly,
		CategoryLimits: make(map[ExpenseCategory]decimal.Decimal, len(list)),
	}
	for _, cb := range list {
		e, ok := cb.Category.Expense()
		if !ok || !e.IsValid() || !cb.Limit.IsPositive() {
			continue
		}
		b.CategoryLimits[e] = cb.Limit
	}
	return b
}

// Clone returns a deep copy.
func (b Budget) Clone() Budget {
	out := Budget{
		MonthlyLimit:   b.MonthlyLimit,
		CategoryLimits: make(map[ExpenseCategory]decimal.Decimal, len(b.CategoryLimits)),
	}
	for k, v := range b.CategoryLimits {
		out.CategoryLimits[k] = v
	}
	return out
}
