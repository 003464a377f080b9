// Package budget turns spending totals and configured limits into
// consumption percentages and severity bands.
package budget

import (
	"fmt"

	"fjacquet/accountbook/internal/ledgererror"
	"fjacquet/accountbook/internal/models"
	"fjacquet/accountbook/internal/statistics"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Band is the severity tier of a consumption percentage.
type Band int

const (
	BandGood Band = iota
	BandModerate
	BandWarning
	BandOver
)

func (b Band) String() string {
	switch b {
	case BandGood:
		return "good"
	case BandModerate:
		return "moderate"
	case BandWarning:
		return "warning"
	case BandOver:
		return "over"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// Classify maps p to its band: over above 100, warning above 80,
// moderate above 50, good otherwise.
func Classify(p float64) Band {
	switch {
	case p > 100:
		return BandOver
	case p > 80:
		return BandWarning
	case p > 50:
		return BandModerate
	default:
		return BandGood
	}
}

// Percentage returns 100*spent/limit, or 0 when no limit is configured.
func Percentage(spent, limit decimal.Decimal) float64 {
	if !limit.IsPositive() {
		return 0
	}
	return spent.Mul(hundred).Div(limit).InexactFloat64()
}

// CategoryPercentage applies the same zero guard to one category.
func CategoryPercentage(spent, limit decimal.Decimal) float64 {
	return Percentage(spent, limit)
}

// CheckLimit returns a *ledgererror.NotConfiguredError when limit is not positive.
func CheckLimit(setting string, limit decimal.Decimal) error {
	if !limit.IsPositive() {
		return &ledgererror.NotConfiguredError{Setting: setting}
	}
	return nil
}

// Status is the consumption of one limit.
type Status struct {
	Spent      decimal.Decimal
	Limit      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage float64
	Band       Band
	Configured bool
}

// CategoryStatus is the Status of one expense category.
type CategoryStatus struct {
	Category models.ExpenseCategory
	Status
}

// Report is the overall status plus one entry per configured category.
type Report struct {
	Overall    Status
	Categories []CategoryStatus
}

// Exceeded returns the categories whose spending is over their limit.
func (r Report) Exceeded() []CategoryStatus {
	var out []CategoryStatus
	for _, cs := range r.Categories {
		if cs.Band == BandOver {
			out = append(out, cs)
		}
	}
	return out
}

// Evaluate compares the expenses in txns against b. Categories without a
// limit are left out of the report.
func Evaluate(txns []models.Transaction, b models.Budget) Report {
	spentBy := make(map[models.ExpenseCategory]decimal.Decimal)
	for _, ca := range statistics.ByCategory(txns, models.KindExpense) {
		if e, ok := ca.Category.Expense(); ok {
			spentBy[e] = ca.Amount
		}
	}

	report := Report{
		Overall: newStatus(statistics.TotalExpense(txns), b.MonthlyLimit),
	}
	for _, c := range models.AllExpenseCategories() {
		limit, ok := b.LimitFor(c)
		if !ok {
			continue
		}
		spent, found := spentBy[c]
		if !found {
			spent = decimal.Zero
		}
		report.Categories = append(report.Categories, CategoryStatus{
			Category: c,
			Status:   newStatus(spent, limit),
		})
	}
	return report
}

func newStatus(spent, limit decimal.Decimal) Status {
	s := Status{Spent: spent, Limit: limit, Remaining: decimal.Zero}
	if CheckLimit("limit", limit) != nil {
		return s
	}
	s.Configured = true
	s.Percentage = Percentage(spent, limit)
	s.Band = Classify(s.Percentage)
	if rem := limit.Sub(spent); rem.IsPositive() {
		s.Remaining = rem
	}
	return s
}
