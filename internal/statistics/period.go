package statistics

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/accountbook/internal/dateutils"
	"fjacquet/accountbook/internal/models"
)

// Period selects a calendar range relative to today.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ParsePeriod accepts weekly, monthly or yearly (and week/month/year).
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly", "week":
		return PeriodWeekly, nil
	case "monthly", "month", "":
		return PeriodMonthly, nil
	case "yearly", "year":
		return PeriodYearly, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// Bounds returns the half-open range [start, end) of the period containing today.
func (p Period) Bounds(today time.Time) (time.Time, time.Time) {
	switch p {
	case PeriodWeekly:
		start := dateutils.StartOfWeek(today)
		return start, start.AddDate(0, 0, 7)
	case PeriodYearly:
		start := dateutils.StartOfYear(today)
		return start, start.AddDate(1, 0, 0)
	default:
		start := dateutils.StartOfMonth(today)
		return start, start.AddDate(0, 1, 0)
	}
}

// FilterPeriod keeps the transactions dated inside the current week, month
// or year (Monday to Sunday for weeks).
func FilterPeriod(txns []models.Transaction, period Period, today time.Time) []models.Transaction {
	start, end := period.Bounds(today)
	var out []models.Transaction
	for _, tx := range txns {
		local := tx.Date.In(today.Location())
		if !local.Before(start) && local.Before(end) {
			out = append(out, tx)
		}
	}
	return out
}
