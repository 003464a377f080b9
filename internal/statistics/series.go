package statistics

import (
	"sort"
	"time"

	"fjacquet/accountbook/internal/dateutils"
	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
)

// DayAmount is the total of one bucket. Day is the bucket's first day at
// midnight in today's location.
type DayAmount struct {
	Day    time.Time
	Amount decimal.Decimal
	Count  int
}

// DailySeries buckets transactions of kind by calendar day over the
// windowDays days ending on today, inclusive. Empty days are omitted and
// the result is ascending by day.
func DailySeries(txns []models.Transaction, kind models.Kind, windowDays int, today time.Time) []DayAmount {
	if windowDays <= 0 {
		return nil
	}
	return bucket(txns, kind, func(local time.Time) (time.Time, bool) {
		if !dateutils.InDayWindow(local, today, windowDays) {
			return time.Time{}, false
		}
		return dateutils.StartOfDay(local), true
	}, today.Location())
}

// WeeklySeries buckets transactions of kind by the Monday starting their
// week, over the windowWeeks weeks ending with today's week.
func WeeklySeries(txns []models.Transaction, kind models.Kind, windowWeeks int, today time.Time) []DayAmount {
	if windowWeeks <= 0 {
		return nil
	}
	last := dateutils.StartOfWeek(today)
	first := last.AddDate(0, 0, -7*(windowWeeks-1))
	return bucket(txns, kind, func(local time.Time) (time.Time, bool) {
		week := dateutils.StartOfWeek(local)
		if week.Before(first) || week.After(last) {
			return time.Time{}, false
		}
		return week, true
	}, today.Location())
}

func bucket(txns []models.Transaction, kind models.Kind, key func(time.Time) (time.Time, bool), loc *time.Location) []DayAmount {
	sums := make(map[time.Time]*DayAmount)
	for _, tx := range txns {
		if tx.Kind() != kind {
			continue
		}
		day, ok := key(tx.Date.In(loc))
		if !ok {
			continue
		}
		da, exists := sums[day]
		if !exists {
			da = &DayAmount{Day: day, Amount: decimal.Zero}
			sums[day] = da
		}
		da.Amount = da.Amount.Add(tx.Amount)
		da.Count++
	}

	out := make([]DayAmount, 0, len(sums))
	for _, da := range sums {
		out = append(out, *da)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}
