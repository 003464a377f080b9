package ratesource

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"fjacquet/accountbook/internal/currencyutils"
	"fjacquet/accountbook/internal/ledgererror"
	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
)

var unitPattern = regexp.MustCompile(`^([A-Z]{3})\s*(?:\((\d+)\))?$`)

// ParseUnit splits a feed label such as "JPY(100)" into its code and the
// number of units the rate is quoted for.
func ParseUnit(label string) (string, int64, error) {
	m := unitPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(label)))
	if m == nil {
		return "", 0, fmt.Errorf("unrecognized currency unit %q", label)
	}
	units := int64(1)
	if m[2] != "" {
		n, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil || n <= 0 {
			return "", 0, fmt.Errorf("invalid unit multiplier in %q", label)
		}
		units = n
	}
	return m[1], units, nil
}

// QuoteRate converts one feed row into a per-unit rate. The deal base rate
// is divided by the label's multiplier.
func QuoteRate(q models.RateQuote) (decimal.Decimal, error) {
	_, units, err := ParseUnit(q.CurrencyUnit)
	if err != nil {
		return decimal.Zero, err
	}
	rate, err := currencyutils.ParseGroupedDecimal(q.DealBaseRate)
	if err != nil {
		return decimal.Zero, err
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("non-positive rate %s for %s", q.DealBaseRate, q.CurrencyUnit)
	}
	if units != 1 {
		rate = rate.Div(decimal.NewFromInt(units))
	}
	return rate, nil
}

// ResolveRate finds currency in quotes and returns its per-unit rate.
// A missing row or an unparseable number is a fetch error.
func ResolveRate(quotes []models.RateQuote, currency models.Currency) (decimal.Decimal, error) {
	for _, want := range currency.FeedCodes() {
		q, ok := findQuote(quotes, want)
		if !ok {
			continue
		}
		rate, err := QuoteRate(q)
		if err != nil {
			return decimal.Zero, &ledgererror.RateFetchError{
				Currency: string(currency),
				Reason:   "unparseable deal base rate",
				Err:      err,
			}
		}
		return rate, nil
	}
	return decimal.Zero, &ledgererror.RateFetchError{
		Currency: string(currency),
		Reason:   "currency not present in feed",
	}
}

func findQuote(quotes []models.RateQuote, code string) (models.RateQuote, bool) {
	for _, q := range quotes {
		if c, _, err := ParseUnit(q.CurrencyUnit); err == nil && c == code {
			return q, true
		}
	}
	return models.RateQuote{}, false
}

var priority = map[string]int{"USD": 0, "JPY": 1, "EUR": 2, "GBP": 3}

// SortByPriority orders a copy of quotes with the most used currencies first
// (USD, JPY, EUR, GBP) and the rest alphabetically by unit label.
func SortByPriority(quotes []models.RateQuote) []models.RateQuote {
	out := make([]models.RateQuote, len(quotes))
	copy(out, quotes)

	rank := func(q models.RateQuote) int {
		code, _, err := ParseUnit(q.CurrencyUnit)
		if err != nil {
			return len(priority)
		}
		if p, ok := priority[code]; ok {
			return p
		}
		return len(priority)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i]), rank(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i].CurrencyUnit < out[j].CurrencyUnit
	})
	return out
}
