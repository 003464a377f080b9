package models

import (
	"errors"
	"fmt"
	"strings"
)

// Currency is an ISO 4217 code supported by the ledger.
type Currency string

// Supported currencies. KRW is the ledger's canonical currency.
const (
	KRW Currency = "KRW"
	USD Currency = "USD"
	EUR Currency = "EUR"
	JPY Currency = "JPY"
	CNY Currency = "CNY"
)

// CanonicalCurrency is the unit every aggregation is computed in.
const CanonicalCurrency = KRW

// ErrUnsupportedCurrency is returned when a code is not part of the supported set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

var supportedCurrencies = []Currency{KRW, USD, EUR, JPY, CNY}

// SupportedCurrencies returns every supported currency in declaration order.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// ForeignCurrencies returns the supported currencies other than the canonical one.
func ForeignCurrencies() []Currency {
	out := make([]Currency, 0, len(supportedCurrencies)-1)
	for _, c := range supportedCurrencies {
		if !c.IsCanonical() {
			out = append(out, c)
		}
	}
	return out
}

// ParseCurrency converts a case-insensitive code into a supported Currency.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
	return c, nil
}

// IsValid reports whether c is one of the supported currencies.
func (c Currency) IsValid() bool {
	for _, s := range supportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

// IsCanonical reports whether c is the ledger currency.
func (c Currency) IsCanonical() bool {
	return c == CanonicalCurrency
}

// Symbol returns the display symbol.
func (c Currency) Symbol() string {
	switch c {
	case KRW:
		return "₩"
	case USD:
		return "$"
	case EUR:
		return "€"
	case JPY, CNY:
		return "¥"
	default:
		return string(c)
	}
}

// Flag returns the emoji flag shown next to the code.
func (c Currency) Flag() string {
	switch c {
	case KRW:
		return "🇰🇷"
	case USD:
		return "🇺🇸"
	case EUR:
		return "🇪🇺"
	case JPY:
		return "🇯🇵"
	case CNY:
		return "🇨🇳"
	default:
		return "🌍"
	}
}

// QuoteUnits is the number of units the bank feed quotes a rate for.
// The yen is published as "100 JPY = X KRW".
func (c Currency) QuoteUnits() int64 {
	if c == JPY {
		return 100
	}
	return 1
}

// FeedCodes lists the codes the bank feed may publish c under, preferred
// first. The feed quotes the yuan as offshore CNH.
func (c Currency) FeedCodes() []string {
	if c == CNY {
		return []string{"CNH", "CNY"}
	}
	return []string{string(c)}
}

// SourceUnit is the currency-unit label used by the bank feed, e.g. "JPY(100)".
func (c Currency) SourceUnit() string {
	code := c.FeedCodes()[0]
	if units := c.QuoteUnits(); units != 1 {
		return fmt.Sprintf("%s(%d)", code, units)
	}
	return code
}

// MinorUnits is the number of decimal places amounts are shown with.
// The won and the yen have no minor unit in everyday use.
func (c Currency) MinorUnits() int32 {
	switch c {
	case KRW, JPY:
		return 0
	default:
		return 2
	}
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}
