// Package currencyutils provides amount parsing and display formatting.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	symbolPattern  = regexp.MustCompile(`[€$£¥₩₣₤₹₺₽฿\s]`)
	codePattern    = regexp.MustCompile(`(?i)\b(KRW|USD|EUR|JPY|CNY|CHF|GBP)\b`)
	groupedPattern = regexp.MustCompile(`^-?(\d{1,3}(,\d{3})+|\d+)(\.\d+)?$`)
)

// ParseAmount parses user-entered text into a decimal value.
// It handles formats like "1,234.56", "1.234,56", "₩ 12,000", "$1,234.56" and "12000원".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts various currency string formats to a standard format that can be parsed by decimal.NewFromString
func StandardizeAmount(amountStr string) string {
	amountStr = codePattern.ReplaceAllString(amountStr, "")
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")
	amountStr = strings.TrimSuffix(amountStr, "원")

	// Remove apostrophes used as thousand separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	hasComma := strings.Contains(amountStr, ",")
	hasDot := strings.Contains(amountStr, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case hasComma:
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			// Comma used as decimal separator (1234,56)
			amountStr = strings.Replace(amountStr, ",", ".", 1)
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return amountStr
}

// ParseGroupedDecimal parses a number that uses "," only as a grouping
// separator, such as the bank feed's "1,350.50". Anything else is an error.
func ParseGroupedDecimal(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty numeric field")
	}
	if !groupedPattern.MatchString(trimmed) {
		return decimal.Zero, fmt.Errorf("invalid numeric field '%s'", s)
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(trimmed, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numeric field '%s': %w", s, err)
	}
	return d, nil
}

// FractionDigits is the number of minor-unit digits shown for a currency code.
func FractionDigits(currency string) int32 {
	switch strings.ToUpper(currency) {
	case "KRW", "JPY":
		return 0
	default:
		return 2
	}
}

// FormatAmount formats an amount for display with grouping separators,
// prefixed with the given symbol, e.g. "₩1,350,000" or "$12.50".
func FormatAmount(amount decimal.Decimal, currency, symbol string) string {
	formatted := GroupThousands(amount.StringFixed(FractionDigits(currency)))
	if symbol == "" {
		if currency == "" {
			return formatted
		}
		return currency + " " + formatted
	}
	if strings.HasPrefix(formatted, "-") {
		return "-" + symbol + formatted[1:]
	}
	return symbol + formatted
}

// GroupThousands inserts "," every three digits of the integer part of a
// plain decimal string.
func GroupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}

// FormatPercent renders a percentage with one decimal place, e.g. "85.0%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
