// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fjacquet/accountbook/internal/currencyutils"
	"fjacquet/accountbook/internal/dateutils"
	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// FormatCanonical renders an amount in the ledger currency, e.g. "₩1,350,000".
func FormatCanonical(amount decimal.Decimal) string {
	return FormatMoney(models.NewMoney(amount, models.CanonicalCurrency))
}

// FormatMoney renders m with its currency symbol.
func FormatMoney(m models.Money) string {
	return currencyutils.FormatAmount(m.Amount, string(m.Currency), m.Currency.Symbol())
}

// FormatRate renders a rate with up to four decimals and no trailing zeros.
func FormatRate(rate decimal.Decimal) string {
	return rate.Round(4).String()
}

// ShortID returns the first eight characters of a UUID.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// ParseDateFlag parses a --date style flag. Empty means now.
func ParseDateFlag(value string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return now, nil
	}
	d, err := dateutils.ParseDate(value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return d, nil
}

// ParseAmountArg parses a positive or zero amount argument.
func ParseAmountArg(value string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	amount, err := currencyutils.ParseAmount(value)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative: %s", value)
	}
	return amount, nil
}

// Context returns the command context, or a background context when the
// command runs outside Execute.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// PrintTransaction writes a one-line description of tx.
func PrintTransaction(cmd *cobra.Command, tx models.Transaction) {
	sign := "-"
	if tx.IsIncome() {
		sign = "+"
	}
	line := fmt.Sprintf("%s  %s  %-8s %-14s %s%s",
		dateutils.ToISODate(tx.Date),
		ShortID(tx.ID),
		tx.Kind(),
		tx.Category.Label(),
		sign,
		FormatCanonical(tx.Amount))
	if !tx.Currency.IsCanonical() {
		line += fmt.Sprintf(" (%s @ %s)", FormatMoney(tx.OriginalMoney()), FormatRate(tx.ExchangeRate))
	}
	if tx.Note != "" {
		line += "  " + tx.Note
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
