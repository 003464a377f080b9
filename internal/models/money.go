package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch is returned by arithmetic across different currency tags.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money is a signed decimal amount tagged with its currency. Amounts in
// different currencies never mix without an explicit Convert.
type Money struct {
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Currency Currency        `json:"currency" yaml:"currency"`
}

// NewMoney tags amount with currency.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// NewMoneyFromString parses a plain decimal such as "-12.50".
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string '%s': %w", amount, err)
	}
	return NewMoney(d, currency), nil
}

// ZeroMoney is the zero amount of currency.
func ZeroMoney(currency Currency) Money {
	return NewMoney(decimal.Zero, currency)
}

func (m Money) with(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: m.Currency}
}

func (m Money) requireSame(op string, other Money) error {
	if m.Currency != other.Currency {
		return fmt.Errorf("%w: cannot %s %s and %s", ErrCurrencyMismatch, op, m.Currency, other.Currency)
	}
	return nil
}

func (m Money) IsZero() bool     { return m.Amount.IsZero() }
func (m Money) IsPositive() bool { return m.Amount.IsPositive() }
func (m Money) IsNegative() bool { return m.Amount.IsNegative() }

func (m Money) Abs() Money { return m.with(m.Amount.Abs()) }
func (m Money) Neg() Money { return m.with(m.Amount.Neg()) }

// Mul scales the amount; the currency is unchanged.
func (m Money) Mul(factor decimal.Decimal) Money { return m.with(m.Amount.Mul(factor)) }

// Add returns m + other. Both must carry the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.requireSame("add", other); err != nil {
		return Money{}, err
	}
	return m.with(m.Amount.Add(other.Amount)), nil
}

// Sub returns m - other. Both must carry the same currency.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.requireSame("subtract", other); err != nil {
		return Money{}, err
	}
	return m.with(m.Amount.Sub(other.Amount)), nil
}

// Compare returns -1, 0 or 1. Both must carry the same currency.
func (m Money) Compare(other Money) (int, error) {
	if err := m.requireSame("compare", other); err != nil {
		return 0, err
	}
	return m.Amount.Cmp(other.Amount), nil
}

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// Convert re-tags m in currency to, where rate is the number of units of
// to per unit of m.Currency.
func (m Money) Convert(rate decimal.Decimal, to Currency) (Money, error) {
	if !rate.IsPositive() {
		return Money{}, fmt.Errorf("conversion rate must be positive, got %s", rate)
	}
	if m.Currency == to {
		return m, nil
	}
	return NewMoney(m.Amount.Mul(rate), to), nil
}

// String renders the amount with the currency's minor units, e.g.
// "1234.50 EUR" or "12000 KRW".
func (m Money) String() string {
	return m.StringFixed(m.Currency.MinorUnits())
}

// StringFixed renders the amount with the given number of decimals.
func (m Money) StringFixed(places int32) string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(places), m.Currency)
}
