package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one ledger entry. Amount is the canonical-currency value
// computed once at creation from OriginalAmount and ExchangeRate; it is never
// recomputed when live rates move.
type Transaction struct {
	ID             string          `json:"id" yaml:"id"`
	Amount         decimal.Decimal `json:"amount" yaml:"amount"`
	OriginalAmount decimal.Decimal `json:"original_amount" yaml:"original_amount"`
	Currency       Currency        `json:"currency" yaml:"currency"`
	ExchangeRate   decimal.Decimal `json:"exchange_rate" yaml:"exchange_rate"`
	Category       Category        `json:"category" yaml:"category"`
	Note           string          `json:"note" yaml:"note"`
	Date           time.Time       `json:"date" yaml:"date"`
}

// TransactionParams holds the inputs of NewTransaction.
type TransactionParams struct {
	ID             string
	OriginalAmount decimal.Decimal
	Currency       Currency
	ExchangeRate   decimal.Decimal
	Category       Category
	Note           string
	Date           time.Time
}

// NewTransaction validates p and computes the canonical amount.
// For the canonical currency the rate is forced to 1.
func NewTransaction(p TransactionParams) (Transaction, error) {
	if !p.Currency.IsValid() {
		return Transaction{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, p.Currency)
	}
	if !p.Category.IsValid() {
		return Transaction{}, errors.New("transaction category is not set")
	}

	rate := p.ExchangeRate
	if p.Currency.IsCanonical() {
		rate = decimal.NewFromInt(1)
	} else if !rate.IsPositive() {
		return Transaction{}, fmt.Errorf("exchange rate for %s must be positive, got %s", p.Currency, rate)
	}

	id := strings.TrimSpace(p.ID)
	if id == "" {
		id = uuid.New().String()
	}
	date := p.Date
	if date.IsZero() {
		date = time.Now()
	}

	amount := p.OriginalAmount
	if !p.Currency.IsCanonical() {
		amount = p.OriginalAmount.Mul(rate)
	}

	return Transaction{
		ID:             id,
		Amount:         amount,
		OriginalAmount: p.OriginalAmount,
		Currency:       p.Currency,
		ExchangeRate:   rate,
		Category:       p.Category,
		Note:           strings.TrimSpace(p.Note),
		Date:           date,
	}, nil
}

// Kind returns the category variant.
func (t Transaction) Kind() Kind {
	return t.Category.Kind()
}

// IsIncome reports whether t is an income entry.
func (t Transaction) IsIncome() bool {
	return t.Category.Kind() == KindIncome
}

// IsExpense reports whether t is an expense entry.
func (t Transaction) IsExpense() bool {
	return t.Category.Kind() == KindExpense
}

// SignedAmount returns the canonical amount, negated for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// CanonicalMoney returns the canonical amount as Money.
func (t Transaction) CanonicalMoney() Money {
	return NewMoney(t.Amount, CanonicalCurrency)
}

// OriginalMoney returns the entered amount in its own currency.
func (t Transaction) OriginalMoney() Money {
	return NewMoney(t.OriginalAmount, t.Currency)
}
