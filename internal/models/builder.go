package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionBuilder assembles TransactionParams step by step. The first
// failing step is remembered and returned by Build; later steps are no-ops.
type TransactionBuilder struct {
	params TransactionParams
	err    error
}

// NewTransactionBuilder starts from a zero KRW expense in "other".
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		params: TransactionParams{
			Currency:       CanonicalCurrency,
			OriginalAmount: decimal.Zero,
			ExchangeRate:   decimal.NewFromInt(1),
			Category:       ExpenseOf(ExpenseOther),
		},
	}
}

func (b *TransactionBuilder) apply(step func(p *TransactionParams) error) *TransactionBuilder {
	if b.err == nil {
		b.err = step(&b.params)
	}
	return b
}

// WithID sets the transaction ID. Empty means a UUID is generated.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	return b.apply(func(p *TransactionParams) error {
		p.ID = id
		return nil
	})
}

// WithDate sets the entry date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	return b.apply(func(p *TransactionParams) error {
		if date.IsZero() {
			return errors.New("date cannot be zero")
		}
		p.Date = date
		return nil
	})
}

// WithAmount sets the amount as entered. An empty currency keeps the current one.
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal, currency Currency) *TransactionBuilder {
	return b.apply(func(p *TransactionParams) error {
		p.OriginalAmount = amount
		if currency != "" {
			p.Currency = currency
		}
		return nil
	})
}

// WithAmountFromString is WithAmount for a plain decimal string.
func (b *TransactionBuilder) WithAmountFromString(amount string, currency Currency) *TransactionBuilder {
	m, err := NewMoneyFromString(amount, currency)
	if err != nil {
		return b.apply(func(*TransactionParams) error { return err })
	}
	return b.WithAmount(m.Amount, m.Currency)
}

// WithExchangeRate sets the rate frozen into the transaction.
func (b *TransactionBuilder) WithExchangeRate(rate decimal.Decimal) *TransactionBuilder {
	return b.apply(func(p *TransactionParams) error {
		p.ExchangeRate = rate
		return nil
	})
}

func (b *TransactionBuilder) WithCategory(category Category) *TransactionBuilder {
	return b.apply(func(p *TransactionParams) error {
		p.Category = category
		return nil
	})
}

func (b *TransactionBuilder) WithNote(note string) *TransactionBuilder {
	return b.apply(func(p *TransactionParams) error {
		p.Note = note
		return nil
	})
}

// Build returns the first recorded error or the validated transaction.
func (b *TransactionBuilder) Build() (Transaction, error) {
	if b.err != nil {
		return Transaction{}, b.err
	}
	return NewTransaction(b.params)
}

// MustBuild panics on error; intended for tests and fixtures
func (b *TransactionBuilder) MustBuild() Transaction {
	tx, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tx
}
