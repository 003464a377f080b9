package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fjacquet/accountbook/internal/currencyutils"
	"fjacquet/accountbook/internal/ledgererror"
	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
)

// RateProvider resolves the rate frozen into a new transaction.
type RateProvider interface {
	GetRate(ctx context.Context, currency models.Currency) (models.ExchangeRate, error)
}

// CategorySuggester classifies a note when the user gave no category.
type CategorySuggester interface {
	SuggestCategory(ctx context.Context, note string, kind models.Kind) (models.Category, error)
}

// Entry is raw user input for a new transaction.
type Entry struct {
	Amount   string
	Currency string
	// Category is "kind:key" or a bare key/label interpreted with Kind.
	Category string
	// Kind defaults to expense.
	Kind models.Kind
	Note string
	Date time.Time
}

// Recorder validates entries, resolves the rate at entry and appends the
// resulting transaction to the ledger.
type Recorder struct {
	ledger    *Ledger
	rates     RateProvider
	suggester CategorySuggester
	logger    logging.Logger
	now       func() time.Time
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithRecorderClock replaces time.Now as the date of undated entries.
func WithRecorderClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRecorder creates a Recorder. suggester may be nil.
func NewRecorder(ledger *Ledger, rates RateProvider, suggester CategorySuggester, logger logging.Logger, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		ledger:    ledger,
		rates:     rates,
		suggester: suggester,
		logger:    logging.OrDiscard(logger),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record turns e into a transaction. Validation failures return a
// *ledgererror.ValidationError and leave the ledger untouched.
func (r *Recorder) Record(ctx context.Context, e Entry) (models.Transaction, error) {
	amount, err := parsePositiveAmount(e.Amount)
	if err != nil {
		return models.Transaction{}, err
	}

	currency := models.CanonicalCurrency
	if strings.TrimSpace(e.Currency) != "" {
		currency, err = models.ParseCurrency(e.Currency)
		if err != nil {
			return models.Transaction{}, &ledgererror.ValidationError{
				Field: "currency", Value: e.Currency, Reason: "unsupported currency",
			}
		}
	}

	category, err := r.resolveCategory(ctx, e)
	if err != nil {
		return models.Transaction{}, err
	}

	rate, err := r.rates.GetRate(ctx, currency)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("error resolving %s rate: %w", currency, err)
	}

	tx, err := models.NewTransactionBuilder().
		WithAmount(amount, currency).
		WithExchangeRate(rate.Rate).
		WithCategory(category).
		WithNote(e.Note).
		WithDate(r.entryDate(e.Date)).
		Build()
	if err != nil {
		return models.Transaction{}, &ledgererror.ValidationError{
			Field: "transaction", Value: e.Amount, Reason: err.Error(),
		}
	}

	if err := r.ledger.Add(tx); err != nil {
		return models.Transaction{}, err
	}

	r.logger.Debug("Recorded transaction",
		logging.F(logging.FieldTransactionID, tx.ID),
		logging.F(logging.FieldCurrency, string(currency)),
		logging.F(logging.FieldRate, rate.Rate.String()),
		logging.F(logging.FieldRateOrigin, string(rate.Origin)))
	return tx, nil
}

func (r *Recorder) resolveCategory(ctx context.Context, e Entry) (models.Category, error) {
	kind := e.Kind
	if kind == 0 {
		kind = models.KindExpense
	}

	if strings.TrimSpace(e.Category) != "" {
		c, err := models.ParseCategory(e.Category, kind)
		if err != nil {
			return models.Category{}, &ledgererror.ValidationError{
				Field: "category", Value: e.Category, Reason: err.Error(),
			}
		}
		return c, nil
	}

	if r.suggester == nil || strings.TrimSpace(e.Note) == "" {
		return models.Category{}, &ledgererror.ValidationError{
			Field: "category", Value: e.Category, Reason: "category is required",
		}
	}

	c, err := r.suggester.SuggestCategory(ctx, e.Note, kind)
	if err != nil {
		return models.Category{}, fmt.Errorf("error suggesting category: %w", err)
	}
	r.logger.Debug("Suggested category from note",
		logging.F(logging.FieldCategory, c.String()))
	return c, nil
}

func parsePositiveAmount(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, &ledgererror.ValidationError{
			Field: "amount", Value: raw, Reason: "amount is required",
		}
	}
	amount, err := currencyutils.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, &ledgererror.ValidationError{
			Field: "amount", Value: raw, Reason: "not a number",
		}
	}
	if !amount.IsPositive() {
		return decimal.Zero, &ledgererror.ValidationError{
			Field: "amount", Value: raw, Reason: "must be greater than zero",
		}
	}
	return amount, nil
}

func (r *Recorder) entryDate(d time.Time) time.Time {
	if d.IsZero() {
		return r.now()
	}
	return d
}
