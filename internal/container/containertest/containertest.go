// Package containertest builds in-memory containers for command tests.
package containertest

import (
	"context"
	"testing"
	"time"

	"fjacquet/accountbook/internal/config"
	"fjacquet/accountbook/internal/container"
	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
)

// Now is the fixed clock of test containers (a Friday).
var Now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

// Feed is a canned bank feed.
type Feed struct {
	Quotes []models.RateQuote
	Err    error
}

// Fetch returns the canned quotes.
func (f Feed) Fetch(context.Context, time.Time) ([]models.RateQuote, error) {
	return f.Quotes, f.Err
}

// DefaultFeed publishes USD, JPY(100), EUR and CNY.
func DefaultFeed() Feed {
	return Feed{Quotes: []models.RateQuote{
		{Result: 1, CurrencyUnit: "EUR", CurrencyName: "Euro", DealBaseRate: "1,450.00"},
		{Result: 1, CurrencyUnit: "CNH", CurrencyName: "Yuan", DealBaseRate: "190.00"},
		{Result: 1, CurrencyUnit: "JPY(100)", CurrencyName: "Yen", DealBaseRate: "905.12"},
		{Result: 1, CurrencyUnit: "USD", CurrencyName: "US Dollar", DealBaseRate: "1,350.00"},
	}}
}

// Config returns a valid configuration using the memory backend.
func Config() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Ledger.DefaultCurrency = string(models.CanonicalCurrency)
	cfg.Rates.TimeoutSeconds = 10
	cfg.Storage.Backend = config.BackendMemory
	cfg.Stats.WindowDays = 7
	cfg.Export.Delimiter = ","
	return cfg
}

// New returns a container over an in-memory store, the given feed, a mock
// logger and the fixed clock. It is closed when the test ends.
func New(t testing.TB, feed Feed) *container.Container {
	t.Helper()
	c, err := container.NewContainer(Config(),
		container.WithFetcher(feed),
		container.WithLogger(logging.NewMockLogger()),
		container.WithClock(func() time.Time { return Now }))
	if err != nil {
		t.Fatalf("failed to build container: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// Seed adds a KRW transaction to the container's ledger.
func Seed(t testing.TB, c *container.Container, id string, amount int64, category models.Category, note string, date time.Time) models.Transaction {
	t.Helper()
	tx := models.NewTransactionBuilder().
		WithID(id).
		WithAmount(decimal.NewFromInt(amount), models.KRW).
		WithCategory(category).
		WithNote(note).
		WithDate(date).
		MustBuild()
	if err := c.GetLedger().Add(tx); err != nil {
		t.Fatalf("failed to seed transaction %s: %v", id, err)
	}
	return tx
}
