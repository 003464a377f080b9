// Package ratecache resolves canonical-currency exchange rates with a
// per-currency cache that is valid for the calendar day it was filled.
//
// A successful fetch is cached for the rest of the day. A failed fetch
// falls back to a static table and is not cached, so the next call on
// the same day asks the source again.
package ratecache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fjacquet/accountbook/internal/dateutils"
	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"
	"fjacquet/accountbook/internal/ratesource"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultFetchTimeout bounds a single source call.
const DefaultFetchTimeout = 10 * time.Second

// DefaultFallbackRates is the last-known-good table used when the source is
// unavailable.
func DefaultFallbackRates() map[models.Currency]decimal.Decimal {
	return map[models.Currency]decimal.Decimal{
		models.USD: decimal.NewFromInt(1350),
		models.EUR: decimal.NewFromInt(1450),
		models.JPY: decimal.NewFromInt(9),
		models.CNY: decimal.NewFromInt(190),
	}
}

type entry struct {
	rate      models.ExchangeRate
	fetchedOn time.Time
}

// Cache is safe for concurrent use. Lookups for different currencies never
// wait on each other's network calls.
type Cache struct {
	source       ratesource.Fetcher
	fallback     map[models.Currency]decimal.Decimal
	now          func() time.Time
	logger       logging.Logger
	fetchTimeout time.Duration

	mu      sync.RWMutex
	entries map[models.Currency]entry
}

// Option configures a Cache.
type Option func(*Cache)

// WithFallbackRates overrides entries of the fallback table.
func WithFallbackRates(rates map[models.Currency]decimal.Decimal) Option {
	return func(c *Cache) {
		for cur, rate := range rates {
			if rate.IsPositive() {
				c.fallback[cur] = rate
			}
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger logging.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFetchTimeout bounds each source call.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// New creates a cache over source. A nil source always yields fallback rates.
func New(source ratesource.Fetcher, opts ...Option) *Cache {
	c := &Cache{
		source:       source,
		fallback:     DefaultFallbackRates(),
		now:          time.Now,
		logger:       logging.NewDiscardLogger(),
		fetchTimeout: DefaultFetchTimeout,
		entries:      make(map[models.Currency]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetRate returns the canonical-currency price of one unit of currency.
// The only errors are for currencies the ledger does not support; source
// failures degrade to the fallback table.
func (c *Cache) GetRate(ctx context.Context, currency models.Currency) (models.ExchangeRate, error) {
	if !currency.IsValid() {
		return models.ExchangeRate{}, fmt.Errorf("%w: %q", models.ErrUnsupportedCurrency, currency)
	}

	now := c.now()
	if currency.IsCanonical() {
		return models.CanonicalRate(now), nil
	}

	if rate, ok := c.lookup(currency, now); ok {
		c.logger.Debug("Exchange rate cache hit",
			logging.F(logging.FieldCurrency, string(currency)),
			logging.F(logging.FieldRate, rate.Rate.String()))
		return rate, nil
	}

	rate, err := c.fetch(ctx, currency, now)
	if err == nil {
		c.store(currency, rate, now)
		c.logger.Debug("Exchange rate fetched",
			logging.F(logging.FieldCurrency, string(currency)),
			logging.F(logging.FieldRate, rate.Rate.String()),
			logging.F(logging.FieldRateOrigin, string(models.OriginLive)))
		return rate, nil
	}

	c.logger.WithError(err).Warn("Exchange rate fetch failed",
		logging.F(logging.FieldCurrency, string(currency)),
		logging.F(logging.FieldSearchDate, dateutils.FormatSearchDate(now)))

	return c.fallbackRate(currency, now)
}

// Rate is GetRate reduced to the decimal rate.
func (c *Cache) Rate(ctx context.Context, currency models.Currency) (decimal.Decimal, error) {
	r, err := c.GetRate(ctx, currency)
	if err != nil {
		return decimal.Zero, err
	}
	return r.Rate, nil
}

// Convert computes amount * rate(from) / rate(to). No rounding is applied.
func (c *Cache) Convert(ctx context.Context, amount decimal.Decimal, from, to models.Currency) (decimal.Decimal, error) {
	if from == to {
		if !from.IsValid() {
			return decimal.Zero, fmt.Errorf("%w: %q", models.ErrUnsupportedCurrency, from)
		}
		return amount, nil
	}

	rateFrom, err := c.Rate(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}
	rateTo, err := c.Rate(ctx, to)
	if err != nil {
		return decimal.Zero, err
	}

	canonical := amount.Mul(rateFrom)
	if to.IsCanonical() {
		return canonical, nil
	}
	return canonical.Div(rateTo), nil
}

// ConvertMoney converts m into the target currency.
func (c *Cache) ConvertMoney(ctx context.Context, m models.Money, to models.Currency) (models.Money, error) {
	amount, err := c.Convert(ctx, m.Amount, m.Currency, to)
	if err != nil {
		return models.Money{}, err
	}
	return models.NewMoney(amount, to), nil
}

// RefreshAll resolves every supported currency concurrently and returns
// the rates in SupportedCurrencies order.
func (c *Cache) RefreshAll(ctx context.Context) ([]models.ExchangeRate, error) {
	currencies := models.SupportedCurrencies()
	rates := make([]models.ExchangeRate, len(currencies))

	g, gctx := errgroup.WithContext(ctx)
	for i, cur := range currencies {
		g.Go(func() error {
			r, err := c.GetRate(gctx, cur)
			if err != nil {
				return err
			}
			rates[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rates, nil
}

// Cached returns the live entries that are still valid today, in
// SupportedCurrencies order.
func (c *Cache) Cached() []models.ExchangeRate {
	now := c.now()
	var out []models.ExchangeRate
	for _, cur := range models.SupportedCurrencies() {
		if r, ok := c.lookup(cur, now); ok {
			out = append(out, r)
		}
	}
	return out
}

func (c *Cache) lookup(currency models.Currency, now time.Time) (models.ExchangeRate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[currency]
	if !ok || !dateutils.SameDay(now, e.fetchedOn) {
		return models.ExchangeRate{}, false
	}
	return e.rate, true
}

func (c *Cache) store(currency models.Currency, rate models.ExchangeRate, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[currency] = entry{rate: rate, fetchedOn: now}
}

// fetch performs one source call without holding the lock.
func (c *Cache) fetch(ctx context.Context, currency models.Currency, now time.Time) (models.ExchangeRate, error) {
	if c.source == nil {
		return models.ExchangeRate{}, fmt.Errorf("no rate source configured")
	}

	fctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	quotes, err := c.source.Fetch(fctx, now)
	if err != nil {
		return models.ExchangeRate{}, err
	}
	value, err := ratesource.ResolveRate(quotes, currency)
	if err != nil {
		return models.ExchangeRate{}, err
	}
	return models.NewExchangeRate(currency, value, now, models.OriginLive)
}

func (c *Cache) fallbackRate(currency models.Currency, now time.Time) (models.ExchangeRate, error) {
	value, ok := c.fallback[currency]
	if !ok {
		return models.ExchangeRate{}, fmt.Errorf("no fallback rate for %s", currency)
	}
	c.logger.Warn("Using fallback exchange rate",
		logging.F(logging.FieldCurrency, string(currency)),
		logging.F(logging.FieldRate, value.String()),
		logging.F(logging.FieldRateOrigin, string(models.OriginFallback)))
	return models.NewExchangeRate(currency, value, now, models.OriginFallback)
}
