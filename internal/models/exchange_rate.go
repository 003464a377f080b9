package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RateOrigin tells where an ExchangeRate came from.
type RateOrigin string

const (
	OriginCanonical RateOrigin = "canonical"
	OriginLive      RateOrigin = "live"
	OriginFallback  RateOrigin = "fallback"
)

// ExchangeRate is the canonical-currency price of one unit of Currency.
type ExchangeRate struct {
	Currency Currency        `json:"currency" yaml:"currency"`
	Rate     decimal.Decimal `json:"rate" yaml:"rate"`
	AsOf     time.Time       `json:"as_of" yaml:"as_of"`
	Origin   RateOrigin      `json:"origin" yaml:"origin"`
}

// NewExchangeRate validates and builds an ExchangeRate.
func NewExchangeRate(currency Currency, rate decimal.Decimal, asOf time.Time, origin RateOrigin) (ExchangeRate, error) {
	if !currency.IsValid() {
		return ExchangeRate{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
	}
	if currency.IsCanonical() && !rate.Equal(decimal.NewFromInt(1)) {
		return ExchangeRate{}, fmt.Errorf("canonical currency %s must have rate 1, got %s", currency, rate)
	}
	if !rate.IsPositive() {
		return ExchangeRate{}, fmt.Errorf("exchange rate for %s must be positive, got %s", currency, rate)
	}
	return ExchangeRate{Currency: currency, Rate: rate, AsOf: asOf, Origin: origin}, nil
}

// CanonicalRate returns the identity rate for the ledger currency.
func CanonicalRate(asOf time.Time) ExchangeRate {
	return ExchangeRate{
		Currency: CanonicalCurrency,
		Rate:     decimal.NewFromInt(1),
		AsOf:     asOf,
		Origin:   OriginCanonical,
	}
}

// RateQuote is one raw row of the bank feed. Numeric fields keep their
// locale formatting ("1,350.50") until they are resolved.
type RateQuote struct {
	Result       int    `json:"result"`
	CurrencyUnit string `json:"cur_unit"`
	CurrencyName string `json:"cur_nm"`
	DealBaseRate string `json:"deal_bas_r"`
	TTB          string `json:"ttb"`
	TTS          string `json:"tts"`
	BookPrice    string `json:"bkpr"`
}
