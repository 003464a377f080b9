package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input    string
		expected Currency
		wantErr  bool
	}{
		{input: "KRW", expected: KRW},
		{input: "usd", expected: USD},
		{input: " eur ", expected: EUR},
		{input: "JPY", expected: JPY},
		{input: "cny", expected: CNY},
		{input: "GBP", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseCurrency(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestCurrencyMetadata(t *testing.T) {
	assert.Equal(t, []Currency{KRW, USD, EUR, JPY, CNY}, SupportedCurrencies())
	assert.Equal(t, []Currency{USD, EUR, JPY, CNY}, ForeignCurrencies())

	assert.True(t, KRW.IsCanonical())
	assert.False(t, USD.IsCanonical())

	assert.Equal(t, "₩", KRW.Symbol())
	assert.Equal(t, "$", USD.Symbol())
	assert.Equal(t, "¥", JPY.Symbol())

	assert.Equal(t, "JPY(100)", JPY.SourceUnit())
	assert.Equal(t, int64(100), JPY.QuoteUnits())
	assert.Equal(t, "USD", USD.SourceUnit())
	assert.Equal(t, "CNH", CNY.SourceUnit())
	assert.Equal(t, []string{"CNH", "CNY"}, CNY.FeedCodes())
	assert.Equal(t, []string{"EUR"}, EUR.FeedCodes())
	assert.Equal(t, int64(1), USD.QuoteUnits())

	assert.Equal(t, int32(0), KRW.MinorUnits())
	assert.Equal(t, int32(0), JPY.MinorUnits())
	assert.Equal(t, int32(2), EUR.MinorUnits())
}

func TestSupportedCurrenciesReturnsCopy(t *testing.T) {
	list := SupportedCurrencies()
	list[0] = "XXX"
	assert.Equal(t, KRW, SupportedCurrencies()[0])
}
