package rates

import (
	"bytes"
	"errors"
	"testing"

	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/internal/container/containertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, feed containertest.Feed) {
	t.Helper()
	root.AppContainer = containertest.New(t, feed)
	t.Cleanup(func() { root.AppContainer = nil })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	feedDate = ""
	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetArgs(args)
	err := Cmd.Execute()
	return buf.String(), err
}

func TestRatesGet(t *testing.T) {
	tests := []struct {
		currency string
		expected string
	}{
		{currency: "usd", expected: "1 USD = 1350 KRW  (live, 2025-03-14)"},
		{currency: "JPY", expected: "1 JPY = 9.0512 KRW  (live, 2025-03-14)"},
		{currency: "krw", expected: "1 KRW = 1 KRW"},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			setup(t, containertest.DefaultFeed())
			out, err := run(t, "get", tt.currency)
			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
		})
	}
}

func TestRatesGetOfflineFallsBack(t *testing.T) {
	setup(t, containertest.Feed{Err: errors.New("connection refused")})

	out, err := run(t, "get", "EUR")
	require.NoError(t, err)
	assert.Contains(t, out, "1 EUR = 1450 KRW  (fallback")
}

func TestRatesGetUnsupported(t *testing.T) {
	setup(t, containertest.DefaultFeed())

	_, err := run(t, "get", "GBP")
	assert.Error(t, err)
}

func TestRatesRefresh(t *testing.T) {
	setup(t, containertest.DefaultFeed())

	out, err := run(t, "refresh")
	require.NoError(t, err)
	for _, s := range []string{"1 KRW = 1 KRW", "1 USD = 1350 KRW", "1 EUR = 1450 KRW", "1 JPY = 9.0512 KRW", "1 CNY = 190 KRW"} {
		assert.Contains(t, out, s)
	}
}

func TestRatesFeed(t *testing.T) {
	setup(t, containertest.DefaultFeed())

	out, err := run(t, "feed", "--date", "2025-03-13")
	require.NoError(t, err)
	assert.Contains(t, out, "JPY(100)")
	assert.Contains(t, out, "per unit 9.0512")
	assert.Contains(t, out, "US Dollar")

	_, err = run(t, "feed", "--date", "yesterday-ish")
	assert.Error(t, err)
}

func TestRatesFeedEmpty(t *testing.T) {
	setup(t, containertest.Feed{})

	out, err := run(t, "feed")
	require.NoError(t, err)
	assert.Contains(t, out, "No rates published for 2025-03-14")
}
