package convert

import (
	"bytes"
	"testing"

	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/internal/container/containertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root.AppContainer = containertest.New(t, containertest.DefaultFeed())
	t.Cleanup(func() { root.AppContainer = nil })

	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetArgs(args)
	err := Cmd.Execute()
	return buf.String(), err
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "to canonical", args: []string{"100", "usd", "krw"}, expected: "$100.00 = ₩135,000"},
		{name: "from canonical", args: []string{"10000", "KRW", "USD"}, expected: "₩10,000 = $7.41"},
		{name: "cross rate", args: []string{"1000", "JPY", "USD"}, expected: "¥1,000 = $6.70"},
		{name: "same currency", args: []string{"12.5", "EUR", "eur"}, expected: "€12.50 = €12.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad amount", args: []string{"ten", "USD", "KRW"}},
		{name: "unsupported source", args: []string{"10", "GBP", "KRW"}},
		{name: "unsupported target", args: []string{"10", "USD", "CHF"}},
		{name: "missing target", args: []string{"10", "USD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
