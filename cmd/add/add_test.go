package add

import (
	"bytes"
	"testing"

	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/internal/container"
	"fjacquet/accountbook/internal/container/containertest"
	"fjacquet/accountbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *container.Container {
	t.Helper()
	c := containertest.New(t, containertest.DefaultFeed())
	root.AppContainer = c
	t.Cleanup(func() { root.AppContainer = nil })
	return c
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	amount, currency, category, kind, note, date = "", "", "", "expense", "", ""
	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetArgs(args)
	err := Cmd.Execute()
	return buf.String(), err
}

func TestAddCommand_Metadata(t *testing.T) {
	assert.Equal(t, "add", Cmd.Use)
	for _, name := range []string{"amount", "currency", "category", "kind", "note", "date"} {
		assert.NotNil(t, Cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "a", Cmd.Flags().Lookup("amount").Shorthand)
}

func TestAddCommand_ForeignCurrency(t *testing.T) {
	c := setup(t)

	out, err := run(t, "--amount", "20", "--currency", "USD", "--category", "shopping", "--note", "book", "--date", "2025-03-13")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded")
	assert.Contains(t, out, "₩27,000")

	txns := c.GetLedger().Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, "27000", txns[0].Amount.String())
	assert.Equal(t, 13, txns[0].Date.Day())
}

func TestAddCommand_SuggestsIncomeCategory(t *testing.T) {
	c := setup(t)

	_, err := run(t, "-a", "3,000,000", "-k", "income", "-n", "3월 월급")
	require.NoError(t, err)

	txns := c.GetLedger().Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, models.IncomeOf(models.IncomeSalary), txns[0].Category)
	assert.Equal(t, models.KRW, txns[0].Currency)
}

func TestAddCommand_Errors(t *testing.T) {
	c := setup(t)

	_, err := run(t, "-a", "abc", "-g", "food")
	assert.Error(t, err)
	_, err = run(t, "-a", "10", "-g", "food", "-k", "transfer")
	assert.Error(t, err)
	_, err = run(t, "-a", "10", "-g", "food", "-d", "not a date")
	assert.Error(t, err)

	assert.Equal(t, 0, c.GetLedger().Len())
}
