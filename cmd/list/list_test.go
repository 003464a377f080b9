package list

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/internal/container/containertest"
	"fjacquet/accountbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Helper()
	c := containertest.New(t, containertest.DefaultFeed())
	containertest.Seed(t, c, "aaaa1111", 12000, models.ExpenseOf(models.ExpenseFood), "점심 김밥",
		time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))
	containertest.Seed(t, c, "bbbb2222", 3000000, models.IncomeOf(models.IncomeSalary), "3월 월급",
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	containertest.Seed(t, c, "cccc3333", 20000, models.ExpenseOf(models.ExpenseTransport), "taxi home",
		time.Date(2025, 2, 20, 23, 0, 0, 0, time.UTC))
	root.AppContainer = c
	t.Cleanup(func() { root.AppContainer = nil })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	search, kind, period = "", "", ""
	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetArgs(args)
	err := Cmd.Execute()
	return buf.String(), err
}

func TestListNewestFirst(t *testing.T) {
	setup(t)

	out, err := run(t)
	require.NoError(t, err)

	food := strings.Index(out, "aaaa1111")
	salary := strings.Index(out, "bbbb2222")
	taxi := strings.Index(out, "cccc3333")
	require.True(t, food >= 0 && salary >= 0 && taxi >= 0, out)
	assert.Less(t, food, salary)
	assert.Less(t, salary, taxi)
	assert.Contains(t, out, "-₩12,000")
	assert.Contains(t, out, "+₩3,000,000")
	assert.Contains(t, out, "3 transaction(s)")
}

func TestListFilters(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "income only",
			args:     []string{"--kind", "income"},
			contains: []string{"bbbb2222", "1 transaction(s)"},
			excludes: []string{"aaaa1111", "cccc3333"},
		},
		{
			name:     "current month",
			args:     []string{"-p", "month"},
			contains: []string{"aaaa1111", "bbbb2222", "2 transaction(s)"},
			excludes: []string{"cccc3333"},
		},
		{
			name:     "search note",
			args:     []string{"-s", "TAXI"},
			contains: []string{"cccc3333"},
			excludes: []string{"aaaa1111", "bbbb2222"},
		},
		{
			name:     "search category label",
			args:     []string{"-s", "sal"},
			contains: []string{"bbbb2222"},
			excludes: []string{"aaaa1111"},
		},
		{
			name:     "no match",
			args:     []string{"-s", "rent"},
			contains: []string{"No transactions found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t)
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestListInvalidFlags(t *testing.T) {
	setup(t)

	_, err := run(t, "--kind", "transfer")
	assert.Error(t, err)

	_, err = run(t, "--period", "decade")
	assert.Error(t, err)
}
