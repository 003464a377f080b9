package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func newBackends(t *testing.T) map[string]Backend {
	t.Helper()
	dir := t.TempDir()

	fileBackend, err := NewFileBackend(filepath.Join(dir, "data"))
	require.NoError(t, err)

	sqliteBackend, err := NewSQLiteBackend(filepath.Join(dir, "db", "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteBackend.Close() })

	return map[string]Backend{
		"file":   fileBackend,
		"sqlite": sqliteBackend,
		"memory": NewMemoryBackend(),
	}
}

func TestBackends_ReadWrite(t *testing.T) {
	for name, backend := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := backend.Read(KeyGoals)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, backend.Write(KeyGoals, []byte("first")))
			require.NoError(t, backend.Write(KeyGoals, []byte("second")))

			data, err := backend.Read(KeyGoals)
			require.NoError(t, err)
			assert.Equal(t, "second", string(data))
		})
	}
}

func TestSQLiteBackend_KVSchemaUpgrade(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "db", "ledger.db")

	tests := []struct {
		name  string
		write bool
	}{
		{name: "fresh database", write: true},
		{name: "reopen is a no-op"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, err := NewSQLiteBackend(dbPath)
			require.NoError(t, err)
			defer func() { _ = backend.Close() }()

			assert.Equal(t, uint(1), backend.SchemaVersion())
			if tt.write {
				require.NoError(t, backend.Write(KeyGoals, []byte("kept")))
			}
			data, err := backend.Read(KeyGoals)
			require.NoError(t, err)
			assert.Equal(t, "kept", string(data))
		})
	}
}

func TestFileBackend_RejectsUnsafeKeys(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, backend.Write("../escape", []byte("x")))
	_, err = backend.Read("a/b")
	assert.Error(t, err)
}

func TestFileBackend_WritesYAMLFile(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)

	s := New(backend, nil)
	require.NoError(t, s.SaveBudget(decimal.NewFromInt(1500000)))

	data, err := os.ReadFile(filepath.Join(dir, KeyMonthlyBudget+".yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "monthly_limit")
}

func TestMemoryBackend_StoresCopies(t *testing.T) {
	backend := NewMemoryBackend()
	data := []byte("abc")
	require.NoError(t, backend.Write("k", data))
	data[0] = 'z'

	got, err := backend.Read("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'z'
	again, _ := backend.Read("k")
	assert.Equal(t, "abc", string(again))
}

func sampleTransactions(t *testing.T) []models.Transaction {
	t.Helper()
	date := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	return []models.Transaction{
		models.NewTransactionBuilder().
			WithID("a").
			WithAmountFromString("12000", models.KRW).
			WithCategory(models.ExpenseOf(models.ExpenseFood)).
			WithNote("lunch").
			WithDate(date).
			MustBuild(),
		models.NewTransactionBuilder().
			WithID("b").
			WithAmountFromString("20.5", models.USD).
			WithExchangeRate(decimal.RequireFromString("1352.4")).
			WithCategory(models.IncomeOf(models.IncomeRefund)).
			WithDate(date.Add(time.Hour)).
			MustBuild(),
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, backend := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(backend, logging.NewMockLogger())

			txns := sampleTransactions(t)
			require.NoError(t, s.SaveTransactions(txns))
			loaded, err := s.LoadTransactions()
			require.NoError(t, err)
			require.Len(t, loaded, 2)
			for i := range txns {
				assert.Equal(t, txns[i].ID, loaded[i].ID)
				assert.Equal(t, txns[i].Category, loaded[i].Category)
				assert.Equal(t, txns[i].Currency, loaded[i].Currency)
				assert.True(t, txns[i].Amount.Equal(loaded[i].Amount))
				assert.True(t, txns[i].ExchangeRate.Equal(loaded[i].ExchangeRate))
				assert.True(t, txns[i].Date.Equal(loaded[i].Date))
			}

			require.NoError(t, s.SaveBudget(decimal.NewFromInt(2000000)))
			limit, err := s.LoadBudget()
			require.NoError(t, err)
			assert.Equal(t, "2000000", limit.String())

			budgets := []models.CategoryBudget{
				{Category: models.ExpenseOf(models.ExpenseFood), Limit: decimal.NewFromInt(400000)},
			}
			require.NoError(t, s.SaveCategoryBudgets(budgets))
			loadedBudgets, err := s.LoadCategoryBudgets()
			require.NoError(t, err)
			require.Len(t, loadedBudgets, 1)
			assert.Equal(t, budgets[0].Category, loadedBudgets[0].Category)
			assert.True(t, budgets[0].Limit.Equal(loadedBudgets[0].Limit))

			goals := []models.Goal{{
				ID:            "g1",
				Title:         "Trip",
				TargetAmount:  decimal.NewFromInt(3000000),
				CurrentAmount: decimal.NewFromInt(500000),
				Deadline:      time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
				Type:          models.GoalSavings,
			}}
			require.NoError(t, s.SaveGoals(goals))
			loadedGoals, err := s.LoadGoals()
			require.NoError(t, err)
			require.Len(t, loadedGoals, 1)
			assert.Equal(t, "Trip", loadedGoals[0].Title)
			assert.Equal(t, models.GoalSavings, loadedGoals[0].Type)
		})
	}
}

func TestStore_MissingDocumentsLoadEmpty(t *testing.T) {
	s := New(NewMemoryBackend(), nil)

	txns, err := s.LoadTransactions()
	require.NoError(t, err)
	assert.Empty(t, txns)

	limit, err := s.LoadBudget()
	require.NoError(t, err)
	assert.True(t, limit.IsZero())

	budgets, err := s.LoadCategoryBudgets()
	require.NoError(t, err)
	assert.Empty(t, budgets)

	goals, err := s.LoadGoals()
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestStore_EmptyListRoundTrip(t *testing.T) {
	s := New(NewMemoryBackend(), nil)
	require.NoError(t, s.SaveTransactions(nil))

	txns, err := s.LoadTransactions()
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestStore_Errors(t *testing.T) {
	backend := NewMockBackend()
	s := New(backend, nil)

	backend.FailWrites(errors.New("disk full"))
	err := s.SaveGoals(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	backend.FailWrites(nil)
	require.NoError(t, backend.MemoryBackend.Write(KeyTransactions, []byte("{not: [valid")))
	_, err = s.LoadTransactions()
	assert.Error(t, err)

	backend.ReadErr = errors.New("io error")
	_, err = s.LoadGoals()
	assert.Error(t, err)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()

	testFile := filepath.Join(dir, "test.yaml")
	writeFile(t, testFile, "test content")

	file, err := FindConfigFile(testFile)
	assert.NoError(t, err)
	assert.Equal(t, testFile, file)

	_, err = FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestLoadKeywordRules(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		file := filepath.Join(dir, "rules.yaml")
		writeFile(t, file, `rules:
  - category: expense:food
    keywords: ["bakery", "ramen"]
  - category: income:salary
    keywords: ["payroll"]
`)
		rules, err := LoadKeywordRules(file)
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, models.ExpenseOf(models.ExpenseFood), rules[0].Category)
		assert.Equal(t, []string{"bakery", "ramen"}, rules[0].Keywords)
		assert.Equal(t, models.IncomeOf(models.IncomeSalary), rules[1].Category)
	})

	t.Run("empty name means none", func(t *testing.T) {
		rules, err := LoadKeywordRules("")
		assert.NoError(t, err)
		assert.Nil(t, rules)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadKeywordRules(filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown category", func(t *testing.T) {
		file := filepath.Join(dir, "bad.yaml")
		writeFile(t, file, "rules:\n  - category: expense:yachts\n    keywords: [boat]\n")
		_, err := LoadKeywordRules(file)
		assert.Error(t, err)
	})

	t.Run("rule without keywords", func(t *testing.T) {
		file := filepath.Join(dir, "nokeywords.yaml")
		writeFile(t, file, "rules:\n  - category: expense:food\n")
		_, err := LoadKeywordRules(file)
		assert.Error(t, err)
	})
}
