// Package statistics aggregates transaction snapshots into totals,
// category breakdowns and day or week buckets. Every function is pure and
// only reads the slice it is given.
package statistics

import (
	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
)

// Summary holds the headline figures of a snapshot.
type Summary struct {
	Income       decimal.Decimal
	Expense      decimal.Decimal
	Balance      decimal.Decimal
	IncomeCount  int
	ExpenseCount int
}

// TotalIncome sums the canonical amount of income transactions.
func TotalIncome(txns []models.Transaction) decimal.Decimal {
	return total(txns, models.KindIncome)
}

// TotalExpense sums the canonical amount of expense transactions as a
// non-negative magnitude.
func TotalExpense(txns []models.Transaction) decimal.Decimal {
	return total(txns, models.KindExpense)
}

// Balance is income minus expense.
func Balance(txns []models.Transaction) decimal.Decimal {
	return TotalIncome(txns).Sub(TotalExpense(txns))
}

// Summarize computes all totals in one pass.
func Summarize(txns []models.Transaction) Summary {
	s := Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, tx := range txns {
		switch tx.Kind() {
		case models.KindIncome:
			s.Income = s.Income.Add(tx.Amount)
			s.IncomeCount++
		case models.KindExpense:
			s.Expense = s.Expense.Add(tx.Amount)
			s.ExpenseCount++
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}

// FilterKind returns the transactions of the given kind.
func FilterKind(txns []models.Transaction, kind models.Kind) []models.Transaction {
	var out []models.Transaction
	for _, tx := range txns {
		if tx.Kind() == kind {
			out = append(out, tx)
		}
	}
	return out
}

func total(txns []models.Transaction, kind models.Kind) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txns {
		if tx.Kind() == kind {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}
