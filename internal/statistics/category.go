package statistics

import (
	"sort"

	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryAmount is one category's total.
type CategoryAmount struct {
	Category models.Category
	Amount   decimal.Decimal
	Count    int
}

// CategoryShare is a CategoryAmount with its percentage of the total.
type CategoryShare struct {
	CategoryAmount
	Percent float64
}

// ByCategory sums transactions of kind per category. Categories without
// transactions are absent. The result is sorted by amount descending, ties
// in enumeration order.
func ByCategory(txns []models.Transaction, kind models.Kind) []CategoryAmount {
	sums := make(map[models.Category]*CategoryAmount)
	for _, tx := range txns {
		if tx.Kind() != kind {
			continue
		}
		ca, ok := sums[tx.Category]
		if !ok {
			ca = &CategoryAmount{Category: tx.Category, Amount: decimal.Zero}
			sums[tx.Category] = ca
		}
		ca.Amount = ca.Amount.Add(tx.Amount)
		ca.Count++
	}

	out := make([]CategoryAmount, 0, len(sums))
	for _, ca := range sums {
		out = append(out, *ca)
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Amount.Cmp(out[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return out[i].Category.Ordinal() < out[j].Category.Ordinal()
	})
	return out
}

// Shares adds each entry's percentage of the summed amount. All shares are
// zero when the total is zero.
func Shares(amounts []CategoryAmount) []CategoryShare {
	sum := decimal.Zero
	for _, ca := range amounts {
		sum = sum.Add(ca.Amount)
	}

	out := make([]CategoryShare, len(amounts))
	for i, ca := range amounts {
		out[i] = CategoryShare{CategoryAmount: ca}
		if sum.IsPositive() {
			out[i].Percent = ca.Amount.Div(sum).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
	}
	return out
}
