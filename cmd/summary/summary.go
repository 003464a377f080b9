// Package summary prints totals, budget consumption and advice
package summary

import (
	"fmt"

	"fjacquet/accountbook/cmd/common"
	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/internal/budget"
	"fjacquet/accountbook/internal/currencyutils"
	"fjacquet/accountbook/internal/statistics"

	"github.com/spf13/cobra"
)

var period string

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, expense, balance and budget status",
	Args:  cobra.NoArgs,
	RunE:  summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&period, "period", "p", "monthly", "Period to summarize (weekly, monthly, yearly)")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	p, err := statistics.ParsePeriod(period)
	if err != nil {
		return err
	}

	all := c.GetLedger().Transactions()
	s := statistics.Summarize(statistics.FilterPeriod(all, p, c.Now()))

	// Limits are monthly, whatever period is displayed.
	month := statistics.FilterPeriod(all, statistics.PeriodMonthly, c.Now())
	b := c.GetBudgets().Budget()
	report := budget.Evaluate(month, b)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Period:   %s\n", p)
	fmt.Fprintf(out, "Income:   %s (%d)\n", common.FormatCanonical(s.Income), s.IncomeCount)
	fmt.Fprintf(out, "Expense:  %s (%d)\n", common.FormatCanonical(s.Expense), s.ExpenseCount)
	fmt.Fprintf(out, "Balance:  %s\n", common.FormatCanonical(s.Balance))

	if report.Overall.Configured {
		fmt.Fprintf(out, "Budget:   %s of %s used this month (%s, %s)\n",
			common.FormatCanonical(report.Overall.Spent),
			common.FormatCanonical(report.Overall.Limit),
			currencyutils.FormatPercent(report.Overall.Percentage),
			report.Overall.Band)
	} else {
		fmt.Fprintln(out, "Budget:   not configured")
	}
	for _, cs := range report.Exceeded() {
		fmt.Fprintf(out, "Over budget: %s %s\n", cs.Category.Info().Label, currencyutils.FormatPercent(cs.Percentage))
	}

	fmt.Fprintln(out, c.GetAdvisor().GenerateAdvice(report.Overall.Spent, b.MonthlyLimit))
	return nil
}
