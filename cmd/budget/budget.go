// Package budget manages the monthly and per-category limits
package budget

import (
	"fmt"

	"fjacquet/accountbook/cmd/common"
	"fjacquet/accountbook/cmd/root"
	tracker "fjacquet/accountbook/internal/budget"
	"fjacquet/accountbook/internal/currencyutils"
	"fjacquet/accountbook/internal/models"
	"fjacquet/accountbook/internal/statistics"

	"github.com/spf13/cobra"
)

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Show or change budget limits",
	Long: `Show or change the monthly budget and per-category limits.
A limit of 0 means no limit is configured.`,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show this month's budget consumption",
	Args:  cobra.NoArgs,
	RunE:  showFunc,
}

var setCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set the overall monthly limit (0 disables it)",
	Args:  cobra.ExactArgs(1),
	RunE:  setFunc,
}

var categoryCmd = &cobra.Command{
	Use:   "category <name> <amount>",
	Short: "Set the monthly limit of an expense category",
	Args:  cobra.ExactArgs(2),
	RunE:  categoryFunc,
}

var clearCmd = &cobra.Command{
	Use:   "clear <name>",
	Short: "Remove the limit of an expense category",
	Args:  cobra.ExactArgs(1),
	RunE:  clearFunc,
}

func init() {
	Cmd.AddCommand(showCmd, setCmd, categoryCmd, clearCmd)
}

func showFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	txns := statistics.FilterPeriod(c.GetLedger().Transactions(), statistics.PeriodMonthly, c.Now())
	report := tracker.Evaluate(txns, c.GetBudgets().Budget())
	out := cmd.OutOrStdout()

	if report.Overall.Configured {
		fmt.Fprintf(out, "Monthly: %s / %s  %s  %s  remaining %s\n",
			common.FormatCanonical(report.Overall.Spent),
			common.FormatCanonical(report.Overall.Limit),
			currencyutils.FormatPercent(report.Overall.Percentage),
			report.Overall.Band,
			common.FormatCanonical(report.Overall.Remaining))
	} else {
		fmt.Fprintf(out, "Monthly: %s spent, no limit configured\n", common.FormatCanonical(report.Overall.Spent))
	}

	for _, cs := range report.Categories {
		info := cs.Category.Info()
		fmt.Fprintf(out, "  %s %-14s %s / %s  %s  %s\n", info.Icon, info.Label,
			common.FormatCanonical(cs.Spent),
			common.FormatCanonical(cs.Limit),
			currencyutils.FormatPercent(cs.Percentage),
			cs.Band)
	}
	return nil
}

func setFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	limit, err := common.ParseAmountArg(args[0])
	if err != nil {
		return err
	}
	if err := c.GetBudgets().SetMonthlyLimit(limit); err != nil {
		return err
	}
	if limit.IsZero() {
		fmt.Fprintln(cmd.OutOrStdout(), "Monthly limit cleared")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Monthly limit set to %s\n", common.FormatCanonical(limit))
	return nil
}

func categoryFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	category, err := models.ParseExpenseCategory(args[0])
	if err != nil {
		return err
	}
	limit, err := common.ParseAmountArg(args[1])
	if err != nil {
		return err
	}
	if err := c.GetBudgets().SetCategoryLimit(category, limit); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s limit set to %s\n", category.Info().Label, common.FormatCanonical(limit))
	return nil
}

func clearFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	category, err := models.ParseExpenseCategory(args[0])
	if err != nil {
		return err
	}
	if err := c.GetBudgets().ClearCategoryLimit(category); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s limit cleared\n", category.Info().Label)
	return nil
}
