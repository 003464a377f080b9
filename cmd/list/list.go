// Package list prints ledger transactions
package list

import (
	"fmt"
	"sort"

	"fjacquet/accountbook/cmd/common"
	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/internal/models"
	"fjacquet/accountbook/internal/statistics"

	"github.com/spf13/cobra"
)

var (
	search string
	kind   string
	period string
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, newest first",
	Args:  cobra.NoArgs,
	RunE:  listFunc,
}

func init() {
	Cmd.Flags().StringVarP(&search, "search", "s", "", "Only show transactions whose note or category contains this text")
	Cmd.Flags().StringVarP(&kind, "kind", "k", "", "Only show expense or income transactions")
	Cmd.Flags().StringVarP(&period, "period", "p", "", "Only show the current week, month or year")
}

func listFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	txns := c.GetLedger().Search(search)
	if kind != "" {
		k, err := models.ParseKind(kind)
		if err != nil {
			return err
		}
		txns = statistics.FilterKind(txns, k)
	}
	if period != "" {
		p, err := statistics.ParsePeriod(period)
		if err != nil {
			return err
		}
		txns = statistics.FilterPeriod(txns, p, c.Now())
	}

	if len(txns) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No transactions found.")
		return nil
	}

	sort.SliceStable(txns, func(i, j int) bool { return txns[i].Date.After(txns[j].Date) })
	for _, tx := range txns {
		common.PrintTransaction(cmd, tx)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d transaction(s)\n", len(txns))
	return nil
}
