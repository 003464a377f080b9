// Package export writes the ledger to a CSV file
package export

import (
	"fmt"

	"fjacquet/accountbook/cmd/root"
	csvexport "fjacquet/accountbook/internal/export"
	"fjacquet/accountbook/internal/statistics"

	"github.com/spf13/cobra"
)

var period string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export transactions to CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&period, "period", "p", "", "Only export the current week, month or year")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	txns := c.GetLedger().Transactions()
	if period != "" {
		p, err := statistics.ParsePeriod(period)
		if err != nil {
			return err
		}
		txns = statistics.FilterPeriod(txns, p, c.Now())
	}

	if err := csvexport.WriteCSVFile(args[0], txns, c.GetConfig().DelimiterRune(), c.GetLogger()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transaction(s) to %s\n", len(txns), args[0])
	return nil
}
