// Package convert converts an amount between supported currencies
package convert

import (
	"fmt"

	"fjacquet/accountbook/cmd/common"
	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert <amount> <from> <to>",
	Short: "Convert an amount between currencies at today's rates",
	Args:  cobra.ExactArgs(3),
	RunE:  convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	amount, err := common.ParseAmountArg(args[0])
	if err != nil {
		return err
	}
	from, err := models.ParseCurrency(args[1])
	if err != nil {
		return err
	}
	to, err := models.ParseCurrency(args[2])
	if err != nil {
		return err
	}

	converted, err := c.GetRates().ConvertMoney(common.Context(cmd), models.NewMoney(amount, from), to)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n",
		common.FormatMoney(models.NewMoney(amount, from)), common.FormatMoney(converted))
	return nil
}
