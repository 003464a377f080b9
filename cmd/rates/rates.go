// Package rates shows exchange rates
package rates

import (
	"fmt"

	"fjacquet/accountbook/cmd/common"
	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/internal/dateutils"
	"fjacquet/accountbook/internal/models"
	"fjacquet/accountbook/internal/ratesource"

	"github.com/spf13/cobra"
)

var feedDate string

// Cmd represents the rates command
var Cmd = &cobra.Command{
	Use:   "rates",
	Short: "Show exchange rates against KRW",
}

var getCmd = &cobra.Command{
	Use:   "get <currency>",
	Short: "Show today's rate for one currency",
	Args:  cobra.ExactArgs(1),
	RunE:  getFunc,
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Resolve every supported currency",
	Args:  cobra.NoArgs,
	RunE:  refreshFunc,
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "List the full bank feed for a day",
	Args:  cobra.NoArgs,
	RunE:  feedFunc,
}

func init() {
	feedCmd.Flags().StringVarP(&feedDate, "date", "d", "", "Search date (default today)")
	Cmd.AddCommand(getCmd, refreshCmd, feedCmd)
}

func printRate(cmd *cobra.Command, rate models.ExchangeRate) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s  1 %s = %s KRW  (%s, %s)\n",
		rate.Currency.Flag(), rate.Currency, rate.Currency,
		common.FormatRate(rate.Rate), rate.Origin, dateutils.ToISODate(rate.AsOf))
}

func getFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	currency, err := models.ParseCurrency(args[0])
	if err != nil {
		return err
	}
	rate, err := c.GetRates().GetRate(common.Context(cmd), currency)
	if err != nil {
		return err
	}
	printRate(cmd, rate)
	return nil
}

func refreshFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	rates, err := c.GetRates().RefreshAll(common.Context(cmd))
	if err != nil {
		return err
	}
	for _, rate := range rates {
		printRate(cmd, rate)
	}
	return nil
}

func feedFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	date, err := common.ParseDateFlag(feedDate, c.Now())
	if err != nil {
		return err
	}

	quotes, err := c.GetFetcher().Fetch(common.Context(cmd), date)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(quotes) == 0 {
		fmt.Fprintf(out, "No rates published for %s\n", dateutils.ToISODate(date))
		return nil
	}

	for _, q := range ratesource.SortByPriority(quotes) {
		rate, err := ratesource.QuoteRate(q)
		if err != nil {
			fmt.Fprintf(out, "%-10s %-24s %s (unparseable)\n", q.CurrencyUnit, q.CurrencyName, q.DealBaseRate)
			continue
		}
		fmt.Fprintf(out, "%-10s %-24s %14s  per unit %s\n", q.CurrencyUnit, q.CurrencyName, q.DealBaseRate, common.FormatRate(rate))
	}
	return nil
}
