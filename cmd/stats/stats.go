// Package stats prints category breakdowns and time series
package stats

import (
	"fmt"

	"fjacquet/accountbook/cmd/common"
	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/internal/currencyutils"
	"fjacquet/accountbook/internal/dateutils"
	"fjacquet/accountbook/internal/models"
	"fjacquet/accountbook/internal/statistics"

	"github.com/spf13/cobra"
)

var (
	kind   string
	period string
	window int
	weekly bool
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show spending or income by category and over time",
	Long: `Show the category breakdown for the selected period and a daily series
over the last --window days (or weekly buckets with --weekly).`,
	Args: cobra.NoArgs,
	RunE: statsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&kind, "kind", "k", "expense", "Transaction kind (expense or income)")
	Cmd.Flags().StringVarP(&period, "period", "p", "monthly", "Breakdown period (weekly, monthly, yearly)")
	Cmd.Flags().IntVarP(&window, "window", "w", 0, "Series window in days, or weeks with --weekly (default stats.window_days)")
	Cmd.Flags().BoolVar(&weekly, "weekly", false, "Bucket the series by week")
}

func statsFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	k, err := models.ParseKind(kind)
	if err != nil {
		return err
	}
	p, err := statistics.ParsePeriod(period)
	if err != nil {
		return err
	}
	w := window
	if w <= 0 {
		w = c.GetConfig().Stats.WindowDays
	}

	now := c.Now()
	all := c.GetLedger().Transactions()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s by category (%s)\n", k, p)
	shares := statistics.Shares(statistics.ByCategory(statistics.FilterPeriod(all, p, now), k))
	if len(shares) == 0 {
		fmt.Fprintln(out, "  no data")
	}
	for _, s := range shares {
		info := s.Category.Info()
		fmt.Fprintf(out, "  %s %-14s %14s %7s\n", info.Icon, info.Label,
			common.FormatCanonical(s.Amount), currencyutils.FormatPercent(s.Percent))
	}

	var series []statistics.DayAmount
	if weekly {
		fmt.Fprintf(out, "Weekly series (%d weeks)\n", w)
		series = statistics.WeeklySeries(all, k, w, now)
	} else {
		fmt.Fprintf(out, "Daily series (%d days)\n", w)
		series = statistics.DailySeries(all, k, w, now)
	}
	if len(series) == 0 {
		fmt.Fprintln(out, "  no data")
	}
	for _, d := range series {
		fmt.Fprintf(out, "  %s %14s (%d)\n", dateutils.ToISODate(d.Day), common.FormatCanonical(d.Amount), d.Count)
	}
	return nil
}
