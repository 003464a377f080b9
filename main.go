package main

import (
	"fmt"
	"os"

	"fjacquet/accountbook/cmd/add"
	"fjacquet/accountbook/cmd/budget"
	"fjacquet/accountbook/cmd/convert"
	"fjacquet/accountbook/cmd/export"
	"fjacquet/accountbook/cmd/goal"
	"fjacquet/accountbook/cmd/list"
	"fjacquet/accountbook/cmd/rates"
	"fjacquet/accountbook/cmd/remove"
	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/cmd/stats"
	"fjacquet/accountbook/cmd/summary"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(rates.Cmd)
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(goal.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
