// Package add records a new transaction
package add

import (
	"fmt"

	"fjacquet/accountbook/cmd/common"
	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/internal/ledger"
	"fjacquet/accountbook/internal/models"

	"github.com/spf13/cobra"
)

var (
	amount   string
	currency string
	category string
	kind     string
	note     string
	date     string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income or expense transaction",
	Long: `Record a transaction. Foreign amounts are converted to KRW with today's
rate, which is stored with the transaction and never recomputed.
When --category is omitted the category is suggested from the note.`,
	Args: cobra.NoArgs,
	RunE: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount in the original currency")
	Cmd.Flags().StringVarP(&currency, "currency", "c", "", "Currency code (KRW, USD, EUR, JPY, CNY)")
	Cmd.Flags().StringVarP(&category, "category", "g", "", "Category key, e.g. food or income:salary")
	Cmd.Flags().StringVarP(&kind, "kind", "k", "expense", "Transaction kind (expense or income)")
	Cmd.Flags().StringVarP(&note, "note", "n", "", "Free-text note")
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Transaction date (default now)")
	_ = Cmd.MarkFlagRequired("amount")
}

func addFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	k, err := models.ParseKind(kind)
	if err != nil {
		return err
	}
	when, err := common.ParseDateFlag(date, c.Now())
	if err != nil {
		return err
	}
	cur := currency
	if cur == "" {
		cur = string(c.GetConfig().DefaultCurrency())
	}

	tx, err := c.GetRecorder().Record(common.Context(cmd), ledger.Entry{
		Amount:   amount,
		Currency: cur,
		Category: category,
		Kind:     k,
		Note:     note,
		Date:     when,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n", tx.ID)
	common.PrintTransaction(cmd, tx)
	return nil
}
