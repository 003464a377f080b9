// Package remove deletes a transaction
package remove

import (
	"fmt"
	"strings"

	"fjacquet/accountbook/cmd/common"
	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/internal/ledger"

	"github.com/spf13/cobra"
)

// Cmd represents the remove command
var Cmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a transaction by id or unique id prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  removeFunc,
}

func removeFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	id, err := resolveID(c.GetLedger(), args[0])
	if err != nil {
		return err
	}
	tx, err := c.GetLedger().Remove(id)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Removed:")
	common.PrintTransaction(cmd, tx)
	return nil
}

// resolveID accepts the short ids printed by list.
func resolveID(l *ledger.Ledger, prefix string) (string, error) {
	if _, err := l.Get(prefix); err == nil {
		return prefix, nil
	}
	var matches []string
	for _, tx := range l.Transactions() {
		if strings.HasPrefix(tx.ID, prefix) {
			matches = append(matches, tx.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ledger.ErrTransactionNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q matches %d transactions", prefix, len(matches))
	}
}
