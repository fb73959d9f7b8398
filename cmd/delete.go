package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/tui"
)

var flagDeleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a transaction",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&flagDeleteYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	txs, err := l.List()
	if err != nil {
		return err
	}
	id, err := resolveID(txs, args[0])
	if err != nil {
		return err
	}
	tx, err := l.Get(id)
	if err != nil {
		return err
	}
	cur, err := currency(l)
	if err != nil {
		return err
	}

	if !flagDeleteYes {
		ok := false
		title := fmt.Sprintf("Delete %s %s on %s?", tx.Category, cli.FormatSigned(tx, cur), tx.Date)
		if err := tui.NewConfirmForm(title, &ok).Run(); err != nil || !ok {
			fmt.Println("  Cancelled.")
			return nil
		}
	}

	left, err := l.Delete(id)
	if err != nil {
		return err
	}
	fmt.Printf("  Deleted [%s]. %d transactions left.\n", shortID(id), len(left))
	return nil
}
