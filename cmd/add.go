package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui"
	"github.com/theirongolddev/fintrack/internal/validate"
)

var (
	flagAddType        string
	flagAddCategory    string
	flagAddAmount      string
	flagAddDate        string
	flagAddDescription string
	flagAddInteractive bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income or expense",
	Example: `  fintrack add -t expense -c "🛒 Groceries" -a 42.10 -m "weekly shop"
  fintrack add -i`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddType, "type", "t", "", "income or expense")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category name")
	addCmd.Flags().StringVarP(&flagAddAmount, "amount", "a", "", "Amount greater than 0")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Date as YYYY-MM-DD (default today)")
	addCmd.Flags().StringVarP(&flagAddDescription, "description", "m", "", "Optional note")
	addCmd.Flags().BoolVarP(&flagAddInteractive, "interactive", "i", false, "Fill in the transaction with a form")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	in := model.TransactionInput{
		Type:        flagAddType,
		Category:    flagAddCategory,
		Amount:      flagAddAmount,
		Date:        flagAddDate,
		Description: flagAddDescription,
	}

	now := time.Now()
	if flagAddInteractive {
		if err := tui.NewTransactionForm(&in, now).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("  Cancelled.")
				return nil
			}
			return err
		}
	} else if in.Date == "" {
		in.Date = today()
	}

	nt, err := validate.Parse(in, now)
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			for _, m := range verr.Messages {
				fmt.Printf("  %s\n", m)
			}
		}
		return err
	}

	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	tx, err := l.Add(nt)
	if err != nil {
		return err
	}
	cur, err := currency(l)
	if err != nil {
		return err
	}

	fmt.Printf("  Added %s %s %s on %s [%s]\n",
		tx.Type, tx.Category, cli.RenderAmount(tx.Type, cli.FormatSigned(tx, cur)), tx.Date, shortID(tx.ID))
	return nil
}
