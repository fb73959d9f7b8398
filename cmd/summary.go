package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals, budget status and recent transactions",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	txs, err := l.List()
	if err != nil {
		return err
	}
	settings, err := l.Settings()
	if err != nil {
		return err
	}
	cur := settings.Currency

	if len(txs) == 0 {
		fmt.Println("\n  No transactions yet.")
		fmt.Println("  Add one with `fintrack add` or import a CSV with `fintrack import`.")
		return nil
	}

	totals := pipeline.Totals(txs)

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINANCE SUMMARY"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Income", cli.FormatMoney(totals.Income, cur)},
			{"Total Expenses", cli.FormatMoney(totals.Expenses, cur)},
			{"---"},
			{"Balance", cli.FormatMoney(totals.Balance, cur)},
			{"Transactions", cli.FormatNumber(int64(len(txs)))},
		},
	}))

	if status, ok := pipeline.Budget(settings, txs, time.Now()); ok {
		fmt.Println()
		fmt.Printf("  Monthly budget  %s\n", cli.RenderBudgetBar(status, 30))
		fmt.Printf("  Spent %s of %s, %s remaining\n",
			cli.FormatMoney(status.Spent, cur),
			cli.FormatMoney(status.Budget, cur),
			cli.FormatMoney(status.Remaining, cur),
		)
	}

	recent := pipeline.Recent(txs, cfg.General.Recent)
	rows := make([][]string, 0, len(recent))
	for _, t := range recent {
		rows = append(rows, []string{
			t.Date.String(),
			t.Category,
			cli.RenderAmount(t.Type, cli.FormatSigned(t, cur)),
			cli.Truncate(t.Description, 30),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     "Recent Transactions",
		Headers:   []string{"Date", "Category", "Amount", "Description"},
		Rows:      rows,
		LeftAlign: []int{1, 3},
	}))

	return nil
}
