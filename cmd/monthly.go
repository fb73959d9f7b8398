package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/pipeline"
)

var flagMonths int

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Income and expenses for recent months",
	RunE:  runMonthly,
}

func init() {
	monthlyCmd.Flags().IntVarP(&flagMonths, "months", "n", 0, "Number of months to show (default from config)")
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
	months := flagMonths
	if months <= 0 {
		months = cfg.General.Months
	}

	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	txs, err := l.List()
	if err != nil {
		return err
	}
	cur, err := currency(l)
	if err != nil {
		return err
	}

	series := pipeline.MonthlySeries(txs, months, time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY TRENDS  Last %d months", len(series))))
	fmt.Println()

	incomes := make([]float64, len(series))
	expenses := make([]float64, len(series))
	rows := make([][]string, 0, len(series))
	for i, m := range series {
		incomes[i], _ = m.Income.Float64()
		expenses[i], _ = m.Expenses.Float64()
		rows = append(rows, []string{
			m.Label,
			cli.FormatMoney(m.Income, cur),
			cli.FormatMoney(m.Expenses, cur),
			cli.FormatMoney(m.Net(), cur),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Income", "Expenses", "Net"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Printf("  Income    %s\n", cli.RenderSparkline(incomes))
	fmt.Printf("  Expenses  %s\n", cli.RenderSparkline(expenses))
	return nil
}
