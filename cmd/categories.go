package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/pipeline"
)

var flagCategoriesDefaults bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Expense breakdown by category",
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&flagCategoriesDefaults, "defaults", false, "List the suggested categories instead")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	if flagCategoriesDefaults {
		for _, typ := range []model.Type{model.TypeIncome, model.TypeExpense} {
			fmt.Printf("\n  %s\n", strings.ToUpper(string(typ)))
			for _, c := range model.DefaultCategories(typ) {
				fmt.Printf("    %s\n", c)
			}
		}
		return nil
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

	stats := pipeline.CategoryBreakdown(txs)
	if len(stats) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSES BY CATEGORY"))
	fmt.Println()

	peak, _ := stats[0].Amount.Float64()
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		amt, _ := s.Amount.Float64()
		rows = append(rows, []string{
			s.Category,
			cli.FormatNumber(int64(s.Count)),
			cli.FormatMoney(s.Amount, cur),
			cli.FormatPercent(s.SharePercent),
			cli.RenderHorizontalBar(amt, peak, 20),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"Category", "Count", "Amount", "Share", ""},
		Rows:      rows,
		LeftAlign: []int{4},
	}))
	return nil
}
