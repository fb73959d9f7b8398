package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/pipeline"
)

var (
	flagListType     string
	flagListCategory string
	flagListMonth    string
	flagListLimit    int
	flagListJSON     bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List transactions, newest first",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListType, "type", "t", "", "Only income or expense")
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Only this category")
	listCmd.Flags().StringVar(&flagListMonth, "month", "", "Only this month (YYYY-MM)")
	listCmd.Flags().IntVarP(&flagListLimit, "limit", "n", 0, "Show at most n transactions (0 = all)")
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	f := model.Filter{Category: flagListCategory, Month: flagListMonth}
	if flagListType != "" {
		typ, ok := model.ParseType(flagListType)
		if !ok {
			return fmt.Errorf("unknown type %q (want income or expense)", flagListType)
		}
		f.Type = typ
	}
	if flagListMonth != "" {
		if _, _, err := pipeline.ParseMonth(flagListMonth); err != nil {
			return err
		}
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

	shown := pipeline.SortByDateDesc(pipeline.Filter(txs, f))
	if flagListLimit > 0 {
		shown = pipeline.Recent(shown, flagListLimit)
	}

	if flagListJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(shown)
	}

	if len(shown) == 0 {
		fmt.Println("\n  No transactions found.")
		return nil
	}

	title := "TRANSACTIONS"
	if flagListMonth != "" {
		title += "  " + cli.FormatMonth(flagListMonth)
	}
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := make([][]string, 0, len(shown))
	for _, t := range shown {
		rows = append(rows, []string{
			shortID(t.ID),
			t.Date.String(),
			string(t.Type),
			t.Category,
			cli.RenderAmount(t.Type, cli.FormatSigned(t, cur)),
			cli.Truncate(t.Description, 40),
		})
	}
	totals := pipeline.Totals(shown)
	rows = append(rows, []string{"---"}, []string{
		"", "", "", "Net", cli.FormatMoney(totals.Balance, cur), "",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"ID", "Date", "Type", "Category", "Amount", "Description"},
		Rows:      rows,
		LeftAlign: []int{1, 2, 3, 5},
	}))
	return nil
}
