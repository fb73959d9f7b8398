package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Import transactions from a CSV export",
	Long: "Import transactions from a CSV file in the export format. The first line is\n" +
		"treated as a header. Rows with an unknown type or a bad date or amount are skipped.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}

	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := l.Import(string(data))
	if err != nil {
		return err
	}

	if res.Imported == 0 {
		fmt.Println("  No valid transactions found in file")
	} else {
		fmt.Printf("  Successfully imported %d transactions\n", res.Imported)
	}
	if res.Skipped > 0 {
		fmt.Printf("  Skipped %d malformed rows\n", res.Skipped)
	}
	return nil
}
