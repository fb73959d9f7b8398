package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/csvcodec"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all transactions to CSV",
	Long:  "Export all transactions to CSV. Writes finance-tracker-<date>.csv in the current directory unless -o is given; -o - writes to stdout.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output file, or - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	text, err := l.Export()
	if errors.Is(err, csvcodec.ErrNothingToExport) {
		fmt.Fprintln(os.Stderr, "  No data to export")
		return nil
	}
	if err != nil {
		return err
	}

	if flagExportOut == "-" {
		fmt.Println(text)
		return nil
	}

	path := exportPath(flagExportOut)
	if err := os.WriteFile(path, []byte(text+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Printf("  Exported to %s\n", path)
	return nil
}
