package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/tui"
)

var flagClearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all transactions and settings",
	Long:  "Delete all transactions and settings. The theme preference is kept. This cannot be undone.",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagClearYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	if !flagClearYes {
		ok := false
		form := tui.NewConfirmForm("Delete ALL data? This cannot be undone.", &ok)
		if err := form.Run(); err != nil || !ok {
			fmt.Println("  Cancelled.")
			return nil
		}
	}

	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := l.ClearAll(); err != nil {
		return err
	}
	fmt.Println("  All data has been cleared")
	return nil
}
