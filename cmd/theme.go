package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/model"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or set the color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(_ *cobra.Command, args []string) error {
	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	current, err := l.Theme()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Printf("  Theme: %s\n", current)
		return nil
	}

	next := current.Toggle()
	if args[0] != "toggle" {
		t, ok := model.ParseTheme(args[0])
		if !ok {
			return fmt.Errorf("unknown theme %q (want light, dark or toggle)", args[0])
		}
		next = t
	}

	if err := l.SaveTheme(next); err != nil {
		return err
	}
	fmt.Printf("  Theme set to %s\n", next)
	return nil
}
