package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	next := cfg
	if next.General.Currency == "" {
		next.General.Currency = config.LocaleCurrency()
	}
	if next.General.DataDir == "" {
		next.General.DataDir = config.DefaultDataDir()
	}
	recent := strconv.Itoa(next.General.Recent)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to fintrack!").
				Description("A few questions and you're set. Run `fintrack setup` anytime to change them."),
			huh.NewInput().
				Title("Default currency symbol").
				Description("Used until you set one with `fintrack settings currency`.").
				Value(&next.General.Currency),
			huh.NewInput().
				Title("Data directory").
				Value(&next.General.DataDir),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Months shown in trends").
				Options(
					huh.NewOption("3 months", 3),
					huh.NewOption("6 months", 6),
					huh.NewOption("12 months", 12),
				).
				Value(&next.General.Months),
			huh.NewInput().
				Title("Recent transactions in summary").
				Validate(func(s string) error {
					if n, err := strconv.Atoi(s); err != nil || n <= 0 {
						return errors.New("enter a whole number greater than 0")
					}
					return nil
				}).
				Value(&recent),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&next.Log.Level),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled. Nothing saved.")
			return nil
		}
		return err
	}
	next.General.Recent, _ = strconv.Atoi(recent)

	if err := config.Save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `fintrack setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
