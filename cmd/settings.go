package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/validate"
)

var flagBudgetUnset bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change currency and monthly budget",
	RunE:  runSettings,
}

var currencyCmd = &cobra.Command{
	Use:   "currency <symbol>",
	Short: "Set the currency symbol shown with amounts",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetCurrency,
}

var budgetCmd = &cobra.Command{
	Use:   "budget [amount]",
	Short: "Set or clear the monthly expense budget",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSetBudget,
}

func init() {
	budgetCmd.Flags().BoolVar(&flagBudgetUnset, "unset", false, "Remove the budget")
	settingsCmd.AddCommand(currencyCmd, budgetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(_ *cobra.Command, _ []string) error {
	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	s, err := l.Settings()
	if err != nil {
		return err
	}
	th, err := l.Theme()
	if err != nil {
		return err
	}

	fmt.Printf("  Currency:       %s\n", s.Currency)
	if s.MonthlyBudget != nil {
		fmt.Printf("  Monthly budget: %s\n", cli.FormatMoney(*s.MonthlyBudget, s.Currency))
	} else {
		fmt.Println("  Monthly budget: not set")
	}
	fmt.Printf("  Theme:          %s\n", th)
	return nil
}

func runSetCurrency(_ *cobra.Command, args []string) error {
	sym := strings.TrimSpace(args[0])
	if sym == "" {
		return fmt.Errorf("currency symbol cannot be empty")
	}

	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	s, err := l.Settings()
	if err != nil {
		return err
	}
	s.Currency = sym
	if err := l.SaveSettings(s); err != nil {
		return err
	}
	fmt.Printf("  Currency set to %s\n", sym)
	return nil
}

func runSetBudget(_ *cobra.Command, args []string) error {
	if !flagBudgetUnset && len(args) == 0 {
		return fmt.Errorf("pass an amount or --unset")
	}

	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	s, err := l.Settings()
	if err != nil {
		return err
	}

	if flagBudgetUnset {
		s.MonthlyBudget = nil
		if err := l.SaveSettings(s); err != nil {
			return err
		}
		fmt.Println("  Monthly budget removed")
		return nil
	}

	amount, ok := validate.ParseAmount(args[0])
	if !ok {
		return validate.ErrInvalidBudget
	}
	s.MonthlyBudget = &amount
	if err := l.SaveSettings(s); err != nil {
		return err
	}
	fmt.Printf("  Monthly budget set to %s\n", cli.FormatMoney(amount, s.Currency))
	return nil
}
