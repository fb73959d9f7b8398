package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/validate"
)

var (
	flagEditType        string
	flagEditCategory    string
	flagEditAmount      string
	flagEditDate        string
	flagEditDescription string
	flagEditJSON        string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change fields of a transaction",
	Long: "Change fields of a transaction. Only the flags you pass are updated.\n" +
		"The id may be the full ID or the short form shown by `fintrack list`.",
	Example: `  fintrack edit 3f9a0c1d --amount 45.00
  fintrack edit 3f9a0c1d --json '{"category":"🛒 Groceries","description":""}'`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&flagEditType, "type", "t", "", "income or expense")
	editCmd.Flags().StringVarP(&flagEditCategory, "category", "c", "", "Category name")
	editCmd.Flags().StringVarP(&flagEditAmount, "amount", "a", "", "Amount greater than 0")
	editCmd.Flags().StringVar(&flagEditDate, "date", "", "Date as YYYY-MM-DD")
	editCmd.Flags().StringVarP(&flagEditDescription, "description", "m", "", "Note (pass \"\" to clear)")
	editCmd.Flags().StringVar(&flagEditJSON, "json", "", "Patch as a JSON object instead of flags")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	patch, err := editPatch(cmd)
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return fmt.Errorf("nothing to change: pass at least one field flag or --json")
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
	id, err := resolveID(txs, args[0])
	if err != nil {
		return err
	}

	tx, err := l.Update(id, patch)
	if err != nil {
		return err
	}
	cur, err := currency(l)
	if err != nil {
		return err
	}

	fmt.Printf("  Updated [%s] %s %s %s on %s\n",
		shortID(tx.ID), tx.Type, tx.Category, cli.FormatSigned(tx, cur), tx.Date)
	return nil
}

// editPatch builds a patch from --json or from the flags that were set.
func editPatch(cmd *cobra.Command) (model.TransactionPatch, error) {
	if flagEditJSON != "" {
		return model.DecodePatch([]byte(flagEditJSON))
	}

	var p model.TransactionPatch
	changed := cmd.Flags().Changed

	if changed("type") {
		typ, ok := model.ParseType(flagEditType)
		if !ok {
			return p, &validate.Error{Messages: []string{validate.MsgType}}
		}
		p.Type = &typ
	}
	if changed("category") {
		c := strings.TrimSpace(flagEditCategory)
		p.Category = &c
	}
	if changed("amount") {
		amount, ok := validate.ParseAmount(flagEditAmount)
		if !ok {
			return p, &validate.Error{Messages: []string{validate.MsgAmount}}
		}
		p.Amount = &amount
	}
	if changed("date") {
		d, err := model.ParseDate(flagEditDate)
		if err != nil {
			return p, &validate.Error{Messages: []string{validate.MsgDateInvalid}}
		}
		p.Date = &d
	}
	if changed("description") {
		desc := strings.TrimSpace(flagEditDescription)
		p.Description = &desc
	}
	return p, nil
}
