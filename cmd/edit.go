package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hucha/internal/cli"
)

var editCmd = &cobra.Command{
	Use:   "edit <entry#> <amount> [label...]",
	Short: "Rewrite a ledger entry",
	Long: `Rewrite the numbered entry (see hucha entries). The entry keeps its
original date. Omitting the label keeps the existing one; pass an empty
string to clear it.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, args []string) error {
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("entry number must be a number, got %q", args[0])
	}
	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("amount must be a whole number, got %q", args[1])
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	entries := env.book.Entries()
	if num < 1 || num > len(entries) {
		return fmt.Errorf("no entry %d, the ledger has %d entries", num, len(entries))
	}
	index := num - 1

	label := entries[index].Label
	if len(args) > 2 {
		label = strings.Join(args[2:], " ")
	}

	if err := env.book.Edit(index, amount, label); err != nil {
		return err
	}

	cur := env.cfg.General.Currency
	fmt.Printf("\n  Entry %d is now %s", num, cli.FormatSigned(amount, cur))
	if label != "" {
		fmt.Printf(" (%s)", label)
	}
	fmt.Printf("\n  Saved: %s of %s\n\n",
		cli.FormatAmount(env.book.Progress(), cur),
		cli.FormatAmount(env.book.Target(), cur),
	)

	return nil
}
