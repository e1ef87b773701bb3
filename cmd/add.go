package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hucha/internal/cli"
)

var addCmd = &cobra.Command{
	Use:   "add <amount> [label...]",
	Short: "Add a ledger entry",
	Long: `Add an entry to the ledger and move the saved amount by it.

Negative amounts withdraw. Put -- before a negative amount so it is not
read as a flag:

  hucha add 2000 birthday money
  hucha add -- -1500 new tires`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("amount must be a whole number, got %q", args[0])
	}
	// Zero moves nothing, so there is nothing to record.
	if amount == 0 {
		return nil
	}
	label := strings.Join(args[1:], " ")

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	entry, err := env.book.Add(amount, label)
	if err != nil {
		return err
	}

	cur := env.cfg.General.Currency
	what := cli.FormatSigned(entry.Amount, cur)
	if entry.Amount > 0 {
		what = cli.Gain(what)
	} else {
		what = cli.Loss(what)
	}
	if entry.Label != "" {
		what += fmt.Sprintf(" (%s)", entry.Label)
	}

	fmt.Printf("\n  Added %s\n", what)
	fmt.Printf("  Saved: %s of %s (%s)\n\n",
		cli.FormatAmount(env.book.Progress(), cur),
		cli.FormatAmount(env.book.Target(), cur),
		cli.FormatPercent(env.book.Percent()),
	)

	return nil
}
