package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hucha/internal/cli"
)

var targetCmd = &cobra.Command{
	Use:   "target [amount]",
	Short: "Show or set the savings target",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTarget,
}

func init() {
	rootCmd.AddCommand(targetCmd)
}

func runTarget(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	cur := env.cfg.General.Currency

	if len(args) == 0 {
		fmt.Printf("\n  Target: %s\n", cli.FormatAmount(env.book.Target(), cur))
		fmt.Printf("  Saved:  %s (%s)\n\n",
			cli.FormatAmount(env.book.Progress(), cur),
			cli.FormatPercent(env.book.Percent()),
		)
		return nil
	}

	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("target must be a whole number, got %q", args[0])
	}
	if amount < 0 {
		return fmt.Errorf("target must not be negative")
	}

	if err := env.book.SetTarget(amount); err != nil {
		return err
	}

	fmt.Printf("\n  Target set to %s. Saved so far: %s (%s).\n\n",
		cli.FormatAmount(env.book.Target(), cur),
		cli.FormatAmount(env.book.Progress(), cur),
		cli.FormatPercent(env.book.Percent()),
	)

	return nil
}
