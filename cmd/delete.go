package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hucha/internal/cli"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <entry#>",
	Short: "Remove a ledger entry",
	Long:  "Remove the numbered entry (see hucha entries) and roll its amount out of the saved total.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var deleteYes bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("entry number must be a number, got %q", args[0])
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
	removed := entries[index]

	cur := env.cfg.General.Currency
	what := cli.FormatSigned(removed.Amount, cur)
	if removed.Label != "" {
		what += fmt.Sprintf(" (%s)", removed.Label)
	}

	if !deleteYes {
		fmt.Printf("\n  Delete entry %d, %s from %s? [y/N] ", num, what, cli.FormatDate(removed.At))

		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if s := strings.TrimSpace(answer); s != "y" && s != "Y" {
			fmt.Println("  Nothing deleted.")
			return nil
		}
	}

	if err := env.book.Delete(index); err != nil {
		return err
	}

	fmt.Printf("\n  Deleted %s\n", what)
	fmt.Printf("  Saved: %s of %s\n\n",
		cli.FormatAmount(env.book.Progress(), cur),
		cli.FormatAmount(env.book.Target(), cur),
	)

	return nil
}
