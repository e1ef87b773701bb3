package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hucha/internal/cli"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all entries and reset progress to zero",
	RunE:  runClear,
}

var clearYes bool

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	entries := env.book.Entries()
	cur := env.cfg.General.Currency

	if len(entries) == 0 && env.book.Progress() == 0 {
		fmt.Println("\n  The ledger is already empty.")
		return nil
	}

	if !clearYes {
		fmt.Printf("\n  This removes %d entries and resets %s of progress. The target stays.\n",
			len(entries), cli.FormatAmount(env.book.Progress(), cur))
		fmt.Print("  Type yes to confirm: ")

		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Println("  Nothing cleared.")
			return nil
		}
	}

	if err := env.book.Clear(); err != nil {
		return err
	}

	fmt.Printf("\n  Cleared. Target still %s.\n\n", cli.FormatAmount(env.book.Target(), cur))
	return nil
}
