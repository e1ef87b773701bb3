package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hucha/internal/cli"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List ledger entries, newest first",
	RunE:  runEntries,
}

var entriesLimit int

func init() {
	entriesCmd.Flags().IntVarP(&entriesLimit, "limit", "l", 20, "Number of entries to show (0 for all)")
	rootCmd.AddCommand(entriesCmd)
}

func runEntries(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	entries := env.book.Entries()
	if len(entries) == 0 {
		fmt.Println("\n  No entries yet.")
		return nil
	}

	cur := env.cfg.General.Currency

	show := entries
	if entriesLimit > 0 && len(show) > entriesLimit {
		show = show[:entriesLimit]
	}

	var net int64
	rows := make([][]string, 0, len(show)+2)
	for i, e := range show {
		net += e.Amount
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			cli.FormatDate(e.At),
			cli.FormatSigned(e.Amount, cur),
			e.Label,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "net", cli.FormatSigned(net, cur), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Ledger (%d of %d entries)", len(show), len(entries)),
		Headers: []string{"#", "Date", "Amount", "Label"},
		Rows:    rows,
	}))
	fmt.Println("\n  " + cli.Muted("Edit with `hucha edit <#> <amount> [label]`, remove with `hucha delete <#>`."))
	fmt.Println()

	return nil
}
