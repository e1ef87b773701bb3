package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hucha/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show savings progress and recent entries",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	book := env.book
	cur := env.cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("HUCHA"))
	fmt.Println()

	fmt.Printf("  %s\n", cli.RenderGoalBar(book.Progress(), book.Target(), 30, cur))
	if book.Target() > 0 && book.Progress() >= book.Target() {
		fmt.Printf("  %s\n", cli.Gain("Goal reached!"))
	}
	fmt.Println()

	rows := [][]string{
		{"Saved", cli.FormatAmount(book.Progress(), cur)},
		{"Target", cli.FormatAmount(book.Target(), cur)},
		{"Remaining", cli.FormatAmount(book.Remaining(), cur)},
		{"Complete", cli.FormatPercent(book.Percent())},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Amount"},
		Rows:    rows,
	}))

	entries := book.Entries()
	if len(entries) == 0 {
		fmt.Println()
		fmt.Println("  " + cli.Muted("No entries yet. Run `hucha add <amount>` or `hucha tui` to get saving."))
		fmt.Println()
		return nil
	}

	show := entries
	if len(show) > 5 {
		show = show[:5]
	}

	entryRows := make([][]string, 0, len(show))
	for i, e := range show {
		entryRows = append(entryRows, []string{
			fmt.Sprintf("%d", i+1),
			cli.FormatDate(e.At),
			cli.FormatSigned(e.Amount, cur),
			e.Label,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Recent entries (%d of %d)", len(show), len(entries)),
		Headers: []string{"#", "Date", "Amount", "Label"},
		Rows:    entryRows,
	}))

	if history := book.State().BalanceHistory(40); len(history) > 1 {
		fmt.Printf("  %s %s\n", cli.Muted("trend"), cli.RenderSparkline(history))
	}
	fmt.Println()

	return nil
}
