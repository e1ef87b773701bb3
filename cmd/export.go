package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"hucha/internal/ledger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the savings state to other formats",
	Long: `Export the savings state for backup or further processing.

Available formats:
  json    Target, saved amount and entries in their stored shape
  csv     One entry per row

Examples:
  hucha export json                 Print JSON to stdout
  hucha export json -o backup.json  Write JSON to a file
  hucha export csv > entries.csv    Print CSV to stdout`,
}

var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export the savings state as JSON",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runExport(exportJSON)
	},
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export the ledger as CSV",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runExport(exportCSV)
	},
}

var exportOutput string

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExport(encode func(*ledger.Book) ([]byte, error)) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	data, err := encode(env.book)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", exportOutput, err)
	}
	fmt.Printf("  Wrote %s (%d bytes)\n", exportOutput, len(data))
	return nil
}

func exportJSON(book *ledger.Book) ([]byte, error) {
	encoded, err := ledger.EncodeEntries(book.Entries())
	if err != nil {
		return nil, err
	}

	doc := struct {
		Target   int64           `json:"target"`
		Progress int64           `json:"progress"`
		Entries  json.RawMessage `json:"entries"`
	}{
		Target:   book.Target(),
		Progress: book.Progress(),
		Entries:  json.RawMessage(encoded),
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func exportCSV(book *ledger.Book) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "amount", "label"}); err != nil {
		return nil, err
	}
	for _, e := range book.Entries() {
		date := ""
		if !e.At.IsZero() {
			date = e.At.UTC().Format(time.RFC3339)
		}
		if err := w.Write([]string{date, strconv.FormatInt(e.Amount, 10), e.Label}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
