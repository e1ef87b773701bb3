// Package cmd implements the hucha CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hucha/internal/config"
	"hucha/internal/ledger"
	"hucha/internal/log"
	"hucha/internal/store"
)

var (
	flagDataDir string
	flagQuiet   bool
	flagDebug   bool

	// The TUI owns the terminal, so its debug logs stay in the file.
	suppressConsoleLog bool
)

var rootCmd = &cobra.Command{
	Use:   "hucha",
	Short: "Terminal piggy bank",
	Long:  "Track savings toward a goal: stage amounts on a dial, keep a ledger, watch the ring fill.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose logging")
}

// appEnv bundles what every command needs once the data layer is open.
type appEnv struct {
	cfg   config.Config
	log   zerolog.Logger
	store *store.Store
	book  *ledger.Book

	closeLog func()
}

// openEnv loads the config, opens the log file and the database, and
// loads the book. The caller must Close it.
func openEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// The flag outranks HUCHA_DATA_DIR and the config file. Setting the
	// env var keeps every path helper pointed at the same directory.
	if flagDataDir != "" {
		_ = os.Setenv("HUCHA_DATA_DIR", flagDataDir)
	}

	console := flagDebug && !suppressConsoleLog
	logger, closeLog, err := log.Open(config.LogPath(cfg), log.Level(flagQuiet, flagDebug), console)
	if err != nil {
		// A broken log file should not block the piggy bank.
		fmt.Fprintf(os.Stderr, "  warning: %v\n", err)
	}

	st, err := store.Open(config.DBPath(cfg), log.Component(logger, "store"))
	if err != nil {
		closeLog()
		return nil, err
	}

	state, err := st.LoadState()
	if err != nil {
		_ = st.Close()
		closeLog()
		return nil, err
	}

	book := ledger.NewBook(state, st, log.Component(logger, "book"))

	return &appEnv{cfg: cfg, log: logger, store: st, book: book, closeLog: closeLog}, nil
}

func (e *appEnv) Close() {
	_ = e.store.Close()
	e.closeLog()
}
