package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hucha/internal/cli"
	"hucha/internal/config"
	"hucha/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	cfg := env.cfg

	fmt.Println()
	fmt.Println("  Welcome to hucha!")
	fmt.Println()

	// 1. Savings target
	fmt.Println("  1. Savings target")
	fmt.Printf("     Current: %s\n", cli.FormatAmount(env.book.Target(), cfg.General.Currency))
	fmt.Print("     New amount (Enter keeps current) > ")
	targetIn, _ := reader.ReadString('\n')
	targetIn = strings.TrimSpace(targetIn)
	if targetIn != "" {
		v, err := strconv.ParseInt(targetIn, 10, 64)
		if err != nil || v < 0 {
			fmt.Println("     Not a whole number, keeping the current target.")
		} else if err := env.book.SetTarget(v); err != nil {
			return err
		}
	}
	fmt.Println()

	// 2. Theme
	fmt.Println("  2. Color theme")
	defaultChoice := 1
	for i, t := range theme.All {
		mark := ""
		if t.Name == cfg.Appearance.Theme {
			mark = " [current]"
			defaultChoice = i + 1
		}
		fmt.Printf("     (%d) %s%s\n", i+1, t.Name, mark)
	}
	fmt.Print("     > ")
	themeIn, _ := reader.ReadString('\n')
	themeIn = strings.TrimSpace(themeIn)
	if choice, err := strconv.Atoi(themeIn); err == nil && choice >= 1 && choice <= len(theme.All) {
		cfg.Appearance.Theme = theme.All[choice-1].Name
	} else if themeIn != "" {
		fmt.Printf("     Keeping %s.\n", theme.All[defaultChoice-1].Name)
	}
	fmt.Println()

	// 3. Currency symbol
	fmt.Println("  3. Currency symbol")
	fmt.Printf("     Current: %s\n", cfg.General.Currency)
	fmt.Print("     New symbol (Enter keeps current) > ")
	curIn, _ := reader.ReadString('\n')
	curIn = strings.TrimSpace(curIn)
	if curIn != "" {
		cfg.General.Currency = curIn
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `hucha tui` to start saving, or `hucha setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
