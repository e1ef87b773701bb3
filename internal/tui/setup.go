package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"hucha/internal/config"
	"hucha/internal/tui/theme"
)

// setupValues receives the first-run form answers.
type setupValues struct {
	target   string
	theme    string
	currency string
}

// newSetupForm builds the first-run wizard. It runs when no config file
// exists yet and writes both the config and the savings target.
func newSetupForm(currentTarget int64, cfg config.Config, vals *setupValues) *huh.Form {
	vals.target = strconv.FormatInt(currentTarget, 10)
	vals.theme = config.Theme(cfg)
	vals.currency = cfg.General.Currency

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to hucha!").
				Description("Your terminal piggy bank. A few questions and you're saving."),
			huh.NewInput().
				Title("Savings target").
				Description("The amount you are saving toward.").
				Value(&vals.target).
				Validate(validateTargetInput),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&vals.theme),
			huh.NewInput().
				Title("Currency symbol").
				CharLimit(8).
				Value(&vals.currency).
				Validate(validateCurrencyInput),
		),
	)
}

func validateTargetInput(s string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return errors.New("enter a whole number")
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func validateCurrencyInput(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be empty")
	}
	return nil
}

// applySetup persists the completed form: target into the savings
// database, theme and currency into the config file.
func (a *App) applySetup() error {
	if v, err := strconv.ParseInt(strings.TrimSpace(a.setupVals.target), 10, 64); err == nil {
		if err := a.book.SetTarget(v); err != nil {
			return err
		}
		a.dial.Retarget(a.book.Target())
	}

	cfg := a.cfg
	if a.setupVals.theme != "" {
		cfg.Appearance.Theme = a.setupVals.theme
	}
	if c := strings.TrimSpace(a.setupVals.currency); c != "" {
		cfg.General.Currency = c
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	a.cfg = cfg
	theme.SetActive(config.Theme(cfg))
	return nil
}
