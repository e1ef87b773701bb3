package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hucha/internal/cli"
	"hucha/internal/config"
	"hucha/internal/tui/components"
	"hucha/internal/tui/theme"
)

const (
	settingsFieldTarget = iota
	settingsFieldTheme
	settingsFieldCurrency
	settingsFieldDragCells
	settingsFieldReset
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed

	// Armed after the first Enter on the reset row. The second Enter
	// clears the ledger; any other key stands down.
	resetArmed bool
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) updateSettingsKeys(key string) (App, tea.Cmd, bool) {
	st := &a.settingsTab

	switch key {
	case "j", "down":
		if st.cursor < settingsFieldCount-1 {
			st.cursor++
		}
		st.saved = false
		st.resetArmed = false
	case "k", "up":
		if st.cursor > 0 {
			st.cursor--
		}
		st.saved = false
		st.resetArmed = false
	case "e", "enter":
		if st.cursor == settingsFieldReset {
			return a.settingsReset()
		}
		return a.settingsStartEdit()
	default:
		return a, nil, false
	}
	return a, nil, true
}

// settingsReset clears the ledger and zeroes progress, leaving the
// target alone. Two Enters in a row are required.
func (a App) settingsReset() (App, tea.Cmd, bool) {
	st := &a.settingsTab
	st.saved = false
	st.saveErr = nil

	if !st.resetArmed {
		st.resetArmed = true
		return a, nil, true
	}
	st.resetArmed = false

	if err := a.book.Clear(); err != nil {
		st.saveErr = err
		return a, nil, true
	}
	a.setFlash("progress reset", false)
	return a, nil, true
}

func (a App) settingsStartEdit() (App, tea.Cmd, bool) {
	a.settingsTab.editing = true
	a.settingsTab.saved = false

	ti := newSettingsInput()

	switch a.settingsTab.cursor {
	case settingsFieldTarget:
		ti.Placeholder = "100000"
		ti.SetValue(strconv.FormatInt(a.book.Target(), 10))
	case settingsFieldTheme:
		ti.Placeholder = themeNames()
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldCurrency:
		ti.Placeholder = "€, $, kr ..."
		ti.SetValue(a.cfg.General.Currency)
	case settingsFieldDragCells:
		ti.Placeholder = "2 (cells of drag per 1,000)"
		ti.SetValue(strconv.Itoa(a.cfg.Dial.DragCellsPerStep))
	}

	ti.Focus()
	a.settingsTab.input = ti
	return a, ti.Cursor.BlinkCmd(), true
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settingsTab.editing = false
		a.settingsTab.saved = a.settingsTab.saveErr == nil
		return a, nil
	case "esc":
		a.settingsTab.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settingsTab.input, cmd = a.settingsTab.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settingsTab.input.Value())
	a.settingsTab.saveErr = nil

	switch a.settingsTab.cursor {

	// The target lives in the savings database, not the config file.
	case settingsFieldTarget:
		v, err := strconv.ParseInt(val, 10, 64)
		if err != nil || v < 0 {
			a.settingsTab.saveErr = fmt.Errorf("target must be a whole number ≥ 0")
			return
		}
		if err := a.book.SetTarget(v); err != nil {
			a.settingsTab.saveErr = err
			return
		}
		a.dial.Retarget(a.book.Target())
		return

	case settingsFieldTheme:
		found := false
		for _, t := range theme.All {
			if t.Name == val {
				found = true
				break
			}
		}
		if !found {
			a.settingsTab.saveErr = fmt.Errorf("unknown theme %q (%s)", val, themeNames())
			return
		}
		a.cfg.Appearance.Theme = val
		theme.SetActive(val)

	case settingsFieldCurrency:
		if val == "" {
			a.settingsTab.saveErr = fmt.Errorf("currency symbol must not be empty")
			return
		}
		a.cfg.General.Currency = val

	case settingsFieldDragCells:
		v, err := strconv.Atoi(val)
		if err != nil || v < 1 {
			a.settingsTab.saveErr = fmt.Errorf("drag cells per step must be ≥ 1")
			return
		}
		a.cfg.Dial.DragCellsPerStep = v
		a.dial.SetStepWidth(v)
	}

	a.settingsTab.saveErr = config.Save(a.cfg)
	if a.settingsTab.saveErr != nil {
		a.log.Error().Err(a.settingsTab.saveErr).Msg("config save failed")
	}
}

func themeNames() string {
	names := make([]string, len(theme.All))
	for i, t := range theme.All {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	resetValue := "clear the ledger, keep the target"
	if a.settingsTab.resetArmed {
		resetValue = "really reset? Enter again confirms"
	}

	fields := []field{
		{"Target", cli.FormatAmount(a.book.Target(), a.currency())},
		{"Theme", a.cfg.Appearance.Theme},
		{"Currency", a.cfg.General.Currency},
		{"Drag cells per step", strconv.Itoa(a.cfg.Dial.DragCellsPerStep)},
		{"Reset progress", resetValue},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settingsTab.editing && i == a.settingsTab.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-20s ", f.label)))
			formBody.WriteString(a.settingsTab.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settingsTab.cursor {
			// Selected row with marker and highlight
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-20s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			if padLen := innerW - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settingsTab.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settingsTab.saveErr)))
	} else if a.settingsTab.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// General info card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Data directory: ") + valueStyle.Render(config.DataDir(a.cfg)) + "\n")
	infoBody.WriteString(labelStyle.Render("Database:       ") + valueStyle.Render(config.DBPath(a.cfg)) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:    ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Log file:       ") + valueStyle.Render(config.LogPath(a.cfg)) + "\n")
	infoBody.WriteString(labelStyle.Render("Entries:        ") + valueStyle.Render(cli.FormatNumber(int64(len(a.book.Entries())))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("About", infoBody.String(), cw))

	return b.String()
}
