// Package tui provides the interactive Bubble Tea screen for hucha.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"hucha/internal/config"
	"hucha/internal/dial"
	"hucha/internal/ledger"
	"hucha/internal/tui/components"
	"hucha/internal/tui/theme"
)

// Tab indices, in tab bar order.
const (
	tabSavings = iota
	tabLedger
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 110

	headerHeight    = 1
	statusBarHeight = 1
	metricRowHeight = 5 // metric card: 2 border + 3 content lines
	dialCardHeight  = 6 // content card: 2 border + title + 3 body lines

	minContentHeight = 5
	minDonutRows     = 7
)

// App is the root Bubble Tea model.
type App struct {
	book *ledger.Book
	cfg  config.Config
	log  zerolog.Logger

	dial *dial.Dial

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Status bar feedback for the last action
	flash    string
	flashErr bool

	// Per-tab state
	ledgerTab   ledgerState
	settingsTab settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp creates the TUI model around an already-loaded book.
func NewApp(book *ledger.Book, cfg config.Config, logger zerolog.Logger) App {
	theme.SetActive(config.Theme(cfg))

	d := dial.New(book.Target())
	d.SetStepWidth(cfg.Dial.DragCellsPerStep)

	a := App{
		book:      book,
		cfg:       cfg,
		log:       logger,
		dial:      d,
		needSetup: !config.Exists(),
	}
	if a.needSetup {
		a.setupForm = newSetupForm(book.Target(), cfg, &a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) || a.width < minTerminalWidth {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Text inputs and confirm prompts intercept all keys
		if a.activeTab == tabSettings && a.settingsTab.editing {
			return a.updateSettingsInput(msg)
		}
		if a.activeTab == tabLedger && a.ledgerTab.mode != ledgerModeList {
			return a.updateLedgerModal(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Per-tab keybindings
		switch a.activeTab {
		case tabSavings:
			if next, cmd, handled := a.updateSavingsKeys(key); handled {
				return next, cmd
			}
		case tabLedger:
			if next, cmd, handled := a.updateLedgerKeys(key); handled {
				return next, cmd
			}
		case tabSettings:
			if next, cmd, handled := a.updateSettingsKeys(key); handled {
				return next, cmd
			}
		}

		// Any key the settings handler did not claim stands the armed
		// reset prompt down.
		a.settingsTab.resetArmed = false

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// ─── Mouse Support ──────────────────────────────────────────────

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		switch a.activeTab {
		case tabSavings:
			a.dial.Nudge(dial.StepAmount)
		case tabLedger:
			if a.ledgerTab.cursor > 0 {
				a.ledgerTab.cursor--
			}
		}
		return a, nil

	case tea.MouseButtonWheelDown:
		switch a.activeTab {
		case tabSavings:
			a.dial.Nudge(-dial.StepAmount)
		case tabLedger:
			if a.ledgerTab.cursor < len(a.book.Entries())-1 {
				a.ledgerTab.cursor++
			}
		}
		return a, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if msg.Y < headerHeight {
			if tab := components.TabAtX(msg.X, a.activeTab); tab >= 0 {
				a.activeTab = tab
			}
			return a, nil
		}
		if a.activeTab == tabSavings {
			a.savingsPress(msg.X, msg.Y)
		}
		return a, nil

	case tea.MouseActionMotion:
		// Once a drag is open the pointer owns the dial, wherever it goes.
		if a.activeTab == tabSavings && a.dial.Dragging() {
			a.dial.Drag(msg.X)
		}
		return a, nil

	case tea.MouseActionRelease:
		a.dial.EndDrag()
		return a, nil
	}

	return a, nil
}

func (a *App) savingsPress(x, y int) {
	g := a.savingsGeom()
	if y != g.dialY {
		return
	}
	switch g.row.ZoneAt(x - g.dialX) {
	case components.DialZoneMinusLarge:
		a.dial.Nudge(-dial.LargeStepAmount)
	case components.DialZoneMinusSmall:
		a.dial.Nudge(-dial.StepAmount)
	case components.DialZonePlusSmall:
		a.dial.Nudge(dial.StepAmount)
	case components.DialZonePlusLarge:
		a.dial.Nudge(dial.LargeStepAmount)
	case components.DialZoneTrack:
		a.dial.StartDrag(x)
	}
}

// ─── Setup Form ─────────────────────────────────────────────────

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		if err := a.applySetup(); err != nil {
			a.log.Error().Err(err).Msg("first-run setup failed")
			a.setFlash(err.Error(), true)
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// ─── View ───────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) currency() string {
	return a.cfg.General.Currency
}

func (a *App) setFlash(msg string, isErr bool) {
	a.flash = msg
	a.flashErr = isErr
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  hucha needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"s l x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move in the ledger"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Savings"))
	b.WriteString("\n")
	dialBindings := []struct{ key, desc string }{
		{"+ / -", "Stage ±1,000"},
		{"pgup/pgdn", "Stage ±10,000"},
		{"wheel", "Turn the dial"},
		{"drag", "Slide the dial knob"},
		{"Enter", "Add staged amount"},
	}
	for _, bind := range dialBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Ledger"))
	b.WriteString("\n")
	ledgerBindings := []struct{ key, desc string }{
		{"e / Enter", "Edit entry"},
		{"d", "Delete entry"},
		{"C", "Clear all entries"},
		{"Esc", "Back / Cancel"},
	}
	for _, bind := range ledgerBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.statusHints(), a.flash, a.flashErr)

	contentH := h - headerHeight - statusBarHeight
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabSavings:
		content = a.renderSavingsTab(cw, contentH)
	case tabLedger:
		content = a.renderLedgerTab(cw, contentH)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)

	// Content stays left-aligned so mouse hitboxes do not shift with
	// the terminal width.
	content = lipgloss.Place(w, contentH, lipgloss.Left, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHints() string {
	switch a.activeTab {
	case tabLedger:
		return "[j/k] move  [e]dit  [d]elete  [C]lear  [?]help  [q]uit"
	case tabSettings:
		return "[j/k] move  [Enter] edit  [?]help  [q]uit"
	default:
		return "[+/-] stage  [Enter] add  [?]help  [q]uit"
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
