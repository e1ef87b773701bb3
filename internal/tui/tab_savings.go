package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hucha/internal/cli"
	"hucha/internal/dial"
	"hucha/internal/tui/components"
	"hucha/internal/tui/theme"
)

// savingsLayout pins down where the dial row lands on screen. Rendering
// and mouse handling both go through it so hitboxes cannot drift from
// what is drawn.
type savingsLayout struct {
	row   components.DialRow
	dialX int // screen column of the dial row's first cell
	dialY int // screen row of the dial line
}

func (a App) savingsGeom() savingsLayout {
	return savingsLayout{
		row: components.DialRow{
			Width:    components.CardInnerWidth(a.contentWidth()),
			Pending:  a.dial.Pending(),
			Ceiling:  a.dial.Ceiling(),
			Dragging: a.dial.Dragging(),
		},
		dialX: 2, // card border + padding
		dialY: headerHeight + metricRowHeight + 2,
	}
}

func (a App) updateSavingsKeys(key string) (App, tea.Cmd, bool) {
	switch key {
	case "+", "=", "up":
		a.dial.Nudge(dial.StepAmount)
	case "-", "_", "down":
		a.dial.Nudge(-dial.StepAmount)
	case "shift+up", "pgup":
		a.dial.Nudge(dial.LargeStepAmount)
	case "shift+down", "pgdown":
		a.dial.Nudge(-dial.LargeStepAmount)
	case "enter":
		a.commitStaged()
	default:
		return a, nil, false
	}
	return a, nil, true
}

// commitStaged books the staged amount as a new entry. On a save
// failure the staged amount stays on the dial so nothing is lost.
func (a *App) commitStaged() {
	amount := a.dial.Pending()
	if amount == 0 {
		a.setFlash("nothing staged", false)
		return
	}

	if _, err := a.book.Add(amount, ""); err != nil {
		a.setFlash(err.Error(), true)
		return
	}

	a.dial.Commit()
	a.setFlash(fmt.Sprintf("added %s", cli.FormatSigned(amount, a.currency())), false)
}

func (a App) renderSavingsTab(cw, contentH int) string {
	t := theme.Active
	cur := a.currency()

	saved := a.book.Progress()
	target := a.book.Target()
	remaining := a.book.Remaining()
	pct := a.book.Percent()

	savedDelta := cli.FormatPercent(pct) + " of goal"
	if saved >= target && target > 0 {
		savedDelta = "goal reached"
	}
	remainingDelta := "to go"
	if remaining == 0 {
		remainingDelta = "all done"
	}

	metrics := components.MetricCardRow([]struct{ Label, Value, Delta string }{
		{Label: "Saved", Value: cli.FormatAmount(saved, cur), Delta: savedDelta},
		{Label: "Target", Value: cli.FormatAmount(target, cur), Delta: fmt.Sprintf("%d entries", len(a.book.Entries()))},
		{Label: "Remaining", Value: cli.FormatAmount(remaining, cur), Delta: remainingDelta},
	}, cw)

	geom := a.savingsGeom()

	pendingStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)
	mutedStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	dialBody := geom.row.View() + "\n" +
		" staged " + pendingStyle.Render(cli.FormatSigned(a.dial.Pending(), cur)) + "\n" +
		mutedStyle.Render(" Enter adds it to the stash")

	dialCard := components.ContentCard("Stage an amount", dialBody, cw)

	sections := []string{metrics, dialCard}

	// The gauge takes whatever height is left after a short recent-entries
	// list. When the terminal is too short for both, the list goes first.
	avail := contentH - metricRowHeight - dialCardHeight

	recentRows := len(a.book.Entries())
	if recentRows > 3 {
		recentRows = 3
	}
	recentH := 0
	if recentRows > 0 {
		recentH = recentRows + 3
	}

	gaugeInterior := avail - 3 - recentH
	if gaugeInterior < 2 {
		recentH = 0
		gaugeInterior = avail - 3
	}

	if gaugeInterior >= 2 {
		sections = append(sections, components.ContentCard("Progress", a.renderGauge(cw, gaugeInterior), cw))
	}
	if recentH > 0 {
		sections = append(sections, components.ContentCard("Recent entries", a.renderRecentEntries(recentRows, cw), cw))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderRecentEntries lists the n newest entries, display only. The
// ledger tab is where they are edited.
func (a App) renderRecentEntries(n, cw int) string {
	t := theme.Active
	entries := a.book.Entries()
	if n > len(entries) {
		n = len(entries)
	}
	innerW := components.CardInnerWidth(cw)

	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	labelW := innerW - 33
	if labelW < 8 {
		labelW = 8
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		e := entries[i]
		amtStyle := gainStyle
		if e.Amount < 0 {
			amtStyle = lossStyle
		}
		fmt.Fprintf(&b, " %s %s  %s",
			dateStyle.Render(fmt.Sprintf("%-17s", cli.FormatDate(e.At))),
			amtStyle.Render(fmt.Sprintf("%12s", cli.FormatSigned(e.Amount, a.currency()))),
			labelStyle.Render(truncStr(e.Label, labelW)))
		if i < n-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderGauge draws the radial progress ring when the card interior is
// tall enough, otherwise a one-line bar.
func (a App) renderGauge(cw, interior int) string {
	cur := a.currency()
	pct := a.book.Percent()
	innerW := components.CardInnerWidth(cw)

	rows := interior
	if rows > innerW/2 {
		rows = innerW / 2
	}

	if rows >= minDonutRows {
		center := []string{
			cli.FormatPercent(pct),
			"of " + cli.FormatAmount(a.book.Target(), cur),
		}
		donut := components.Donut(pct, center, rows)
		body := centerBlock(donut, innerW)
		return padHeight(body, interior)
	}

	summary := fmt.Sprintf("%s of %s",
		cli.FormatAmount(a.book.Progress(), cur),
		cli.FormatAmount(a.book.Target(), cur))

	body := components.GoalBar(pct, innerW) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render(" "+summary)

	return padHeight(body, interior)
}

// centerBlock indents every line of a block so it sits centered in width w.
func centerBlock(block string, w int) string {
	lines := strings.Split(block, "\n")
	if len(lines) == 0 {
		return block
	}

	pad := (w - lipgloss.Width(lines[0])) / 2
	if pad <= 0 {
		return block
	}

	indent := strings.Repeat(" ", pad)
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
