package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hucha/internal/cli"
	"hucha/internal/tui/components"
	"hucha/internal/tui/theme"
)

// Ledger tab modes. List is iota (0) so it's the default zero value.
const (
	ledgerModeList = iota
	ledgerModeEditAmount
	ledgerModeEditLabel
	ledgerModeConfirmDelete
	ledgerModeConfirmClear
)

// ledgerState holds the ledger tab state.
type ledgerState struct {
	cursor int
	offset int // scroll offset for the list
	mode   int

	// In-flight edit. The amount stays in its textinput until the save,
	// so tabbing between the fields never loses a half-typed value; esc
	// at either stage discards both fields.
	editIndex   int
	amountInput textinput.Model
	labelInput  textinput.Model
}

func (a App) updateLedgerKeys(key string) (App, tea.Cmd, bool) {
	entries := a.book.Entries()
	ls := &a.ledgerTab

	switch key {
	case "j", "down":
		if ls.cursor < len(entries)-1 {
			ls.cursor++
		}
	case "k", "up":
		if ls.cursor > 0 {
			ls.cursor--
		}
	case "g", "home":
		ls.cursor = 0
	case "G", "end":
		if len(entries) > 0 {
			ls.cursor = len(entries) - 1
		}
	case "e", "enter":
		if len(entries) == 0 {
			return a, nil, true
		}
		return a.startLedgerEdit(), textinput.Blink, true
	case "d":
		if len(entries) == 0 {
			return a, nil, true
		}
		ls.mode = ledgerModeConfirmDelete
	case "C":
		if len(entries) == 0 {
			return a, nil, true
		}
		ls.mode = ledgerModeConfirmClear
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) startLedgerEdit() App {
	ls := &a.ledgerTab
	entry := a.book.Entries()[ls.cursor]

	ls.editIndex = ls.cursor

	ti := textinput.New()
	ti.SetValue(strconv.FormatInt(entry.Amount, 10))
	ti.CharLimit = 12
	ti.Width = 16
	ti.Focus()
	ls.amountInput = ti

	li := textinput.New()
	li.SetValue(entry.Label)
	li.Placeholder = "no label"
	li.CharLimit = 48
	li.Width = 32
	ls.labelInput = li

	ls.mode = ledgerModeEditAmount
	return a
}

// updateLedgerModal handles keys while an edit or a confirm prompt is open.
func (a App) updateLedgerModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ls := &a.ledgerTab

	switch ls.mode {
	case ledgerModeConfirmDelete:
		// Anything but an explicit yes disarms the prompt.
		ls.mode = ledgerModeList
		switch msg.String() {
		case "y", "Y", "enter":
			a.deleteEntry(ls.cursor)
		}
		return a, nil

	case ledgerModeConfirmClear:
		// A second C while armed counts as the confirmation.
		ls.mode = ledgerModeList
		switch msg.String() {
		case "y", "Y", "enter", "C":
			a.clearEntries()
		}
		return a, nil

	case ledgerModeEditAmount:
		switch msg.String() {
		case "enter":
			if _, err := strconv.ParseInt(strings.TrimSpace(ls.amountInput.Value()), 10, 64); err != nil {
				a.setFlash("amount must be a whole number", true)
				return a, nil
			}
			ls.mode = ledgerModeEditLabel
			ls.amountInput.Blur()
			return a, ls.labelInput.Focus()
		case "tab":
			ls.mode = ledgerModeEditLabel
			ls.amountInput.Blur()
			return a, ls.labelInput.Focus()
		case "esc":
			ls.mode = ledgerModeList
			return a, nil
		default:
			var cmd tea.Cmd
			ls.amountInput, cmd = ls.amountInput.Update(msg)
			return a, cmd
		}

	case ledgerModeEditLabel:
		switch msg.String() {
		case "enter":
			v, err := strconv.ParseInt(strings.TrimSpace(ls.amountInput.Value()), 10, 64)
			if err != nil {
				// The amount field can still hold garbage when the user
				// tabbed past it. Send them back instead of saving.
				a.setFlash("amount must be a whole number", true)
				ls.mode = ledgerModeEditAmount
				ls.labelInput.Blur()
				return a, ls.amountInput.Focus()
			}
			ls.mode = ledgerModeList
			a.commitLedgerEdit(v)
			return a, nil
		case "tab", "shift+tab":
			ls.mode = ledgerModeEditAmount
			ls.labelInput.Blur()
			return a, ls.amountInput.Focus()
		case "esc":
			ls.mode = ledgerModeList
			return a, nil
		default:
			var cmd tea.Cmd
			ls.labelInput, cmd = ls.labelInput.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

func (a *App) commitLedgerEdit(amount int64) {
	ls := &a.ledgerTab
	label := strings.TrimSpace(ls.labelInput.Value())

	if err := a.book.Edit(ls.editIndex, amount, label); err != nil {
		a.setFlash(err.Error(), true)
		return
	}
	a.setFlash("entry updated", false)
}

func (a *App) deleteEntry(index int) {
	entries := a.book.Entries()
	if index < 0 || index >= len(entries) {
		return
	}
	removed := entries[index]

	if err := a.book.Delete(index); err != nil {
		a.setFlash(err.Error(), true)
		return
	}

	if n := len(a.book.Entries()); a.ledgerTab.cursor >= n && a.ledgerTab.cursor > 0 {
		a.ledgerTab.cursor = n - 1
	}
	a.setFlash(fmt.Sprintf("deleted %s", cli.FormatSigned(removed.Amount, a.currency())), false)
}

func (a *App) clearEntries() {
	if err := a.book.Clear(); err != nil {
		a.setFlash(err.Error(), true)
		return
	}
	a.ledgerTab.cursor = 0
	a.setFlash("ledger cleared", false)
}

func (a App) renderLedgerTab(cw, contentH int) string {
	t := theme.Active
	entries := a.book.Entries()
	ls := a.ledgerTab
	innerW := components.CardInnerWidth(cw)

	if len(entries) == 0 {
		body := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No entries yet. Stage an amount on the Savings tab and press Enter.")
		return components.ContentCard("Ledger", body, cw)
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red)
	promptStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)

	var body strings.Builder

	// Summary line with a balance-over-time sparkline.
	summary := fmt.Sprintf("%d entries · balance %s  ", len(entries),
		cli.FormatAmount(a.book.Progress(), a.currency()))
	spark := components.Sparkline(a.book.State().BalanceHistory(innerW-lipgloss.Width(summary)), t.Accent)
	body.WriteString(mutedStyle.Render(summary))
	body.WriteString(spark)
	body.WriteString("\n\n")

	labelW := innerW - 40
	if labelW < 8 {
		labelW = 8
	}

	body.WriteString(headerStyle.Render(fmt.Sprintf(" %-4s %-17s %12s  %s", "#", "DATE", "AMOUNT", "LABEL")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	visible := contentH - 9 // card chrome + summary + header + footer
	if visible < 3 {
		visible = 3
	}

	offset := ls.offset
	if ls.cursor < offset {
		offset = ls.cursor
	}
	if ls.cursor >= offset+visible {
		offset = ls.cursor - visible + 1
	}

	end := offset + visible
	if end > len(entries) {
		end = len(entries)
	}

	for i := offset; i < end; i++ {
		e := entries[i]

		if i == ls.cursor && (ls.mode == ledgerModeEditAmount || ls.mode == ledgerModeEditLabel) {
			body.WriteString(a.renderLedgerEditRow())
			body.WriteString("\n")
			continue
		}

		amountStr := cli.FormatSigned(e.Amount, a.currency())
		label := truncStr(e.Label, labelW)

		if i == ls.cursor {
			line := fmt.Sprintf(" %-4d %-17s %12s  %s", i+1, cli.FormatDate(e.At), amountStr, label)
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				line += strings.Repeat(" ", pad)
			}
			body.WriteString(selectedStyle.Render(truncStr(line, innerW)))
		} else {
			amtStyle := gainStyle
			if e.Amount < 0 {
				amtStyle = lossStyle
			}
			body.WriteString(rowStyle.Render(fmt.Sprintf(" %-4d %-17s ", i+1, cli.FormatDate(e.At))))
			body.WriteString(amtStyle.Render(fmt.Sprintf("%12s", amountStr)))
			body.WriteString(mutedStyle.Render("  " + label))
		}
		body.WriteString("\n")
	}

	if end < len(entries) {
		body.WriteString(mutedStyle.Render(fmt.Sprintf(" … %d more", len(entries)-end)))
		body.WriteString("\n")
	}

	// Footer: confirm prompt or contextual hint.
	body.WriteString("\n")
	switch ls.mode {
	case ledgerModeConfirmDelete:
		e := entries[ls.cursor]
		body.WriteString(promptStyle.Render(fmt.Sprintf(" delete entry #%d (%s)? [y/N]",
			ls.cursor+1, cli.FormatSigned(e.Amount, a.currency()))))
	case ledgerModeConfirmClear:
		body.WriteString(promptStyle.Render(fmt.Sprintf(" clear all %d entries and reset progress? [C/y/N]", len(entries))))
	case ledgerModeEditAmount:
		body.WriteString(mutedStyle.Render(" editing amount · [Enter] next  [Tab] label  [Esc] cancel"))
	case ledgerModeEditLabel:
		body.WriteString(mutedStyle.Render(" editing label · [Enter] save  [Tab] amount  [Esc] cancel"))
	default:
		body.WriteString(mutedStyle.Render(" [e] edit  [d] delete  [C] clear all"))
	}

	return components.ContentCard("Ledger", body.String(), cw)
}

func (a App) renderLedgerEditRow() string {
	t := theme.Active
	ls := a.ledgerTab

	activeStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	amountLabel := "amount:"
	labelLabel := "label:"
	if ls.mode == ledgerModeEditAmount {
		amountLabel = activeStyle.Render(amountLabel)
		labelLabel = dimStyle.Render(labelLabel)
	} else {
		amountLabel = dimStyle.Render(amountLabel)
		labelLabel = activeStyle.Render(labelLabel)
	}

	return fmt.Sprintf(" ❯ %s %s  %s %s", amountLabel, ls.amountInput.View(), labelLabel, ls.labelInput.View())
}
