package components

import (
	"strings"

	"hucha/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Dial zones, used to resolve mouse hits on the dial row.
const (
	DialZoneNone = iota
	DialZoneMinusLarge
	DialZoneMinusSmall
	DialZoneTrack
	DialZonePlusSmall
	DialZonePlusLarge
)

// Dial button captions. Width math in segments depends on these.
const (
	dialBtnMinusLarge = "[-10k]"
	dialBtnMinusSmall = "[-1k]"
	dialBtnPlusSmall  = "[+1k]"
	dialBtnPlusLarge  = "[+10k]"
)

// DialRow renders the pending-amount control as one line: coarse and
// fine nudge buttons around a draggable track with a knob positioned
// by the staged amount.
type DialRow struct {
	Width    int
	Pending  int64
	Ceiling  int64
	Dragging bool
}

type dialSegment struct {
	zone  int
	width int
}

const dialRowMinWidth = 40

// segments lays out the row for the current width. View and ZoneAt
// both consume this, so rendering and hit testing cannot drift.
func (d DialRow) segments() []dialSegment {
	w := d.Width
	if w < dialRowMinWidth {
		w = dialRowMinWidth
	}

	fixed := 1 + // indent
		len(dialBtnMinusLarge) + 1 +
		len(dialBtnMinusSmall) + 1 +
		1 + len(dialBtnPlusSmall) +
		1 + len(dialBtnPlusLarge)
	trackW := w - fixed
	if trackW < 9 {
		trackW = 9
	}

	return []dialSegment{
		{DialZoneNone, 1},
		{DialZoneMinusLarge, len(dialBtnMinusLarge)},
		{DialZoneNone, 1},
		{DialZoneMinusSmall, len(dialBtnMinusSmall)},
		{DialZoneNone, 1},
		{DialZoneTrack, trackW},
		{DialZoneNone, 1},
		{DialZonePlusSmall, len(dialBtnPlusSmall)},
		{DialZoneNone, 1},
		{DialZonePlusLarge, len(dialBtnPlusLarge)},
	}
}

// ZoneAt returns the dial zone at column x on the dial line.
func (d DialRow) ZoneAt(x int) int {
	pos := 0
	for _, seg := range d.segments() {
		if x >= pos && x < pos+seg.width {
			return seg.zone
		}
		pos += seg.width
	}
	return DialZoneNone
}

// knobIndex returns the knob's position within a track of innerW cells.
func (d DialRow) knobIndex(innerW int) int {
	if innerW <= 1 || d.Ceiling <= 0 {
		return 0
	}
	t := float64(d.Pending) / float64(d.Ceiling)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	idx := int(t*float64(innerW-1) + 0.5)
	if idx > innerW-1 {
		idx = innerW - 1
	}
	return idx
}

// View renders the dial line.
func (d DialRow) View() string {
	t := theme.Active

	btnStyle := lipgloss.NewStyle().Foreground(t.Accent)
	arrowStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	doneStyle := lipgloss.NewStyle().Foreground(t.Accent)
	restStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	knobStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	if d.Dragging {
		knobStyle = lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
	}

	var b strings.Builder
	for _, seg := range d.segments() {
		switch seg.zone {
		case DialZoneNone:
			b.WriteString(strings.Repeat(" ", seg.width))
		case DialZoneMinusLarge:
			b.WriteString(btnStyle.Render(dialBtnMinusLarge))
		case DialZoneMinusSmall:
			b.WriteString(btnStyle.Render(dialBtnMinusSmall))
		case DialZonePlusSmall:
			b.WriteString(btnStyle.Render(dialBtnPlusSmall))
		case DialZonePlusLarge:
			b.WriteString(btnStyle.Render(dialBtnPlusLarge))
		case DialZoneTrack:
			innerW := seg.width - 2 // arrows at both ends
			knob := d.knobIndex(innerW)
			b.WriteString(arrowStyle.Render("◄"))
			if knob > 0 {
				b.WriteString(doneStyle.Render(strings.Repeat("━", knob)))
			}
			b.WriteString(knobStyle.Render("●"))
			if rest := innerW - knob - 1; rest > 0 {
				b.WriteString(restStyle.Render(strings.Repeat("━", rest)))
			}
			b.WriteString(arrowStyle.Render("►"))
		}
	}
	return b.String()
}
