package components

import (
	"fmt"
	"math"
	"strings"

	"hucha/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// colorForProgress shades the gauge from cool to green as the goal nears.
func colorForProgress(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.GreenBright
	case pct >= 0.75:
		return t.Green
	case pct >= 0.4:
		return t.Accent
	default:
		return t.Cyan
	}
}

// Cell markers for the ring grid.
const (
	cellBlank = iota
	cellFilled
	cellEmpty
	cellText
)

// Donut renders a radial progress ring, rows high and rows*2 wide.
// The filled arc starts at 12 o'clock and sweeps clockwise; center is
// overlaid in the middle of the ring. pct is clamped to [0, 1].
func Donut(pct float64, center []string, rows int) string {
	if rows < 7 {
		rows = 7
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	cols := rows * 2

	cy := float64(rows-1) / 2
	cx := float64(cols-1) / 2
	outer := float64(rows) / 2
	inner := outer - 1.8
	if inner < 1 {
		inner = 1
	}
	sweep := 2 * math.Pi * pct

	marks := make([][]int, rows)
	runes := make([][]rune, rows)
	for y := 0; y < rows; y++ {
		marks[y] = make([]int, cols)
		runes[y] = make([]rune, cols)
		for x := 0; x < cols; x++ {
			runes[y][x] = ' '

			// Terminal cells are roughly twice as tall as wide, so
			// horizontal distance counts half.
			dx := (float64(x) - cx) / 2
			dy := float64(y) - cy
			r := math.Sqrt(dx*dx + dy*dy)
			if r < inner || r > outer {
				continue
			}

			// Angle from 12 o'clock, clockwise, in [0, 2π).
			ang := math.Atan2(dx, -dy)
			if ang < 0 {
				ang += 2 * math.Pi
			}
			if pct > 0 && ang <= sweep {
				marks[y][x] = cellFilled
				runes[y][x] = '█'
			} else {
				marks[y][x] = cellEmpty
				runes[y][x] = '░'
			}
		}
	}

	// Overlay center lines.
	startY := (rows - len(center)) / 2
	for i, line := range center {
		y := startY + i
		if y < 0 || y >= rows {
			continue
		}
		text := []rune(line)
		if len(text) > cols {
			text = text[:cols]
		}
		startX := (cols - len(text)) / 2
		for j, ch := range text {
			marks[y][startX+j] = cellText
			runes[y][startX+j] = ch
		}
	}

	t := theme.Active
	styles := map[int]lipgloss.Style{
		cellBlank:  lipgloss.NewStyle(),
		cellFilled: lipgloss.NewStyle().Foreground(colorForProgress(pct)),
		cellEmpty:  lipgloss.NewStyle().Foreground(t.TextDim),
		cellText:   lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true),
	}

	var b strings.Builder
	for y := 0; y < rows; y++ {
		x := 0
		for x < cols {
			mark := marks[y][x]
			start := x
			for x < cols && marks[y][x] == mark {
				x++
			}
			b.WriteString(styles[mark].Render(string(runes[y][start:x])))
		}
		if y < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// GoalBar renders progress toward the target as a single line, for
// layouts too short for the ring.
func GoalBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	t := theme.Active
	barW := width - 6
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(colorForProgress(pct))),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(colorForProgress(pct)).Bold(true)
	return bar.ViewAs(pct) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
