package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func testDialRow() DialRow {
	return DialRow{Width: 60, Pending: 1000, Ceiling: 200000}
}

func TestDialRowViewWidthMatchesSegments(t *testing.T) {
	d := testDialRow()

	want := 0
	for _, seg := range d.segments() {
		want += seg.width
	}
	if got := lipgloss.Width(d.View()); got != want {
		t.Errorf("rendered width = %d, want %d", got, want)
	}
	if want != d.Width {
		t.Errorf("segment widths sum to %d, want full width %d", want, d.Width)
	}
}

func TestDialRowZonesCoverEveryColumn(t *testing.T) {
	d := testDialRow()

	pos := 0
	for _, seg := range d.segments() {
		for x := pos; x < pos+seg.width; x++ {
			if got := d.ZoneAt(x); got != seg.zone {
				t.Fatalf("ZoneAt(%d) = %d, want %d", x, got, seg.zone)
			}
		}
		pos += seg.width
	}
	if got := d.ZoneAt(pos); got != DialZoneNone {
		t.Errorf("ZoneAt(%d) = %d, want none past the row", pos, got)
	}
}

func TestDialRowZoneOrder(t *testing.T) {
	d := testDialRow()

	var zones []int
	for _, seg := range d.segments() {
		if seg.zone != DialZoneNone {
			zones = append(zones, seg.zone)
		}
	}
	want := []int{DialZoneMinusLarge, DialZoneMinusSmall, DialZoneTrack, DialZonePlusSmall, DialZonePlusLarge}
	if len(zones) != len(want) {
		t.Fatalf("zones = %v, want %v", zones, want)
	}
	for i := range want {
		if zones[i] != want[i] {
			t.Fatalf("zones = %v, want %v", zones, want)
		}
	}
}

func TestDialRowKnobTracksPending(t *testing.T) {
	d := testDialRow()

	if got := d.knobIndex(21); got != 0 {
		t.Errorf("knob at %d, want 0 near the floor", got)
	}

	d.Pending = d.Ceiling
	if got := d.knobIndex(21); got != 20 {
		t.Errorf("knob at %d, want 20 at the ceiling", got)
	}

	d.Pending = d.Ceiling / 2
	if got := d.knobIndex(21); got != 10 {
		t.Errorf("knob at %d, want 10 at half", got)
	}
}

func TestDialRowViewHasButtonsAndKnob(t *testing.T) {
	d := testDialRow()
	view := d.View()

	for _, want := range []string{"[-10k]", "[-1k]", "[+1k]", "[+10k]", "●", "◄", "►"} {
		if !strings.Contains(view, want) {
			t.Errorf("dial row missing %q: %s", want, view)
		}
	}
}

func TestDialRowNarrowWidthStillLaysOut(t *testing.T) {
	d := DialRow{Width: 10, Pending: 1000, Ceiling: 2000}

	total := 0
	for _, seg := range d.segments() {
		if seg.width < 0 {
			t.Fatalf("negative segment width %d", seg.width)
		}
		total += seg.width
	}
	if total < dialRowMinWidth {
		t.Errorf("layout total = %d, want at least %d", total, dialRowMinWidth)
	}
}
