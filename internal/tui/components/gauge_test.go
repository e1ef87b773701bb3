package components

import (
	"strings"
	"testing"
)

func TestDonutHeightMatchesRows(t *testing.T) {
	out := Donut(0.5, nil, 11)
	if got := len(strings.Split(out, "\n")); got != 11 {
		t.Errorf("donut lines = %d, want 11", got)
	}

	out = Donut(0.5, nil, 3)
	if got := len(strings.Split(out, "\n")); got != 7 {
		t.Errorf("donut lines = %d, want floor of 7", got)
	}
}

func TestDonutFillFollowsPct(t *testing.T) {
	empty := Donut(0, nil, 11)
	if strings.ContainsRune(empty, '█') {
		t.Error("donut at 0%% has filled cells")
	}
	if !strings.ContainsRune(empty, '░') {
		t.Error("donut at 0%% has no ring cells")
	}

	full := Donut(1, nil, 11)
	if strings.ContainsRune(full, '░') {
		t.Error("donut at 100%% has unfilled cells")
	}
	if !strings.ContainsRune(full, '█') {
		t.Error("donut at 100%% has no filled cells")
	}

	half := Donut(0.5, nil, 11)
	if !strings.ContainsRune(half, '█') || !strings.ContainsRune(half, '░') {
		t.Error("donut at 50%% should mix filled and unfilled cells")
	}

	over := Donut(1.7, nil, 11)
	if strings.ContainsRune(over, '░') {
		t.Error("donut past 100%% should clamp to full")
	}
}

func TestDonutFillGrowsMonotonically(t *testing.T) {
	prev := -1
	for _, pct := range []float64{0, 0.25, 0.5, 0.75, 1} {
		filled := strings.Count(Donut(pct, nil, 11), "█")
		if filled < prev {
			t.Fatalf("filled cells at %.2f = %d, less than previous %d", pct, filled, prev)
		}
		prev = filled
	}
}

func TestDonutCenterOverlay(t *testing.T) {
	out := Donut(0.42, []string{"42%", "of goal"}, 13)

	if !strings.Contains(out, "42%") {
		t.Errorf("donut missing center line:\n%s", out)
	}
	if !strings.Contains(out, "of goal") {
		t.Errorf("donut missing second center line:\n%s", out)
	}
}

func TestGoalBarShowsPct(t *testing.T) {
	out := GoalBar(0.5, 40)
	if !strings.Contains(out, "50%") {
		t.Errorf("goal bar = %q, want 50%%", out)
	}

	out = GoalBar(2.0, 40)
	if !strings.Contains(out, "100%") {
		t.Errorf("goal bar = %q, want clamped 100%%", out)
	}
}
