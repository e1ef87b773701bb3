package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range Tabs {
		pos := tabBarIndent
		for i, tab := range Tabs {
			w := TabVisualWidth(tab, i == active)
			for x := pos; x < pos+w; x++ {
				if got := TabAtX(x, active); got != i {
					t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
				}
			}
			pos += w + tabBarSeparator
		}
	}
}

func TestTabVisualWidthMatchesRender(t *testing.T) {
	for active := range Tabs {
		natural := tabBarIndent
		for i, tab := range Tabs {
			natural += TabVisualWidth(tab, i == active)
			if i < len(Tabs)-1 {
				natural += tabBarSeparator
			}
		}

		// Below the natural width no padding is added.
		if got := lipgloss.Width(RenderTabBar(active, 0)); got != natural {
			t.Errorf("active=%d natural width = %d, want %d", active, got, natural)
		}
		// At a wider terminal the bar pads out to the requested width.
		if got := lipgloss.Width(RenderTabBar(active, 80)); got != 80 {
			t.Errorf("active=%d padded width = %d, want 80", active, got)
		}
	}
}

func TestTabAtXOutsideBar(t *testing.T) {
	if got := TabAtX(0, 0); got != -1 {
		t.Errorf("TabAtX(0) = %d, want -1 before first tab", got)
	}
	if got := TabAtX(500, 0); got != -1 {
		t.Errorf("TabAtX(500) = %d, want -1 past last tab", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('l'); got != 1 {
		t.Errorf("TabIdxByKey('l') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
