package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hypnos/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '♥', core.ColorBrightRed)
	s.SetColored(3, 0, '♥', core.ColorBrightRed)
	s.FillArea(0, 2, 6, 1, '▀', core.ColorWhite)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	// Styling must not change the printable layout
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d width = %d, expected 6", i, w)
		}
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "♥♥") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if strings.Count(lines[2], "▀") != 6 {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	got := styleFor(core.Color(200)).Render("x")
	want := palette[core.ColorDefault].Render("x")
	if got != want {
		t.Errorf("styleFor(unknown) rendered %q, expected %q", got, want)
	}
}
