package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/core"
)

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(core.Viewport{Height: 3, Width: 20})
	s.DrawText(0, 9, "Tokens: 3")
	s.SetColored(1, 1, 'o', core.ColorBrightWhite)
	s.SetColored(2, 5, '*', core.ColorBrightRed)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("got %d newlines, want 2", got)
	}
	for _, want := range []string{"Tokens: 3", "o", "*"} {
		if !contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(core.Viewport{})); out != "" {
		t.Errorf("RenderScreen(empty) = %q, want empty", out)
	}
}
