package mines

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
)

// Render draws the ball, every mine, the token and the score HUD.
// Objects outside the screen are clipped.
func (e *Engine) Render(dst *core.Screen, st State) {
	dst.SetColored(st.Ball.Row, st.Ball.Col, e.rules.BallGlyph, core.ColorBrightWhite)

	for _, m := range st.Mines {
		dst.SetColored(m.Row, m.Col, e.rules.MineGlyph, core.ColorBrightRed)
	}

	dst.SetColored(st.Token.Row, st.Token.Col, e.rules.TokenGlyph, core.ColorBrightYellow)

	dst.DrawText(0, dst.Width()-11, fmt.Sprintf("Tokens: %d", st.Score))
}

// RenderSpeedMenu draws the speed picker: items at the top, usage at mid-height.
func RenderSpeedMenu(dst *core.Screen, m *SpeedMenu) {
	for i, item := range m.Items() {
		if i == m.Cursor() {
			dst.DrawTextColored(i, 0, "> "+item.String(), core.ColorBrightYellow)
		} else {
			dst.DrawText(i, 0, "  "+item.String())
		}
	}

	dst.DrawText(dst.Height()/2, 0, "Select game speed with j and k (q to quit)")
}

// RenderCustomEntry draws the custom speed prompt with the digits typed so far.
func RenderCustomEntry(dst *core.Screen, c *CustomEntry, speed config.SpeedConfig) {
	dst.DrawTextColored(0, 0, c.Buffer(), core.ColorBrightWhite)

	mid := dst.Height() / 2
	dst.DrawText(mid, 0, "Enter speed (redraw delay in microseconds) (x to delete, q to quit)")
	dst.DrawTextColored(mid+2, 0, fmt.Sprintf("[Default slow speed is %s, default fast speed is %s]",
		shortMicros(speed.SlowDelayUS), shortMicros(speed.FastDelayUS)), core.ColorGray)
}

// shortMicros formats whole thousands as "100k".
func shortMicros(us int) string {
	if us != 0 && us%1000 == 0 {
		return fmt.Sprintf("%dk", us/1000)
	}
	return fmt.Sprintf("%d", us)
}
