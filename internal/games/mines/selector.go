package mines

import (
	"math"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// SpeedChoice is the resolved option of the speed menu.
type SpeedChoice int

const (
	ChoiceSlow SpeedChoice = iota
	ChoiceFast
	ChoiceCustom
	ChoiceQuit
)

// String returns the menu label of the choice.
func (c SpeedChoice) String() string {
	switch c {
	case ChoiceSlow:
		return "Slow"
	case ChoiceFast:
		return "Fast"
	case ChoiceCustom:
		return "Custom"
	case ChoiceQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// speedItems are the selectable menu rows, in display order.
var speedItems = []SpeedChoice{ChoiceSlow, ChoiceFast, ChoiceCustom}

// SpeedMenu is the Slow / Fast / Custom picker shown before the game.
type SpeedMenu struct {
	cursor   int
	choice   SpeedChoice
	resolved bool
}

// NewSpeedMenu creates a menu with the cursor on the first item.
func NewSpeedMenu() *SpeedMenu {
	return &SpeedMenu{}
}

// Handle applies one key press and reports whether the menu resolved.
// The cursor stops at the first and last items.
func (m *SpeedMenu) Handle(ev core.KeyEvent) bool {
	if m.resolved {
		return true
	}

	switch ev.Action {
	case core.ActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(speedItems)-1)
	case core.ActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(speedItems)-1)
	case core.ActionConfirm:
		m.choice = speedItems[m.cursor]
		m.resolved = true
	case core.ActionQuit:
		m.choice = ChoiceQuit
		m.resolved = true
	}
	return m.resolved
}

// Cursor returns the index of the highlighted item.
func (m *SpeedMenu) Cursor() int {
	return m.cursor
}

// Items returns the selectable choices in display order.
func (m *SpeedMenu) Items() []SpeedChoice {
	return speedItems
}

// Choice returns the resolved choice. Only meaningful once Handle returned true.
func (m *SpeedMenu) Choice() SpeedChoice {
	return m.choice
}

// CustomEntry is the digit-by-digit text entry for a custom tick delay in
// microseconds.
type CustomEntry struct {
	buf      []byte
	capacity int
	value    int64
	quit     bool
	resolved bool
}

// NewCustomEntry creates an empty entry accepting at most capacity digits.
func NewCustomEntry(capacity int) *CustomEntry {
	return &CustomEntry{
		buf:      make([]byte, 0, capacity),
		capacity: capacity,
	}
}

// Handle applies one key press and reports whether entry finished.
// Digits past capacity and deletes on an empty buffer are ignored.
func (c *CustomEntry) Handle(ev core.KeyEvent) bool {
	if c.resolved {
		return true
	}

	switch ev.Action {
	case core.ActionDigit:
		if len(c.buf) < c.capacity && ev.Rune >= '0' && ev.Rune <= '9' {
			c.buf = append(c.buf, byte(ev.Rune))
		}
	case core.ActionDelete:
		if len(c.buf) > 0 {
			c.buf = c.buf[:len(c.buf)-1]
		}
	case core.ActionConfirm:
		c.value = parseMicros(c.buf)
		c.resolved = true
	case core.ActionQuit:
		c.quit = true
		c.resolved = true
	}
	return c.resolved
}

// Buffer returns the digits entered so far.
func (c *CustomEntry) Buffer() string {
	return string(c.buf)
}

// Quit reports whether entry was aborted with the quit key.
func (c *CustomEntry) Quit() bool {
	return c.quit
}

// Micros returns the confirmed delay in microseconds.
func (c *CustomEntry) Micros() int64 {
	return c.value
}

// Delay returns the confirmed delay as a duration.
func (c *CustomEntry) Delay() time.Duration {
	return microsToDuration(c.value)
}

// parseMicros parses the digit buffer; an empty buffer is 0.
func parseMicros(buf []byte) int64 {
	if len(buf) == 0 {
		return 0
	}
	n, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		// Only digits reach the buffer, so the sole failure is overflow.
		return math.MaxInt64
	}
	return n
}

// microsToDuration converts microseconds, saturating instead of overflowing.
func microsToDuration(us int64) time.Duration {
	if us > math.MaxInt64/int64(time.Microsecond) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(us) * time.Microsecond
}
