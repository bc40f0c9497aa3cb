package core

// RuntimeConfig contains configuration passed to backend factories.
type RuntimeConfig struct {
	Keys KeyMap // Key bindings used by the backend to translate input
}

// Backend is the terminal rendering and input capability the game consumes.
//
// Drawing happens into a Screen buffer (clear, draw character, draw text);
// Show flushes that buffer to the terminal. PollKey never blocks and reports
// false when no key is waiting. WaitKey blocks until a key arrives; if the
// backend shuts down underneath it, WaitKey reports ActionQuit.
type Backend interface {
	// Init acquires the terminal. A failure here is fatal for the session.
	Init() error

	// Fini releases the terminal. Called exactly once after a successful Init.
	Fini()

	// Size returns the current viewport; it may change between calls.
	Size() Viewport

	// Show flushes the screen buffer to the terminal.
	Show(s *Screen)

	// PollKey returns one buffered key event without blocking.
	PollKey() (KeyEvent, bool)

	// WaitKey blocks until one key event is available.
	WaitKey() KeyEvent
}
