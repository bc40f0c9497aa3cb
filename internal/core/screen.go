package core

import (
	"strings"
)

// Cell is a single character on the screen together with its color.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer for rendering game graphics.
// Games draw into it with row/col coordinates and a backend flushes it to the
// terminal, so game code never touches the terminal directly.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(v Viewport) *Screen {
	s := &Screen{
		width:  max(v.Width, 0),
		height: max(v.Height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for row := range s.cells {
		s.cells[row] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Viewport returns the screen dimensions.
func (s *Screen) Viewport() Viewport {
	return Viewport{Height: s.height, Width: s.width}
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(v Viewport) {
	width, height := max(v.Width, 0), max(v.Height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for row := 0; row < copyH; row++ {
		copy(s.cells[row][:copyW], oldCells[row][:copyW])
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for row := range s.cells {
		for col := range s.cells[row] {
			s.cells[row][col] = blankCell
		}
	}
}

// Set places a rune at the given position in the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(row, col int, r rune) {
	s.SetColored(row, col, r, ColorDefault)
}

// SetColored places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetColored(row, col int, r rune, c Color) {
	if row < 0 || row >= s.height || col < 0 || col >= s.width {
		return
	}
	s.cells[row][col] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(row, col int) rune {
	return s.GetCell(row, col).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(row, col int) Cell {
	if row < 0 || row >= s.height || col < 0 || col >= s.width {
		return blankCell
	}
	return s.cells[row][col]
}

// DrawText writes a string horizontally starting at (row, col).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(row, col int, text string) {
	s.DrawTextColored(row, col, text, ColorDefault)
}

// DrawTextColored writes a colored string horizontally starting at (row, col).
func (s *Screen) DrawTextColored(row, col int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(row, col+i, r, c)
		i++
	}
}

// String converts the screen buffer to a plain string without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for row := 0; row < s.height; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < s.width; col++ {
			sb.WriteRune(s.cells[row][col].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(row int) string {
	if row < 0 || row >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[row] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
