// Package core provides fundamental types and utilities for the mines game.
// It contains no external dependencies (especially no Bubble Tea or tcell) to
// keep game logic pure and testable.
package core

// Point is a cell coordinate on the character grid.
// Row grows downward, Col grows rightward. Either may be negative or exceed
// the viewport; nothing clamps them.
type Point struct {
	Row, Col int
}

// Add returns the point offset by another point used as a velocity.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Viewport is the drawable area in character cells.
type Viewport struct {
	Height, Width int
}

// Area returns the number of cells in the viewport.
// Non-positive dimensions yield 0.
func (v Viewport) Area() int {
	if v.Height <= 0 || v.Width <= 0 {
		return 0
	}
	return v.Height * v.Width
}

// Contains returns true if p lies in [0, Height) x [0, Width).
func (v Viewport) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < v.Height && p.Col >= 0 && p.Col < v.Width
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
