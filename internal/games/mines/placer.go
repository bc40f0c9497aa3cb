package mines

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// ErrEmptyViewport is returned when there is no cell to place an object in.
var ErrEmptyViewport = errors.New("mines: viewport has no cells")

// PointSet is a set of occupied cells.
type PointSet map[core.Point]struct{}

// NewPointSet builds a set from the given points. Duplicates collapse.
func NewPointSet(points ...core.Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is in the set.
func (s PointSet) Has(p core.Point) bool {
	_, ok := s[p]
	return ok
}

// Placer picks spawn cells for tokens and mines.
type Placer struct {
	rng *rand.Rand
}

// NewPlacer creates a placer drawing from rng.
func NewPlacer(rng *rand.Rand) *Placer {
	return &Placer{rng: rng}
}

// Place returns a uniformly random cell in [0, Height) x [0, Width) that is
// not in occupied.
//
// It keeps drawing until it finds a free cell. If every cell of the viewport
// is occupied it never returns; the mine capacity keeps that out of reach for
// any realistic terminal size.
func (p *Placer) Place(vp core.Viewport, occupied PointSet) (core.Point, error) {
	if vp.Area() == 0 {
		return core.Point{}, ErrEmptyViewport
	}

	for {
		candidate := core.Point{
			Row: p.rng.Intn(vp.Height),
			Col: p.rng.Intn(vp.Width),
		}
		if !occupied.Has(candidate) {
			return candidate, nil
		}
	}
}
