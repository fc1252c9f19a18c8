package models

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// QuadrantCount is the number of quadrants in every galaxy.
const QuadrantCount = GridSize * GridSize

// Galaxy is the 8x8 grid of quadrants, stored row-major.
type Galaxy struct {
	quadrants []*Quadrant
}

// NewGalaxy generates a fresh galaxy. It always contains at least one
// Klingon and one Starbase.
func NewGalaxy(rng *rand.Rand) *Galaxy {
	g := &Galaxy{quadrants: GenerateQuadrants(rng)}
	if g.KlingonCount() == 0 {
		q := g.quadrants[rng.IntN(len(g.quadrants))]
		if s, ok := q.GetRandomEmptySector(); ok {
			q.AddKlingon(s.X, s.Y)
		}
	}
	if g.StarbaseCount() == 0 {
		q := g.quadrants[rng.IntN(len(g.quadrants))]
		if s, ok := q.GetRandomEmptySector(); ok {
			q.AddStarbase(s.X, s.Y)
		}
	}
	return g
}

// NewGalaxyFromQuadrants builds a galaxy from an explicit set of quadrants,
// which must cover every coordinate exactly once. They are stored in
// canonical order regardless of the order given.
func NewGalaxyFromQuadrants(quadrants []*Quadrant) (*Galaxy, error) {
	if len(quadrants) != QuadrantCount {
		return nil, fmt.Errorf("%w: need %d quadrants, got %d", ErrInvalidQuadrant, QuadrantCount, len(quadrants))
	}
	ordered := make([]*Quadrant, QuadrantCount)
	for _, q := range quadrants {
		if q == nil {
			return nil, fmt.Errorf("quadrant list: %w", ErrNilArgument)
		}
		if !(Sector{X: q.x, Y: q.y}).InBounds() {
			return nil, fmt.Errorf("%w: (%d,%d) %v", ErrInvalidQuadrant, q.x, q.y, ErrOutOfBounds)
		}
		idx := index(q.x, q.y)
		if ordered[idx] != nil {
			return nil, fmt.Errorf("%w: duplicate (%d,%d)", ErrInvalidQuadrant, q.x, q.y)
		}
		ordered[idx] = q
	}
	return &Galaxy{quadrants: ordered}, nil
}

// GenerateQuadrants rolls all 64 quadrants in row-major (x, y) order.
func GenerateQuadrants(rng *rand.Rand) []*Quadrant {
	list := make([]*Quadrant, 0, QuadrantCount)
	for x := range GridSize {
		for y := range GridSize {
			list = append(list, NewQuadrant(x, y, rng))
		}
	}
	return list
}

func index(x, y int) int { return x*GridSize + y }

// Quadrants returns the quadrants in iteration order.
func (g *Galaxy) Quadrants() []*Quadrant { return g.quadrants }

// QuadrantAt returns the quadrant at (x, y), or nil when out of range.
func (g *Galaxy) QuadrantAt(x, y int) *Quadrant {
	if !(Sector{X: x, Y: y}).InBounds() {
		return nil
	}
	return g.quadrants[index(x, y)]
}

// GetQuadrantClusterAt returns the quadrant at (x, y) followed by its
// neighbours, clipped to the galaxy. Empty when the centre does not exist.
func (g *Galaxy) GetQuadrantClusterAt(x, y int) []*Quadrant {
	center := g.QuadrantAt(x, y)
	if center == nil {
		return nil
	}
	cluster := []*Quadrant{center}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if q := g.QuadrantAt(x+dx, y+dy); q != nil {
				cluster = append(cluster, q)
			}
		}
	}
	return cluster
}

// OutOfFocusTick ticks every quadrant not in skip.
func (g *Galaxy) OutOfFocusTick(skip []*Quadrant, ctx TickContext) {
	for _, q := range g.quadrants {
		if slices.Contains(skip, q) {
			continue
		}
		q.OutOfFocusTick(ctx)
	}
}

func (g *Galaxy) KlingonCount() int {
	total := 0
	for _, q := range g.quadrants {
		total += q.KlingonCount()
	}
	return total
}

func (g *Galaxy) StarbaseCount() int {
	total := 0
	for _, q := range g.quadrants {
		total += q.StarbaseCount()
	}
	return total
}

// Export renders one save line per quadrant in iteration order.
func (g *Galaxy) Export() string {
	var sb strings.Builder
	for _, q := range g.quadrants {
		fmt.Fprintf(&sb, "[q] x:%d y:%d s:%s |\n", q.x, q.y, q.Symbol())
	}
	return sb.String()
}
