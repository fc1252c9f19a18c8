package engine

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/tatianab/trek/internal/models"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(testRNG(), models.DefaultRules(), quietLogger())
}

// scenario loads an otherwise empty galaxy with one distant Klingon, so the
// game does not end on its own, and lets setup furnish the start quadrant.
func scenario(t *testing.T, e *models.Enterprise, setup func(here *models.Quadrant)) *Game {
	t.Helper()
	rng := testRNG()
	quadrants := make([]*models.Quadrant, 0, models.QuadrantCount)
	for x := range models.GridSize {
		for y := range models.GridSize {
			quadrants = append(quadrants, models.NewEmptyQuadrant(x, y, rng))
		}
	}
	galaxy, err := models.NewGalaxyFromQuadrants(quadrants)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := galaxy.QuadrantAt(0, 0).AddKlingon(0, 0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if setup != nil {
		setup(galaxy.QuadrantAt(StartQuadrant.X, StartQuadrant.Y))
	}

	g := newTestGame(t)
	if err := g.Load(e, galaxy); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return g
}

func mustAdd[T any](t *testing.T) func(T, error) T {
	return func(v T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		return v
	}
}
