package models

import (
	"errors"
	"testing"
)

func TestNewQuadrantWithCounts(t *testing.T) {
	q := NewQuadrantWithCounts(2, 3, 2, 3, 4, testRNG(1))
	if q.X() != 2 || q.Y() != 3 {
		t.Errorf("Expected (2,3), got (%d,%d)", q.X(), q.Y())
	}
	if q.StarbaseCount() != 2 || q.KlingonCount() != 3 || q.StarCount() != 4 {
		t.Errorf("Expected 2/3/4, got %d/%d/%d", q.StarbaseCount(), q.KlingonCount(), q.StarCount())
	}

	seen := map[Sector]bool{}
	check := func(o Occupant) {
		s := Sector{X: o.X(), Y: o.Y()}
		if !s.InBounds() {
			t.Errorf("Expected %v in bounds", s)
		}
		if seen[s] {
			t.Errorf("Expected distinct sectors, %v used twice", s)
		}
		seen[s] = true
	}
	for _, s := range q.Starbases() {
		check(s)
	}
	for _, k := range q.Klingons() {
		check(k)
	}
	for _, s := range q.Stars() {
		check(s)
	}
	if q.Symbol() != "423" {
		t.Errorf("Expected symbol 423, got %s", q.Symbol())
	}
}

func TestNewQuadrantWithCountsRejectsTooMany(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for 10 stars")
		}
	}()
	NewQuadrantWithCounts(0, 0, 0, 0, 10, testRNG(1))
}

func TestNewQuadrantPopulation(t *testing.T) {
	rng := testRNG(7)
	for range 200 {
		q := NewQuadrant(0, 0, rng)
		if q.KlingonCount() > 3 {
			t.Fatalf("Expected at most 3 Klingons, got %d", q.KlingonCount())
		}
		if q.StarbaseCount() > 1 {
			t.Fatalf("Expected at most 1 starbase, got %d", q.StarbaseCount())
		}
		if q.StarCount() < 1 || q.StarCount() > 8 {
			t.Fatalf("Expected 1-8 stars, got %d", q.StarCount())
		}
	}
}

func TestQuadrantRandomEmptySector(t *testing.T) {
	q := NewQuadrantWithCounts(0, 0, 1, 1, 5, testRNG(3))
	for range 100 {
		s, ok := q.GetRandomEmptySector()
		if !ok {
			t.Fatal("Expected an empty sector")
		}
		if !s.InBounds() {
			t.Fatalf("Expected %v in bounds", s)
		}
		if q.Occupied(s.X, s.Y) {
			t.Fatalf("Expected %v to be empty", s)
		}
	}
}

func TestQuadrantRandomEmptySectorNearlyFull(t *testing.T) {
	q := NewEmptyQuadrant(0, 0, testRNG(4))
	for y := range GridSize {
		for x := range GridSize {
			if x == 6 && y == 5 {
				continue
			}
			q.place(Sector{X: x, Y: y})
		}
	}
	s, ok := q.GetRandomEmptySector()
	if !ok || s != (Sector{X: 6, Y: 5}) {
		t.Errorf("Expected (6,5), got %v ok=%t", s, ok)
	}
	q.place(s)
	if _, ok := q.GetRandomEmptySector(); ok {
		t.Error("Expected no empty sector in a full quadrant")
	}
}

func TestQuadrantAdd(t *testing.T) {
	q := NewEmptyQuadrant(1, 1, testRNG(5))
	if _, err := q.AddKlingon(3, 3); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := q.AddStar(3, 3); !errors.Is(err, ErrSectorOccupied) {
		t.Errorf("Expected ErrSectorOccupied, got %v", err)
	}
	if _, err := q.AddStarbase(8, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
	for i := range 8 {
		if _, err := q.AddKlingon(i, 0); err != nil {
			t.Fatalf("Unexpected error adding Klingon %d: %v", i, err)
		}
	}
	if _, err := q.AddKlingon(0, 7); !errors.Is(err, ErrTooMany) {
		t.Errorf("Expected ErrTooMany, got %v", err)
	}
}

func TestQuadrantSymbols(t *testing.T) {
	q := NewEmptyQuadrant(0, 0, testRNG(6))
	q.AddKlingon(1, 2)
	q.AddStarbase(5, 6)

	if got := q.GetSymbolAt(1, 2); got != UnknownSymbol {
		t.Errorf("Expected %q before scan, got %q", UnknownSymbol, got)
	}
	if got := q.GetSymbolAt(0, 0); got != EmptySymbol {
		t.Errorf("Expected %q for empty sector, got %q", EmptySymbol, got)
	}

	q.ScanAll()
	grid := q.Symbols()
	if grid[2][1] != KlingonSymbol {
		t.Errorf("Expected %q at (1,2), got %q", KlingonSymbol, grid[2][1])
	}
	if grid[6][5] != StarbaseSymbol {
		t.Errorf("Expected %q at (5,6), got %q", StarbaseSymbol, grid[6][5])
	}
	if q.GetEntityAt(5, 6) == nil || q.GetEntityAt(4, 4) != nil {
		t.Error("Expected GetEntityAt to find only occupied sectors")
	}
}

func TestQuadrantCleanup(t *testing.T) {
	q := NewEmptyQuadrant(0, 0, testRNG(8))
	a, _ := q.AddKlingon(0, 0)
	b, _ := q.AddKlingon(1, 0)
	c, _ := q.AddKlingon(2, 0)
	b.Remove()

	q.Cleanup()
	q.Cleanup()

	ks := q.Klingons()
	if len(ks) != 2 || ks[0] != a || ks[1] != c {
		t.Fatalf("Expected [a c] in order, got %v", ks)
	}
	if q.Occupied(1, 0) {
		t.Error("Expected the removed Klingon's sector to be free")
	}
	if !q.Occupied(2, 0) {
		t.Error("Expected surviving Klingon's sector to stay occupied")
	}
}

func TestQuadrantOutOfFocusTick(t *testing.T) {
	q := NewEmptyQuadrant(0, 0, testRNG(9))
	base, _ := q.AddStarbase(0, 0)
	k, _ := q.AddKlingon(5, 5)
	base.Hit(100)
	k.Hit(50)

	rules := DefaultRules()
	q.OutOfFocusTick(stubTick{rules: rules})

	wantBase := StarbaseHealth - 100 + rules.StarbaseRegen - rules.SiegeDamage
	if base.Health() != wantBase {
		t.Errorf("Expected base health %d, got %d", wantBase, base.Health())
	}
	if k.Energy() != KlingonEnergy-50+rules.KlingonRegen {
		t.Errorf("Expected Klingon energy %d, got %d", KlingonEnergy-50+rules.KlingonRegen, k.Energy())
	}
}

func TestQuadrantSiegeDestroysBase(t *testing.T) {
	q := NewEmptyQuadrant(0, 0, testRNG(10))
	base, _ := q.AddStarbase(0, 0)
	q.AddKlingon(5, 5)
	base.Hit(StarbaseHealth - 1)

	q.OutOfFocusTick(stubTick{rules: Rules{SiegeDamage: 10, TorpedoDamage: 1}})
	if q.StarbaseCount() != 0 {
		t.Errorf("Expected besieged base to be cleaned up, got %d", q.StarbaseCount())
	}
}

type stubTick struct {
	turn  int
	rules Rules
}

func (s stubTick) TurnCount() int { return s.turn }
func (s stubTick) Rules() Rules   { return s.rules }
