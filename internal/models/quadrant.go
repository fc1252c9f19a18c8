package models

import (
	"fmt"
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"
)

const maxOfAKind = 9

// Quadrant is one cell of the galaxy, itself an 8x8 grid of sectors. No two
// entities share a sector.
type Quadrant struct {
	x, y      int
	starbases []*Starbase
	klingons  []*Klingon
	stars     []*Entity

	occupied mapset.Set[Sector]
	rng      *rand.Rand
}

// NewQuadrant creates a quadrant with a randomly rolled population.
func NewQuadrant(x, y int, rng *rand.Rand) *Quadrant {
	if rng == nil {
		panic("models: NewQuadrant requires a random source")
	}
	klingons := 0
	switch r := rng.Float64(); {
	case r < 0.02:
		klingons = 3
	case r < 0.05:
		klingons = 2
	case r < 0.20:
		klingons = 1
	}
	starbases := 0
	if rng.Float64() < 0.04 {
		starbases = 1
	}
	stars := 1 + rng.IntN(8)
	return NewQuadrantWithCounts(x, y, starbases, klingons, stars, rng)
}

// NewQuadrantWithCounts creates a quadrant holding exactly the given numbers
// of each kind, placed on distinct random sectors.
func NewQuadrantWithCounts(x, y, starbases, klingons, stars int, rng *rand.Rand) *Quadrant {
	for _, n := range []int{starbases, klingons, stars} {
		if n < 0 || n > maxOfAKind {
			panic(fmt.Sprintf("models: quadrant counts must be within [0,%d], got %d/%d/%d",
				maxOfAKind, starbases, klingons, stars))
		}
	}
	q := NewEmptyQuadrant(x, y, rng)
	for range starbases {
		s := q.mustRandomEmptySector()
		q.place(s)
		q.starbases = append(q.starbases, NewStarbase(s.X, s.Y))
	}
	for range klingons {
		s := q.mustRandomEmptySector()
		q.place(s)
		q.klingons = append(q.klingons, NewKlingon(s.X, s.Y))
	}
	for range stars {
		s := q.mustRandomEmptySector()
		q.place(s)
		q.stars = append(q.stars, newStar(s.X, s.Y))
	}
	return q
}

// NewEmptyQuadrant creates a quadrant with nothing in it.
func NewEmptyQuadrant(x, y int, rng *rand.Rand) *Quadrant {
	if rng == nil {
		panic("models: quadrant requires a random source")
	}
	return &Quadrant{
		x:        x,
		y:        y,
		occupied: mapset.New[Sector](),
		rng:      rng,
	}
}

func newStar(x, y int) *Entity {
	star := NewEntity(x, y)
	star.SetSymbol(" * ")
	return star
}

func (q *Quadrant) X() int { return q.x }
func (q *Quadrant) Y() int { return q.y }

func (q *Quadrant) Starbases() []*Starbase { return q.starbases }
func (q *Quadrant) Klingons() []*Klingon   { return q.klingons }
func (q *Quadrant) Stars() []*Entity       { return q.stars }

func (q *Quadrant) StarbaseCount() int { return len(q.starbases) }
func (q *Quadrant) KlingonCount() int  { return len(q.klingons) }
func (q *Quadrant) StarCount() int     { return len(q.stars) }

// LiveKlingons returns the Klingons not yet marked for removal.
func (q *Quadrant) LiveKlingons() []*Klingon {
	live := make([]*Klingon, 0, len(q.klingons))
	for _, k := range q.klingons {
		if !k.IsMarkedForRemoval() {
			live = append(live, k)
		}
	}
	return live
}

func (q *Quadrant) AddKlingon(x, y int) (*Klingon, error) {
	if len(q.klingons) >= maxOfAKind {
		return nil, ErrTooMany
	}
	if err := q.claim(x, y); err != nil {
		return nil, err
	}
	k := NewKlingon(x, y)
	q.klingons = append(q.klingons, k)
	return k, nil
}

func (q *Quadrant) AddStarbase(x, y int) (*Starbase, error) {
	if len(q.starbases) >= maxOfAKind {
		return nil, ErrTooMany
	}
	if err := q.claim(x, y); err != nil {
		return nil, err
	}
	s := NewStarbase(x, y)
	q.starbases = append(q.starbases, s)
	return s, nil
}

func (q *Quadrant) AddStar(x, y int) (*Entity, error) {
	if len(q.stars) >= maxOfAKind {
		return nil, ErrTooMany
	}
	if err := q.claim(x, y); err != nil {
		return nil, err
	}
	star := newStar(x, y)
	q.stars = append(q.stars, star)
	return star, nil
}

func (q *Quadrant) claim(x, y int) error {
	s := Sector{X: x, Y: y}
	if !s.InBounds() {
		return fmt.Errorf("sector %v: %w", s, ErrOutOfBounds)
	}
	if q.occupied.Has(s) {
		return fmt.Errorf("sector %v: %w", s, ErrSectorOccupied)
	}
	q.place(s)
	return nil
}

func (q *Quadrant) place(s Sector) {
	q.occupied.Put(s)
}

// Occupied reports whether any entity sits at the sector.
func (q *Quadrant) Occupied(x, y int) bool {
	return q.occupied.Has(Sector{X: x, Y: y})
}

// GetRandomEmptySector rolls sectors until it finds a free one. ok is false
// only when every sector is taken.
func (q *Quadrant) GetRandomEmptySector() (Sector, bool) {
	if q.occupied.Size() >= GridSize*GridSize {
		return Sector{}, false
	}
	for range GridSize * GridSize * 4 {
		s := Sector{X: q.rng.IntN(GridSize), Y: q.rng.IntN(GridSize)}
		if !q.occupied.Has(s) {
			return s, true
		}
	}
	// Nearly full: pick uniformly among what is left.
	var free []Sector
	for y := range GridSize {
		for x := range GridSize {
			s := Sector{X: x, Y: y}
			if !q.occupied.Has(s) {
				free = append(free, s)
			}
		}
	}
	return free[q.rng.IntN(len(free))], true
}

func (q *Quadrant) mustRandomEmptySector() Sector {
	s, ok := q.GetRandomEmptySector()
	if !ok {
		panic(fmt.Sprintf("models: quadrant (%d,%d) has no empty sector", q.x, q.y))
	}
	return s
}

// GetEntityAt returns whatever occupies the sector, or nil.
func (q *Quadrant) GetEntityAt(x, y int) Occupant {
	if !q.Occupied(x, y) {
		return nil
	}
	for _, s := range q.starbases {
		if s.x == x && s.y == y {
			return s
		}
	}
	for _, k := range q.klingons {
		if k.x == x && k.y == y {
			return k
		}
	}
	for _, s := range q.stars {
		if s.x == x && s.y == y {
			return s
		}
	}
	return nil
}

// GetSymbolAt returns the masked or revealed symbol at the sector, or
// EmptySymbol when nothing is there.
func (q *Quadrant) GetSymbolAt(x, y int) string {
	if e := q.GetEntityAt(x, y); e != nil {
		return e.Symbol()
	}
	return EmptySymbol
}

// Symbols returns the sector grid indexed [y][x].
func (q *Quadrant) Symbols() [GridSize][GridSize]string {
	var grid [GridSize][GridSize]string
	for y := range GridSize {
		for x := range GridSize {
			grid[y][x] = q.GetSymbolAt(x, y)
		}
	}
	return grid
}

// ScanAll reveals every entity in the quadrant.
func (q *Quadrant) ScanAll() {
	for _, s := range q.starbases {
		s.Scan()
	}
	for _, k := range q.klingons {
		k.Scan()
	}
	for _, s := range q.stars {
		s.Scan()
	}
}

// OutOfFocusTick runs the background step for a quadrant the player is not
// in: bases repair, Klingons recharge and lay siege to any base present.
func (q *Quadrant) OutOfFocusTick(ctx TickContext) {
	rules := ctx.Rules()
	for _, s := range q.starbases {
		s.Heal(rules.StarbaseRegen)
	}
	for _, k := range q.klingons {
		k.Recharge(rules.KlingonRegen)
	}
	if rules.SiegeDamage > 0 {
		for _, k := range q.klingons {
			if k.IsMarkedForRemoval() {
				continue
			}
			target := q.firstLiveStarbase()
			if target == nil {
				break
			}
			target.Hit(rules.SiegeDamage)
		}
	}
	q.Cleanup()
}

func (q *Quadrant) firstLiveStarbase() *Starbase {
	for _, s := range q.starbases {
		if !s.IsMarkedForRemoval() {
			return s
		}
	}
	return nil
}

// Cleanup drops every entity marked for removal, keeping the order of the
// rest. Safe to call repeatedly.
func (q *Quadrant) Cleanup() {
	q.starbases = compact(q.starbases)
	q.klingons = compact(q.klingons)
	q.stars = compact(q.stars)

	q.occupied = mapset.New[Sector]()
	for _, s := range q.starbases {
		q.place(s.Position())
	}
	for _, k := range q.klingons {
		q.place(k.Position())
	}
	for _, s := range q.stars {
		q.place(s.Position())
	}
}

func compact[T Removable](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.IsMarkedForRemoval() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// Symbol is the 3-digit summary used by long-range scans and saves: stars,
// starbases, klingons.
func (q *Quadrant) Symbol() string {
	return fmt.Sprintf("%d%d%d", len(q.stars), len(q.starbases), len(q.klingons))
}

func (q *Quadrant) String() string {
	return fmt.Sprintf("Quadrant(%d,%d) %s", q.x, q.y, q.Symbol())
}
