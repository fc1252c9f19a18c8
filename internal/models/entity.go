package models

import "fmt"

const (
	// UnknownSymbol is shown for anything that has not been scanned yet.
	UnknownSymbol = " ? "
	// EmptySymbol is shown for a sector with nothing in it.
	EmptySymbol = "   "
)

// Entity is the positional base unit every object in a quadrant is built on.
// Removal is two-phase: Remove only marks it, the owning Quadrant's Cleanup
// drops it from its collection.
type Entity struct {
	x, y             int
	symbol           string
	scanned          bool
	markedForRemoval bool
}

// NewEntity creates an unscanned Entity at the given sector.
func NewEntity(x, y int) *Entity {
	return &Entity{x: x, y: y, symbol: UnknownSymbol}
}

func (e *Entity) X() int { return e.x }
func (e *Entity) Y() int { return e.y }

func (e *Entity) SetX(x int) { e.x = x }
func (e *Entity) SetY(y int) { e.y = y }

// Position returns the entity's sector as a pair.
func (e *Entity) Position() Sector { return Sector{X: e.x, Y: e.y} }

// AdjustPosition translates the entity. Bounds are the caller's concern.
func (e *Entity) AdjustPosition(dx, dy int) {
	e.x += dx
	e.y += dy
}

// SetSymbol assigns the symbol revealed after a scan.
func (e *Entity) SetSymbol(symbol string) { e.symbol = symbol }

// Symbol returns the masking token until the entity is scanned.
func (e *Entity) Symbol() string {
	if !e.scanned {
		return UnknownSymbol
	}
	return e.symbol
}

func (e *Entity) Scan()         { e.scanned = true }
func (e *Entity) Scanned() bool { return e.scanned }

func (e *Entity) Remove()                  { e.markedForRemoval = true }
func (e *Entity) IsMarkedForRemoval() bool { return e.markedForRemoval }

func (e *Entity) String() string {
	return fmt.Sprintf("Entity{x:%d y:%d symbol:%q scanned:%t markedForRemoval:%t}",
		e.x, e.y, e.symbol, e.scanned, e.markedForRemoval)
}

// Sector is a coordinate pair inside an 8x8 grid.
type Sector struct {
	X, Y int
}

// InBounds reports whether the pair lies in [0,7]x[0,7].
func (s Sector) InBounds() bool {
	return s.X >= 0 && s.X < GridSize && s.Y >= 0 && s.Y < GridSize
}

func (s Sector) String() string { return fmt.Sprintf("(%d,%d)", s.X, s.Y) }
