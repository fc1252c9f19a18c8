package models

// GridSize is the side length of both the sector grid and the galaxy grid.
const GridSize = 8

// Faction is an allegiance tag. Neutral doubles as the masked state of an
// unscanned unit.
type Faction int

const (
	Neutral Faction = iota
	Federation
	KlingonEmpire
)

func (f Faction) String() string {
	switch f {
	case Federation:
		return "Federation"
	case KlingonEmpire:
		return "Klingon"
	default:
		return "Neutral"
	}
}

type Positionable interface {
	X() int
	Y() int
	AdjustPosition(dx, dy int)
}

type Scannable interface {
	Scan()
	Scanned() bool
	Symbol() string
}

type Removable interface {
	Remove()
	IsMarkedForRemoval() bool
}

// Factional units report Neutral until scanned.
type Factional interface {
	Faction() Faction
}

type Healable interface {
	Heal(amount int)
}

// Combatant is anything that can take a hit.
type Combatant interface {
	Hit(damage int)
}

// Occupant is what a quadrant sector can hold.
type Occupant interface {
	Positionable
	Scannable
	Removable
}

var (
	_ Occupant  = (*Entity)(nil)
	_ Occupant  = (*Klingon)(nil)
	_ Occupant  = (*Starbase)(nil)
	_ Factional = (*Klingon)(nil)
	_ Factional = (*Starbase)(nil)
	_ Factional = (*Enterprise)(nil)
	_ Combatant = (*Klingon)(nil)
	_ Combatant = (*Starbase)(nil)
	_ Combatant = (*Enterprise)(nil)
	_ Healable  = (*Enterprise)(nil)
	_ Healable  = (*Starbase)(nil)
)
