package models

import "fmt"

const (
	StartingEnergy    = 2500
	MaxEnergy         = 3000
	StartingShields   = 500
	MaxShields        = 3000
	StartingTorpedoes = 10

	// lowEnergyThreshold switches the symbol core from E to e.
	lowEnergyThreshold = 1000
)

// Enterprise is the player ship.
type Enterprise struct {
	Entity
	energy    Stat
	shields   Stat
	torpedoes Stat
	alive     bool
}

// NewEnterprise creates the ship with starting stats at the given sector.
func NewEnterprise(x, y int) *Enterprise {
	return NewEnterpriseWithStats(x, y, StartingEnergy, StartingShields, StartingTorpedoes)
}

// NewEnterpriseWithStats creates the ship with explicit stats, clamped to
// their maxima. Used when restoring a save.
func NewEnterpriseWithStats(x, y, energy, shields, torpedoes int) *Enterprise {
	e := &Enterprise{
		Entity:    Entity{x: x, y: y},
		energy:    NewStat(energy, MaxEnergy),
		shields:   NewStat(shields, MaxShields),
		torpedoes: NewStat(torpedoes, StartingTorpedoes),
		alive:     true,
	}
	return e
}

// Faction is Federation once scanned, Neutral before.
func (e *Enterprise) Faction() Faction {
	if !e.scanned {
		return Neutral
	}
	return Federation
}

func (e *Enterprise) Energy() int          { return e.energy.Get() }
func (e *Enterprise) Shields() int         { return e.shields.Get() }
func (e *Enterprise) TorpedoAmmo() int     { return e.torpedoes.Get() }
func (e *Enterprise) HasTorpedoAmmo() bool { return e.torpedoes.Get() > 0 }
func (e *Enterprise) IsAlive() bool        { return e.alive }

// FireTorpedo spends one torpedo and returns the projectile at the ship's
// position, or nil when the tubes are empty.
func (e *Enterprise) FireTorpedo() *Entity {
	if !e.HasTorpedoAmmo() {
		return nil
	}
	e.torpedoes.Adjust(-1)
	return NewEntity(e.x, e.y)
}

// DrainEnergy removes up to amount and returns what was actually removed.
func (e *Enterprise) DrainEnergy(amount int) int {
	if amount <= 0 {
		return 0
	}
	drained := min(amount, e.energy.Get())
	e.energy.Adjust(-drained)
	return drained
}

// GainEnergy adds energy up to the maximum. Any positive gain also reloads
// one torpedo.
func (e *Enterprise) GainEnergy(amount int) {
	e.energy.Adjust(amount)
	if amount > 0 {
		e.torpedoes.Adjust(1)
	}
}

// RestoreShields raises shields toward their maximum.
func (e *Enterprise) RestoreShields(amount int) {
	if amount > 0 {
		e.shields.Adjust(amount)
	}
}

// TransferEnergyToShields moves up to amount from reserves into shields and
// returns how much actually moved.
func (e *Enterprise) TransferEnergyToShields(amount int) int {
	moved := e.DrainEnergy(amount)
	e.shields.Adjust(moved)
	return moved
}

// Hit takes damage on the shields. A hit that leaves shields at zero, or
// lands while they are already down, destroys the ship for good.
func (e *Enterprise) Hit(damage int) {
	e.shields.Adjust(-damage)
	if e.shields.Get() <= 0 {
		e.alive = false
	}
}

// Heal adds energy without the torpedo reload GainEnergy performs.
func (e *Enterprise) Heal(amount int) {
	e.energy.Adjust(amount)
}

// Docked reports whether any starbase sits in an adjacent sector.
func (e *Enterprise) Docked(starbases []*Starbase) bool {
	for _, s := range starbases {
		if s.IsMarkedForRemoval() {
			continue
		}
		if adjacent(e.x, e.y, s.x, s.y) {
			return true
		}
	}
	return false
}

func adjacent(x1, y1, x2, y2 int) bool {
	return abs(x1-x2) < 2 && abs(y1-y2) < 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Symbol encodes the ship state as {E}, {e}, {Ë} or {ë}: lower case below
// 1000 energy, diaeresis while torpedoes remain.
func (e *Enterprise) Symbol() string {
	core := "E"
	low := e.energy.Get() < lowEnergyThreshold
	armed := e.torpedoes.Get() > 0
	switch {
	case low && armed:
		core = "ë"
	case low:
		core = "e"
	case armed:
		core = "Ë"
	}
	return "{" + core + "}"
}

// Export renders the save-file line for the ship.
func (e *Enterprise) Export() string {
	return fmt.Sprintf("[e] x:%d y:%d e:%d s:%d t:%d |\n",
		e.x, e.y, e.energy.Get(), e.shields.Get(), e.torpedoes.Get())
}
