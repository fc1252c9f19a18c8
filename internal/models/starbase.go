package models

const (
	StarbaseSymbol = "[S]"
	StarbaseHealth = 1000

	defaultDockEnergy  = 500
	defaultDockShields = 250
)

// Starbase is a Federation outpost. Docking next to one resupplies the ship.
type Starbase struct {
	Entity
	health Stat

	dockEnergy  int
	dockShields int
}

func NewStarbase(x, y int) *Starbase {
	return &Starbase{
		Entity:      Entity{x: x, y: y, symbol: StarbaseSymbol},
		health:      NewStat(StarbaseHealth, StarbaseHealth),
		dockEnergy:  defaultDockEnergy,
		dockShields: defaultDockShields,
	}
}

func (s *Starbase) Faction() Faction {
	if !s.scanned {
		return Neutral
	}
	return Federation
}

func (s *Starbase) Health() int { return s.health.Get() }

// SetResupply overrides how much energy and shield a docking restores.
func (s *Starbase) SetResupply(energy, shields int) {
	s.dockEnergy = max(energy, 0)
	s.dockShields = max(shields, 0)
}

// AttemptHeal resupplies the Enterprise when it is docked with this base.
// Reports whether anything was restored.
func (s *Starbase) AttemptHeal(e *Enterprise) bool {
	if s.markedForRemoval || !e.Docked([]*Starbase{s}) {
		return false
	}
	e.GainEnergy(s.dockEnergy)
	e.RestoreShields(s.dockShields)
	return true
}

// Heal repairs the base itself.
func (s *Starbase) Heal(amount int) {
	if amount > 0 && !s.markedForRemoval {
		s.health.Adjust(amount)
	}
}

func (s *Starbase) Hit(damage int) {
	s.health.Adjust(-damage)
	if s.health.Get() <= 0 {
		s.Remove()
	}
}
