package models

import "fmt"

// Rules holds the tunable combat and movement constants.
type Rules struct {
	ReserveEnergy int `yaml:"reserve_energy"` // energy never counted as spare
	ImpulseCost   int `yaml:"impulse_cost"`   // per sector travelled
	WarpCost      int `yaml:"warp_cost"`      // per quadrant travelled
	TorpedoDamage int `yaml:"torpedo_damage"`
	DockEnergy    int `yaml:"dock_energy"`
	DockShields   int `yaml:"dock_shields"`
	StarbaseRegen int `yaml:"starbase_regen"` // per out-of-focus tick
	KlingonRegen  int `yaml:"klingon_regen"`  // per out-of-focus tick
	SiegeDamage   int `yaml:"siege_damage"`   // Klingon on Starbase, per out-of-focus tick
}

func DefaultRules() Rules {
	return Rules{
		ReserveEnergy: 100,
		ImpulseCost:   10,
		WarpCost:      100,
		TorpedoDamage: 500,
		DockEnergy:    defaultDockEnergy,
		DockShields:   defaultDockShields,
		StarbaseRegen: 50,
		KlingonRegen:  10,
		SiegeDamage:   25,
	}
}

// Validate rejects negative values and a torpedo that cannot hurt anything.
func (r Rules) Validate() error {
	fields := map[string]int{
		"reserve_energy": r.ReserveEnergy,
		"impulse_cost":   r.ImpulseCost,
		"warp_cost":      r.WarpCost,
		"dock_energy":    r.DockEnergy,
		"dock_shields":   r.DockShields,
		"starbase_regen": r.StarbaseRegen,
		"klingon_regen":  r.KlingonRegen,
		"siege_damage":   r.SiegeDamage,
	}
	for name, v := range fields {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, v)
		}
	}
	if r.TorpedoDamage <= 0 {
		return fmt.Errorf("torpedo_damage must be positive, got %d", r.TorpedoDamage)
	}
	return nil
}

// TickContext is what a quadrant needs from the running game during a
// background tick.
type TickContext interface {
	TurnCount() int
	Rules() Rules
}
