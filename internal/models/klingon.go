package models

const (
	KlingonSymbol = "+K+"
	KlingonEnergy = 300

	klingonBaseDamage    = 10
	klingonDamageDivisor = 10
)

// Klingon is a hostile warship. Its energy doubles as its health.
type Klingon struct {
	Entity
	energy Stat
}

func NewKlingon(x, y int) *Klingon {
	return &Klingon{
		Entity: Entity{x: x, y: y, symbol: KlingonSymbol},
		energy: NewStat(KlingonEnergy, KlingonEnergy),
	}
}

func (k *Klingon) Faction() Faction {
	if !k.scanned {
		return Neutral
	}
	return KlingonEmpire
}

func (k *Klingon) Energy() int { return k.energy.Get() }

// Attack fires on the Enterprise and returns the damage dealt. Shields soak
// the hit first; whatever they could not absorb comes out of reserves.
func (k *Klingon) Attack(e *Enterprise) int {
	if k.markedForRemoval {
		return 0
	}
	damage := klingonBaseDamage + k.energy.Get()/klingonDamageDivisor
	overflow := damage - e.Shields()
	e.Hit(damage)
	if overflow > 0 {
		e.DrainEnergy(overflow)
	}
	return damage
}

// Hit drains the Klingon's energy and marks it for removal once empty.
func (k *Klingon) Hit(damage int) {
	k.energy.Adjust(-damage)
	if k.energy.Get() <= 0 {
		k.Remove()
	}
}

// Recharge restores energy between engagements.
func (k *Klingon) Recharge(amount int) {
	if amount > 0 && !k.markedForRemoval {
		k.energy.Adjust(amount)
	}
}
