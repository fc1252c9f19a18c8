package engine

import (
	"fmt"
	"strings"

	"github.com/tatianab/trek/internal/models"
)

// ScanQuadrant reveals everything in the current quadrant. It does not use
// up a turn.
func (g *Game) ScanQuadrant() bool {
	if g.over() {
		return false
	}
	g.current().ScanAll()
	g.enterprise.Scan()
	g.lastReport = render("srs.txt", g.shortRangeView())
	return true
}

// LongRangeScan reports the summaries of the neighbouring quadrants. It
// does not use up a turn.
func (g *Game) LongRangeScan() bool {
	if g.over() {
		return false
	}
	g.lastReport = render("lrs.txt", g.longRangeView())
	return true
}

// Turn advances the game by one step: the rest of the galaxy ticks, local
// Klingons open fire, a docked starbase resupplies the ship, and the end
// conditions are checked. A finished game ignores it.
func (g *Game) Turn() {
	if g.over() {
		return
	}
	g.turnCount++
	here := g.current()
	g.galaxy.OutOfFocusTick([]*models.Quadrant{here}, g)

	view := turnData{Turn: g.turnCount}
	for _, k := range here.LiveKlingons() {
		if dmg := k.Attack(g.enterprise); dmg > 0 {
			view.Attacks = append(view.Attacks, attackLine{From: k.Position(), Damage: dmg})
		}
		if !g.enterprise.IsAlive() {
			break
		}
	}
	if g.enterprise.IsAlive() {
		for _, s := range here.Starbases() {
			s.SetResupply(g.rules.DockEnergy, g.rules.DockShields)
			if s.AttemptHeal(g.enterprise) {
				view.Docked = true
				break
			}
		}
	}
	here.Cleanup()
	g.evaluate()

	view.Energy = g.enterprise.Energy()
	view.Shields = g.enterprise.Shields()
	view.Status = string(g.status)
	g.lastReport = render("turn.txt", view)
	g.logger.Debug("turn", "turn", g.turnCount, "attacks", len(view.Attacks), "docked", view.Docked)
}

// MoveWithinQuadrant flies the Enterprise on impulse. It stops at the edge
// of the quadrant or in front of anything in its path, and costs energy per
// sector actually travelled.
func (g *Game) MoveWithinQuadrant(direction Direction, distance int) bool {
	if g.over() {
		return false
	}
	if !direction.Valid() {
		return g.refuse("Impulse: %d is not a course. Use 1-8.", int(direction))
	}
	if distance < 1 {
		return g.refuse("Impulse: distance must be at least 1.")
	}

	here := g.current()
	dx, dy := direction.Delta()
	moved := 0
	var blocked models.Occupant
	for range distance {
		next := models.Sector{X: g.enterprise.X() + dx, Y: g.enterprise.Y() + dy}
		if !next.InBounds() {
			break
		}
		if here.Occupied(next.X, next.Y) {
			blocked = here.GetEntityAt(next.X, next.Y)
			break
		}
		g.enterprise.AdjustPosition(dx, dy)
		moved++
	}
	cost := g.enterprise.DrainEnergy(moved * g.rules.ImpulseCost)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Impulse %s: moved %d of %d sectors to %v, %d energy used.",
		direction, moved, distance, g.enterprise.Position(), cost)
	if blocked != nil {
		fmt.Fprintf(&sb, " Course blocked by %s.", strings.TrimSpace(blocked.Symbol()))
	}
	g.lastReport = sb.String()
	return true
}

// MoveBetweenQuadrants engages warp. The destination is clipped to the
// galaxy and the ship arrives at the centre sector, or a random free one
// when the centre is taken.
func (g *Game) MoveBetweenQuadrants(direction Direction, distance int) bool {
	if g.over() {
		return false
	}
	if !direction.Valid() {
		return g.refuse("Warp: %d is not a course. Use 1-8.", int(direction))
	}
	if distance < 1 {
		return g.refuse("Warp: distance must be at least 1.")
	}

	dx, dy := direction.Delta()
	dest := models.Sector{
		X: clamp(g.position.X+dx*distance, 0, models.GridSize-1),
		Y: clamp(g.position.Y+dy*distance, 0, models.GridSize-1),
	}
	jumps := max(abs(dest.X-g.position.X), abs(dest.Y-g.position.Y))
	if jumps == 0 {
		g.lastReport = fmt.Sprintf("Warp %s: already at the galaxy edge, holding position at %v.", direction, g.position)
		return true
	}
	cost := jumps * g.rules.WarpCost
	if g.enterprise.Energy() < cost {
		return g.refuse("Warp: %d quadrants need %d energy, only %d available.", jumps, cost, g.enterprise.Energy())
	}

	q := g.galaxy.QuadrantAt(dest.X, dest.Y)
	at := arrivalSector(q)
	g.enterprise.DrainEnergy(cost)
	g.enterprise.SetX(at.X)
	g.enterprise.SetY(at.Y)
	g.position = dest
	g.lastReport = fmt.Sprintf("Warp %s: arrived in quadrant %v at sector %v, %d energy used.",
		direction, dest, at, cost)
	g.logger.Debug("warp", "quadrant", dest.String(), "cost", cost)
	return true
}

// FirePhasers spends amount energy and splits it as damage over every live
// Klingon in the quadrant. Any remainder goes to the first Klingons.
func (g *Game) FirePhasers(amount int) bool {
	if g.over() {
		return false
	}
	if amount <= 0 {
		return g.refuse("Phasers: energy must be positive.")
	}
	if amount > g.SpareEnergy() {
		return g.refuse("Phasers: %d requested, only %d spare energy.", amount, g.SpareEnergy())
	}
	here := g.current()
	targets := here.LiveKlingons()
	if len(targets) == 0 {
		return g.refuse("Phasers: no Klingons in this quadrant.")
	}

	g.enterprise.DrainEnergy(amount)
	share, rest := amount/len(targets), amount%len(targets)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Phasers fired with %d energy.", amount)
	for i, k := range targets {
		dmg := share
		if i < rest {
			dmg++
		}
		k.Hit(dmg)
		fmt.Fprintf(&sb, "\n  Klingon at %v hit for %d", k.Position(), dmg)
		if k.IsMarkedForRemoval() {
			sb.WriteString(", destroyed")
		}
		sb.WriteString(".")
	}
	here.Cleanup()
	g.evaluate()
	g.lastReport = sb.String()
	return true
}

// FireTorpedo launches one torpedo along direction. It flies until it
// leaves the quadrant or strikes the first occupied sector. Only Klingons
// take damage; stars and starbases absorb the blast.
func (g *Game) FireTorpedo(direction Direction) bool {
	if g.over() {
		return false
	}
	if !direction.Valid() {
		return g.refuse("Torpedo: %d is not a course. Use 1-8.", int(direction))
	}
	torpedo := g.enterprise.FireTorpedo()
	if torpedo == nil {
		return g.refuse("Torpedo: tubes are empty.")
	}

	here := g.current()
	dx, dy := direction.Delta()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Torpedo away on course %s.", direction)
	for {
		torpedo.AdjustPosition(dx, dy)
		at := torpedo.Position()
		if !at.InBounds() {
			sb.WriteString(" It left the quadrant without hitting anything.")
			break
		}
		target := here.GetEntityAt(at.X, at.Y)
		if target == nil {
			continue
		}
		switch t := target.(type) {
		case *models.Klingon:
			t.Hit(g.rules.TorpedoDamage)
			fmt.Fprintf(&sb, " Klingon at %v hit for %d", at, g.rules.TorpedoDamage)
			if t.IsMarkedForRemoval() {
				sb.WriteString(", destroyed")
			}
			sb.WriteString(".")
		case *models.Starbase:
			fmt.Fprintf(&sb, " Starbase at %v absorbed it.", at)
		default:
			fmt.Fprintf(&sb, " Star at %v absorbed it.", at)
		}
		break
	}
	here.Cleanup()
	g.evaluate()
	g.lastReport = sb.String()
	return true
}

// Shields moves up to amount of spare energy into the shields.
func (g *Game) Shields(amount int) bool {
	if g.over() {
		return false
	}
	if amount <= 0 {
		return g.refuse("Shields: amount must be positive.")
	}
	spare := g.SpareEnergy()
	if spare == 0 {
		return g.refuse("Shields: no spare energy to transfer.")
	}
	moved := g.enterprise.TransferEnergyToShields(min(amount, spare))
	g.lastReport = fmt.Sprintf("Shields raised by %d to %d. Energy now %d.",
		moved, g.enterprise.Shields(), g.enterprise.Energy())
	return true
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
