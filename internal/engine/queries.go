package engine

import "github.com/tatianab/trek/internal/models"

// PlayerPosition is the Enterprise's sector within the current quadrant.
func (g *Game) PlayerPosition() models.Sector { return g.enterprise.Position() }

// GalaxyPosition is the current quadrant's galaxy coordinate.
func (g *Game) GalaxyPosition() models.Sector { return g.position }

func (g *Game) PlayerEnergy() int  { return g.enterprise.Energy() }
func (g *Game) PlayerShields() int { return g.enterprise.Shields() }
func (g *Game) Torpedoes() int     { return g.enterprise.TorpedoAmmo() }

// SpareEnergy is what may be spent on weapons and shields without touching
// the reserve.
func (g *Game) SpareEnergy() int {
	return max(0, g.enterprise.Energy()-g.rules.ReserveEnergy)
}

func (g *Game) HasSpareEnergy() bool    { return g.SpareEnergy() > 0 }
func (g *Game) HasSpareTorpedoes() bool { return g.enterprise.HasTorpedoAmmo() }

func (g *Game) TotalKlingonCount() int  { return g.galaxy.KlingonCount() }
func (g *Game) TotalStarbaseCount() int { return g.galaxy.StarbaseCount() }

// LocalKlingonCount counts the live Klingons in the current quadrant.
func (g *Game) LocalKlingonCount() int { return len(g.current().LiveKlingons()) }

func (g *Game) Docked() bool {
	return g.enterprise.Docked(g.current().Starbases())
}

// GetSymbolsForQuadrant returns the current sector grid, indexed [y][x],
// with the Enterprise drawn in.
func (g *Game) GetSymbolsForQuadrant() [models.GridSize][models.GridSize]string {
	grid := g.current().Symbols()
	at := g.enterprise.Position()
	grid[at.Y][at.X] = g.enterprise.Symbol()
	return grid
}

// QuadrantSummary is what a long-range scan reveals about one quadrant.
type QuadrantSummary struct {
	X, Y    int
	Symbol  string
	Current bool
}

// GetSurroundingQuadrants returns summaries of the current quadrant and its
// neighbours, current first.
func (g *Game) GetSurroundingQuadrants() []QuadrantSummary {
	cluster := g.galaxy.GetQuadrantClusterAt(g.position.X, g.position.Y)
	out := make([]QuadrantSummary, 0, len(cluster))
	for _, q := range cluster {
		out = append(out, QuadrantSummary{
			X:       q.X(),
			Y:       q.Y(),
			Symbol:  q.Symbol(),
			Current: q.X() == g.position.X && q.Y() == g.position.Y,
		})
	}
	return out
}
