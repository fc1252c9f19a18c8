package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/tatianab/trek/internal/config"
	"github.com/tatianab/trek/internal/engine"
	"github.com/tatianab/trek/internal/logger"
)

const (
	maxTurns    = 200
	maxOrders   = maxTurns * 4 // free and refused orders do not use a turn
	defaultSeed = 1701
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	slogger, closer, err := logger.Init(cfg.Logging, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to start logger: %v", err)
	}
	defer closer.Close()

	rules, err := config.LoadRules(cfg.Game.RulesFile)
	if err != nil {
		log.Fatalf("Failed to load rules: %v", err)
	}
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	game := engine.NewGame(rng, rules, slogger)

	fmt.Printf("--- Seed %d ---\n%s\n\n", seed, game.LastActionReport())

	pilot := &autopilot{rng: rand.New(rand.NewPCG(seed, ^seed))}
	for orders := 0; orders < maxOrders && game.TurnCount() < maxTurns && game.Status() == engine.StatusPlaying; orders++ {
		action := pilot.next(game)
		outcome, status, err := game.ProcessTurn(action)
		fmt.Printf("--- Turn %d ---\n", game.TurnCount())
		fmt.Printf("Captain: %s\n", action)
		if err != nil {
			fmt.Printf("Error processing order: %v\n", err)
			break
		}
		fmt.Printf("%s\n", outcome)
		fmt.Printf("Status: %s  Energy=%d Shields=%d Torpedoes=%d Klingons=%d\n\n",
			status, game.PlayerEnergy(), game.PlayerShields(), game.Torpedoes(), game.TotalKlingonCount())
	}

	switch game.Status() {
	case engine.StatusWon:
		fmt.Println("Game Ended: Player Won!")
	case engine.StatusLost:
		fmt.Println("Game Ended: Player Lost!")
	default:
		fmt.Printf("Game Ended: stopped after %d turns.\n", game.TurnCount())
	}
}

// autopilot plays a simple policy: scan on arrival, fight whatever is in
// the quadrant, keep the shields up, and otherwise warp toward Klingon
// readings on the long-range scan.
type autopilot struct {
	rng     *rand.Rand
	scanned bool
	heading engine.Direction
}

func (p *autopilot) next(g *engine.Game) string {
	if !p.scanned {
		p.scanned = true
		return "scan"
	}
	if g.LocalKlingonCount() > 0 {
		if g.PlayerShields() < 200 && g.SpareEnergy() > 300 {
			return "shields 300"
		}
		if spare := g.SpareEnergy(); spare > 0 {
			return fmt.Sprintf("phasers %d", min(spare, 200*g.LocalKlingonCount()))
		}
		return "wait"
	}

	p.scanned = false
	here := g.GalaxyPosition()
	for _, s := range g.GetSurroundingQuadrants() {
		if s.Current || s.Symbol[2] == '0' {
			continue
		}
		if d, ok := directionTo(s.X-here.X, s.Y-here.Y); ok {
			return fmt.Sprintf("warp %d 1", d)
		}
	}
	if p.heading == 0 || p.rng.IntN(4) == 0 {
		p.heading = engine.Direction(1 + p.rng.IntN(8))
	}
	return fmt.Sprintf("warp %d %d", p.heading, 1+p.rng.IntN(3))
}

func directionTo(dx, dy int) (engine.Direction, bool) {
	for d := engine.East; d <= engine.SouthEast; d++ {
		if ddx, ddy := d.Delta(); ddx == dx && ddy == dy {
			return d, true
		}
	}
	return 0, false
}
