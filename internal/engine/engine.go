package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/tatianab/trek/internal/models"
)

// Status is the state of a game as reported to clients.
type Status string

const (
	StatusPlaying Status = "PLAYING"
	StatusWon     Status = "WON"
	StatusLost    Status = "LOST"
)

// StartQuadrant is where a new or loaded game puts the Enterprise.
var StartQuadrant = models.Sector{X: 4, Y: 4}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgument    = errors.New("bad argument")
	ErrGameOver       = errors.New("game is over")
)

// Game owns the Enterprise, the Galaxy and the turn state machine. It is not
// safe for concurrent use; callers serialize access.
type Game struct {
	id     string
	rules  models.Rules
	rng    *rand.Rand
	logger *slog.Logger

	galaxy     *models.Galaxy
	enterprise *models.Enterprise
	position   models.Sector // galaxy coordinates of the current quadrant

	turnCount  int
	lastReport string
	status     Status
	history    History
}

// NewGame starts a session on a freshly generated galaxy. rng drives every
// random placement so a fixed seed reproduces a game.
func NewGame(rng *rand.Rand, rules models.Rules, logger *slog.Logger) *Game {
	if rng == nil {
		panic("engine: NewGame requires a random source")
	}
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	g := &Game{
		id:     id,
		rules:  rules,
		rng:    rng,
		logger: logger.With("component", "engine", "session", id),
	}
	g.Restart()
	return g
}

// Restart discards the current state and generates a new galaxy.
func (g *Game) Restart() {
	galaxy := models.NewGalaxy(g.rng)
	q := galaxy.QuadrantAt(StartQuadrant.X, StartQuadrant.Y)
	at := arrivalSector(q)
	g.install(models.NewEnterprise(at.X, at.Y), galaxy, StartQuadrant)
	g.lastReport = render("welcome.txt", g.briefing())
	g.logger.Info("new game",
		"klingons", g.galaxy.KlingonCount(),
		"starbases", g.galaxy.StarbaseCount())
}

// Load replaces the Enterprise and Galaxy in one step. The Enterprise is put
// in the start quadrant, moved to a free sector if its own is taken. Nothing
// changes when an argument is nil.
func (g *Game) Load(enterprise *models.Enterprise, galaxy *models.Galaxy) error {
	if enterprise == nil || galaxy == nil {
		return fmt.Errorf("load: %w", models.ErrNilArgument)
	}
	q := galaxy.QuadrantAt(StartQuadrant.X, StartQuadrant.Y)
	if q == nil {
		return fmt.Errorf("load: %w: start quadrant missing", models.ErrInvalidQuadrant)
	}
	if q.Occupied(enterprise.X(), enterprise.Y()) {
		at, ok := q.GetRandomEmptySector()
		if !ok {
			return fmt.Errorf("load: %w: start quadrant is full", models.ErrSectorOccupied)
		}
		enterprise.SetX(at.X)
		enterprise.SetY(at.Y)
	}
	g.install(enterprise, galaxy, StartQuadrant)
	g.lastReport = render("welcome.txt", g.briefing())
	g.logger.Info("game loaded",
		"status", g.status,
		"klingons", g.galaxy.KlingonCount(),
		"energy", enterprise.Energy())
	return nil
}

func (g *Game) install(enterprise *models.Enterprise, galaxy *models.Galaxy, position models.Sector) {
	g.enterprise = enterprise
	g.galaxy = galaxy
	g.position = position
	g.turnCount = 0
	g.status = StatusPlaying
	g.history = History{}
	g.evaluate()
}

// arrivalSector is the centre sector when free, otherwise a random free one.
func arrivalSector(q *models.Quadrant) models.Sector {
	centre := models.Sector{X: 4, Y: 4}
	if !q.Occupied(centre.X, centre.Y) {
		return centre
	}
	at, ok := q.GetRandomEmptySector()
	if !ok {
		panic(fmt.Sprintf("engine: quadrant (%d,%d) has no room for the Enterprise", q.X(), q.Y()))
	}
	return at
}

// Export renders the save data: the Enterprise line followed by the galaxy.
func (g *Game) Export() string {
	return g.enterprise.Export() + g.galaxy.Export()
}

// evaluate moves a playing game to its terminal state when one applies.
// Terminal states never revert.
func (g *Game) evaluate() {
	if g.status != StatusPlaying {
		return
	}
	switch {
	case !g.enterprise.IsAlive():
		g.status = StatusLost
		g.logger.Info("game lost", "turn", g.turnCount)
	case g.galaxy.KlingonCount() == 0:
		g.status = StatusWon
		g.logger.Info("game won", "turn", g.turnCount)
	}
}

func (g *Game) over() bool { return g.status != StatusPlaying }

func (g *Game) current() *models.Quadrant {
	return g.galaxy.QuadrantAt(g.position.X, g.position.Y)
}

func (g *Game) refuse(format string, args ...any) bool {
	g.lastReport = fmt.Sprintf(format, args...)
	g.logger.Warn("action refused", "reason", g.lastReport)
	return false
}

// TurnCount and Rules let quadrants read game state during background ticks.
func (g *Game) TurnCount() int      { return g.turnCount }
func (g *Game) Rules() models.Rules { return g.rules }

var _ models.TickContext = (*Game)(nil)

func (g *Game) SessionID() string { return g.id }
func (g *Game) Status() Status    { return g.status }
func (g *Game) HasWon() bool      { return g.status == StatusWon }
func (g *Game) HasLost() bool     { return g.status == StatusLost }

func (g *Game) LastActionReport() string { return g.lastReport }

// History returns the processed commands, oldest first.
func (g *Game) History() []HistoryEntry {
	return append([]HistoryEntry(nil), g.history.Entries...)
}
