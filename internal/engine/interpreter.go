package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// command is one parsed order. free orders do not cost a turn.
type command struct {
	name string
	free bool
	run  func(g *Game) bool
}

// ProcessTurn parses and carries out a typed order, then advances the turn
// unless the order was free or refused. Unknown or malformed orders return
// an error and change nothing.
func (g *Game) ProcessTurn(action string) (string, Status, error) {
	if g.over() {
		return g.lastReport, g.status, ErrGameOver
	}
	cmd, err := parseCommand(action)
	if err != nil {
		g.logger.Debug("command rejected", "action", action, "error", err)
		return "", g.status, err
	}

	g.logger.Debug("command", "action", action, "turn", g.turnCount)
	performed := cmd.run(g)
	outcome := g.lastReport
	if performed && !cmd.free && !g.over() {
		g.Turn()
		outcome = joinReports(outcome, g.lastReport)
		g.lastReport = outcome
	}

	g.history.Add(HistoryEntry{
		Turn:         g.turnCount,
		PlayerAction: strings.TrimSpace(action),
		Outcome:      outcome,
		Status:       g.status,
	})
	return outcome, g.status, nil
}

func joinReports(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

func parseCommand(action string) (command, error) {
	fields := strings.Fields(strings.ToLower(action))
	if len(fields) == 0 {
		return command{}, fmt.Errorf("%w: empty order", ErrUnknownCommand)
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "scan", "srs":
		if err := wantArgs(name, args, 0); err != nil {
			return command{}, err
		}
		return command{name: "scan", free: true, run: (*Game).ScanQuadrant}, nil

	case "lrs":
		if err := wantArgs(name, args, 0); err != nil {
			return command{}, err
		}
		return command{name: "lrs", free: true, run: (*Game).LongRangeScan}, nil

	case "help", "?":
		return command{name: "help", free: true, run: func(g *Game) bool {
			g.lastReport = render("help.txt", nil)
			return true
		}}, nil

	case "wait":
		if err := wantArgs(name, args, 0); err != nil {
			return command{}, err
		}
		return command{name: "wait", run: func(g *Game) bool {
			g.lastReport = ""
			return true
		}}, nil

	case "impulse", "warp":
		if err := wantArgs(name, args, 2); err != nil {
			return command{}, err
		}
		dir, err := ParseDirection(args[0])
		if err != nil {
			return command{}, err
		}
		dist, err := parseAmount("distance", args[1])
		if err != nil {
			return command{}, err
		}
		move := (*Game).MoveWithinQuadrant
		if name == "warp" {
			move = (*Game).MoveBetweenQuadrants
		}
		return command{name: name, run: func(g *Game) bool { return move(g, dir, dist) }}, nil

	case "phasers", "pha":
		if err := wantArgs(name, args, 1); err != nil {
			return command{}, err
		}
		amount, err := parseAmount("energy", args[0])
		if err != nil {
			return command{}, err
		}
		return command{name: "phasers", run: func(g *Game) bool { return g.FirePhasers(amount) }}, nil

	case "torpedo", "tor":
		if err := wantArgs(name, args, 1); err != nil {
			return command{}, err
		}
		dir, err := ParseDirection(args[0])
		if err != nil {
			return command{}, err
		}
		return command{name: "torpedo", run: func(g *Game) bool { return g.FireTorpedo(dir) }}, nil

	case "shields", "she":
		if err := wantArgs(name, args, 1); err != nil {
			return command{}, err
		}
		amount, err := parseAmount("energy", args[0])
		if err != nil {
			return command{}, err
		}
		return command{name: "shields", run: func(g *Game) bool { return g.Shields(amount) }}, nil
	}
	return command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

func wantArgs(name string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrBadArgument, name, n, len(args))
	}
	return nil
}

func parseAmount(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrBadArgument, what, s)
	}
	return n, nil
}
