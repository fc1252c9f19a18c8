package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is a compass heading on the 1..8 keypad used by every movement
// and weapons command. 1 is east and the numbers run counter-clockwise.
type Direction int

const (
	East Direction = iota + 1
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

// y grows southward, matching sector rows.
var directionDeltas = [...][2]int{
	East:      {1, 0},
	NorthEast: {1, -1},
	North:     {0, -1},
	NorthWest: {-1, -1},
	West:      {-1, 0},
	SouthWest: {-1, 1},
	South:     {0, 1},
	SouthEast: {1, 1},
}

var directionNames = map[string]Direction{
	"e": East, "ne": NorthEast, "n": North, "nw": NorthWest,
	"w": West, "sw": SouthWest, "s": South, "se": SouthEast,
}

func (d Direction) Valid() bool {
	return d >= East && d <= SouthEast
}

// Delta returns the unit step for d. Invalid directions yield (0, 0).
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	v := directionDeltas[d]
	return v[0], v[1]
}

func (d Direction) String() string {
	for name, dir := range directionNames {
		if dir == d {
			return strings.ToUpper(name)
		}
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts a keypad number or a compass abbreviation such as
// "ne".
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := directionNames[s]; ok {
		return d, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Direction(n).Valid() {
		return 0, fmt.Errorf("%w: direction %q (use 1-8 or e/ne/n/nw/w/sw/s/se)", ErrBadArgument, s)
	}
	return Direction(n), nil
}
