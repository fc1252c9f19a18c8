package models

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// SaveDir is where save slots live.
var SaveDir = "data"

const (
	saveExt          = ".trek"
	enterprisePrefix = "[e]"
	quadrantPrefix   = "[q]"
	lineTerminator   = "|"
)

// SavePath returns the file path of the named save slot.
func SavePath(name string) string {
	return filepath.Join(SaveDir, name+saveExt)
}

// ListSaves returns the names of the save slots present in SaveDir.
func ListSaves() ([]string, error) {
	entries, err := os.ReadDir(SaveDir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	saves := []string{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != saveExt {
			continue
		}
		saves = append(saves, strings.TrimSuffix(entry.Name(), saveExt))
	}
	sort.Strings(saves)
	return saves, nil
}

// Saver writes exported game state to a file. The destination is either
// fully written or left untouched.
type Saver struct {
	data string
	path string
	err  error
	done bool
}

func NewSaver(data, path string) *Saver {
	return &Saver{data: data, path: path}
}

// Save performs the write. Check Success or Err afterwards.
func (s *Saver) Save() {
	s.err = WriteSave(s.path, s.data)
	s.done = true
}

func (s *Saver) Success() bool { return s.done && s.err == nil }
func (s *Saver) Err() error    { return s.err }

// WriteSave writes data to a temp file next to path and renames it into place.
func WriteSave(path, data string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".save-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.WriteString(data); err != nil {
		cleanup()
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close save: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod save: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

type saveLine struct {
	number int
	text   string
}

// Loader reads a save file and rebuilds the Enterprise and Galaxy from it.
// It never touches a running game; the caller decides whether to apply the
// result.
type Loader struct {
	path string
	rng  *rand.Rand

	enterpriseLine *saveLine
	quadrantLines  []saveLine

	enterprise *Enterprise
	galaxy     *Galaxy
	err        error
	loaded     bool
}

// NewLoader prepares a loader for path. rng places the rebuilt entities.
func NewLoader(path string, rng *rand.Rand) *Loader {
	return &Loader{path: path, rng: rng}
}

// Load reads and decodes the file. Check Success or Err afterwards.
func (l *Loader) Load() {
	l.reset()
	f, err := os.Open(l.path)
	if err != nil {
		l.err = err
		return
	}
	defer f.Close()
	l.read(f)
}

// LoadFrom decodes a save from r instead of the loader's path.
func (l *Loader) LoadFrom(r io.Reader) {
	l.reset()
	l.read(r)
}

func (l *Loader) reset() {
	*l = Loader{path: l.path, rng: l.rng}
}

func (l *Loader) read(r io.Reader) {
	defer func() { l.loaded = true }()

	if l.rng == nil {
		l.err = fmt.Errorf("loader random source: %w", ErrNilArgument)
		return
	}

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(text, enterprisePrefix):
			if l.enterpriseLine == nil {
				l.enterpriseLine = &saveLine{number: n, text: text}
			}
		case strings.HasPrefix(text, quadrantPrefix):
			l.quadrantLines = append(l.quadrantLines, saveLine{number: n, text: text})
		}
	}
	if err := scanner.Err(); err != nil {
		l.err = fmt.Errorf("read save: %w", err)
		return
	}

	if l.enterpriseLine == nil {
		l.err = ErrMissingEnterprise
		return
	}
	if len(l.quadrantLines) == 0 {
		l.err = ErrMissingQuadrants
		return
	}

	enterprise, err := ParseEnterpriseLine(l.enterpriseLine.text)
	if err != nil {
		l.err = &ParseError{Line: l.enterpriseLine.number, Text: l.enterpriseLine.text, Err: err}
		return
	}

	quadrants := make([]*Quadrant, 0, QuadrantCount)
	seen := make(map[Sector]bool, QuadrantCount)
	for _, line := range l.quadrantLines {
		q, err := ParseQuadrantLine(line.text, l.rng)
		if err != nil {
			l.err = &ParseError{Line: line.number, Text: line.text, Err: err}
			return
		}
		at := Sector{X: q.X(), Y: q.Y()}
		if seen[at] {
			l.err = &ParseError{Line: line.number, Text: line.text,
				Err: fmt.Errorf("%w: duplicate quadrant %v", ErrInvalidQuadrant, at)}
			return
		}
		seen[at] = true
		quadrants = append(quadrants, q)
	}
	for x := range GridSize {
		for y := range GridSize {
			if !seen[Sector{X: x, Y: y}] {
				quadrants = append(quadrants, NewEmptyQuadrant(x, y, l.rng))
			}
		}
	}

	galaxy, err := NewGalaxyFromQuadrants(quadrants)
	if err != nil {
		l.err = err
		return
	}

	l.enterprise = enterprise
	l.galaxy = galaxy
}

// Success reports whether the last Load produced a usable Enterprise and Galaxy.
func (l *Loader) Success() bool { return l.loaded && l.err == nil }

func (l *Loader) Err() error { return l.err }

// EnterpriseLine returns the raw [e] line, or "" if none was read.
func (l *Loader) EnterpriseLine() string {
	if l.enterpriseLine == nil {
		return ""
	}
	return l.enterpriseLine.text
}

// GalaxyLines returns the raw [q] lines in file order.
func (l *Loader) GalaxyLines() []string {
	lines := make([]string, 0, len(l.quadrantLines))
	for _, line := range l.quadrantLines {
		lines = append(lines, line.text)
	}
	return lines
}

// Enterprise returns the rebuilt ship, nil unless Success.
func (l *Loader) Enterprise() *Enterprise {
	if !l.Success() {
		return nil
	}
	return l.enterprise
}

// Galaxy returns the rebuilt galaxy, nil unless Success.
func (l *Loader) Galaxy() *Galaxy {
	if !l.Success() {
		return nil
	}
	return l.galaxy
}

// ParseEnterpriseLine decodes "[e] x:<x> y:<y> e:<energy> s:<shields> t:<torpedoes> |".
func ParseEnterpriseLine(line string) (*Enterprise, error) {
	fields, err := parseFields(line, enterprisePrefix, "x", "y", "e", "s", "t")
	if err != nil {
		return nil, err
	}
	values := make(map[string]int, 5)
	for _, key := range []string{"x", "y", "e", "s", "t"} {
		raw := fields[key]
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%s is not a number", ErrMalformedLine, key, raw)
		}
		values[key] = v
	}
	at := Sector{X: values["x"], Y: values["y"]}
	if !at.InBounds() {
		return nil, fmt.Errorf("%w: enterprise sector %v", ErrOutOfBounds, at)
	}
	return NewEnterpriseWithStats(at.X, at.Y, values["e"], values["s"], values["t"]), nil
}

// ParseQuadrantLine decodes "[q] x:<x> y:<y> s:<stars><starbases><klingons> |".
func ParseQuadrantLine(line string, rng *rand.Rand) (*Quadrant, error) {
	fields, err := parseFields(line, quadrantPrefix, "x", "y", "s")
	if err != nil {
		return nil, err
	}
	x, err := strconv.Atoi(fields["x"])
	if err != nil {
		return nil, fmt.Errorf("%w: x:%s is not a number", ErrMalformedLine, fields["x"])
	}
	y, err := strconv.Atoi(fields["y"])
	if err != nil {
		return nil, fmt.Errorf("%w: y:%s is not a number", ErrMalformedLine, fields["y"])
	}
	if !(Sector{X: x, Y: y}).InBounds() {
		return nil, fmt.Errorf("%w: quadrant (%d,%d) %v", ErrInvalidQuadrant, x, y, ErrOutOfBounds)
	}
	stars, starbases, klingons, err := ParseQuadrantSymbol(fields["s"])
	if err != nil {
		return nil, err
	}
	return NewQuadrantWithCounts(x, y, starbases, klingons, stars, rng), nil
}

// ParseQuadrantSymbol splits a 3-digit summary into its star, starbase and
// klingon counts.
func ParseQuadrantSymbol(symbol string) (stars, starbases, klingons int, err error) {
	if len(symbol) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: summary %q is not 3 digits", ErrMalformedLine, symbol)
	}
	var counts [3]int
	for i := range 3 {
		c := symbol[i]
		if c < '0' || c > '9' {
			return 0, 0, 0, fmt.Errorf("%w: summary %q is not 3 digits", ErrMalformedLine, symbol)
		}
		counts[i] = int(c - '0')
	}
	return counts[0], counts[1], counts[2], nil
}

// parseFields checks the prefix and terminator and returns the required
// key:value tokens. Unknown keys are ignored.
func parseFields(line, prefix string, required ...string) (map[string]string, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 || tokens[0] != prefix {
		return nil, fmt.Errorf("%w: expected %s prefix", ErrMalformedLine, prefix)
	}
	if tokens[len(tokens)-1] != lineTerminator {
		return nil, fmt.Errorf("%w: missing trailing %q", ErrMalformedLine, lineTerminator)
	}

	fields := make(map[string]string, len(required))
	for _, tok := range tokens[1 : len(tokens)-1] {
		key, value, ok := strings.Cut(tok, ":")
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("%w: bad token %q", ErrMalformedLine, tok)
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("%w: repeated key %q", ErrMalformedLine, key)
		}
		fields[key] = value
	}
	for _, key := range required {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("%w: missing %s:", ErrMalformedLine, key)
		}
	}
	return fields, nil
}
