package engine

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/tatianab/trek/internal/models"
)

//go:embed reports/welcome.txt
var welcomeReport string

//go:embed reports/srs.txt
var shortRangeReport string

//go:embed reports/lrs.txt
var longRangeReport string

//go:embed reports/turn.txt
var turnReport string

//go:embed reports/help.txt
var helpReport string

var reports = template.Must(parseReports(map[string]string{
	"welcome.txt": welcomeReport,
	"srs.txt":     shortRangeReport,
	"lrs.txt":     longRangeReport,
	"turn.txt":    turnReport,
	"help.txt":    helpReport,
}))

func parseReports(sources map[string]string) (*template.Template, error) {
	root := template.New("reports")
	for name, src := range sources {
		if _, err := root.New(name).Parse(src); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func render(name string, data any) string {
	var buf bytes.Buffer
	if err := reports.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Sprintf("report %s: %v", name, err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

type welcomeData struct {
	Turn      int
	Klingons  int
	Starbases int
	Quadrant  models.Sector
	Sector    models.Sector
	Status    string
}

func (g *Game) briefing() welcomeData {
	return welcomeData{
		Turn:      g.turnCount,
		Klingons:  g.galaxy.KlingonCount(),
		Starbases: g.galaxy.StarbaseCount(),
		Quadrant:  g.position,
		Sector:    g.enterprise.Position(),
		Status:    string(g.status),
	}
}

type srsData struct {
	Quadrant      models.Sector
	Header        string
	Rows          []string
	Turn          int
	Energy        int
	Shields       int
	Torpedoes     int
	LocalKlingons int
	TotalKlingons int
	Docked        bool
}

func (g *Game) shortRangeView() srsData {
	grid := g.GetSymbolsForQuadrant()
	var header strings.Builder
	header.WriteString("  ")
	for x := range models.GridSize {
		fmt.Fprintf(&header, " %d ", x)
	}
	rows := make([]string, 0, models.GridSize)
	for y, row := range grid {
		rows = append(rows, fmt.Sprintf("%d %s", y, strings.Join(row[:], "")))
	}
	return srsData{
		Quadrant:      g.position,
		Header:        header.String(),
		Rows:          rows,
		Turn:          g.turnCount,
		Energy:        g.enterprise.Energy(),
		Shields:       g.enterprise.Shields(),
		Torpedoes:     g.enterprise.TorpedoAmmo(),
		LocalKlingons: g.LocalKlingonCount(),
		TotalKlingons: g.galaxy.KlingonCount(),
		Docked:        g.Docked(),
	}
}

type lrsData struct {
	Centre models.Sector
	Rows   []string
}

// LongRangeGrid lays the surrounding summaries out as a 3x3 grid indexed
// [dy+1][dx+1]. Cells outside the galaxy read "***".
func (g *Game) LongRangeGrid() [3][3]string {
	var grid [3][3]string
	for i := range grid {
		for j := range grid[i] {
			grid[i][j] = "***"
		}
	}
	for _, s := range g.GetSurroundingQuadrants() {
		grid[s.Y-g.position.Y+1][s.X-g.position.X+1] = s.Symbol
	}
	return grid
}

func (g *Game) longRangeView() lrsData {
	grid := g.LongRangeGrid()
	rows := make([]string, 0, len(grid))
	for i, row := range grid {
		cells := make([]string, len(row))
		for j, cell := range row {
			if i == 1 && j == 1 {
				cells[j] = "[" + cell + "]"
			} else {
				cells[j] = " " + cell + " "
			}
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return lrsData{Centre: g.position, Rows: rows}
}

type attackLine struct {
	From   models.Sector
	Damage int
}

type turnData struct {
	Turn    int
	Attacks []attackLine
	Docked  bool
	Energy  int
	Shields int
	Status  string
}
