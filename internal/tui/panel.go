package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tatianab/trek/internal/models"
)

var (
	gridBorder     = lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3C3C"))
	gridHeader     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	gridCell       = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	enterpriseCell = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD7FF")).Bold(true)
	klingonCell    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true)
	starbaseCell   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F"))
	currentCell    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD7FF")).Bold(true)
)

func (m model) renderState() string {
	g := m.game
	pos, quad := g.PlayerPosition(), g.GalaxyPosition()

	var b strings.Builder
	b.WriteString(titleStyle.Render("SHIP") + "\n")
	fmt.Fprintf(&b, "Stardate:  %d\n", g.TurnCount())
	fmt.Fprintf(&b, "Condition: %s\n", m.condition())
	fmt.Fprintf(&b, "Quadrant:  %d,%d\n", quad.X, quad.Y)
	fmt.Fprintf(&b, "Sector:    %d,%d\n", pos.X, pos.Y)
	fmt.Fprintf(&b, "Energy:    %d (%d spare)\n", g.PlayerEnergy(), g.SpareEnergy())
	fmt.Fprintf(&b, "Shields:   %d\n", g.PlayerShields())
	fmt.Fprintf(&b, "Torpedoes: %d\n", g.Torpedoes())
	fmt.Fprintf(&b, "Klingons:  %d left\n", g.TotalKlingonCount())
	fmt.Fprintf(&b, "Starbases: %d\n\n", g.TotalStarbaseCount())

	b.WriteString(titleStyle.Render("SECTORS") + "\n")
	b.WriteString(m.renderSectors() + "\n\n")
	b.WriteString(titleStyle.Render("LONG RANGE") + "\n")
	b.WriteString(m.renderLongRange())

	width := max(m.width-m.logWidth()-4, 30)
	return stateStyle.Width(width).Height(m.viewport.Height).Render(b.String())
}

func (m model) condition() string {
	switch {
	case m.game.HasWon():
		return wonStyle.Render("VICTORY")
	case m.game.HasLost():
		return lostStyle.Render("DESTROYED")
	case m.game.Docked():
		return "DOCKED"
	case m.game.LocalKlingonCount() > 0:
		return lostStyle.Render("RED")
	case m.game.PlayerEnergy() < 1000:
		return "YELLOW"
	}
	return wonStyle.Render("GREEN")
}

// renderSectors draws the short-range grid. Column 0 holds the row labels.
func (m model) renderSectors() string {
	grid := m.game.GetSymbolsForQuadrant()
	headers := []string{" "}
	rows := make([][]string, 0, models.GridSize)
	for x := range models.GridSize {
		headers = append(headers, strconv.Itoa(x))
	}
	for y, row := range grid {
		cells := []string{strconv.Itoa(y)}
		for _, symbol := range row {
			cells = append(cells, symbolStyle(symbol).Render(symbol))
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(gridBorder).
		BorderColumn(false).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return gridHeader
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

func symbolStyle(symbol string) lipgloss.Style {
	switch {
	case strings.HasPrefix(symbol, "{"):
		return enterpriseCell
	case symbol == models.KlingonSymbol:
		return klingonCell
	case symbol == models.StarbaseSymbol:
		return starbaseCell
	}
	return gridCell
}

// renderLongRange draws the 3x3 neighbourhood summary around the ship.
func (m model) renderLongRange() string {
	grid := m.game.LongRangeGrid()
	rows := make([][]string, 0, len(grid))
	for i, row := range grid {
		cells := make([]string, len(row))
		for j, summary := range row {
			if i == 1 && j == 1 {
				cells[j] = currentCell.Render(summary)
			} else {
				cells[j] = gridCell.Render(summary)
			}
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(gridBorder).
		BorderRow(true).
		Rows(rows...)
	return t.Render()
}
