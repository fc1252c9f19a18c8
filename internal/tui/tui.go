package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/trek/internal/engine"
	"github.com/tatianab/trek/internal/models"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateError
)

const metaHelp = "Console: /save [slot], /load [slot], /saves, /restart, /quit. Type help for ship orders."

// Options wires a model to a running game.
type Options struct {
	Game     *engine.Game
	SaveName string // default slot for /save and /load
	Seed     uint64 // seeds the placement source handed to loaders
	Logger   *slog.Logger
}

type model struct {
	state     sessionState
	game      *engine.Game
	saveName  string
	rng       *rand.Rand
	logger    *slog.Logger
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87AFD7")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	wonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true)
	lostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true)
)

func NewModel(opts Options) model {
	ti := textinput.New()
	ti.Placeholder = "Orders, Captain?"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	saveName := opts.SaveName
	if saveName == "" {
		saveName = "save"
	}

	m := model{
		state:     statePlaying,
		game:      opts.Game,
		saveName:  saveName,
		rng:       rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x10ad)),
		logger:    logger.With("component", "tui"),
		textInput: ti,
		viewport:  viewport.New(80, 20),
	}
	if opts.Game == nil {
		m.state = stateError
		m.err = errors.New("no game to play")
		return m
	}
	m.appendOutcome(opts.Game.LastActionReport())
	m.appendSystem(metaHelp)
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type savedMsg struct {
	name string
	err  error
}

type loadedMsg struct {
	name       string
	enterprise *models.Enterprise
	galaxy     *models.Galaxy
	err        error
}

type savesListedMsg struct {
	names []string
	err   error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state != statePlaying {
				return m, nil
			}
			action := strings.TrimSpace(m.textInput.Value())
			if action == "" {
				return m, nil
			}
			m.textInput.Reset()
			m.appendUser(action)
			if strings.HasPrefix(action, "/") {
				return m.console(action)
			}
			m.order(action)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = max(msg.Height-6, 1)
		m.refresh()

	case savedMsg:
		if msg.err != nil {
			m.logger.Warn("save failed", "slot", msg.name, "error", msg.err)
			m.appendSystem(fmt.Sprintf("Save to %q failed: %v", msg.name, msg.err))
			return m, nil
		}
		m.logger.Info("game saved", "slot", msg.name, "path", models.SavePath(msg.name))
		m.appendSystem(fmt.Sprintf("Saved to slot %q.", msg.name))
		return m, nil

	case loadedMsg:
		if msg.err == nil {
			msg.err = m.game.Load(msg.enterprise, msg.galaxy)
		}
		if msg.err != nil {
			m.logger.Warn("load failed", "slot", msg.name, "error", msg.err)
			m.appendSystem(fmt.Sprintf("Load from %q failed: %v", msg.name, msg.err))
			return m, nil
		}
		m.gameLog = ""
		m.appendSystem(fmt.Sprintf("Loaded slot %q.", msg.name))
		m.appendOutcome(m.game.LastActionReport())
		return m, nil

	case savesListedMsg:
		switch {
		case msg.err != nil:
			m.appendSystem(fmt.Sprintf("Could not list saves: %v", msg.err))
		case len(msg.names) == 0:
			m.appendSystem("No saves yet.")
		default:
			m.appendSystem("Saves: " + strings.Join(msg.names, ", "))
		}
		return m, nil
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// order hands a ship order to the game. Game calls stay on the update loop;
// only file I/O runs in commands.
func (m *model) order(action string) {
	outcome, status, err := m.game.ProcessTurn(action)
	switch {
	case errors.Is(err, engine.ErrGameOver):
		m.appendSystem("The game is over. Use /restart, /load or /quit.")
	case err != nil:
		m.appendSystem(err.Error())
	default:
		m.appendOutcome(outcome)
		m.announce(status)
	}
}

func (m model) console(action string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(action)
	slot := m.saveName
	if len(fields) > 1 {
		slot = fields[1]
	}

	switch fields[0] {
	case "/quit":
		return m, tea.Quit
	case "/restart":
		m.game.Restart()
		m.gameLog = ""
		m.appendOutcome(m.game.LastActionReport())
		return m, nil
	case "/save":
		return m, saveGame(slot, m.game.Export())
	case "/load":
		return m, loadGame(slot, m.rng.Uint64())
	case "/saves":
		return m, listSaves
	case "/help":
		m.appendSystem(metaHelp)
		return m, nil
	}
	m.appendSystem(fmt.Sprintf("Unknown console command %s. %s", fields[0], metaHelp))
	return m, nil
}

func (m *model) announce(status engine.Status) {
	switch status {
	case engine.StatusWon:
		m.gameLog += wonStyle.Render("MISSION ACCOMPLISHED") + "\n\n"
	case engine.StatusLost:
		m.gameLog += lostStyle.Render("THE ENTERPRISE IS LOST") + "\n\n"
	}
	m.refresh()
}

func (m *model) appendUser(action string) {
	m.gameLog += "\n" + userStyle.Width(m.logWidth()).Render("> "+action) + "\n\n"
	m.refresh()
}

func (m *model) appendOutcome(text string) {
	if text == "" {
		return
	}
	m.gameLog += gameStyle.Width(m.logWidth()).Render(text) + "\n\n"
	m.refresh()
}

func (m *model) appendSystem(text string) {
	m.gameLog += systemStyle.Width(m.logWidth()).Render(text) + "\n\n"
	m.refresh()
}

func (m *model) refresh() {
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	if m.width == 0 {
		return 80
	}
	return int(float64(m.width) * 0.6)
}

func (m model) View() string {
	if m.state == stateError {
		return fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.\n", m.err)
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderState(),
	)
	help := helpStyle.Render(metaHelp)
	s := lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	)
	return "\n" + s + "\n"
}

func saveGame(name, data string) tea.Cmd {
	return func() tea.Msg {
		s := models.NewSaver(data, models.SavePath(name))
		s.Save()
		return savedMsg{name: name, err: s.Err()}
	}
}

func loadGame(name string, seed uint64) tea.Cmd {
	return func() tea.Msg {
		l := models.NewLoader(models.SavePath(name), rand.New(rand.NewPCG(seed, seed^0x10ad)))
		l.Load()
		if !l.Success() {
			return loadedMsg{name: name, err: l.Err()}
		}
		return loadedMsg{name: name, enterprise: l.Enterprise(), galaxy: l.Galaxy()}
	}
}

func listSaves() tea.Msg {
	names, err := models.ListSaves()
	return savesListedMsg{names: names, err: err}
}

// Run starts the interactive program on the alternate screen.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
