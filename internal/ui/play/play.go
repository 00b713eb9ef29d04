// Package play implements the screen on which a human plays the computer.
package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang/glog"

	topple "github.com/lowrycode/coin-tower-topple"
)

var (
	humanStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#007e50ff", Dark: "#6afd76ff"}).Render
	computerStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0003adff", Dark: "#5f61fcff"}).Render
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#960000ff", Dark: "#fc7e7eff"}).Render
	coinStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8a880fff", Dark: "#ddda1dff"}).Render
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
)

const (
	human    = "You"
	computer = "Computer"
)

type botPlayer interface {
	ChooseAction(height int, exploreProbability float64) (int, error)
	Train(episodes int)
}

type trainedMsg struct{}

type Model struct {
	header     string
	bot        botPlayer
	difficulty topple.Difficulty
	episodes   int

	tower        *topple.Tower
	computerSide int
	cursor       int
	trained      bool
	spinner      spinner.Model
	log          []string
	err          error

	Replay bool
}

// InitialModel creates a game of g against bot. If episodes > 0 the bot is
// trained for that many episodes before play starts.
func InitialModel(header string, g topple.Game, bot botPlayer, difficulty topple.Difficulty, computerFirst bool, episodes int) *Model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	computerSide := 1
	if computerFirst {
		computerSide = 0
	}

	return &Model{
		header:       header,
		bot:          bot,
		difficulty:   difficulty,
		episodes:     episodes,
		tower:        topple.NewTower(g),
		computerSide: computerSide,
		trained:      episodes <= 0,
		spinner:      s,
	}
}

func (m *Model) Init() tea.Cmd {
	if !m.trained {
		return tea.Batch(m.spinner.Tick, m.train())
	}

	m.computerMove()
	return nil
}

func (m *Model) train() tea.Cmd {
	bot, episodes := m.bot, m.episodes
	return func() tea.Msg {
		bot.Train(episodes)
		return trainedMsg{}
	}
}

// Tower returns the game in play.
func (m *Model) Tower() *topple.Tower {
	return m.tower
}

func (m *Model) gameOver() bool {
	return m.tower.Status() == topple.Toppled || m.err != nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trainedMsg:
		m.trained = true
		m.computerMove()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			if m.gameOver() {
				m.Replay = m.err == nil
				return m, tea.Quit
			}

			if !m.trained {
				return m, nil
			}

			m.humanMove(m.tower.Game().Actions[m.cursor])
			m.computerMove()

		case "down", "right", "j":
			m.cursor = (m.cursor + 1) % len(m.tower.Game().Actions)

		case "up", "left", "k":
			n := len(m.tower.Game().Actions)
			m.cursor = (m.cursor + n - 1) % n
		}

	default:
		if m.trained {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) humanMove(action int) {
	if m.gameOver() || m.tower.Mover() == m.computerSide {
		return
	}

	if err := m.tower.Place(action); err != nil {
		m.err = err
		return
	}

	m.log = append(m.log, fmt.Sprintf("%s added %d (height %d)", humanStyle(human), action, m.tower.Height()))
}

func (m *Model) computerMove() {
	if m.gameOver() || m.tower.Mover() != m.computerSide {
		return
	}

	action, err := m.bot.ChooseAction(m.tower.Height(), m.difficulty.ExploreProbability())
	if err == nil {
		err = m.tower.Place(action)
	}

	if err != nil {
		glog.Errorf("computer failed to move from %v: %v", m.tower, err)
		m.err = err
		return
	}

	m.log = append(m.log, fmt.Sprintf("%s added %d (height %d)", computerStyle(computer), action, m.tower.Height()))
}

func (m *Model) View() string {
	s := strings.Builder{}
	s.WriteString(m.header)

	if !m.trained {
		fmt.Fprintf(&s, "Computer is practising %d games %s\n", m.episodes, m.spinner.View())
		return s.String()
	}

	g := m.tower.Game()
	height := min(m.tower.Height(), g.Threshold)
	fmt.Fprintf(&s, "Tower: %s%s %d/%d\n\n",
		coinStyle(strings.Repeat("●", height)),
		dimStyle(strings.Repeat("·", g.Threshold-height)),
		m.tower.Height(), g.Threshold)

	for _, line := range m.log {
		s.WriteString(line + "\n")
	}

	if m.err != nil {
		fmt.Fprintf(&s, "\n%s\n", cursorStyle(m.err.Error()))
		return s.String()
	}

	if m.gameOver() {
		loser, winner := human, computer
		if m.tower.Loser() == m.computerSide {
			loser, winner = computer, human
		}

		fmt.Fprintf(&s, "\nTOPPLED by %s. %s wins!\n", loser, winner)
		s.WriteString(dimStyle("enter: play again, q: quit") + "\n")
		return s.String()
	}

	s.WriteString("\nHow many coins will you add?\n")
	for i, a := range g.Actions {
		if m.cursor == i {
			s.WriteString(cursorStyle("(•) "))
		} else {
			s.WriteString(dimStyle("( ) "))
		}
		fmt.Fprintf(&s, "%d\n", a)
	}

	return s.String()
}
