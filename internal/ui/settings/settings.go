// Package settings implements the menu for choosing game settings.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	topple "github.com/lowrycode/coin-tower-topple"
)

var (
	listSelectorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}).Render
	titleStyle        = lipgloss.NewStyle().Bold(true).Render
)

var heightChoiceRange = []int{10, 100}

// ActionSets are the sets of possible actions offered in the menu.
var ActionSets = [][]int{
	{1, 2, 3},
	{1, 2},
	{1, 3, 4},
	{1, 2, 3, 4},
	{2, 3, 5},
	{1, 4, 5},
}

// Settings are the options chosen in the menu.
type Settings struct {
	Difficulty    topple.Difficulty
	ToppleHeight  int
	Actions       []int
	ComputerFirst bool
}

// Default returns the settings the game starts with.
func Default() Settings {
	return Settings{
		Difficulty:   topple.Easy,
		ToppleHeight: 21,
		Actions:      []int{1, 2, 3},
	}
}

// Game returns the topple.Game described by s.
func (s Settings) Game() (topple.Game, error) {
	return topple.NewGame(s.ToppleHeight, s.Actions)
}

// String formats s as a settings summary.
func (s Settings) String() string {
	actions := make([]string, len(s.Actions))
	for i, a := range s.Actions {
		actions[i] = fmt.Sprint(a)
	}

	return fmt.Sprintf("GAME SETTINGS\n%-20s %s\n%-20s %d\n%-20s %s",
		"- Difficulty: ", s.Difficulty,
		"- Topple Height: ", s.ToppleHeight,
		"- Possible Actions: ", strings.Join(actions, ", "))
}

type choiceLevel int

const (
	choiceLevelFirst choiceLevel = iota
	choiceLevelDifficulty
	choiceLevelHeight
	choiceLevelActions
)

type Model struct {
	cursor      int
	choiceLevel choiceLevel
	header      string

	settings Settings

	// Done is true once every setting has been chosen.
	Done  bool
	clear bool
}

func InitialModel(header string) *Model {
	return &Model{
		header:   header,
		settings: Default(),
	}
}

func (m *Model) GetSettings() Settings {
	return m.settings
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) numChoices() int {
	switch m.choiceLevel {
	case choiceLevelFirst:
		return 2
	case choiceLevelDifficulty:
		return len(topple.Difficulties())
	case choiceLevelHeight:
		return heightChoiceRange[1] - heightChoiceRange[0] + 1
	default:
		return len(ActionSets)
	}
}

func (m *Model) choiceString(i int) string {
	switch m.choiceLevel {
	case choiceLevelFirst:
		return []string{"You", "Computer"}[i]
	case choiceLevelDifficulty:
		return topple.Difficulties()[i].String()
	case choiceLevelHeight:
		return fmt.Sprintf("%d coins", heightChoiceRange[0]+i)
	default:
		return fmt.Sprint(ActionSets[i])
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.clear = true
		return m, tea.Quit

	case "enter":
		switch m.choiceLevel {
		case choiceLevelFirst:
			m.settings.ComputerFirst = m.cursor == 1
		case choiceLevelDifficulty:
			m.settings.Difficulty = topple.Difficulties()[m.cursor]
		case choiceLevelHeight:
			m.settings.ToppleHeight = heightChoiceRange[0] + m.cursor
		case choiceLevelActions:
			m.settings.Actions = append([]int(nil), ActionSets[m.cursor]...)
		}

		m.choiceLevel++
		m.cursor = 0
		if m.choiceLevel > choiceLevelActions {
			m.Done = true
			m.clear = true
			return m, tea.Quit
		}

		return m, nil

	case "down", "j":
		m.cursor++
		if m.cursor >= m.numChoices() {
			m.cursor = 0
		}

	case "up", "k":
		m.cursor--
		if m.cursor < 0 {
			m.cursor = m.numChoices() - 1
		}
	}

	return m, nil
}

func (m *Model) View() string {
	if m.clear {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(m.header)
	s.WriteString(m.settings.String())
	s.WriteString("\n\n")

	switch m.choiceLevel {
	case choiceLevelFirst:
		s.WriteString(titleStyle("Who moves first?") + "\n")
	case choiceLevelDifficulty:
		s.WriteString(titleStyle("Choose difficulty:") + "\n")
	case choiceLevelHeight:
		s.WriteString(titleStyle("Choose topple height:") + "\n")
	case choiceLevelActions:
		s.WriteString(titleStyle("Choose possible actions:") + "\n")
	}

	aroundCursor := 3
	n := m.numChoices()
	minItem := m.cursor - aroundCursor
	maxItem := m.cursor + aroundCursor
	if minItem < 0 {
		maxItem = aroundCursor * 2
		minItem = 0
	}

	if maxItem >= n {
		minItem = max(n-1-aroundCursor*2, 0)
		maxItem = n - 1
	}

	for i := minItem; i <= maxItem; i++ {
		if m.cursor == i {
			s.WriteString(listSelectorStyle("(•) "))
		} else {
			s.WriteString(listSelectorStyle("( ) "))
		}

		s.WriteString(m.choiceString(i))
		s.WriteString("\n")
	}

	return s.String()
}
