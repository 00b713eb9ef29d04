// Package ui runs the interactive Coin Tower Topple game in the terminal.
package ui

import (
	"fmt"
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	topple "github.com/lowrycode/coin-tower-topple"
	"github.com/lowrycode/coin-tower-topple/internal/ui/play"
	"github.com/lowrycode/coin-tower-topple/internal/ui/settings"
)

// Service plays games against an agent trained for the chosen settings.
type Service struct {
	params   topple.Params
	episodes int
	rng      *rand.Rand
}

func New(params topple.Params, episodes int, rng *rand.Rand) *Service {
	return &Service{
		params:   params,
		episodes: episodes,
		rng:      rng,
	}
}

// Play shows the settings menu, then plays games until the user quits.
func (s *Service) Play() error {
	settingsModel := settings.InitialModel(header())
	if _, err := tea.NewProgram(settingsModel, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "settings menu")
	}

	if !settingsModel.Done {
		return nil
	}

	opts := settingsModel.GetSettings()
	g, err := opts.Game()
	if err != nil {
		return err
	}

	agent, err := topple.NewAgent(g, s.params, s.rng)
	if err != nil {
		return err
	}

	glog.Infof("Playing %v at difficulty %v", g, opts.Difficulty)
	episodes := s.episodes
	for {
		gameModel := play.InitialModel(header(), g, agent, opts.Difficulty, opts.ComputerFirst, episodes)
		if _, err := tea.NewProgram(gameModel, tea.WithAltScreen()).Run(); err != nil {
			return errors.Wrap(err, "game")
		}

		if t := gameModel.Tower(); t.Status() == topple.Toppled {
			glog.V(1).Infof("Game over after %d turns, loser side %d", t.Turn(), t.Loser())
		}

		if !gameModel.Replay {
			return nil
		}

		// The agent keeps its value table between games.
		episodes = 0
	}
}

var (
	headerStyle1 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b58904ff", Dark: "#ddb81dff"}).Render
	headerStyle2 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#19b504ff", Dark: "#19b504ff"}).Render
)

func header() string {
	return fmt.Sprintf("%s %s %s\n\n",
		headerStyle2("####"),
		headerStyle1("COIN TOWER TOPPLE"),
		headerStyle2("####"),
	)
}
