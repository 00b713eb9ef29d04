// Package topple implements a tabular self-play learner for Coin Tower Topple,
// a two-player subtraction game.
//
// Players take turns adding one of a fixed set of coin counts to a tower.
// Whoever makes the tower reach or exceed the topple threshold loses.
package topple

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

var (
	ErrInvalidGame   = errors.New("invalid game")
	ErrInvalidParams = errors.New("invalid params")
	ErrInvalidState  = errors.New("invalid state")
	ErrIllegalAction = errors.New("illegal action")
	ErrToppled       = errors.New("tower has toppled")
)

// StartHeight is the tower height every game begins with.
const StartHeight = 1

// Game is the configuration of one subtraction game: the topple threshold
// and the coin counts a player may add on their turn.
type Game struct {
	Threshold int
	// Distinct and sorted ascending.
	Actions []int
}

// NewGame validates the given configuration and returns a Game with
// its actions sorted ascending.
func NewGame(threshold int, actions []int) (Game, error) {
	sorted := append([]int(nil), actions...)
	sort.Ints(sorted)
	g := Game{Threshold: threshold, Actions: sorted}
	if err := g.Validate(); err != nil {
		return Game{}, err
	}

	return g, nil
}

// Validate returns an error wrapping ErrInvalidGame if g cannot be played.
func (g Game) Validate() error {
	if g.Threshold <= 0 {
		return errors.Wrapf(ErrInvalidGame, "threshold must be > 0, got %d", g.Threshold)
	}

	if len(g.Actions) == 0 {
		return errors.Wrap(ErrInvalidGame, "at least one action is required")
	}

	for i, a := range g.Actions {
		if a <= 0 {
			return errors.Wrapf(ErrInvalidGame, "actions must be > 0, got %d", a)
		}

		if i > 0 && a <= g.Actions[i-1] {
			return errors.Wrapf(ErrInvalidGame, "actions must be distinct and ascending: %v", g.Actions)
		}
	}

	if g.Actions[0] >= g.Threshold {
		return errors.Wrapf(ErrInvalidGame, "smallest action %d must be below threshold %d",
			g.Actions[0], g.Threshold)
	}

	return nil
}

// String implements fmt.Stringer.
func (g Game) String() string {
	return fmt.Sprintf("Game(threshold=%d, actions=%v)", g.Threshold, g.Actions)
}

// NumStates returns the number of non-toppled heights, [1, Threshold-1].
func (g Game) NumStates() int {
	return g.Threshold - 1
}

// IsValidState returns true if height is a tower that has not toppled.
func (g Game) IsValidState(height int) bool {
	return height >= StartHeight && height < g.Threshold
}

// IsToppled returns true if a tower of the given height has toppled.
func (g Game) IsToppled(height int) bool {
	return height >= g.Threshold
}

// ActionIndex returns the position of action within g.Actions,
// or -1 if it is not a legal action.
func (g Game) ActionIndex(action int) int {
	i := sort.SearchInts(g.Actions, action)
	if i < len(g.Actions) && g.Actions[i] == action {
		return i
	}

	return -1
}

// ForcesTopple returns true if every action available at height topples
// the tower, so the player to move there is certain to lose.
// This depends on both the threshold and the full action set, so it is
// evaluated on each call.
func (g Game) ForcesTopple(height int) bool {
	for _, a := range g.Actions {
		if !g.IsToppled(height + a) {
			return false
		}
	}

	return true
}

// Reward returns the immediate reward to the player who adds action
// coins to a tower of the given height: -1 if they topple it, +1 if the
// opponent is left with no move that avoids toppling, and 0 otherwise.
func (g Game) Reward(height, action int) float64 {
	next := height + action
	if g.IsToppled(next) {
		return -1.0
	} else if g.ForcesTopple(next) {
		return 1.0
	}

	return 0.0
}
