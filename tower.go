package topple

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status is the state of a Tower.
type Status int

const (
	InProgress Status = iota
	Toppled
)

var statusStr = [...]string{
	InProgress: "IN_PROGRESS",
	Toppled:    "TOPPLED",
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return statusStr[s]
}

// Tower tracks a single game in play. Sides are numbered 0 (first to move) and 1.
type Tower struct {
	game   Game
	height int
	turn   int
	status Status
	loser  int
}

// NewTower starts a game of g at StartHeight with side 0 to move.
func NewTower(g Game) *Tower {
	return &Tower{
		game:   g,
		height: StartHeight,
		status: InProgress,
		loser:  -1,
	}
}

// String implements fmt.Stringer.
func (t *Tower) String() string {
	return fmt.Sprintf("Tower(height=%d/%d, turn=%d, %v)", t.height, t.game.Threshold, t.turn, t.status)
}

func (t *Tower) Game() Game {
	return t.game
}

func (t *Tower) Height() int {
	return t.height
}

func (t *Tower) Status() Status {
	return t.status
}

// Turn returns the number of moves played so far.
func (t *Tower) Turn() int {
	return t.turn
}

// Mover returns the side to move next. Once toppled, this is the side
// that did not topple the tower.
func (t *Tower) Mover() int {
	return t.turn % 2
}

// Loser returns the side that toppled the tower, or -1 if the game is in progress.
func (t *Tower) Loser() int {
	return t.loser
}

// Winner returns the side that did not topple the tower, or -1 if the game is in progress.
func (t *Tower) Winner() int {
	if t.status != Toppled {
		return -1
	}

	return 1 - t.loser
}

// Place adds action coins to the tower for the side to move.
func (t *Tower) Place(action int) error {
	if t.status == Toppled {
		return errors.Wrapf(ErrToppled, "at height %d", t.height)
	}

	if t.game.ActionIndex(action) < 0 {
		return errors.Wrapf(ErrIllegalAction, "%d not in %v", action, t.game.Actions)
	}

	mover := t.Mover()
	t.height += action
	t.turn++
	if t.game.IsToppled(t.height) {
		t.status = Toppled
		t.loser = mover
	}

	return nil
}
