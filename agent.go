package topple

import (
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/lowrycode/coin-tower-topple/internal/sampling"
)

// Agent learns action values for a Game by self-play and chooses
// actions from them.
//
// Both sides of the game share one ValueTable: each estimate is from the
// point of view of the player making the move.
//
// Agent is not safe for concurrent use.
type Agent struct {
	game     Game
	params   Params
	table    *ValueTable
	rng      *rand.Rand
	episodes int

	slicePool *intSlicePool
}

// NewAgent creates an untrained Agent for g. If rng is nil, a randomly
// seeded source is used.
func NewAgent(g Game, params Params, rng *rand.Rand) (*Agent, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return &Agent{
		game:      g,
		params:    params,
		table:     NewValueTable(g),
		rng:       rng,
		slicePool: &intSlicePool{},
	}, nil
}

func (a *Agent) Game() Game {
	return a.game
}

func (a *Agent) Params() Params {
	return a.params
}

// Table returns the agent's value table. It must not be modified.
func (a *Agent) Table() *ValueTable {
	return a.table
}

// Episodes returns the total number of self-play episodes trained so far.
func (a *Agent) Episodes() int {
	return a.episodes
}

// Value returns the current estimate for playing action at height,
// or 0 if the pair has never been updated.
func (a *Agent) Value(height, action int) float64 {
	return a.table.Get(height, action)
}

// ChooseAction returns the action to play from height. With probability
// exploreProbability (clamped to [0, 1]) it is chosen uniformly at random;
// otherwise it is one of the actions with the highest value, with ties
// broken uniformly at random.
//
// An action is always returned for a valid height, even if every action
// topples the tower.
func (a *Agent) ChooseAction(height int, exploreProbability float64) (int, error) {
	if !a.game.IsValidState(height) {
		return 0, errors.Wrapf(ErrInvalidState, "height %d outside [%d, %d]",
			height, StartHeight, a.game.Threshold-1)
	}

	return a.chooseAction(height, exploreProbability), nil
}

// Train runs the given number of self-play episodes, refining the
// existing value estimates.
func (a *Agent) Train(episodes int) {
	if episodes <= 0 {
		return
	}

	updates := 0
	for i := 1; i <= episodes; i++ {
		updates += a.runEpisode()
		a.episodes++
		if episodes >= 10 && i%(episodes/10) == 0 {
			glog.V(2).Infof("[episode=%d/%d] %d updates", i, episodes, updates)
		}
	}

	glog.V(1).Infof("Trained %d episodes (%d total) with %d updates on %v",
		episodes, a.episodes, updates, a.game)
}

// runEpisode simulates one game from the starting height with both
// sides exploring fully, backing up every move. It returns the number
// of moves played.
func (a *Agent) runEpisode() int {
	height := StartHeight
	moves := 0
	for {
		action := a.chooseAction(height, 1.0)
		reward := a.game.Reward(height, action)
		a.update(height, action, reward)
		moves++

		next := height + action
		if a.game.IsToppled(next) {
			return moves
		}

		height = next
	}
}

// update applies a one-step temporal-difference backup to the value of
// playing action at height. The future value is taken from the position
// reached after the opponent's greedy reply.
func (a *Agent) update(height, action int, reward float64) {
	next := height + action
	reply := a.chooseAction(next, 0.0)
	future := a.table.MaxValue(next + reply)

	value := a.table.Get(height, action)
	value += a.params.LearningRate * (reward + a.params.Discount*future - value)
	a.table.Set(height, action, value)
}

// chooseAction is ChooseAction without the height check. Heights outside
// the table have all-zero values, so the greedy choice there is uniform.
func (a *Agent) chooseAction(height int, exploreProbability float64) int {
	if sampling.Explore(a.rng, exploreProbability) || !a.game.IsValidState(height) {
		return sampling.SampleOne(a.rng, a.game.Actions)
	}

	best := sampling.ArgMaxAll(a.slicePool.alloc(), a.table.Values(height))
	i := sampling.SampleOne(a.rng, best)
	a.slicePool.free(best)
	return a.game.Actions[i]
}
