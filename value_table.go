package topple

import (
	"fmt"
)

// ValueTable stores the estimated value of playing each action from each
// non-toppled height. It is a dense table indexed by [height-1][action index],
// so every entry starts at zero.
type ValueTable struct {
	game   Game
	values [][]float64
}

// NewValueTable creates a zeroed ValueTable for the given game.
func NewValueTable(g Game) *ValueTable {
	values := make([][]float64, g.NumStates())
	for i := range values {
		values[i] = make([]float64, len(g.Actions))
	}

	return &ValueTable{
		game:   g,
		values: values,
	}
}

// Get returns the value of playing action at height. Pairs outside the
// table, including toppled heights and unknown actions, have value 0.
func (vt *ValueTable) Get(height, action int) float64 {
	row := vt.row(height)
	if row == nil {
		return 0.0
	}

	i := vt.game.ActionIndex(action)
	if i < 0 {
		return 0.0
	}

	return row[i]
}

// Set stores the value of playing action at height.
// It panics if the pair is outside the table.
func (vt *ValueTable) Set(height, action int, value float64) {
	row := vt.row(height)
	i := vt.game.ActionIndex(action)
	if row == nil || i < 0 {
		panic(fmt.Errorf("no table entry for height=%d action=%d in %v", height, action, vt.game))
	}

	row[i] = value
}

// Values returns the values of every action at height, in the order of
// the game's actions. The returned slice must not be modified.
func (vt *ValueTable) Values(height int) []float64 {
	row := vt.row(height)
	if row == nil {
		return make([]float64, len(vt.game.Actions))
	}

	return row
}

// MaxValue returns the largest action value at height.
func (vt *ValueTable) MaxValue(height int) float64 {
	row := vt.row(height)
	if row == nil {
		return 0.0
	}

	best := row[0]
	for _, v := range row[1:] {
		if v > best {
			best = v
		}
	}

	return best
}

func (vt *ValueTable) row(height int) []float64 {
	if !vt.game.IsValidState(height) {
		return nil
	}

	return vt.values[height-StartHeight]
}
