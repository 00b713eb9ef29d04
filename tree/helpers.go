// Package tree walks the game tree of a subtraction game and solves it exactly.
package tree

import (
	topple "github.com/lowrycode/coin-tower-topple"
)

// Visit calls visitor once for every height reachable from the start of g
// without toppling, in ascending order.
func Visit(g topple.Game, visitor func(height int)) {
	reachable := make([]bool, g.Threshold)
	reachable[topple.StartHeight] = true
	for h := topple.StartHeight; h < g.Threshold; h++ {
		if !reachable[h] {
			continue
		}

		visitor(h)
		for _, a := range g.Actions {
			if next := h + a; next < g.Threshold {
				reachable[next] = true
			}
		}
	}
}

func CountStates(g topple.Game) int {
	total := 0
	Visit(g, func(int) { total++ })
	return total
}

// Solution labels every non-toppled height of a game as won or lost for
// the player to move, assuming optimal play by both sides.
type Solution struct {
	game topple.Game
	win  []bool
}

// Solve computes the Solution of g by backward induction from the threshold.
func Solve(g topple.Game) Solution {
	win := make([]bool, g.Threshold)
	for h := g.Threshold - 1; h >= topple.StartHeight; h-- {
		for _, a := range g.Actions {
			next := h + a
			if next < g.Threshold && !win[next] {
				win[h] = true
				break
			}
		}
	}

	return Solution{game: g, win: win}
}

// IsWin returns true if the player to move at height can force a win.
// Toppled heights are never wins for the player to move.
func (s Solution) IsWin(height int) bool {
	if !s.game.IsValidState(height) {
		return false
	}

	return s.win[height]
}

// WinningActions returns the actions at height that leave the opponent
// in a lost position without toppling the tower.
func (s Solution) WinningActions(height int) []int {
	if !s.game.IsValidState(height) {
		return nil
	}

	var result []int
	for _, a := range s.game.Actions {
		next := height + a
		if next < s.game.Threshold && !s.win[next] {
			result = append(result, a)
		}
	}

	return result
}
