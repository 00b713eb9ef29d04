package topple

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Difficulty is how strongly the computer opponent plays.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

var difficultyStr = [...]string{
	Easy:   "Easy",
	Medium: "Medium",
	Hard:   "Hard",
}

// Fraction of moves played at random instead of from the value table.
var exploreProbability = [...]float64{
	Easy:   0.66,
	Medium: 0.33,
	Hard:   0.0,
}

// Difficulties lists every difficulty from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// String implements fmt.Stringer.
func (d Difficulty) String() string {
	if !d.Valid() {
		return "Difficulty(" + strconv.Itoa(int(d)) + ")"
	}

	return difficultyStr[d]
}

// ExploreProbability returns the probability with which an opponent at
// this difficulty plays a random action. Invalid difficulties play at random.
func (d Difficulty) ExploreProbability() float64 {
	if !d.Valid() {
		return 1.0
	}

	return exploreProbability[d]
}

// ParseDifficulty parses a difficulty name (case-insensitive) or level number.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		d := Difficulty(n)
		if !d.Valid() {
			return 0, errors.Errorf("difficulty level must be in [%d, %d], got %d", Easy, Hard, n)
		}

		return d, nil
	}

	for _, d := range Difficulties() {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}

	return 0, errors.Errorf("unknown difficulty %q", s)
}
