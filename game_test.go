package topple

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewGame_SortsActions(t *testing.T) {
	g, err := NewGame(10, []int{4, 1, 3})
	if err != nil {
		t.Fatal(err)
	}

	if len(g.Actions) != 3 || g.Actions[0] != 1 || g.Actions[1] != 3 || g.Actions[2] != 4 {
		t.Errorf("expected sorted actions [1 3 4], got %v", g.Actions)
	}
}

func TestNewGame_DoesNotAliasInput(t *testing.T) {
	actions := []int{3, 1}
	g, err := NewGame(10, actions)
	if err != nil {
		t.Fatal(err)
	}

	actions[0] = 99
	if g.Actions[0] != 1 || g.Actions[1] != 3 {
		t.Errorf("game actions changed with caller's slice: %v", g.Actions)
	}
}

func TestNewGame_Invalid(t *testing.T) {
	for _, tc := range []struct {
		threshold int
		actions   []int
	}{
		{10, nil},
		{10, []int{}},
		{0, []int{1, 2}},
		{-5, []int{1}},
		{10, []int{0, 1}},
		{10, []int{-1, 2}},
		{10, []int{2, 2}},
		{3, []int{3, 4}},
		{1, []int{1}},
	} {
		_, err := NewGame(tc.threshold, tc.actions)
		if errors.Cause(err) != ErrInvalidGame {
			t.Errorf("NewGame(%d, %v): expected ErrInvalidGame, got %v", tc.threshold, tc.actions, err)
		}
	}
}

func TestGame_ActionIndex(t *testing.T) {
	g, _ := NewGame(10, []int{1, 3, 4})
	for a, want := range map[int]int{1: 0, 3: 1, 4: 2, 2: -1, 5: -1, 0: -1} {
		if got := g.ActionIndex(a); got != want {
			t.Errorf("ActionIndex(%d): expected %d, got %d", a, want, got)
		}
	}
}

func TestGame_Reward(t *testing.T) {
	g, _ := NewGame(10, []int{1, 3, 4})
	for _, tc := range []struct {
		height, action int
		want           float64
	}{
		{9, 1, -1},
		{6, 4, -1},
		{8, 1, 1}, // Every move from 9 topples.
		{5, 4, 1},
		{5, 3, 0},
		{1, 1, 0},
	} {
		if got := g.Reward(tc.height, tc.action); got != tc.want {
			t.Errorf("Reward(%d, %d): expected %v, got %v", tc.height, tc.action, tc.want, got)
		}
	}
}

func TestGame_ForcesTopple(t *testing.T) {
	g, _ := NewGame(10, []int{2, 3})
	for h := 1; h < 12; h++ {
		if want := h >= 8; g.ForcesTopple(h) != want {
			t.Errorf("ForcesTopple(%d): expected %v", h, want)
		}
	}
}

func TestValueTable_Defaults(t *testing.T) {
	g, _ := NewGame(5, []int{1, 2})
	vt := NewValueTable(g)
	for h := -1; h < 8; h++ {
		for _, a := range []int{0, 1, 2, 3} {
			if v := vt.Get(h, a); v != 0 {
				t.Errorf("Get(%d, %d): expected 0, got %v", h, a, v)
			}
		}

		if v := vt.MaxValue(h); v != 0 {
			t.Errorf("MaxValue(%d): expected 0, got %v", h, v)
		}

		if vs := vt.Values(h); len(vs) != 2 {
			t.Errorf("Values(%d): expected 2 values, got %v", h, vs)
		}
	}
}

func TestValueTable_SetGet(t *testing.T) {
	g, _ := NewGame(5, []int{1, 2})
	vt := NewValueTable(g)
	vt.Set(4, 2, -1)
	vt.Set(4, 1, -0.5)
	vt.Set(1, 1, 0.25)

	if v := vt.Get(4, 2); v != -1 {
		t.Errorf("expected -1, got %v", v)
	}

	if v := vt.MaxValue(4); v != -0.5 {
		t.Errorf("expected max -0.5, got %v", v)
	}

	if vs := vt.Values(1); vs[0] != 0.25 || vs[1] != 0 {
		t.Errorf("expected [0.25 0], got %v", vs)
	}
}

func TestValueTable_SetOutsideTablePanics(t *testing.T) {
	g, _ := NewGame(5, []int{1, 2})
	vt := NewValueTable(g)

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()

	vt.Set(5, 1, 1.0)
}

func TestTower_FirstPlayerTopples(t *testing.T) {
	g, _ := NewGame(5, []int{1, 2})
	tower := NewTower(g)
	if tower.Height() != StartHeight || tower.Status() != InProgress || tower.Mover() != 0 {
		t.Fatalf("unexpected initial tower: %v", tower)
	}

	for _, a := range []int{2, 1} { // 3, then 4.
		if err := tower.Place(a); err != nil {
			t.Fatal(err)
		}
	}

	if tower.Status() != InProgress || tower.Loser() != -1 || tower.Winner() != -1 {
		t.Fatalf("expected game in progress: %v", tower)
	}

	if err := tower.Place(2); err != nil { // 6: side 0 topples.
		t.Fatal(err)
	}

	if tower.Status() != Toppled {
		t.Fatalf("expected toppled tower: %v", tower)
	}

	if tower.Loser() != 0 || tower.Winner() != 1 {
		t.Errorf("expected side 0 to lose, got loser=%d winner=%d", tower.Loser(), tower.Winner())
	}

	if tower.Turn() != 3 || tower.Height() != 6 {
		t.Errorf("expected turn 3 at height 6, got %v", tower)
	}

	if err := tower.Place(1); errors.Cause(err) != ErrToppled {
		t.Errorf("expected ErrToppled, got %v", err)
	}
}

func TestTower_IllegalAction(t *testing.T) {
	g, _ := NewGame(5, []int{1, 2})
	tower := NewTower(g)
	if err := tower.Place(3); errors.Cause(err) != ErrIllegalAction {
		t.Errorf("expected ErrIllegalAction, got %v", err)
	}

	if tower.Height() != StartHeight || tower.Turn() != 0 {
		t.Errorf("illegal action changed the tower: %v", tower)
	}
}

func TestStatus_String(t *testing.T) {
	if InProgress.String() != "IN_PROGRESS" || Toppled.String() != "TOPPLED" {
		t.Errorf("unexpected status names: %v %v", InProgress, Toppled)
	}
}

func TestParseDifficulty(t *testing.T) {
	for s, want := range map[string]Difficulty{
		"easy": Easy, "Medium": Medium, " HARD ": Hard, "1": Easy, "2": Medium, "3": Hard,
	} {
		got, err := ParseDifficulty(s)
		if err != nil {
			t.Errorf("ParseDifficulty(%q): %v", s, err)
		} else if got != want {
			t.Errorf("ParseDifficulty(%q): expected %v, got %v", s, want, got)
		}
	}

	for _, s := range []string{"", "0", "4", "impossible"} {
		if _, err := ParseDifficulty(s); err == nil {
			t.Errorf("ParseDifficulty(%q): expected error", s)
		}
	}
}

func TestDifficulty_ExploreProbability(t *testing.T) {
	prev := 2.0
	for _, d := range Difficulties() {
		p := d.ExploreProbability()
		if p >= prev {
			t.Errorf("%v: expected explore probability below %v, got %v", d, prev, p)
		}
		prev = p
	}

	if Hard.ExploreProbability() != 0 {
		t.Errorf("expected Hard to always exploit, got %v", Hard.ExploreProbability())
	}

	if Difficulty(0).ExploreProbability() != 1 || Difficulty(0).String() != "Difficulty(0)" {
		t.Error("unexpected behavior for invalid difficulty")
	}
}
