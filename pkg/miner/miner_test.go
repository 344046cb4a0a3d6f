package miner

import (
	"math"
	"testing"

	"scenariogen/pkg/constraint"
	"scenariogen/pkg/finalstate"
	"scenariogen/pkg/house"
	"scenariogen/pkg/rng"
)

func TestMineNeverEmitsUnsatisfiedConstraints(t *testing.T) {
	dp := finalstate.ParamsFor(finalstate.Medium)
	for seed := uint32(0); seed < 15; seed++ {
		s := finalstate.Generate(rng.New(seed), 3, dp)
		for _, c := range Mine(s) {
			if !constraint.Evaluate(c, s) {
				t.Errorf("seed %d kind %s params %+v not satisfied", seed, c.Kind, c.Params)
			}
		}
	}
}

func TestMineEmitsAtLeastOneConstraintForANonTrivialState(t *testing.T) {
	dp := finalstate.ParamsFor(finalstate.Medium)
	s := finalstate.Generate(rng.New(7), 2, dp)
	if len(Mine(s)) == 0 {
		t.Error("Mine() returned no constraints for a non-trivial state")
	}
}

func TestMineRoomWallColorIs(t *testing.T) {
	s := house.New(2)
	name := s.RoomNames()[0]
	s.PaintRoom(name, house.Blue)

	found := false
	for _, c := range Mine(s) {
		if c.Kind == constraint.RoomWallColorIs && c.Params.Room == name && c.Params.Color == house.Blue {
			found = true
			if c.Score != 6.0 {
				t.Errorf("score = %v, want 6.0", c.Score)
			}
		}
	}
	if !found {
		t.Error("Mine() did not emit RoomWallColorIs for the painted room")
	}
}

func TestMineAllObjectTypeSameColorRequiresTwoInstances(t *testing.T) {
	s := house.New(4)
	names := s.RoomNames()
	s.AddObject(names[0], house.Lamp, house.Modern)

	for _, c := range Mine(s) {
		if c.Kind == constraint.AllObjectTypeSameColor {
			t.Error("AllObjectTypeSameColor emitted with only one instance placed")
		}
	}

	s.AddObject(names[1], house.Lamp, house.Modern)
	found := false
	for _, c := range Mine(s) {
		if c.Kind == constraint.AllObjectTypeSameColor && c.Params.Type == house.Lamp {
			found = true
			if c.Score != 7.5 {
				t.Errorf("score = %v, want 7.5", c.Score)
			}
		}
	}
	if !found {
		t.Error("Mine() did not emit AllObjectTypeSameColor with two matching instances")
	}
}

func TestMineAdjRoomsDiffWallScore(t *testing.T) {
	s := house.New(4)
	names := s.RoomNames()
	for i, name := range names {
		colors := []house.Color{house.Red, house.Blue, house.Yellow, house.Green}
		s.PaintRoom(name, colors[i%len(colors)])
	}
	adjSatisfied := constraint.Evaluate(constraint.Constraint{Kind: constraint.AdjRoomsDiffWall}, s)
	found := false
	for _, c := range Mine(s) {
		if c.Kind == constraint.AdjRoomsDiffWall {
			found = true
			if c.Score != 8.0 {
				t.Errorf("score = %v, want 8.0", c.Score)
			}
		}
	}
	if found != adjSatisfied {
		t.Errorf("AdjRoomsDiffWall emitted=%v, want %v", found, adjSatisfied)
	}
}

func TestExactlyNRoomsColorScoreTable(t *testing.T) {
	cases := []struct {
		n    int
		want float64
	}{
		{0, 7.0},
		{2, 7.0},
		{3, 5.5},
		{4, 4.0},
	}
	for _, c := range cases {
		if got := exactlyNScore(c.n); got != c.want {
			t.Errorf("exactlyNScore(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestAtLeastNScoreFormula(t *testing.T) {
	if got := atLeastNScore(4, 4); got != 6.5 {
		t.Errorf("atLeastNScore(4,4) = %v, want 6.5", got)
	}
	want := 4.0 + 2.5*(3.0/4.0)
	if got := atLeastNScore(3, 4); math.Abs(got-want) > 0.0001 {
		t.Errorf("atLeastNScore(3,4) = %v, want %v", got, want)
	}
}

func TestQuantityScoreCapsAtThree(t *testing.T) {
	cases := []struct {
		n    int
		want float64
	}{
		{0, 6.0},
		{3, 9.0},
		{10, 9.0},
	}
	for _, c := range cases {
		if got := quantityScore(c.n); got != c.want {
			t.Errorf("quantityScore(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}
