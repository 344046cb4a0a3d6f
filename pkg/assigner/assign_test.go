package assigner

import (
	"testing"

	"scenariogen/pkg/constraint"
	"scenariogen/pkg/finalstate"
	"scenariogen/pkg/house"
	"scenariogen/pkg/miner"
	"scenariogen/pkg/rng"
)

func TestAssignNoConstraintKeyAppearsTwice(t *testing.T) {
	dp := finalstate.ParamsFor(finalstate.Medium)
	s := finalstate.Generate(rng.New(7), 3, dp)
	candidates := miner.Mine(s)

	a := Assign(rng.New(99), candidates, 3, dp.RulesPerPlayer, dp.WarmCoolBias)

	seen := map[string]bool{}
	for _, pa := range a.Players {
		for _, c := range pa.Constraints {
			key := c.Key()
			if seen[key] {
				t.Errorf("duplicate key %s", key)
			}
			seen[key] = true
		}
	}
}

func TestAssignFilledMatchesConstraintCount(t *testing.T) {
	dp := finalstate.ParamsFor(finalstate.Easy)
	s := finalstate.Generate(rng.New(3), 2, dp)
	candidates := miner.Mine(s)

	a := Assign(rng.New(5), candidates, 2, dp.RulesPerPlayer, dp.WarmCoolBias)
	for i, pa := range a.Players {
		if len(pa.Constraints) != a.Filled[i] {
			t.Errorf("player %d: len(Constraints) = %d, Filled = %d", i, len(pa.Constraints), a.Filled[i])
		}
	}
}

func TestAssignDeterministic(t *testing.T) {
	dp := finalstate.ParamsFor(finalstate.Medium)
	s := finalstate.Generate(rng.New(11), 4, dp)
	candidates := miner.Mine(s)

	a1 := Assign(rng.New(21), candidates, 4, dp.RulesPerPlayer, dp.WarmCoolBias)
	a2 := Assign(rng.New(21), candidates, 4, dp.RulesPerPlayer, dp.WarmCoolBias)

	for i := range a1.Players {
		if len(a1.Players[i].Constraints) != len(a2.Players[i].Constraints) {
			t.Fatalf("player %d: constraint count diverged between identical seeds", i)
		}
		for j := range a1.Players[i].Constraints {
			if a1.Players[i].Constraints[j].Key() != a2.Players[i].Constraints[j].Key() {
				t.Errorf("player %d rule %d: key diverged between identical seeds", i, j)
			}
		}
	}
}

func TestAssignHandlesShortCandidatePoolWithoutError(t *testing.T) {
	candidates := []constraint.Constraint{
		{Kind: constraint.RoomWallColorIs, Params: constraint.Params{Room: "Kitchen", Color: house.Red}, Score: 6.0},
	}
	a := Assign(rng.New(1), candidates, 3, 4, 1.5)
	total := 0
	for _, f := range a.Filled {
		total += f
	}
	if total != 1 {
		t.Errorf("total filled = %d, want 1", total)
	}
}

func TestDedupeKeepsHighestScore(t *testing.T) {
	low := constraint.Constraint{Kind: constraint.EqualRoomCountsTwoColors, Params: constraint.Params{Color: house.Red, ColorB: house.Blue}, Score: 3.0}
	high := constraint.Constraint{Kind: constraint.EqualRoomCountsTwoColors, Params: constraint.Params{Color: house.Blue, ColorB: house.Red}, Score: 9.0}

	out := dedupe([]constraint.Constraint{low, high})
	if len(out) != 1 {
		t.Fatalf("len(dedupe()) = %d, want 1", len(out))
	}
	if out[0].Score != 9.0 {
		t.Errorf("dedupe()[0].Score = %v, want 9.0", out[0].Score)
	}
}

func TestAdjustedScoreClampsToMinimum(t *testing.T) {
	ps := newPlayerState()
	ps.rooms["Kitchen"] = true
	ps.rooms["Bedroom"] = true
	ps.kinds[constraint.RoomWallColorIs] = true

	c := constraint.Constraint{Kind: constraint.RoomWallColorIs, Params: constraint.Params{Room: "Kitchen", Color: house.Red}, Score: 0.2}
	if got := adjustedScore(c, ps); got != 0.1 {
		t.Errorf("adjustedScore() = %v, want 0.1", got)
	}
}

func TestWarmCoolBiasMultipliesOnlyWarmCoolKinds(t *testing.T) {
	candidates := []constraint.Constraint{
		{Kind: constraint.RoomWallWarm, Params: constraint.Params{Room: "Kitchen"}, Score: 4.0},
		{Kind: constraint.RoomWallColorIs, Params: constraint.Params{Room: "Kitchen", Color: house.Red}, Score: 6.0},
	}
	out := applyWarmCoolBias(candidates, 2.0)
	if out[0].Score != 8.0 {
		t.Errorf("out[0].Score = %v, want 8.0", out[0].Score)
	}
	if out[1].Score != 6.0 {
		t.Errorf("out[1].Score = %v, want 6.0", out[1].Score)
	}
}
