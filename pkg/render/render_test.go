package render

import (
	"strings"
	"testing"

	"scenariogen/pkg/constraint"
	"scenariogen/pkg/house"
	"scenariogen/pkg/rng"
)

func TestVoiceForCycle(t *testing.T) {
	cases := []struct {
		index int
		want  Voice
	}{
		{0, Formal},
		{1, Casual},
		{2, Passionate},
		{3, Neutral},
		{4, Formal},
		{6, Casual},
	}
	for _, c := range cases {
		if got := VoiceFor(c.index); got != c.want {
			t.Errorf("VoiceFor(%d) = %v, want %v", c.index, got, c.want)
		}
	}
}

func TestForPlayerNeutralIsVerbatimTemplate(t *testing.T) {
	c := constraint.Constraint{Kind: constraint.RoomWallColorIs, Params: constraint.Params{Room: "Kitchen", Color: house.Red}}
	got := ForPlayer(rng.New(1), Neutral, c)
	if want := "The Kitchen wall must be painted Red."; got != want {
		t.Errorf("ForPlayer() = %q, want %q", got, want)
	}
}

func TestForPlayerFormalDropsModal(t *testing.T) {
	c := constraint.Constraint{Kind: constraint.RoomWallColorIs, Params: constraint.Params{Room: "Kitchen", Color: house.Red}}
	got := ForPlayer(rng.New(1), Formal, c)
	if strings.Contains(got, "must") {
		t.Errorf("ForPlayer() = %q, want no %q", got, "must")
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("ForPlayer() = %q, want trailing period", got)
	}
}

func TestForPlayerCasualRewritesMustToInfinitive(t *testing.T) {
	c := constraint.Constraint{Kind: constraint.RoomWallColorIs, Params: constraint.Params{Room: "Kitchen", Color: house.Red}}
	got := ForPlayer(rng.New(2), Casual, c)
	if !strings.Contains(got, "to be painted Red") {
		t.Errorf("ForPlayer() = %q, want to contain %q", got, "to be painted Red")
	}
}

func TestForPlayerPassionateRewritesMustNotToInfinitive(t *testing.T) {
	c := constraint.Constraint{Kind: constraint.RoomNoObjectType, Params: constraint.Params{Room: "Bedroom", Type: house.Lamp}}
	got := ForPlayer(rng.New(3), Passionate, c)
	if !strings.Contains(got, "not to contain") {
		t.Errorf("ForPlayer() = %q, want to contain %q", got, "not to contain")
	}
}

func TestForPlayerDeterministic(t *testing.T) {
	c := constraint.Constraint{Kind: constraint.AtLeastNColorObjects, Params: constraint.Params{Color: house.Blue, N: 2}}
	r1 := ForPlayer(rng.New(77), Casual, c)
	r2 := ForPlayer(rng.New(77), Casual, c)
	if r1 != r2 {
		t.Errorf("ForPlayer() not deterministic: %q != %q", r1, r2)
	}
}

func TestEveryKindHasATemplate(t *testing.T) {
	for k := constraint.RoomWallColorIs; k <= constraint.ColorCountGtColorCount; k++ {
		if _, ok := kindTemplates[k]; !ok {
			t.Errorf("missing template for kind %s", k.String())
		}
	}
}

func TestFillTemplateSubstitutesQuantityPlaceholders(t *testing.T) {
	c := constraint.Constraint{Kind: constraint.ExactlyNRoomsColor, Params: constraint.Params{Color: house.Green, N: 1}}
	got := fillTemplate(c)
	if want := "Exactly 1 room must have Green walls."; got != want {
		t.Errorf("fillTemplate() = %q, want %q", got, want)
	}
}

func TestFillTemplatePluralRoomWord(t *testing.T) {
	c := constraint.Constraint{Kind: constraint.ExactlyNRoomsColor, Params: constraint.Params{Color: house.Green, N: 2}}
	got := fillTemplate(c)
	if want := "Exactly 2 rooms must have Green walls."; got != want {
		t.Errorf("fillTemplate() = %q, want %q", got, want)
	}
}
