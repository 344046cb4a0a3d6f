package constraint

import (
	"fmt"

	"scenariogen/pkg/house"
)

// Params holds every field any catalogue kind might need. Only the fields a
// given Kind's arm in Evaluate reads are meaningful; the rest are zero. This
// mirrors spec's own tagged-union framing: one shape, interpreted per tag.
type Params struct {
	Room string
	Area house.AreaName

	Color  house.Color
	ColorB house.Color

	Style  house.Style
	StyleB house.Style

	Type  house.ObjectType
	TypeB house.ObjectType

	AreaB house.AreaName

	N int
}

// Key returns a canonical string uniquely identifying (kind, params),
// stable regardless of which fields happen to be zero for that kind — used
// by the assigner to dedupe candidates by "(kind, sorted-params)" per
// spec.md §4.6 step 2.
func Key(k Kind, p Params) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s|%s|%s|%s|%d",
		k, p.Room, p.Area, p.Color, p.ColorB, p.Style, p.StyleB, p.Type, p.TypeB, p.AreaB, p.N)
}
