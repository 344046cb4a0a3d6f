package render

import (
	"strconv"
	"strings"

	"scenariogen/pkg/constraint"
	"scenariogen/pkg/house"
)

func fieldsFor(p constraint.Params) map[string]string {
	return map[string]string{
		"room":           p.Room,
		"area":           string(p.Area),
		"areaB":          string(p.AreaB),
		"color":          string(p.Color),
		"colorB":         string(p.ColorB),
		"n":              strconv.Itoa(p.N),
		"objTypeLower":   objTypeLower(p.Type),
		"objTypeBLower":  objTypeLower(p.TypeB),
		"objTypePlural":  objTypePlural(p.Type),
		"objTypeBPlural": objTypePlural(p.TypeB),
		"styleLower":     strings.ToLower(string(p.Style)),
		"styleBLower":    strings.ToLower(string(p.StyleB)),
		"roomWord":       roomWord(p.N),
		"objWord":        objWord(p.N),
	}
}

// objTypeLower is p.Type.Lower(), or "" for a constraint whose Params
// carries no object type at all.
func objTypeLower(t house.ObjectType) string {
	if t == "" {
		return ""
	}
	return t.Lower()
}

// objTypePlural is p.Type.Plural(), or "" for a constraint whose Params
// carries no object type at all.
func objTypePlural(t house.ObjectType) string {
	if t == "" {
		return ""
	}
	return t.Plural()
}

func roomWord(n int) string {
	if n == 1 {
		return "room"
	}
	return "rooms"
}

func objWord(n int) string {
	if n == 1 {
		return "object"
	}
	return "objects"
}

func substitute(tmpl string, fields map[string]string) string {
	pairs := make([]string, 0, len(fields)*2)
	for k, v := range fields {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// fillTemplate substitutes c's params into its kind's neutral-voice
// template. Panics if c.Kind has no registered template, which (like the
// evaluator's unknown-kind panic) indicates a broken catalogue
// registration rather than a recoverable runtime condition.
func fillTemplate(c constraint.Constraint) string {
	tmpl, ok := kindTemplates[c.Kind]
	if !ok {
		panic("render: no template registered for kind " + c.Kind.String())
	}
	return substitute(tmpl, fieldsFor(c.Params))
}
