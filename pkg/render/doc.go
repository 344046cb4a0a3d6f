// Package render turns constraint records into the natural-language rule
// text shown to players: a fixed per-kind template with placeholders filled
// from the constraint's params, then a per-player voice transform (spec.md
// §4.8).
package render
