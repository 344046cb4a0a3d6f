package render

import (
	"strings"

	"github.com/sirupsen/logrus"

	"scenariogen/pkg/constraint"
	"scenariogen/pkg/rng"
)

// Renderer turns mined constraints into per-player rule text, logging each
// render at debug level.
type Renderer struct {
	logger *logrus.Logger
}

// NewRenderer constructs a Renderer. A nil logger defaults to logrus's
// standard logger.
func NewRenderer(logger *logrus.Logger) *Renderer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Renderer{logger: logger}
}

// ForPlayer renders c as the rule text a player with the given voice sees.
// Neutral voice returns the template verbatim; every other voice lowers
// the first character, strips the trailing period, rewrites modal verbs,
// and prepends a prefix drawn from r — the player's own dedicated stream,
// never shared with any other PRNG consumption (spec.md §4.8).
func (rd *Renderer) ForPlayer(r *rng.RNG, v Voice, c constraint.Constraint) string {
	base := fillTemplate(c)
	if v == Neutral {
		rd.logger.WithField("kind", c.Kind.String()).Debug("rendered neutral-voice rule text")
		return base
	}

	body := lowerFirst(strings.TrimSuffix(base, "."))
	body = rewriteModals(v, body)
	prefix := drawPrefix(r, v)
	text := prefix + body + "."

	rd.logger.WithFields(logrus.Fields{
		"kind":  c.Kind.String(),
		"voice": string(v),
	}).Debug("rendered voiced rule text")
	return text
}

// ForPlayer is the package-level convenience form of (*Renderer).ForPlayer,
// logging through logrus's standard logger.
func ForPlayer(r *rng.RNG, v Voice, c constraint.Constraint) string {
	return NewRenderer(nil).ForPlayer(r, v, c)
}
