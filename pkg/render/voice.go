package render

import "scenariogen/pkg/rng"

// Voice is a player's stylistic rendering mode.
type Voice string

const (
	Formal     Voice = "formal"
	Casual     Voice = "casual"
	Passionate Voice = "passionate"
	Neutral    Voice = "neutral"
)

// voiceCycle is PLAYER_VOICES from spec.md §8.
var voiceCycle = [5]Voice{Formal, Casual, Passionate, Neutral, Formal}

// VoiceFor returns the voice assigned to playerIndex (0-based) by the fixed
// 5-cycle.
func VoiceFor(playerIndex int) Voice {
	return voiceCycle[playerIndex%len(voiceCycle)]
}

var formalPrefixes = []string{
	"It is essential that ",
	"I insist that ",
	"It is required that ",
}

var casualPrefixes = []string{
	"I'd really like it if ",
	"I'm hoping ",
	"I'd love it if ",
}

var passionatePrefixes = []string{
	"I absolutely need ",
	"I am determined to see ",
	"I desperately want ",
}

func prefixListFor(v Voice) []string {
	switch v {
	case Formal:
		return formalPrefixes
	case Casual:
		return casualPrefixes
	case Passionate:
		return passionatePrefixes
	default:
		return nil
	}
}

// drawPrefix picks a uniform prefix for v from r, the player's own stream.
func drawPrefix(r *rng.RNG, v Voice) string {
	prefix, ok := rng.Choice(r, prefixListFor(v))
	if !ok {
		return ""
	}
	return prefix
}
