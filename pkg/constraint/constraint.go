package constraint

// Constraint pairs a catalogue Kind and its Params with the salience score
// the miner assigned it (see pkg/miner). Score is mutable after mining —
// the assigner multiplies warm/cool-related scores by a bias factor (spec
// §4.6 step 1) before ranking candidates.
type Constraint struct {
	Kind   Kind
	Params Params
	Score  float64
}

// Key returns the canonical dedup key for c.
func (c Constraint) Key() string {
	return Key(c.Kind, c.Params)
}
