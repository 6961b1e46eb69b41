package poseidon

import (
	"github.com/tainnhan/loopring-sign/errs"
	"github.com/tainnhan/loopring-sign/fr"
)

// Hash absorbs a sequence of at most T field elements into one Fr
// output. Inputs occupy the leading lanes of the state and the rest stay
// zero; there is no multi-block absorption, so callers must pre-pack
// their input to fit one state.
func (p *Params) Hash(inputs []fr.Fr) (fr.Fr, error) {
	if len(inputs) > p.T {
		return fr.Fr{}, errs.New(errs.Range, "poseidon: too many inputs for state width")
	}

	state := make([]fr.Fr, p.T)
	copy(state, inputs)

	p.Permute(state)
	return state[0], nil
}
