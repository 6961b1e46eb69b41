package poseidon

import "github.com/tainnhan/loopring-sign/fr"

// Permute runs the Hades-style Poseidon permutation over state in place:
// nRoundsF/2 full rounds, then nRoundsP partial rounds, then nRoundsF/2
// more full rounds. Each round adds the single round constant C[r] to
// every lane, applies the S-box (all lanes in a full round, lane 0 in a
// partial round) and mixes through the MDS matrix. len(state) must equal
// p.T.
func (p *Params) Permute(state []fr.Fr) {
	half := p.NRoundsF / 2
	total := p.NRoundsF + p.NRoundsP

	for r := 0; r < total; r++ {
		for i := range state {
			state[i] = state[i].Add(p.C[r])
		}

		full := r < half || r >= half+p.NRoundsP
		if full {
			for i := range state {
				state[i] = state[i].Pow(p.SBoxExp)
			}
		} else {
			state[0] = state[0].Pow(p.SBoxExp)
		}

		p.mix(state)
	}
}

func (p *Params) mix(state []fr.Fr) {
	out := make([]fr.Fr, p.T)
	for i := 0; i < p.T; i++ {
		acc := fr.Zero()
		for j := 0; j < p.T; j++ {
			acc = acc.Add(p.M[i][j].Mul(state[j]))
		}
		out[i] = acc
	}
	copy(state, out)
}
