// Package poseidon implements the Poseidon permutation and hash used by
// the Loopring protocol: state width t=6, 6 full rounds, 52 partial
// rounds, x^5 S-box, with round constants and MDS matrix expanded from
// the seed strings "poseidon_constants" and "poseidon_matrix_0000".
package poseidon

import (
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/tainnhan/loopring-sign/fr"
)

// Params holds one fully-specified Poseidon instance: state width t, the
// full/partial round counts, one round constant per round, and the t*t
// MDS matrix.
type Params struct {
	T        int
	NRoundsF int
	NRoundsP int
	SBoxExp  int64
	C        []fr.Fr
	M        [][]fr.Fr
}

// Loopring is the instance the protocol signs with (t=6, full=6,
// partial=52). Both the EdDSA challenge and any direct field-element
// hashing go through it.
var Loopring *Params

func init() {
	Loopring = NewParams(6, 6, 52)
}

// NewParams expands a Poseidon instance from the fixed seed strings. The
// expansion must match the reference bit-for-bit: each constant is the
// BLAKE2b-256 digest chain of the seed, read little-endian and reduced
// mod p, and the MDS matrix is the Cauchy matrix 1/(x_i - y_j) over a
// second chain.
func NewParams(t, nRoundsF, nRoundsP int) *Params {
	return &Params{
		T:        t,
		NRoundsF: nRoundsF,
		NRoundsP: nRoundsP,
		SBoxExp:  5,
		C:        expandConstants("poseidon_constants", nRoundsF+nRoundsP),
		M:        expandMatrix("poseidon_matrix_0000", t),
	}
}

// expandConstants derives n field elements by chaining BLAKE2b-256 over
// the seed: h_0 = H(seed), h_i = H(h_{i-1}), with each digest read as a
// little-endian integer mod p.
func expandConstants(seed string, n int) []fr.Fr {
	out := make([]fr.Fr, n)
	h := blakeDigest([]byte(seed))
	for i := 0; i < n; i++ {
		out[i] = fr.NewFr(leToInt(h))
		h = blakeDigest(h)
	}
	return out
}

// expandMatrix builds the t*t Cauchy matrix M[i][j] = 1/(x_i - y_j)
// where (x_0..x_{t-1}, y_0..y_{t-1}) are the first 2t constants of the
// matrix seed chain. Distinct chain values keep every denominator
// nonzero, which is what makes the matrix MDS.
func expandMatrix(seed string, t int) [][]fr.Fr {
	c := expandConstants(seed, t*2)
	m := make([][]fr.Fr, t)
	for i := 0; i < t; i++ {
		m[i] = make([]fr.Fr, t)
		for j := 0; j < t; j++ {
			inv, err := c[i].Sub(c[t+j]).Inverse()
			if err != nil {
				// Two chain values collided; the expansion is then not the
				// reference expansion at all.
				panic("poseidon: degenerate matrix seed chain: " + err.Error())
			}
			m[i][j] = inv
		}
	}
	return m
}

func blakeDigest(b []byte) []byte {
	h := blake2b.Sum256(b)
	return h[:]
}

func leToInt(b []byte) *big.Int {
	rev := make([]byte, len(b))
	for i := range b {
		rev[i] = b[len(b)-1-i]
	}
	return new(big.Int).SetBytes(rev)
}
