// Package babyjubjub implements the Baby Jubjub twisted-Edwards curve
// (EIP-2494): affine point arithmetic, the fixed base point, and a
// constant-structure scalar multiplication ladder.
package babyjubjub

import (
	"math/big"

	"github.com/tainnhan/loopring-sign/errs"
	"github.com/tainnhan/loopring-sign/fr"
)

// A and D are the twisted-Edwards curve parameters:
// a*x^2 + y^2 = 1 + d*x^2*y^2 (mod p).
var (
	A = fr.FrFromUint64(168700)
	D = fr.FrFromUint64(168696)
)

// Point is an affine coordinate pair on the curve.
type Point struct {
	X fr.Fr
	Y fr.Fr
}

// Identity returns the curve's neutral element (0, 1).
func Identity() Point {
	return Point{X: fr.Zero(), Y: fr.One()}
}

// Base is the generator the Loopring protocol multiplies against. It is
// the generator of ethsnarks' jubjub module, which Loopring's own
// babyjub fork substitutes for the EIP-2494 B8 point; the layer-2 key
// derivation test vectors pin it exactly.
var Base = Point{
	X: fr.NewFr(NewIntFromString("16540640123574156134436876038791482806971768689494387082833631921987005038935")),
	Y: fr.NewFr(NewIntFromString("20819045374670962167435360035096875258406992893633759881276124905556507972311")),
}

// InCurve reports whether p satisfies a*x^2 + y^2 = 1 + d*x^2*y^2.
func (p Point) InCurve() bool {
	x2 := p.X.Square()
	y2 := p.Y.Square()
	lhs := A.Mul(x2).Add(y2)
	rhs := fr.One().Add(D.Mul(x2).Mul(y2))
	return lhs.Equal(rhs)
}

// Equal compares two points coordinate-wise.
func (p Point) Equal(q Point) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Add implements the complete twisted-Edwards addition law, valid for
// doubling (p == q) as well as distinct points.
func (p Point) Add(q Point) Point {
	x1y2 := p.X.Mul(q.Y)
	y1x2 := p.Y.Mul(q.X)
	y1y2 := p.Y.Mul(q.Y)
	x1x2 := p.X.Mul(q.X)
	dxxyy := D.Mul(x1x2).Mul(y1y2)

	xNum := x1y2.Add(y1x2)
	xDen := fr.One().Add(dxxyy)
	yNum := y1y2.Sub(A.Mul(x1x2))
	yDen := fr.One().Sub(dxxyy)

	xDenInv, err := xDen.Inverse()
	if err != nil {
		// Unreachable on this curve for valid inputs: 1 + d*x1*x2*y1*y2 is
		// never zero for points in the prime-order subgroup.
		panic("babyjubjub: degenerate addition denominator: " + err.Error())
	}
	yDenInv, err := yDen.Inverse()
	if err != nil {
		panic("babyjubjub: degenerate addition denominator: " + err.Error())
	}

	return Point{X: xNum.Mul(xDenInv), Y: yNum.Mul(yDenInv)}
}

// Double returns p + p.
func (p Point) Double() Point { return p.Add(p) }

// scalarBits is the fixed iteration count for ScalarMul: an upper bound
// on the bit length of any 32-byte scalar this module multiplies by.
const scalarBits = 256

// ScalarMul computes k*p using a constant-number-of-steps ladder: every
// one of the scalarBits iterations, most significant bit first, always
// computes a doubling and always computes an addition, selecting the
// result by an arithmetic mask rather than branching on the secret bit.
func ScalarMul(k *big.Int, p Point) Point {
	var kBytes [32]byte
	b := k.Bytes()
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(kBytes[32-len(b):], b)

	acc := Identity()
	for i := 0; i < scalarBits; i++ {
		byteIdx := i / 8
		bitIdx := uint(7 - i%8)
		bit := (kBytes[byteIdx] >> bitIdx) & 1

		doubled := acc.Double()
		added := doubled.Add(p)
		acc = selectPoint(bit, added, doubled)
	}
	return acc
}

// selectPoint returns a if bit == 1 else b, computed arithmetically (no
// branch on bit) via a field mask.
func selectPoint(bit byte, a, b Point) Point {
	mask := fr.FrFromUint64(uint64(bit))
	notMask := fr.One().Sub(mask)
	x := a.X.Mul(mask).Add(b.X.Mul(notMask))
	y := a.Y.Mul(mask).Add(b.Y.Mul(notMask))
	return Point{X: x, Y: y}
}

// ValidatePublic rejects the identity as a public key and any pair that
// does not satisfy the curve equation.
func ValidatePublic(p Point) error {
	if p.Equal(Identity()) {
		return errs.New(errs.Range, "babyjubjub: identity is not a valid public key")
	}
	if !p.InCurve() {
		return errs.New(errs.Range, "babyjubjub: point is not on the curve")
	}
	return nil
}
