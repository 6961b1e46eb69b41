// Package fr implements modular arithmetic over the three moduli this
// module needs: the Baby Jubjub subgroup scalar field Fr (prime p, equal
// to the BN254 scalar field prime), the Baby Jubjub subgroup order L, and
// the full curve order E = 8L. Keeping them as distinct Go types (Fr,
// ScalarL, ScalarE) prevents a value reduced by one modulus from being
// used where a value reduced by another is required — the moduli are easy
// to conflate and doing so silently produces invalid signatures.
package fr

import (
	"math/big"
	"strings"

	"github.com/tainnhan/loopring-sign/errs"
)

// P is the Baby Jubjub subgroup scalar field prime.
var P, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// L is the prime order of the Baby Jubjub large-prime-order subgroup.
var L, _ = new(big.Int).SetString("2736030358979909402780800718157159386076813972158567259200215660948447373041", 10)

// E is the full Baby Jubjub curve order, 8*L. EdDSA responses are reduced
// mod E, not mod L: the emitted s may exceed L (and even P), so it gets
// its own type below.
var E = new(big.Int).Mul(big.NewInt(8), L)

// Fr is a canonical element of [0, P).
type Fr struct{ v big.Int }

// ScalarL is a canonical element of [0, L).
type ScalarL struct{ v big.Int }

// --- Fr ---

// Zero returns the additive identity of Fr.
func Zero() Fr { return Fr{} }

// One returns the multiplicative identity of Fr.
func One() Fr {
	var f Fr
	f.v.SetInt64(1)
	return f
}

// NewFr reduces any integer into a canonical Fr.
func NewFr(x *big.Int) Fr {
	var f Fr
	f.v.Mod(x, P)
	return f
}

// FrFromUint64 reduces a small non-negative integer into Fr.
func FrFromUint64(x uint64) Fr {
	var f Fr
	f.v.SetUint64(x)
	return f
}

// BigInt returns the canonical representative as a fresh *big.Int.
func (a Fr) BigInt() *big.Int { return new(big.Int).Set(&a.v) }

func (a Fr) Add(b Fr) Fr {
	var r Fr
	r.v.Add(&a.v, &b.v)
	r.v.Mod(&r.v, P)
	return r
}

func (a Fr) Sub(b Fr) Fr {
	var r Fr
	r.v.Sub(&a.v, &b.v)
	r.v.Mod(&r.v, P)
	return r
}

func (a Fr) Neg() Fr {
	var r Fr
	r.v.Neg(&a.v)
	r.v.Mod(&r.v, P)
	return r
}

func (a Fr) Mul(b Fr) Fr {
	var r Fr
	r.v.Mul(&a.v, &b.v)
	r.v.Mod(&r.v, P)
	return r
}

func (a Fr) Square() Fr { return a.Mul(a) }

// Pow raises a to the e-th power (e a plain non-negative exponent, used
// for the Poseidon S-box e=5).
func (a Fr) Pow(e int64) Fr {
	var r Fr
	r.v.Exp(&a.v, big.NewInt(e), P)
	return r
}

// Inverse returns the multiplicative inverse of a. It fails with an
// ArithmeticError when a is zero, since zero has no inverse.
func (a Fr) Inverse() (Fr, error) {
	if a.IsZero() {
		return Fr{}, errs.New(errs.Arithmetic, "cannot invert zero in Fr")
	}
	var r Fr
	r.v.ModInverse(&a.v, P)
	return r, nil
}

func (a Fr) IsZero() bool { return a.v.Sign() == 0 }

func (a Fr) Equal(b Fr) bool { return a.v.Cmp(&b.v) == 0 }

// Bytes encodes a as 32 big-endian bytes.
func (a Fr) Bytes() [32]byte { return toBytes32(&a.v) }

// BytesLE encodes a as 32 little-endian bytes, the layout the nonce
// derivation hashes scalars in.
func (a Fr) BytesLE() [32]byte {
	be := toBytes32(&a.v)
	var out [32]byte
	for i := range be {
		out[i] = be[31-i]
	}
	return out
}

// FrFromBytes decodes 32 big-endian bytes into a canonical Fr.
func FrFromBytes(b []byte) Fr { return NewFr(new(big.Int).SetBytes(b)) }

// ParseFrHex parses a "0x"-prefixed hex string of 1 to 64 nibbles into a
// canonical Fr.
func ParseFrHex(s string) (Fr, error) {
	x, err := parseHex(s)
	if err != nil {
		return Fr{}, err
	}
	return NewFr(x), nil
}

// ParseFrDecimal parses a base-10 integer in the canonical range [0, P)
// into an Fr.
func ParseFrDecimal(s string) (Fr, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Fr{}, errs.New(errs.Parse, "not a base-10 integer: "+s)
	}
	if x.Sign() < 0 || x.Cmp(P) >= 0 {
		return Fr{}, errs.New(errs.Range, "integer out of [0, P) range: "+s)
	}
	return NewFr(x), nil
}

// --- ScalarL ---

func ZeroL() ScalarL { return ScalarL{} }

func NewScalarL(x *big.Int) ScalarL {
	var s ScalarL
	s.v.Mod(x, L)
	return s
}

func (a ScalarL) BigInt() *big.Int { return new(big.Int).Set(&a.v) }

func (a ScalarL) Add(b ScalarL) ScalarL {
	var r ScalarL
	r.v.Add(&a.v, &b.v)
	r.v.Mod(&r.v, L)
	return r
}

func (a ScalarL) Mul(b ScalarL) ScalarL {
	var r ScalarL
	r.v.Mul(&a.v, &b.v)
	r.v.Mod(&r.v, L)
	return r
}

func (a ScalarL) IsZero() bool { return a.v.Sign() == 0 }

func (a ScalarL) Equal(b ScalarL) bool { return a.v.Cmp(&b.v) == 0 }

func (a ScalarL) Bytes() [32]byte { return toBytes32(&a.v) }

// ParseScalarLHex parses a "0x"-prefixed hex scalar, reducing it mod L.
func ParseScalarLHex(s string) (ScalarL, error) {
	x, err := parseHex(s)
	if err != nil {
		return ScalarL{}, err
	}
	return NewScalarL(x), nil
}

// --- ScalarE ---

// ScalarE is a canonical element of [0, E): an EdDSA response scalar.
// E exceeds P, so a ScalarE cannot be carried in an Fr without silently
// re-reducing it.
type ScalarE struct{ v big.Int }

func NewScalarE(x *big.Int) ScalarE {
	var s ScalarE
	s.v.Mod(x, E)
	return s
}

func (a ScalarE) BigInt() *big.Int { return new(big.Int).Set(&a.v) }

func (a ScalarE) IsZero() bool { return a.v.Sign() == 0 }

func (a ScalarE) Equal(b ScalarE) bool { return a.v.Cmp(&b.v) == 0 }

func (a ScalarE) Bytes() [32]byte { return toBytes32(&a.v) }

// --- shared helpers ---

func toBytes32(x *big.Int) [32]byte {
	var out [32]byte
	b := x.Bytes()
	copy(out[32-len(b):], b)
	return out
}

func parseHex(s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" || len(s) > 64 {
		return nil, errs.New(errs.Parse, "hex string must be 1 to 64 nibbles")
	}
	x, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, errs.New(errs.Parse, "invalid hex characters in: "+s)
	}
	return x, nil
}
