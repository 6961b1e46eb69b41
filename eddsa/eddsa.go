// Package eddsa implements deterministic Poseidon-EdDSA signing over
// Baby Jubjub. The nonce is SHA-512 over the little-endian secret and
// message scalars with no RFC-6979 style counter and no Ed25519 clamp:
// this matches the Loopring reference exactly and must not be "improved".
package eddsa

import (
	"github.com/tainnhan/loopring-sign/babyjubjub"
	"github.com/tainnhan/loopring-sign/errs"
	"github.com/tainnhan/loopring-sign/fr"
	"github.com/tainnhan/loopring-sign/internal/hashutil"
	"github.com/tainnhan/loopring-sign/poseidon"
)

// Signature is the triple (Rx, Ry, s) this module produces. The response
// s is reduced mod the full curve order E = 8L, not mod L, so it carries
// its own scalar type.
type Signature struct {
	Rx fr.Fr
	Ry fr.Fr
	S  fr.ScalarE
}

// Bytes concatenates the three 32-byte big-endian encodings.
func (s Signature) Bytes() [96]byte {
	var out [96]byte
	rx := s.Rx.Bytes()
	ry := s.Ry.Bytes()
	sb := s.S.Bytes()
	copy(out[0:32], rx[:])
	copy(out[32:64], ry[:])
	copy(out[64:96], sb[:])
	return out
}

// Sign produces a deterministic signature over message scalar m with
// secret scalar key:
//
//	r = le(SHA-512(le(key) || le(m))) mod L
//	R = r*B,  A = key*B
//	c = Poseidon([Rx, Ry, Ax, Ay, m])
//	s = (r + c*key) mod E
//
// Sign fails only when key is zero mod L, which has no public key.
func Sign(m fr.Fr, key fr.Fr) (Signature, error) {
	kInt := key.BigInt()
	if fr.NewScalarL(kInt).IsZero() {
		return Signature{}, errs.New(errs.Arithmetic, "eddsa: secret scalar is zero mod L")
	}

	kLE := key.BytesLE()
	mLE := m.BytesLE()
	r := hashutil.SHA512ScalarLE(fr.L, kLE[:], mLE[:])
	defer zero(kLE[:])

	R := babyjubjub.ScalarMul(r, babyjubjub.Base)
	A := babyjubjub.ScalarMul(kInt, babyjubjub.Base)

	c, err := poseidon.Loopring.Hash([]fr.Fr{R.X, R.Y, A.X, A.Y, m})
	if err != nil {
		return Signature{}, errs.Wrap(errs.Arithmetic, "eddsa: challenge hash failed", err)
	}

	// The response lives mod the full curve order, not mod L or mod p.
	sInt := c.BigInt()
	sInt.Mul(sInt, kInt)
	sInt.Add(sInt, r)
	s := fr.NewScalarE(sInt)

	r.SetInt64(0)
	kInt.SetInt64(0)

	return Signature{Rx: R.X, Ry: R.Y, S: s}, nil
}

// PublicKey returns key*B without producing a signature.
func PublicKey(key fr.Fr) babyjubjub.Point {
	return babyjubjub.ScalarMul(key.BigInt(), babyjubjub.Base)
}

// Verify checks s*B == R + c*A for the given message scalar and public
// key. It is not part of the signing surface but is useful for tests and
// for callers who want to sanity-check a signature they received.
func Verify(m fr.Fr, A babyjubjub.Point, sig Signature) (bool, error) {
	c, err := poseidon.Loopring.Hash([]fr.Fr{sig.Rx, sig.Ry, A.X, A.Y, m})
	if err != nil {
		return false, errs.Wrap(errs.Arithmetic, "eddsa: challenge hash failed", err)
	}

	lhs := babyjubjub.ScalarMul(sig.S.BigInt(), babyjubjub.Base)
	R := babyjubjub.Point{X: sig.Rx, Y: sig.Ry}
	cA := babyjubjub.ScalarMul(c.BigInt(), A)
	rhs := R.Add(cA)
	return lhs.Equal(rhs), nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
