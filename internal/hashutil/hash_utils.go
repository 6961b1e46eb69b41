// Package hashutil reduces classical hash digests into bounded scalars.
// Every scalar this module derives from SHA-256 or SHA-512 output goes
// through one of these helpers, so the choice of byte order and modulus
// is made in exactly one place per use.
package hashutil

import (
	"crypto/sha256"
	"crypto/sha512"
	"math/big"
)

// RejectionSample reduces eHash into [0, q). The reference derivations
// reduce directly; the name keeps the convention of treating the
// reduction as sampling the digest against the bound q.
func RejectionSample(q *big.Int, eHash *big.Int) *big.Int {
	return new(big.Int).Mod(eHash, q)
}

// SHA256ScalarBE hashes data with SHA-256, interprets the digest as a
// big-endian integer and reduces it mod q. Request message hashing uses
// this form.
func SHA256ScalarBE(q *big.Int, data []byte) *big.Int {
	digest := sha256.Sum256(data)
	return RejectionSample(q, new(big.Int).SetBytes(digest[:]))
}

// SHA256ScalarLE is the little-endian variant. Layer-2 key derivation
// interprets its SHA-256 digest this way.
func SHA256ScalarLE(q *big.Int, data []byte) *big.Int {
	digest := sha256.Sum256(data)
	return RejectionSample(q, leBytesToInt(digest[:]))
}

// SHA512ScalarLE hashes the concatenation of the given chunks with
// SHA-512, interprets all 64 digest bytes as a little-endian integer and
// reduces mod q. The deterministic EdDSA nonce uses this form.
func SHA512ScalarLE(q *big.Int, chunks ...[]byte) *big.Int {
	h := sha512.New()
	for _, c := range chunks {
		h.Write(c)
	}
	return RejectionSample(q, leBytesToInt(h.Sum(nil)))
}

func leBytesToInt(b []byte) *big.Int {
	rev := make([]byte, len(b))
	for i := range b {
		rev[i] = b[len(b)-1-i]
	}
	return new(big.Int).SetBytes(rev)
}
