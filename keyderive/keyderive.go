// Package keyderive implements layer-2 key derivation from a layer-1
// ECDSA signature: the SHA-256 digest of the 65 signature bytes, read
// little-endian and reduced mod L, is the layer-2 private scalar, and
// the public key is its multiple of the base point.
package keyderive

import (
	"encoding/hex"
	"strings"

	"github.com/tainnhan/loopring-sign/babyjubjub"
	"github.com/tainnhan/loopring-sign/errs"
	"github.com/tainnhan/loopring-sign/fr"
	"github.com/tainnhan/loopring-sign/internal/hashutil"
)

// ecdsaSigNibbles is the expected hex length of a 65-byte r||s||v ECDSA
// signature, after stripping an optional "0x" prefix.
const ecdsaSigNibbles = 130

// Keys is the layer-2 key triple this module derives.
type Keys struct {
	PrivateScalar fr.ScalarL
	PublicX       fr.Fr
	PublicY       fr.Fr
}

// Derive maps a hex-encoded 65-byte ECDSA signature to a layer-2 key
// triple. It is a pure function: the same input always yields the same
// output.
func Derive(ecdsaSigHex string) (Keys, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(ecdsaSigHex, "0x"), "0X")
	if len(trimmed) != ecdsaSigNibbles {
		return Keys{}, errs.New(errs.Parse, "ECDSA signature must be exactly 130 hex nibbles (65 bytes)")
	}
	sigBytes, err := hex.DecodeString(trimmed)
	if err != nil {
		return Keys{}, errs.Wrap(errs.Parse, "invalid hex in ECDSA signature", err)
	}

	privateScalar := fr.NewScalarL(hashutil.SHA256ScalarLE(fr.L, sigBytes))
	if privateScalar.IsZero() {
		// A digest that is an exact multiple of L. The identity is not a
		// valid public key, so this signature cannot derive one.
		return Keys{}, errs.New(errs.Arithmetic, "derived scalar is zero mod L")
	}

	pub := babyjubjub.ScalarMul(privateScalar.BigInt(), babyjubjub.Base)
	if err := babyjubjub.ValidatePublic(pub); err != nil {
		return Keys{}, err
	}

	return Keys{
		PrivateScalar: privateScalar,
		PublicX:       pub.X,
		PublicY:       pub.Y,
	}, nil
}
