// Package loopring exposes the two public operations this library
// implements: generating a Poseidon-EdDSA signature over Baby Jubjub for
// a canonicalised HTTP request, and deriving a layer-2 key triple from a
// layer-1 ECDSA signature.
package loopring

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/tainnhan/loopring-sign/canon"
	"github.com/tainnhan/loopring-sign/eddsa"
	"github.com/tainnhan/loopring-sign/errs"
	"github.com/tainnhan/loopring-sign/fr"
	"github.com/tainnhan/loopring-sign/keyderive"
	l2log "github.com/tainnhan/loopring-sign/log"
)

// Param is re-exported so callers don't need to import canon directly.
type Param = canon.Param

// GenerateEdDSASignature signs an HTTP request shape with a layer-2
// private key, returning the 194-character "0x"-prefixed hex signature:
// Rx, Ry and s concatenated as 32-byte big-endian words.
func GenerateEdDSASignature(method, rawURL string, params []Param, privateKeyHex string) (string, error) {
	key, err := parsePrivateKey(privateKeyHex)
	if err != nil {
		return "", err
	}

	m, err := canon.MsgHash(method, rawURL, params)
	if err != nil {
		return "", err
	}

	sig, err := eddsa.Sign(m, key)
	if err != nil {
		return "", err
	}

	l2log.Logger.Debugf("generated eddsa signature for a %s request", strings.ToUpper(method))
	return encodeSignature(sig), nil
}

// L2Keys is the (private_key, public_key_x, public_key_y) triple
// returned by GenerateL2Keys, each rendered as a "0x"-prefixed 32-byte
// hex string.
type L2Keys struct {
	PrivateKey string
	PublicKeyX string
	PublicKeyY string
}

// GenerateL2Keys derives a layer-2 key triple from a 65-byte ECDSA
// signature (hex-encoded, with or without a "0x" prefix).
func GenerateL2Keys(ecdsaSignatureHex string) (L2Keys, error) {
	keys, err := keyderive.Derive(ecdsaSignatureHex)
	if err != nil {
		return L2Keys{}, err
	}
	privBytes := keys.PrivateScalar.Bytes()
	xBytes := keys.PublicX.Bytes()
	yBytes := keys.PublicY.Bytes()
	return L2Keys{
		PrivateKey: "0x" + hex.EncodeToString(privBytes[:]),
		PublicKeyX: "0x" + hex.EncodeToString(xBytes[:]),
		PublicKeyY: "0x" + hex.EncodeToString(yBytes[:]),
	}, nil
}

// parsePrivateKey accepts 1 to 64 hex nibbles with an optional "0x"
// prefix and reduces the value into the scalar field, the same treatment
// the reference applies to its key input.
func parsePrivateKey(hexKey string) (fr.Fr, error) {
	key, err := fr.ParseFrHex(hexKey)
	if err != nil {
		return fr.Fr{}, errs.Wrap(errs.Parse, "invalid private key", err)
	}
	return key, nil
}

func encodeSignature(sig eddsa.Signature) string {
	b := sig.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

// ParseSignature decodes a "0x"-prefixed 194-character signature back
// into its (Rx, Ry, s) components, the inverse of GenerateEdDSASignature's
// encoding.
func ParseSignature(sigHex string) (eddsa.Signature, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(sigHex, "0x"), "0X")
	if len(trimmed) != 192 {
		return eddsa.Signature{}, errs.New(errs.Parse, fmt.Sprintf("signature must be 192 hex nibbles, got %d", len(trimmed)))
	}
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return eddsa.Signature{}, errs.Wrap(errs.Parse, "invalid hex in signature", err)
	}
	return eddsa.Signature{
		Rx: fr.FrFromBytes(b[0:32]),
		Ry: fr.FrFromBytes(b[32:64]),
		S:  fr.NewScalarE(new(big.Int).SetBytes(b[64:96])),
	}, nil
}
