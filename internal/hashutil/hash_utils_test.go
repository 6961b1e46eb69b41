package hashutil

import (
	"crypto/sha256"
	"math/big"
	"testing"
)

func TestRejectionSampleBounds(t *testing.T) {
	q := big.NewInt(97)
	e := big.NewInt(1000)
	got := RejectionSample(q, e)
	if got.Sign() < 0 || got.Cmp(q) >= 0 {
		t.Fatalf("sample %v out of [0, %v)", got, q)
	}
	if e.Cmp(big.NewInt(1000)) != 0 {
		t.Fatal("RejectionSample must not mutate its input")
	}
}

func TestEndiannessVariantsDiffer(t *testing.T) {
	q := new(big.Int).Lsh(big.NewInt(1), 256)
	data := []byte("endianness probe")
	be := SHA256ScalarBE(q, data)
	le := SHA256ScalarLE(q, data)
	if be.Cmp(le) == 0 {
		t.Fatal("big- and little-endian readings of the same digest should differ")
	}

	digest := sha256.Sum256(data)
	if be.Cmp(new(big.Int).SetBytes(digest[:])) != 0 {
		t.Fatal("SHA256ScalarBE must match a direct big-endian reading")
	}
}

func TestSHA512ScalarLEConcatenatesChunks(t *testing.T) {
	q := new(big.Int).Lsh(big.NewInt(1), 512)
	joined := SHA512ScalarLE(q, []byte("ab"), []byte("cd"))
	whole := SHA512ScalarLE(q, []byte("abcd"))
	if joined.Cmp(whole) != 0 {
		t.Fatal("chunked input must hash identically to the concatenation")
	}
}
