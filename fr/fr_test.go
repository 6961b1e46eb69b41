package fr

import (
	"math/big"
	"testing"
)

func TestAddSubRoundTrip(t *testing.T) {
	x := NewFr(big.NewInt(123456789))
	y := NewFr(big.NewInt(987654321))
	if got := x.Add(y).Sub(y); !got.Equal(x) {
		t.Fatalf("(x+y)-y != x: got %v want %v", got.BigInt(), x.BigInt())
	}
}

func TestInverse(t *testing.T) {
	x := NewFr(big.NewInt(42))
	inv, err := x.Inverse()
	if err != nil {
		t.Fatalf("Inverse() failed: %v", err)
	}
	if got := x.Mul(inv); !got.Equal(One()) {
		t.Fatalf("x*inv(x) != 1: got %v", got.BigInt())
	}
	if got, err := inv.Inverse(); err != nil || !got.Equal(x) {
		t.Fatalf("inv(inv(x)) != x: got %v, err %v", got.BigInt(), err)
	}
}

func TestInverseZeroFails(t *testing.T) {
	if _, err := Zero().Inverse(); err == nil {
		t.Fatal("expected an error inverting zero")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	x := NewFr(big.NewInt(1234567890123))
	b := x.Bytes()
	if len(b) != 32 {
		t.Fatalf("expected 32 bytes, got %d", len(b))
	}
	got := FrFromBytes(b[:])
	if !got.Equal(x) {
		t.Fatalf("byte round trip mismatch: got %v want %v", got.BigInt(), x.BigInt())
	}
}

func TestParseFrHex(t *testing.T) {
	got, err := ParseFrHex("0x2a")
	if err != nil {
		t.Fatalf("ParseFrHex failed: %v", err)
	}
	if want := NewFr(big.NewInt(42)); !got.Equal(want) {
		t.Fatalf("got %v want %v", got.BigInt(), want.BigInt())
	}
}

func TestParseFrHexRejectsOverlong(t *testing.T) {
	// 65 nibbles exceeds the spec's 1-64 nibble bound.
	long := "12345678901234567890123456789012345678901234567890123456789012345"
	if _, err := ParseFrHex(long); err == nil {
		t.Fatal("expected an error for an over-long hex string")
	}
}

func TestParseFrDecimalRejectsOutOfRange(t *testing.T) {
	tooBig := new(big.Int).Add(P, big.NewInt(1)).String()
	if _, err := ParseFrDecimal(tooBig); err == nil {
		t.Fatal("expected a range error for a value >= P")
	}
}

func TestBytesLEReversesBytes(t *testing.T) {
	x := NewFr(big.NewInt(0x0102))
	le := x.BytesLE()
	if le[0] != 0x02 || le[1] != 0x01 || le[31] != 0 {
		t.Fatalf("unexpected little-endian layout: %x", le)
	}
}

func TestScalarEReducesModCurveOrder(t *testing.T) {
	x := NewScalarE(new(big.Int).Add(E, big.NewInt(9)))
	want := NewScalarE(big.NewInt(9))
	if !x.Equal(want) {
		t.Fatalf("expected E+9 to reduce to 9 mod E, got %v", x.BigInt())
	}
}

func TestCurveOrderIsEightTimesSubgroupOrder(t *testing.T) {
	want := new(big.Int).Mul(big.NewInt(8), L)
	if E.Cmp(want) != 0 {
		t.Fatalf("E != 8*L")
	}
}

func TestScalarEHoldsValuesAboveP(t *testing.T) {
	// E exceeds P, so a response scalar in [P, E) must survive intact.
	v := new(big.Int).Add(P, big.NewInt(1))
	if v.Cmp(E) >= 0 {
		t.Skip("unexpected modulus relation")
	}
	s := NewScalarE(v)
	if s.BigInt().Cmp(v) != 0 {
		t.Fatal("ScalarE re-reduced a value that is canonical mod E")
	}
}

func TestScalarLReduces(t *testing.T) {
	x := NewScalarL(new(big.Int).Add(L, big.NewInt(5)))
	want := NewScalarL(big.NewInt(5))
	if !x.Equal(want) {
		t.Fatalf("expected L+5 to reduce to 5 mod L, got %v", x.BigInt())
	}
}
