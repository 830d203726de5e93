package fieldelement

import (
	"math/big"
	"testing"
)

func bytesOf(t *testing.T, hex64 string) Elem {
	t.Helper()
	n, ok := new(big.Int).SetString(hex64, 16)
	if !ok {
		t.Fatalf("bad literal %q", hex64)
	}
	var b [32]byte
	n.FillBytes(b[:])
	return FromBytes(&b)
}

func TestAddNegIsIdentity(t *testing.T) {
	a := bytesOf(t, "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcd")
	if got := Add(a, Neg(a)); !IsZero(got) {
		t.Fatalf("a + (-a) != 0, got %v", got)
	}
}

func TestSubAddRoundTrip(t *testing.T) {
	a := bytesOf(t, "00000000000000000000000000000000000000000000000000000000000001")
	b := bytesOf(t, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2e") // p-1
	if got := Sub(Add(a, b), b); got != a {
		t.Fatalf("(a+b)-b != a: got %v want %v", got, a)
	}
}

func TestMulCommutative(t *testing.T) {
	a := bytesOf(t, "0000000000000000000000000000000000000000000000000000000000beef")
	b := bytesOf(t, "0000000000000000000000000000000000000000000000000000000000cafe")
	if Mul(a, b) != Mul(b, a) {
		t.Fatalf("mul not commutative")
	}
}

func TestMulPMinus1Squared(t *testing.T) {
	pMinus1 := bytesOf(t, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2e")
	got := Sqr(pMinus1)
	one := bytesOf(t, "0000000000000000000000000000000000000000000000000000000000001")
	if got != one {
		t.Fatalf("(p-1)^2 mod p != 1, got %v", got)
	}
}

func TestInvOfOne(t *testing.T) {
	one := bytesOf(t, "0000000000000000000000000000000000000000000000000000000000001")
	if Inv(one) != one {
		t.Fatalf("inv(1) != 1")
	}
}

func TestInvRoundTrip(t *testing.T) {
	a := bytesOf(t, "0000000000000000000000000000000000000000000000000000000001234a")
	inv := Inv(a)
	if got := Mul(a, inv); got != bytesOf(t, "0000000000000000000000000000000000000000000000000000000000001") {
		t.Fatalf("a * inv(a) != 1")
	}
}

func TestInvZeroConvention(t *testing.T) {
	if got := Inv(Elem{}); !IsZero(got) {
		t.Fatalf("inv(0) must be 0 by convention, got %v", got)
	}
}

func TestNormalisedOutputRange(t *testing.T) {
	pBytes := bytesOf(t, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	// p itself reduces to 0
	if got := Add(pBytes, Elem{}); !IsZero(got) {
		t.Fatalf("p mod p must normalise to 0, got %v", got)
	}
}
