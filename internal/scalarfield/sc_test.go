package scalarfield

import (
	"math/big"
	"testing"
)

func lit(t *testing.T, hex64 string) Elem {
	t.Helper()
	n, ok := new(big.Int).SetString(hex64, 16)
	if !ok {
		t.Fatalf("bad literal %q", hex64)
	}
	var b [32]byte
	n.FillBytes(b[:])
	return FromBytes(&b)
}

func TestNMinus1PlusOneIsZero(t *testing.T) {
	nMinus1 := lit(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140")
	one := lit(t, "0000000000000000000000000000000000000000000000000000000000001")
	if got := Add(nMinus1, one); !IsZero(got) {
		t.Fatalf("(n-1)+1 != 0 mod n, got %v", got)
	}
}

func TestNegOfOneIsNMinus1(t *testing.T) {
	one := lit(t, "0000000000000000000000000000000000000000000000000000000000001")
	nMinus1 := lit(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140")
	if got := Neg(one); got != nMinus1 {
		t.Fatalf("-1 != n-1 mod n, got %v want %v", got, nMinus1)
	}
}

func TestNMinus1PlusNMinus1(t *testing.T) {
	nMinus1 := lit(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140")
	nMinus2 := lit(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd036413f")
	if got := Add(nMinus1, nMinus1); got != nMinus2 {
		t.Fatalf("(n-1)+(n-1) != n-2, got %v want %v", got, nMinus2)
	}
}

func TestValidRejectsZeroAndOutOfRange(t *testing.T) {
	if Valid(Elem{}) {
		t.Fatalf("zero scalar must be invalid")
	}
	if !Valid(lit(t, "0000000000000000000000000000000000000000000000000000000000001")) {
		t.Fatalf("1 must be a valid scalar")
	}
}

func TestSubAddRoundTrip(t *testing.T) {
	a := lit(t, "00000000000000000000000000000000000000000000000000000000001111")
	b := lit(t, "00000000000000000000000000000000000000000000000000000000002222")
	if got := Sub(Add(a, b), b); got != a {
		t.Fatalf("(a+b)-b != a")
	}
}
