package curve

import (
	"encoding/hex"
	"testing"

	"github.com/Asylian21/ergo-vanity-gpu/internal/fieldelement"
	"github.com/Asylian21/ergo-vanity-gpu/internal/scalarfield"
)

func scalar(t *testing.T, v uint64) scalarfield.Elem {
	t.Helper()
	var b [32]byte
	for i := 0; i < 8; i++ {
		b[31-i] = byte(v >> (8 * i))
	}
	return scalarfield.FromBytes(&b)
}

func TestGeneratorOnCurve(t *testing.T) {
	g := Generator()
	x, y := Affine(g)
	// y^2 == x^3 + 7 mod p
	y2 := fieldelement.Sqr(y)
	x3 := fieldelement.Mul(fieldelement.Sqr(x), x)
	seven := fieldelement.FromBytes(&[32]byte{31: 7})
	rhs := fieldelement.Add(x3, seven)
	if y2 != rhs {
		t.Fatalf("generator is not on the curve")
	}
}

func TestAddInfinityIdentity(t *testing.T) {
	g := Generator()
	if got := Add(g, Infinity); got != g {
		t.Fatalf("G + infinity != G")
	}
}

func TestDoubleMatchesAddSelf(t *testing.T) {
	g := Generator()
	doubled := Double(g)
	added := Add(g, g)
	dx, dy := Affine(doubled)
	ax, ay := Affine(added)
	if dx != ax || dy != ay {
		t.Fatalf("2G via double != 2G via add(G,G)")
	}
}

func Test3GKnownX(t *testing.T) {
	g := Generator()
	three := scalar(t, 3)
	p := ScalarMul(three, g)
	x, _ := Affine(p)
	xb := fieldelement.ToBytes(x)
	want, _ := hex.DecodeString("f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9")
	if hex.EncodeToString(xb[:]) != hex.EncodeToString(want) {
		t.Fatalf("3G.x = %x, want %x", xb, want)
	}
}

func TestScalarMulZeroIsInfinity(t *testing.T) {
	g := Generator()
	p := ScalarMul(scalar(t, 0), g)
	if !p.IsInfinity() {
		t.Fatalf("0*G must be infinity")
	}
}

func TestScalarMulOneIsGenerator(t *testing.T) {
	g := Generator()
	p := ScalarMul(scalar(t, 1), g)
	gx, gy := Affine(g)
	px, py := Affine(p)
	if gx != px || gy != py {
		t.Fatalf("1*G != G")
	}
}

func TestCompressPrefixAndX(t *testing.T) {
	g := Generator()
	out, ok := Compress(g)
	if !ok {
		t.Fatalf("compress(G) must succeed")
	}
	if out[0] != 0x02 && out[0] != 0x03 {
		t.Fatalf("compressed prefix must be 0x02 or 0x03, got %x", out[0])
	}
	x, _ := Affine(g)
	xb := fieldelement.ToBytes(x)
	if hex.EncodeToString(out[1:]) != hex.EncodeToString(xb[:]) {
		t.Fatalf("compressed x mismatch")
	}
}

func TestCompressInfinityFails(t *testing.T) {
	if _, ok := Compress(Infinity); ok {
		t.Fatalf("compress(infinity) must fail")
	}
}
