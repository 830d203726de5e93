// Package curve implements secp256k1 point arithmetic in Jacobian
// coordinates over internal/fieldelement, per spec.md §4.D: mixed-
// coordinate addition, doubling with the a=0 shortcuts, and a
// straightforward (non-constant-time) double-and-add scalar multiply.
// The non-constant-time scalar multiply is an accepted tradeoff here —
// spec.md §9 is explicit that the threat model (caller-owned entropy,
// no remote attacker) does not require constant time, and that this
// primitive must not be repurposed for signing without revisiting that.
package curve

import (
	"encoding/hex"

	"github.com/Asylian21/ergo-vanity-gpu/internal/fieldelement"
	"github.com/Asylian21/ergo-vanity-gpu/internal/scalarfield"
)

type fe = fieldelement.Elem

// Point is a Jacobian-coordinate secp256k1 point. Z == 0 represents the
// point at infinity.
type Point struct {
	X, Y, Z fe
}

// Infinity is the identity element.
var Infinity = Point{}

// gx, gy are the affine coordinates of the secp256k1 generator.
var (
	gx = mustFE("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gy = mustFE("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
)

func mustFE(hexStr string) fe {
	raw, err := hex.DecodeString(hexStr)
	if err != nil || len(raw) != 32 {
		panic("curve: bad constant " + hexStr)
	}
	var b [32]byte
	copy(b[:], raw)
	return fieldelement.FromBytes(&b)
}

// Generator returns G in Jacobian form with Z = 1.
func Generator() Point {
	one := fieldelement.FromBytes(&[32]byte{31: 1})
	return Point{X: gx, Y: gy, Z: one}
}

// IsInfinity reports whether p represents the point at infinity.
func (p Point) IsInfinity() bool { return fieldelement.IsZero(p.Z) }

// Double computes 2p using the a=0 Jacobian doubling formulas:
// S = 4XY^2, M = 3X^2, X' = M^2 - 2S, Y' = M(S - X') - 8Y^4, Z' = 2YZ.
func Double(p Point) Point {
	if p.IsInfinity() || fieldelement.IsZero(p.Y) {
		return Infinity
	}
	ySq := fieldelement.Sqr(p.Y)
	s := fieldelement.Mul(fieldelement.FromBytes(&[32]byte{31: 4}), fieldelement.Mul(p.X, ySq))
	m := fieldelement.Mul(fieldelement.FromBytes(&[32]byte{31: 3}), fieldelement.Sqr(p.X))
	x3 := fieldelement.Sub(fieldelement.Sqr(m), fieldelement.Mul(fieldelement.FromBytes(&[32]byte{31: 2}), s))
	ySqSq := fieldelement.Sqr(ySq)
	y3 := fieldelement.Sub(fieldelement.Mul(m, fieldelement.Sub(s, x3)), fieldelement.Mul(fieldelement.FromBytes(&[32]byte{31: 8}), ySqSq))
	z3 := fieldelement.Mul(fieldelement.FromBytes(&[32]byte{31: 2}), fieldelement.Mul(p.Y, p.Z))
	return Point{X: x3, Y: y3, Z: z3}
}

// Add computes p + q via the standard mixed-coordinate formulas. On
// H == 0 && R == 0 it falls through to Double; on H == 0 && R != 0 it
// returns Infinity; an input at infinity short-circuits to the other
// operand (spec.md §4.D).
func Add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	z1z1 := fieldelement.Sqr(p.Z)
	z2z2 := fieldelement.Sqr(q.Z)
	u1 := fieldelement.Mul(p.X, z2z2)
	u2 := fieldelement.Mul(q.X, z1z1)
	s1 := fieldelement.Mul(p.Y, fieldelement.Mul(q.Z, z2z2))
	s2 := fieldelement.Mul(q.Y, fieldelement.Mul(p.Z, z1z1))

	h := fieldelement.Sub(u2, u1)
	r := fieldelement.Sub(s2, s1)

	if fieldelement.IsZero(h) {
		if fieldelement.IsZero(r) {
			return Double(p)
		}
		return Infinity
	}

	hh := fieldelement.Sqr(h)
	hhh := fieldelement.Mul(h, hh)
	v := fieldelement.Mul(u1, hh)

	two := fieldelement.FromBytes(&[32]byte{31: 2})
	x3 := fieldelement.Sub(fieldelement.Sub(fieldelement.Sqr(r), hhh), fieldelement.Mul(two, v))
	y3 := fieldelement.Sub(fieldelement.Mul(r, fieldelement.Sub(v, x3)), fieldelement.Mul(s1, hhh))
	z3 := fieldelement.Mul(fieldelement.Mul(p.Z, q.Z), h)

	return Point{X: x3, Y: y3, Z: z3}
}

// ScalarMul computes k*p via double-and-add, scanning the 256 bits of k
// from byte 31 down to 0, bit 0 to 7 within each byte (LSB-first by byte
// index, matching spec.md §4.D — not constant-time).
func ScalarMul(k scalarfield.Elem, p Point) Point {
	kb := scalarfield.ToBytes(k)
	result := Infinity
	base := p
	for byteIdx := 31; byteIdx >= 0; byteIdx-- {
		b := kb[byteIdx]
		for bit := 0; bit < 8; bit++ {
			if (b>>uint(bit))&1 == 1 {
				result = Add(result, base)
			}
			base = Double(base)
		}
	}
	return result
}

// Affine returns the affine (x, y) of p by multiplying by Z^-2 and Z^-3.
// Callers must not invoke this on Infinity.
func Affine(p Point) (x, y fe) {
	zInv := fieldelement.Inv(p.Z)
	zInv2 := fieldelement.Sqr(zInv)
	zInv3 := fieldelement.Mul(zInv2, zInv)
	return fieldelement.Mul(p.X, zInv2), fieldelement.Mul(p.Y, zInv3)
}

// Compress encodes p as a 33-byte compressed public key: 0x02/0x03
// prefix by the parity of affine y, followed by the 32-byte big-endian
// affine x. ok is false if p is the point at infinity.
func Compress(p Point) (out [33]byte, ok bool) {
	if p.IsInfinity() {
		return out, false
	}
	x, y := Affine(p)
	xb := fieldelement.ToBytes(x)
	yb := fieldelement.ToBytes(y)
	if yb[31]&1 == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	copy(out[1:], xb[:])
	return out, true
}
