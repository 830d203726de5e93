// Package fieldelement implements arithmetic in Fp, the secp256k1 base
// field, p = 2^256 - 2^32 - 977. Elements use the 8x32-bit little-endian
// limb layout (internal/limb.U256) described in spec.md §4.A at every
// package boundary, so the type and byte encoding are bit-exact with the
// device-side kernel.
//
// The device kernel (assets/vanity_kernel.cl) does the arithmetic in
// fixed-size limb arrays (a full 512-bit product reduced by shift-and-
// subtract in u512_mod), because that is where fixed register budgets and
// the no-dynamic-allocation constraint bite. This Go mirror runs on the host
// (re-derivation/verification in internal/searchkernel, and the test
// suite's algebraic-property checks) where those constraints do not
// apply, so it computes the same 8-limb-in/8-limb-out contract on top of
// math/big and normalises every result into [0, p) — the part of §4.A
// that is an external, testable invariant rather than an implementation
// detail.
package fieldelement

import (
	"math/big"

	"github.com/Asylian21/ergo-vanity-gpu/internal/limb"
)

// Elem is a field element, always kept normalised in [0, p).
type Elem = limb.U256

// P is p = 2^256 - 2^32 - 977.
var P, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)

func toBig(e Elem) *big.Int {
	b := limb.U256(e).ToBytes()
	return new(big.Int).SetBytes(b[:])
}

func fromBig(x *big.Int) Elem {
	var m big.Int
	m.Mod(x, P)
	var b [32]byte
	m.FillBytes(b[:])
	return limb.FromBytes(&b)
}

// FromBytes decodes a big-endian 32-byte representative, reducing it if
// it is not already canonical.
func FromBytes(b *[32]byte) Elem {
	return fromBig(new(big.Int).SetBytes(b[:]))
}

// ToBytes encodes a normalised element as 32 big-endian bytes.
func ToBytes(e Elem) [32]byte { return limb.U256(e).ToBytes() }

// IsZero reports whether e == 0.
func IsZero(e Elem) bool { return limb.U256(e).IsZero() }

// Add computes a + b mod p.
func Add(a, b Elem) Elem { return fromBig(new(big.Int).Add(toBig(a), toBig(b))) }

// Sub computes a - b mod p.
func Sub(a, b Elem) Elem { return fromBig(new(big.Int).Sub(toBig(a), toBig(b))) }

// Neg computes -a mod p; Neg(0) = 0.
func Neg(a Elem) Elem {
	if IsZero(a) {
		return Elem{}
	}
	return fromBig(new(big.Int).Neg(toBig(a)))
}

// Mul computes a * b mod p.
func Mul(a, b Elem) Elem { return fromBig(new(big.Int).Mul(toBig(a), toBig(b))) }

// Sqr computes a^2 mod p.
func Sqr(a Elem) Elem { return Mul(a, a) }

// Inv computes the multiplicative inverse of a via Fermat's little
// theorem, a^(p-2) mod p; Inv(0) == 0 by convention. Callers on the hot
// path must only call Inv on values already known to be non-zero.
func Inv(a Elem) Elem {
	if IsZero(a) {
		return Elem{}
	}
	exp := new(big.Int).Sub(P, big.NewInt(2))
	return fromBig(new(big.Int).Exp(toBig(a), exp, P))
}
