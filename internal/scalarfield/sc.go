// Package scalarfield implements arithmetic in Fn, the secp256k1 scalar
// field of order n. Elements use the same 8x32-bit little-endian limb
// layout as internal/fieldelement (spec.md §4.A). A scalar is valid iff
// it is non-zero and < n; BIP32 derivation (internal/hdkey) rejects
// anything else.
//
// The device kernel needs only Fn addition and the validity check
// (sc_add, sc_valid) and has no Fn multiplication; this host-side mirror
// computes the same 8-limb contract on top of math/big, since BIP32 is only ever a few adds/subs deep per address
// index and is not the throughput bottleneck (PBKDF2 is, per §9).
package scalarfield

import (
	"math/big"

	"github.com/Asylian21/ergo-vanity-gpu/internal/limb"
)

// Elem is a scalar, always normalised in [0, n).
type Elem = limb.U256

// N is the secp256k1 curve order.
var N, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

func toBig(e Elem) *big.Int {
	b := limb.U256(e).ToBytes()
	return new(big.Int).SetBytes(b[:])
}

func fromBig(x *big.Int) Elem {
	var m big.Int
	m.Mod(x, N)
	var b [32]byte
	m.FillBytes(b[:])
	return limb.FromBytes(&b)
}

// FromBytes decodes a big-endian 32-byte representative, reducing it if
// not already canonical.
func FromBytes(b *[32]byte) Elem { return fromBig(new(big.Int).SetBytes(b[:])) }

// ToBytes encodes a normalised scalar as 32 big-endian bytes.
func ToBytes(e Elem) [32]byte { return limb.U256(e).ToBytes() }

// IsZero reports whether e == 0.
func IsZero(e Elem) bool { return limb.U256(e).IsZero() }

// Valid reports whether e is a valid private/child scalar: non-zero and
// strictly less than n. BIP32 derivation steps that would produce an
// invalid scalar must reject (spec.md §4.F).
func Valid(e Elem) bool {
	if IsZero(e) {
		return false
	}
	return limb.Cmp(e, FromN()) < 0
}

// FromN returns n itself as a U256, for range checks against the raw
// (not-yet-reduced) 64-byte BIP32 IL output before calling FromBytes.
func FromN() Elem {
	var b [32]byte
	N.FillBytes(b[:])
	return limb.FromBytes(&b)
}

// Add computes a + b mod n.
func Add(a, b Elem) Elem { return fromBig(new(big.Int).Add(toBig(a), toBig(b))) }

// Sub computes a - b mod n.
func Sub(a, b Elem) Elem { return fromBig(new(big.Int).Sub(toBig(a), toBig(b))) }

// Neg computes -a mod n for non-zero a; Neg(0) = 0.
func Neg(a Elem) Elem {
	if IsZero(a) {
		return Elem{}
	}
	return fromBig(new(big.Int).Neg(toBig(a)))
}

// Mul computes a * b mod n. Not used on the hot vanity path: BIP32
// (internal/hdkey) only ever calls Add/Sub, per spec.md §4.A.
func Mul(a, b Elem) Elem { return fromBig(new(big.Int).Mul(toBig(a), toBig(b))) }
