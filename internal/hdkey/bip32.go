// Package hdkey implements the BIP32 child key derivation spec.md §4.F
// needs, fixed to the Ergo external chain m/44'/429'/0'/0/<address_index>
// (three hardened steps, then one normal step, then a final per-address
// normal step). Coin type 429 is Ergo (spec.md §6).
package hdkey

import (
	"encoding/binary"

	"github.com/Asylian21/ergo-vanity-gpu/internal/curve"
	"github.com/Asylian21/ergo-vanity-gpu/internal/kdf"
	"github.com/Asylian21/ergo-vanity-gpu/internal/limb"
	"github.com/Asylian21/ergo-vanity-gpu/internal/scalarfield"
)

// HardenedBit marks a hardened derivation index (spec.md §6).
const HardenedBit = 0x80000000

// ErgoCoinType is BIP44 coin type 429.
const ErgoCoinType = 429

// Node is a BIP32 derivation node: a 32-byte key (interpreted as a
// scalar) and a 32-byte chain code.
type Node struct {
	Key       scalarfield.Elem
	ChainCode [32]byte
}

// Master derives the BIP32 master node from a 64-byte BIP39 seed:
// HMAC-SHA512("Bitcoin seed", seed), split IL || IR. ok is false if IL is
// zero or >= n (spec.md §4.F).
func Master(seed [64]byte) (node Node, ok bool) {
	h, _ := kdf.NewHMAC512([]byte("Bitcoin seed"))
	out := h.Compute(seed[:])
	return nodeFromHMACOutput(out)
}

func nodeFromHMACOutput(out [64]byte) (Node, bool) {
	var ilBytes [32]byte
	copy(ilBytes[:], out[:32])
	il := limb.FromBytes(&ilBytes) // unreduced, so IL >= n fails Valid
	if !scalarfield.Valid(il) {
		return Node{}, false
	}
	var node Node
	node.Key = il
	copy(node.ChainCode[:], out[32:])
	return node, true
}

// DeriveHardened derives the hardened child at index i (the caller
// passes the plain index; HardenedBit is set here):
// HMAC-SHA512(parent_cc, 0x00 || parent_key || be32(i | HardenedBit)).
func DeriveHardened(parent Node, index uint32) (Node, bool) {
	return deriveChild(parent, index|HardenedBit, nil)
}

// DeriveNormal derives the normal child at index i:
// HMAC-SHA512(parent_cc, compressed_pubkey(parent_key) || be32(i)).
// pub, if non-nil, is the already-computed compressed public key of the
// parent (an optimisation for the "derive once, iterate cheaply" address
// loop spec.md §4.F describes); pass nil to have it computed here.
func DeriveNormal(parent Node, index uint32, pub *[33]byte) (Node, bool) {
	return deriveChild(parent, index, pub)
}

func deriveChild(parent Node, indexWithFlag uint32, precomputedPub *[33]byte) (Node, bool) {
	h, _ := kdf.NewHMAC512(parent.ChainCode[:])

	var msg []byte
	if indexWithFlag&HardenedBit != 0 {
		msg = make([]byte, 0, 1+32+4)
		msg = append(msg, 0x00)
		keyBytes := scalarfield.ToBytes(parent.Key)
		msg = append(msg, keyBytes[:]...)
	} else {
		var pub [33]byte
		if precomputedPub != nil {
			pub = *precomputedPub
		} else {
			compressed, ok := CompressedPubKey(parent.Key)
			if !ok {
				return Node{}, false
			}
			pub = compressed
		}
		msg = make([]byte, 0, 33+4)
		msg = append(msg, pub[:]...)
	}
	var idxBytes [4]byte
	binary.BigEndian.PutUint32(idxBytes[:], indexWithFlag)
	msg = append(msg, idxBytes[:]...)

	out := h.Compute(msg)

	var ilBytes [32]byte
	copy(ilBytes[:], out[:32])
	il := limb.FromBytes(&ilBytes) // unreduced, so IL >= n fails Valid
	if !scalarfield.Valid(il) {
		return Node{}, false
	}

	childKey := scalarfield.Add(il, parent.Key)
	if scalarfield.IsZero(childKey) {
		return Node{}, false
	}

	var child Node
	child.Key = childKey
	copy(child.ChainCode[:], out[32:])
	return child, true
}

// CompressedPubKey computes the compressed secp256k1 public key for a
// private scalar. ok is false only if scalar-mul somehow yields infinity
// (astronomically unlikely for a valid non-zero scalar < n).
func CompressedPubKey(key scalarfield.Elem) ([33]byte, bool) {
	p := curve.ScalarMul(key, curve.Generator())
	return curve.Compress(p)
}

// ErgoExternalChain derives m/44'/429'/0'/0 from a master node: three
// hardened steps (purpose, coin type, account) then one normal step
// (external chain = 0). ok is false if any step rejects.
func ErgoExternalChain(master Node) (Node, bool) {
	purpose, ok := DeriveHardened(master, 44)
	if !ok {
		return Node{}, false
	}
	coinType, ok := DeriveHardened(purpose, ErgoCoinType)
	if !ok {
		return Node{}, false
	}
	account, ok := DeriveHardened(coinType, 0)
	if !ok {
		return Node{}, false
	}
	external, ok := DeriveNormal(account, 0, nil)
	if !ok {
		return Node{}, false
	}
	return external, true
}

// AddressKey derives the signing key for address index j from the
// already-derived external chain node: one more normal derivation
// (spec.md §4.F, "derive external chain once, then cheaply iterate
// address indices").
func AddressKey(external Node, addressIndex uint32) (Node, bool) {
	return DeriveNormal(external, addressIndex, nil)
}
