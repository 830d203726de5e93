// Package hashes provides the three hash primitives spec.md §4.B needs:
// a single-block SHA-256 convenience (BIP39 checksum byte), a streaming
// SHA-512 (BIP39/BIP32/HMAC), and a from-scratch single-block BLAKE2b-256
// (Ergo address checksum and entropy mixing).
package hashes

import (
	"crypto/sha512"
	"encoding/binary"
	"hash"

	sha256simd "github.com/minio/sha256-simd"
)

// maxSha256SingleBlock is the largest message this convenience accepts:
// one 64-byte SHA-256 block must hold msg + 0x80 + length, i.e. <= 55
// bytes (spec.md §4.B).
const maxSha256SingleBlock = 55

// Sha256Single computes SHA-256 over messages of at most 55 bytes (the
// BIP39 checksum path, spec.md §4.E). Longer input returns the zero
// digest — it must never be reached on the hot path (spec.md §7).
//
// This uses minio/sha256-simd, the same SIMD-accelerated, bit-exact
// drop-in for crypto/sha256 the teacher repo uses for its own checksum
// path, for the same reason: 2-3x faster with identical output.
func Sha256Single(msg []byte) [32]byte {
	if len(msg) > maxSha256SingleBlock {
		return [32]byte{}
	}
	return sha256simd.Sum256(msg)
}

// Sha512State is an incremental SHA-512 hasher exposing the
// init/compress/final shape spec.md §4.B asks for, plus the two
// single-shot convenience helpers (SingleBlock, TwoBlocks) used by the
// BIP39 and HMAC paths.
//
// Host note: spec.md's register-pressure concerns govern the device
// kernel (assets/vanity_kernel.cl), which keeps state as 8 uint64
// registers plus a running byte count. This host mirror wraps
// crypto/sha512's own streaming hash.Hash, which is already a correct,
// allocation-light incremental SHA-512 — reimplementing the compression
// function by hand here would only reproduce crypto/sha512 with more
// surface for bugs and no benefit on non-register-constrained host code.
type Sha512State struct {
	h     hash.Hash
	count uint64 // running byte count, kept in sync with h's internal length
}

// NewSha512 starts a fresh SHA-512 state.
func NewSha512() *Sha512State {
	return &Sha512State{h: sha512.New()}
}

// Compress feeds exactly one 128-byte block into the running state.
func (s *Sha512State) Compress(block *[128]byte) {
	s.h.Write(block[:])
	s.count += 128
}

// Final feeds a tail of 0..127 bytes and returns the 64-byte digest with
// correct length padding. It does not mutate the receiver — callers who
// need to keep accumulating must Compress full blocks only and call
// Final once, at the end, matching the cached-midstate HMAC usage in
// internal/kdf.
func (s *Sha512State) Final(tail []byte) [64]byte {
	clone := cloneHash(s.h)
	clone.Write(tail)
	var out [64]byte
	copy(out[:], clone.Sum(nil))
	return out
}

// cloneHash snapshots a crypto/sha512 hash.Hash via its
// encoding.BinaryMarshaler/Unmarshaler support, the standard trick for
// cheaply forking an in-progress digest without recomputing the blocks
// already absorbed — exactly the "cached midstate" spec.md §4.C asks
// HMAC to exploit.
func cloneHash(h hash.Hash) hash.Hash {
	type marshaler interface {
		MarshalBinary() ([]byte, error)
	}
	type unmarshaler interface {
		UnmarshalBinary([]byte) error
	}
	state, err := h.(marshaler).MarshalBinary()
	if err != nil {
		panic("hashes: sha512 state clone failed: " + err.Error())
	}
	clone := sha512.New()
	if err := clone.(unmarshaler).UnmarshalBinary(state); err != nil {
		panic("hashes: sha512 state restore failed: " + err.Error())
	}
	return clone
}

// Sha512SingleBlock hashes a message of at most 111 bytes (fits in one
// padded 128-byte block) in one shot.
func Sha512SingleBlock(msg []byte) [64]byte {
	if len(msg) > 111 {
		return [64]byte{}
	}
	var out [64]byte
	h := sha512.Sum512(msg)
	copy(out[:], h[:])
	return out
}

// Sha512TwoBlocks hashes a message consisting of exactly one full
// 128-byte block followed by a tail of at most 111 bytes.
func Sha512TwoBlocks(first *[128]byte, tail []byte) [64]byte {
	s := NewSha512()
	s.Compress(first)
	return s.Final(tail)
}

// u64beBytes reads one big-endian 64-bit word from b. Nothing in this
// package calls it; internal/kdf reads its words with encoding/binary
// directly.
func u64beBytes(b []byte) uint64 { return binary.BigEndian.Uint64(b) }
