// Package kdf implements HMAC-SHA512 with cached inner/outer midstates
// and the fixed one-output-block PBKDF2-HMAC-SHA512 fast path spec.md
// §4.C describes. PBKDF2 is ~85% of total pipeline cost (spec.md §1),
// so the 2047 non-first iterations route through HMAC512.ComputeWords, which
// accepts/returns eight 64-bit words instead of a byte slice — the host
// analogue of the device kernel's "keep the U-value in registers"
// requirement (spec.md §9).
package kdf

import (
	"encoding/binary"

	"github.com/Asylian21/ergo-vanity-gpu/internal/hashes"
)

const blockSize = 128

// HMAC512 holds the cached inner/outer SHA-512 midstates for one key, so
// repeated HMAC calls under the same key (PBKDF2's whole point) skip
// re-compressing the ipad/opad block every time.
type HMAC512 struct {
	inner *hashes.Sha512State
	outer *hashes.Sha512State
}

// NewHMAC512 builds the cached midstates for key. Per spec.md §4.C, keys
// longer than 128 bytes must be pre-hashed by the caller (the BIP39 path
// owns that); ok is false if key exceeds that bound.
func NewHMAC512(key []byte) (h *HMAC512, ok bool) {
	if len(key) > blockSize {
		return nil, false
	}
	var padded [blockSize]byte
	copy(padded[:], key)

	var ipad, opad [blockSize]byte
	for i := 0; i < blockSize; i++ {
		ipad[i] = padded[i] ^ 0x36
		opad[i] = padded[i] ^ 0x5c
	}

	inner := hashes.NewSha512()
	inner.Compress(&ipad)
	outer := hashes.NewSha512()
	outer.Compress(&opad)

	return &HMAC512{inner: inner, outer: outer}, true
}

// Compute returns HMAC-SHA512(key, msg) using the cached midstates.
func (h *HMAC512) Compute(msg []byte) [64]byte {
	innerDigest := h.inner.Final(msg)
	return h.outer.Final(innerDigest[:])
}

// ComputeWords is the specialised 64-byte-message path: msg is eight
// big-endian 64-bit words (e.g. a previous HMAC/PBKDF2 U-value) rather
// than a byte slice, and the result is returned the same way. This is
// the exact shape spec.md §4.C requires for PBKDF2 iterations 2..2048,
// so a GPU port of this host code never needs to materialise the
// 64-byte U-value as an addressable buffer.
func (h *HMAC512) ComputeWords(msg [8]uint64) [8]uint64 {
	var buf [64]byte
	for i, w := range msg {
		binary.BigEndian.PutUint64(buf[i*8:i*8+8], w)
	}
	digest := h.Compute(buf[:])
	var out [8]uint64
	for i := range out {
		out[i] = binary.BigEndian.Uint64(digest[i*8 : i*8+8])
	}
	return out
}

// WordsFromBytes converts a 64-byte digest into eight big-endian 64-bit
// words, the register-shaped form ComputeWords consumes/produces.
func WordsFromBytes(b [64]byte) [8]uint64 {
	var out [8]uint64
	for i := range out {
		out[i] = binary.BigEndian.Uint64(b[i*8 : i*8+8])
	}
	return out
}

// BytesFromWords is the inverse of WordsFromBytes.
func BytesFromWords(w [8]uint64) [64]byte {
	var out [64]byte
	for i, v := range w {
		binary.BigEndian.PutUint64(out[i*8:i*8+8], v)
	}
	return out
}
