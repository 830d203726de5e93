// Package mnemonic implements the BIP39 entropy-to-seed assembly of
// spec.md §4.E: 32 bytes of entropy -> SHA-256 checksum byte -> 24
// 11-bit word indices -> streamed UTF-8 mnemonic -> PBKDF2-HMAC-SHA512
// seed, with the "direct password vs SHA-512 pre-hash" branch spec.md
// §4.E and §9 require to be exclusive and exact.
package mnemonic

import (
	"crypto/sha512"

	"github.com/Asylian21/ergo-vanity-gpu/internal/hashes"
	"github.com/Asylian21/ergo-vanity-gpu/internal/kdf"
	"github.com/Asylian21/ergo-vanity-gpu/internal/wordlist"
)

const (
	entropyBytes    = 32
	wordCount       = 24
	bitsPerWord     = 11
	maxDirectBuffer = 128
	pbkdf2Salt      = "mnemonic"
	pbkdf2Rounds    = 2048
)

// EntropyToIndices maps 32 bytes of entropy to the 24 BIP39 word indices
// (spec.md §4.E step 1-2): SHA-256(entropy)[0] is appended as an 8-bit
// checksum, and the resulting 264-bit string is split into 24 big-endian
// 11-bit fields.
func EntropyToIndices(entropy [32]byte) [wordCount]uint16 {
	checksum := hashes.Sha256Single(entropy[:])
	var all [entropyBytes + 1]byte
	copy(all[:entropyBytes], entropy[:])
	all[entropyBytes] = checksum[0]

	var indices [wordCount]uint16
	bitPos := 0
	for w := 0; w < wordCount; w++ {
		var idx uint16
		for b := 0; b < bitsPerWord; b++ {
			bytePos := bitPos / 8
			bitInByte := 7 - bitPos%8
			bit := (all[bytePos] >> uint(bitInByte)) & 1
			idx = idx<<1 | uint16(bit)
			bitPos++
		}
		indices[w] = idx
	}
	return indices
}

// Words returns the 24 English BIP39 words for entropy, in order.
func Words(entropy [32]byte) [wordCount]string {
	indices := EntropyToIndices(entropy)
	var out [wordCount]string
	for i, idx := range indices {
		out[i] = wordlist.ByIndex(idx)
	}
	return out
}

// Mnemonic renders the canonical serialised mnemonic: 24 lowercase ASCII
// words joined by single spaces, no trailing space (spec.md's Mnemonic
// entity invariant).
func Mnemonic(entropy [32]byte) string {
	words := Words(entropy)
	total := 0
	for i, w := range words {
		total += len(w)
		if i > 0 {
			total++
		}
	}
	buf := make([]byte, 0, total)
	for i, w := range words {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, w...)
	}
	return string(buf)
}

// pbkdf2Password implements spec.md §4.E steps 3-4 on the finished
// mnemonic string: the PBKDF2 password is a copy of the mnemonic bytes if
// the mnemonic is <=128 bytes, else the 64-byte SHA-512 digest of the
// full mnemonic, computed in one call. The two branches are exclusive — the
// direct buffer is never silently truncated into use when the fallback
// applies, and no passphrase (trailing space or otherwise) is appended.
func pbkdf2Password(mnemonicStr string) []byte {
	mnemonicBytes := []byte(mnemonicStr)
	if len(mnemonicBytes) <= maxDirectBuffer {
		direct := make([]byte, len(mnemonicBytes))
		copy(direct, mnemonicBytes)
		return direct
	}
	digest := sha512.Sum512(mnemonicBytes)
	return digest[:]
}

// Seed computes the 64-byte BIP39 seed for entropy: PBKDF2-HMAC-SHA512
// over the mnemonic password (see pbkdf2Password) with salt "mnemonic"
// and 2048 iterations, one output block (spec.md §4.E step 5).
func Seed(entropy [32]byte) [64]byte {
	password := pbkdf2Password(Mnemonic(entropy))
	return kdf.Pbkdf2HmacSha512OneBlock(password, []byte(pbkdf2Salt), pbkdf2Rounds)
}
