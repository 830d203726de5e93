// Package oracle provides independent, off-the-shelf implementations of
// the crypto primitives this module reimplements from scratch for
// register-pressure reasons. spec.md §1 explicitly carves "the CPU
// reference implementation used only for validation" out of scope for
// the device-side pipeline — this package is that reference, built on
// the teacher repo's own dependency stack (btcec/btcutil) plus
// golang.org/x/crypto's blake2b/pbkdf2, so the from-scratch
// implementations in internal/curve, internal/hashes and internal/kdf
// have something independent to be checked against in tests.
//
// Nothing under internal/searchkernel or internal/controller imports
// this package; it is test-only tooling, same role the teacher's own
// btcec-based generateKeyAndAddress played relative to the benchmark
// suite.
package oracle

import (
	"crypto/sha512"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcutil"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/pbkdf2"
)

// Blake2b256 is the reference RFC 7693 BLAKE2b-256 implementation,
// checked against internal/hashes.Blake2b256 in tests.
func Blake2b256(msg []byte) [32]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	h.Write(msg)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Pbkdf2HmacSha512 is the reference PBKDF2-HMAC-SHA512, checked against
// internal/kdf.Pbkdf2HmacSha512OneBlock (restricted to dkLen=64 there).
func Pbkdf2HmacSha512(password, salt []byte, iterations int) [64]byte {
	var out [64]byte
	copy(out[:], pbkdf2.Key(password, salt, iterations, 64, sha512.New))
	return out
}

// CompressedPubKey derives the compressed secp256k1 public key for a
// 32-byte private scalar via btcec, the independent oracle for
// internal/hdkey.CompressedPubKey.
func CompressedPubKey(priv [32]byte) [33]byte {
	_, pub := btcec.PrivKeyFromBytes(priv[:])
	var out [33]byte
	copy(out[:], pub.SerializeCompressed())
	return out
}

// Hash160 is RIPEMD160(SHA256(data)), reused from btcutil purely as an
// independent byte-level smoke test that a compressed pubkey produced by
// internal/curve.Compress is well-formed input to an unrelated, widely
// used hashing utility (not part of the Ergo address format itself,
// which uses Blake2b-256 instead).
func Hash160(data []byte) [20]byte {
	var out [20]byte
	copy(out[:], btcutil.Hash160(data))
	return out
}
