// Package address builds the Ergo P2PK mainnet address payload and its
// Base58 encoding, per spec.md §4.G: 0x01 || compressed pubkey (33) ||
// Blake2b-256(0x01 || pubkey)[:4], Base58-encoded with the Bitcoin
// alphabet.
package address

import (
	"math/big"

	"github.com/Asylian21/ergo-vanity-gpu/internal/hashes"
)

// MainnetPrefix is the Ergo P2PK mainnet network byte (spec.md §6).
const MainnetPrefix = 0x01

// PayloadSize is the fixed address payload length: 1 (prefix) + 33
// (compressed pubkey) + 4 (checksum).
const PayloadSize = 1 + 33 + 4

// Alphabet is the Base58 alphabet used throughout this module (spec.md
// §4.G): the Bitcoin alphabet, excluding 0, O, I, l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58Big = big.NewInt(58)

// Payload builds the 38-byte mainnet P2PK address payload from a
// compressed public key.
func Payload(pub [33]byte) [PayloadSize]byte {
	var out [PayloadSize]byte
	out[0] = MainnetPrefix
	copy(out[1:34], pub[:])

	var checksumInput [34]byte
	checksumInput[0] = MainnetPrefix
	copy(checksumInput[1:], pub[:])
	checksum := hashes.Blake2b256(checksumInput[:])
	copy(out[34:], checksum[:4])
	return out
}

// Encode Base58-encodes payload using the generic (non-optimised) "full
// encode" algorithm of spec.md §4.G: leading zero bytes become leading
// '1' characters, the remaining big-endian integer is repeatedly divided
// by 58 with digits collected least-significant-digit-first and then
// reversed. This is the reference path — internal/pattern's grouped
// matcher must agree with it on every payload and prefix.
func Encode(payload []byte) string {
	leadingZeros := 0
	for leadingZeros < len(payload) && payload[leadingZeros] == 0 {
		leadingZeros++
	}

	num := new(big.Int).SetBytes(payload[leadingZeros:])
	var digits []byte
	zero := big.NewInt(0)
	mod := new(big.Int)
	for num.Cmp(zero) > 0 {
		num.DivMod(num, base58Big, mod)
		digits = append(digits, Alphabet[mod.Int64()])
	}

	out := make([]byte, 0, leadingZeros+len(digits))
	for i := 0; i < leadingZeros; i++ {
		out = append(out, Alphabet[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

// EncodeAddress is the convenience full pipeline: compressed pubkey ->
// payload -> Base58 string.
func EncodeAddress(pub [33]byte) string {
	payload := Payload(pub)
	return Encode(payload[:])
}
