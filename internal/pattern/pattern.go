// Package pattern implements the Base58 prefix matcher of spec.md §4.H:
// a grouped base-58^4 limb matcher that avoids a full Base58 encode per
// attempted match, plus the generic "full encode then compare" fallback
// used only for correctness testing. Both case-sensitive and
// case-insensitive modes are supported.
package pattern

import (
	"errors"

	"github.com/btcsuite/btcutil/base58"
)

// Limits from spec.md's Pattern set invariants.
const (
	MaxPatterns    = 64
	MaxPatternLen  = 32
	MaxTotalBytes  = 1024
	base58Base     = 58
	base58Base4    = 58 * 58 * 58 * 58
	decodeTableLen = 256
)

// decodeTable maps an ASCII byte to its Base58 digit value, or -1 if the
// byte is not in the Base58 alphabet.
var decodeTable [decodeTableLen]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		decodeTable[alphabet[i]] = int8(i)
	}
}

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Pattern is one validated Base58 prefix.
type Pattern struct {
	Bytes []byte
}

// Set is an ordered, validated collection of prefixes plus the
// case-sensitivity mode they share (spec.md's Pattern set entity).
type Set struct {
	Patterns   []Pattern
	IgnoreCase bool
}

var (
	// ErrTooManyPatterns is returned when more than MaxPatterns prefixes
	// are supplied.
	ErrTooManyPatterns = errors.New("pattern: too many patterns")
	// ErrPatternLength is returned for an empty or over-long prefix.
	ErrPatternLength = errors.New("pattern: invalid prefix length")
	// ErrTotalBytes is returned when the concatenated prefix bytes
	// exceed MaxTotalBytes.
	ErrTotalBytes = errors.New("pattern: total prefix bytes exceeds limit")
	// ErrAlphabet is returned for a byte outside the Base58 alphabet.
	ErrAlphabet = errors.New("pattern: character outside base58 alphabet")
	// ErrFirstChar is returned when a prefix's first byte is not '9'.
	ErrFirstChar = errors.New("pattern: first character must be '9'")
	// ErrSecondChar is returned when a two-or-more-byte prefix's second
	// byte is not in {e,f,g,h,i} (spec.md §6: forced by the compressed
	// pubkey prefix 0x02/0x03).
	ErrSecondChar = errors.New("pattern: second character must be one of e,f,g,h,i")
)

// NewSet validates raw prefixes and builds a Set, lower-casing a copy of
// each prefix when ignoreCase is true (spec.md §4.J: "pattern set
// (validated, lowercased copy if case-insensitive)").
func NewSet(raw [][]byte, ignoreCase bool) (Set, error) {
	if len(raw) > MaxPatterns {
		return Set{}, ErrTooManyPatterns
	}
	total := 0
	out := Set{IgnoreCase: ignoreCase}
	for _, p := range raw {
		if len(p) == 0 || len(p) > MaxPatternLen {
			return Set{}, ErrPatternLength
		}
		total += len(p)
		if total > MaxTotalBytes {
			return Set{}, ErrTotalBytes
		}
		cp := make([]byte, len(p))
		copy(cp, p)
		if ignoreCase {
			lower(cp)
		}
		if err := validatePrefixChars(cp); err != nil {
			return Set{}, err
		}
		out.Patterns = append(out.Patterns, Pattern{Bytes: cp})
	}
	return out, nil
}

func lower(b []byte) {
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
}

func validatePrefixChars(p []byte) error {
	for _, c := range p {
		if decodeTable[c] < 0 {
			return ErrAlphabet
		}
	}
	if p[0] != '9' {
		return ErrFirstChar
	}
	if len(p) >= 2 {
		switch p[1] {
		case 'e', 'f', 'g', 'h', 'i':
		default:
			return ErrSecondChar
		}
	}
	return nil
}

// toLimbsBase58e4 converts a big-endian byte slice into little-endian
// limbs base 58^4, per spec.md §4.H step 2: for each source byte, a
// ×256+carry propagation over the current limb length, appending a final
// carry limb if non-zero.
func toLimbsBase58e4(data []byte) []uint32 {
	var limbs []uint32
	for _, b := range data {
		carry := uint64(b)
		for i := range limbs {
			v := uint64(limbs[i])*256 + carry
			limbs[i] = uint32(v % base58Base4)
			carry = v / base58Base4
		}
		for carry > 0 {
			limbs = append(limbs, uint32(carry%base58Base4))
			carry /= base58Base4
		}
	}
	return limbs
}

// digitsInLimb returns how many Base58 digits the most-significant limb
// needs: 1 if < 58, 2 if < 58^2, 3 if < 58^3, else 4.
func digitsInLimb(v uint32) int {
	switch {
	case v < base58Base:
		return 1
	case v < base58Base*base58Base:
		return 2
	case v < base58Base*base58Base*base58Base:
		return 3
	default:
		return 4
	}
}

// digitAt extracts the d-th most-significant Base58 digit (d in 0..3)
// out of a base-58^4 limb.
func digitAt(limb uint32, d int) byte {
	var divisor uint32
	switch d {
	case 0:
		divisor = base58Base * base58Base * base58Base
	case 1:
		divisor = base58Base * base58Base
	case 2:
		divisor = base58Base
	default:
		divisor = 1
	}
	return byte((limb / divisor) % base58Base)
}

// matchChar reports whether encoded digit value `digit` satisfies prefix
// character c. In case-sensitive mode c must decode to exactly digit; in
// case-insensitive mode either case of c decoding to digit is accepted
// (spec.md §4.H). Bytes outside the alphabet never match (host-side
// validation should already exclude them, but the matcher stays safe).
func matchChar(c byte, digit byte, ignoreCase bool) bool {
	if d := decodeTable[c]; d >= 0 && byte(d) == digit {
		return true
	}
	if !ignoreCase {
		return false
	}
	var alt byte
	switch {
	case c >= 'a' && c <= 'z':
		alt = c - ('a' - 'A')
	case c >= 'A' && c <= 'Z':
		alt = c + ('a' - 'A')
	default:
		return false
	}
	d := decodeTable[alt]
	return d >= 0 && byte(d) == digit
}

// FastMatch is the grouped base-58^4 matcher of spec.md §4.H: it decides
// whether payload's Base58 encoding starts with prefix without computing
// the full encoding.
func FastMatch(payload []byte, prefix []byte, ignoreCase bool) bool {
	leadingZeroBytes := 0
	for leadingZeroBytes < len(payload) && payload[leadingZeroBytes] == 0 {
		leadingZeroBytes++
	}

	leadingOnesNeeded := 0
	for leadingOnesNeeded < len(prefix) && prefix[leadingOnesNeeded] == '1' {
		leadingOnesNeeded++
	}

	if leadingOnesNeeded > leadingZeroBytes {
		return false
	}
	if leadingOnesNeeded == len(prefix) {
		// prefix is wholly '1's: match iff the zero count suffices.
		return leadingZeroBytes >= leadingOnesNeeded
	}
	if leadingZeroBytes > leadingOnesNeeded {
		// the encoding has another '1' where the prefix has a non-'1'.
		return false
	}

	remaining := prefix[leadingOnesNeeded:]
	limbs := toLimbsBase58e4(payload[leadingZeroBytes:])

	totalDigits := 0
	if len(limbs) > 0 {
		totalDigits = 4*(len(limbs)-1) + digitsInLimb(limbs[len(limbs)-1])
	}
	if totalDigits < len(remaining) {
		return false
	}

	// Walk digits most-significant-first across all limbs, skipping the
	// leading zero digits of the top limb, and compare against `remaining`.
	topDigits := digitsInLimb(limbs[len(limbs)-1])
	matched := 0
	for li := len(limbs) - 1; li >= 0 && matched < len(remaining); li-- {
		start := 0
		if li == len(limbs)-1 {
			start = 4 - topDigits
		}
		for d := start; d < 4 && matched < len(remaining); d++ {
			digit := digitAt(limbs[li], d)
			if !matchChar(remaining[matched], digit, ignoreCase) {
				return false
			}
			matched++
		}
	}
	return matched == len(remaining)
}

// GenericMatch is the full-encode reference path of spec.md §4.H, kept
// only for correctness testing: it Base58-encodes the entire payload
// with the standard Bitcoin-alphabet encoder and compares the prefix
// directly. It deliberately reuses the teacher's own Base58 dependency
// (github.com/btcsuite/btcutil/base58) rather than this module's
// from-scratch encoder (internal/address), so FastMatch is checked
// against an independent implementation, not just itself.
func GenericMatch(payload []byte, prefix []byte, ignoreCase bool) bool {
	encoded := base58.Encode(payload)
	if len(encoded) < len(prefix) {
		return false
	}
	enc := encoded[:len(prefix)]
	if !ignoreCase {
		return enc == string(prefix)
	}
	for i := range prefix {
		a, b := enc[i], prefix[i]
		if toLower(a) != toLower(b) {
			return false
		}
	}
	return true
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
