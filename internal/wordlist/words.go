// Package wordlist exposes the standard BIP39 English word list as the
// opaque, fixed 2048x(<=8)-byte table spec.md §1 and §6 describe: "the
// BIP39 English wordlist data (treated as an opaque 2048x(<=8)-byte
// table)" is explicitly out of this module's scope, so the data itself
// is sourced from the same wallet ecosystem the teacher repo's own
// dependency stack belongs to, rather than hand-transcribed.
package wordlist

import (
	"github.com/tyler-smith/go-bip39/wordlists"
)

// MaxWordBytes is the longest English BIP39 word's UTF-8 byte length;
// spec.md §6 pads every word to this width ("words8 (2048 x 8B wordlist,
// padded)") for the device-side fixed-width table.
const MaxWordBytes = 8

// Count is the number of words in the list.
const Count = 2048

// Words returns the 2048-word English BIP39 list, index == BIP39 index.
func Words() []string {
	return wordlists.English
}

// Words8 returns the device-shaped table: each word zero-padded to 8
// bytes (words longer than 8 bytes cannot occur in the English list) and
// its companion length.
func Words8() (words8 [Count][MaxWordBytes]byte, lens [Count]uint8) {
	list := Words()
	for i, w := range list {
		if len(w) > MaxWordBytes {
			panic("wordlist: English word exceeds 8 bytes: " + w)
		}
		copy(words8[i][:], w)
		lens[i] = uint8(len(w))
	}
	return words8, lens
}

// ByIndex returns the word at i, assuming 0 <= i < Count.
func ByIndex(i uint16) string {
	return Words()[i]
}
