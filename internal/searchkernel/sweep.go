package searchkernel

import (
	"encoding/binary"

	"github.com/Asylian21/ergo-vanity-gpu/internal/address"
	"github.com/Asylian21/ergo-vanity-gpu/internal/hashes"
	"github.com/Asylian21/ergo-vanity-gpu/internal/hdkey"
	"github.com/Asylian21/ergo-vanity-gpu/internal/mnemonic"
	"github.com/Asylian21/ergo-vanity-gpu/internal/pattern"
)

// MinIndices and MaxIndices bound num_indices per spec.md §4.J ("1..100").
const (
	MinIndices = 1
	MaxIndices = 100
)

// Params is the uniform, read-only state every work item in a batch
// shares (spec.md §6's kernel-entry arguments, minus the wordlist and
// pattern buffers already embedded in internal/wordlist and
// internal/pattern).
type Params struct {
	Salt       [32]byte
	Patterns   pattern.Set
	NumIndices uint32
}

// Entropy computes a work item's private entropy (spec.md §4.I):
// Blake2b-256(salt(32) || LE64(counter) || LE32(gid)), a 44-byte message.
func Entropy(salt [32]byte, counter uint64, gid uint32) [32]byte {
	var msg [44]byte
	copy(msg[:32], salt[:])
	binary.LittleEndian.PutUint64(msg[32:40], counter)
	binary.LittleEndian.PutUint32(msg[40:44], gid)
	return hashes.Blake2b256(msg[:])
}

// Sweep runs one work item's full pipeline: entropy -> BIP39 seed ->
// BIP32 external chain -> for each address index up to params.NumIndices,
// derive the child key, compress it, build the address, and test every
// pattern in order. It returns the first match (address_index ascending,
// pattern_index in list order) exactly as spec.md §4.I's pseudocode
// specifies, or ok=false if the work item produced no match.
//
// Derivation rejections (a zero or out-of-range BIP32 IL, a point at
// infinity) are skipped silently, matching spec.md §7's "derivation
// rejection (device)... never surfaced to the host": the loop simply
// continues to the next address index.
func Sweep(params Params, gid uint32, counter uint64) (Hit, bool) {
	entropy := Entropy(params.Salt, counter, gid)
	seed := mnemonic.Seed(entropy)

	master, ok := hdkey.Master(seed)
	if !ok {
		return Hit{}, false
	}
	external, ok := hdkey.ErgoExternalChain(master)
	if !ok {
		return Hit{}, false
	}

	for j := uint32(0); j < params.NumIndices; j++ {
		child, ok := hdkey.AddressKey(external, j)
		if !ok {
			continue
		}
		pub, ok := hdkey.CompressedPubKey(child.Key)
		if !ok {
			continue
		}
		payload := address.Payload(pub)

		for p, pat := range params.Patterns.Patterns {
			if pattern.FastMatch(payload[:], pat.Bytes, params.Patterns.IgnoreCase) {
				return Hit{
					EntropyWords: EntropyToWords(entropy),
					WorkItemID:   gid,
					AddressIndex: j,
					PatternIndex: uint32(p),
				}, true
			}
		}
	}
	return Hit{}, false
}
