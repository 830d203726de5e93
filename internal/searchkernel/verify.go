package searchkernel

import (
	"github.com/Asylian21/ergo-vanity-gpu/internal/address"
	"github.com/Asylian21/ergo-vanity-gpu/internal/hdkey"
	"github.com/Asylian21/ergo-vanity-gpu/internal/mnemonic"
	"github.com/Asylian21/ergo-vanity-gpu/internal/pattern"
)

// Verified is the fully reconstructed result of a verified hit: the
// mnemonic, the derived private key at (address_index), the compressed
// public key, and the resulting Ergo address.
type Verified struct {
	Entropy      [32]byte
	Mnemonic     string
	PrivateKey   [32]byte
	PubKey       [33]byte
	Address      string
	AddressIndex uint32
	PatternIndex uint32
}

// Verify re-runs the entire pipeline on the host from a hit's embedded
// entropy alone (spec.md §4.J step 4): it recovers the mnemonic, the
// child private key at hit.AddressIndex, the pubkey, the address, and
// re-checks that the address still matches the claimed pattern. ok is
// false if any derivation step rejects or the address no longer matches
// — both cases the controller treats as a verification failure
// (searcherr.ErrVerificationFailed), not a panic.
func Verify(hit Hit, patterns pattern.Set) (Verified, bool) {
	entropy := hit.Entropy()
	seed := mnemonic.Seed(entropy)

	master, ok := hdkey.Master(seed)
	if !ok {
		return Verified{}, false
	}
	external, ok := hdkey.ErgoExternalChain(master)
	if !ok {
		return Verified{}, false
	}
	child, ok := hdkey.AddressKey(external, hit.AddressIndex)
	if !ok {
		return Verified{}, false
	}
	pub, ok := hdkey.CompressedPubKey(child.Key)
	if !ok {
		return Verified{}, false
	}
	payload := address.Payload(pub)

	if int(hit.PatternIndex) >= len(patterns.Patterns) {
		return Verified{}, false
	}
	pat := patterns.Patterns[hit.PatternIndex]
	if !pattern.FastMatch(payload[:], pat.Bytes, patterns.IgnoreCase) {
		return Verified{}, false
	}

	return Verified{
		Entropy:      entropy,
		Mnemonic:     mnemonic.Mnemonic(entropy),
		PrivateKey:   child.Key.ToBytes(),
		PubKey:       pub,
		Address:      address.Encode(payload[:]),
		AddressIndex: hit.AddressIndex,
		PatternIndex: hit.PatternIndex,
	}, true
}
