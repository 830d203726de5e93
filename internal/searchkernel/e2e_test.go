package searchkernel

import (
	"testing"

	"github.com/Asylian21/ergo-vanity-gpu/internal/address"
	"github.com/Asylian21/ergo-vanity-gpu/internal/hdkey"
	"github.com/Asylian21/ergo-vanity-gpu/internal/mnemonic"
)

// TestZeroEntropyScenarioOne reproduces spec.md §8's scenario 1 end to
// end: for 32 zero entropy bytes and address_index 0, the pipeline must
// produce the well-known all-"abandon" mnemonic and the literal mainnet
// address spec.md names.
func TestZeroEntropyScenarioOne(t *testing.T) {
	var entropy [32]byte

	wantMnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
	if got := mnemonic.Mnemonic(entropy); got != wantMnemonic {
		t.Fatalf("mnemonic mismatch:\n got: %s\nwant: %s", got, wantMnemonic)
	}

	seed := mnemonic.Seed(entropy)
	master, ok := hdkey.Master(seed)
	if !ok {
		t.Fatalf("master derivation failed for zero entropy")
	}
	external, ok := hdkey.ErgoExternalChain(master)
	if !ok {
		t.Fatalf("external chain derivation failed for zero entropy")
	}
	child, ok := hdkey.AddressKey(external, 0)
	if !ok {
		t.Fatalf("address key derivation failed at index 0")
	}
	pub, ok := hdkey.CompressedPubKey(child.Key)
	if !ok {
		t.Fatalf("compressed pubkey derivation failed")
	}

	wantAddress := "9errK7Qa3oBVHbS4uGFPSe7ETvfHkZGcskV1gqGf6fqLUPAamo"
	if got := address.EncodeAddress(pub); got != wantAddress {
		t.Fatalf("address mismatch: got %s want %s", got, wantAddress)
	}
}
