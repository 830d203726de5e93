package hdkey

import (
	"github.com/Asylian21/ergo-vanity-gpu/internal/scalarfield"
	"testing"
)

func testSeed() [64]byte {
	var seed [64]byte
	for i := range seed {
		seed[i] = byte(i * 7)
	}
	return seed
}

func TestMasterDeterministic(t *testing.T) {
	seed := testSeed()
	m1, ok1 := Master(seed)
	m2, ok2 := Master(seed)
	if !ok1 || !ok2 {
		t.Fatalf("master derivation rejected a well-formed seed")
	}
	if m1.Key != m2.Key || m1.ChainCode != m2.ChainCode {
		t.Fatalf("master derivation is not deterministic")
	}
}

func TestErgoExternalChainSucceeds(t *testing.T) {
	master, ok := Master(testSeed())
	if !ok {
		t.Fatalf("master rejected")
	}
	external, ok := ErgoExternalChain(master)
	if !ok {
		t.Fatalf("m/44'/429'/0'/0 derivation rejected")
	}
	if scalarfield.IsZero(external.Key) {
		t.Fatalf("external chain key must not be zero")
	}
}

func TestAddressKeysDistinctAcrossIndices(t *testing.T) {
	master, _ := Master(testSeed())
	external, ok := ErgoExternalChain(master)
	if !ok {
		t.Fatalf("external chain derivation failed")
	}

	k0, ok0 := AddressKey(external, 0)
	k1, ok1 := AddressKey(external, 1)
	if !ok0 || !ok1 {
		t.Fatalf("address key derivation rejected")
	}
	if k0.Key == k1.Key {
		t.Fatalf("address index 0 and 1 must derive distinct keys")
	}
}

func TestCompressedPubKeyPrefixValid(t *testing.T) {
	master, _ := Master(testSeed())
	external, _ := ErgoExternalChain(master)
	key0, _ := AddressKey(external, 0)

	pub, ok := CompressedPubKey(key0.Key)
	if !ok {
		t.Fatalf("compressed pubkey derivation failed")
	}
	if pub[0] != 0x02 && pub[0] != 0x03 {
		t.Fatalf("compressed pubkey prefix must be 0x02 or 0x03, got %x", pub[0])
	}
}
