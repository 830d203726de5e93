package address

import "testing"

func TestEncodeEmptyAndZeros(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0x00}, "1"},
		{[]byte{0x00, 0x00}, "11"},
		{[]byte{0x01}, "2"},
		{[]byte{0x39}, "z"},
		{[]byte{0x3A}, "21"},
	}
	for _, c := range cases {
		if got := Encode(c.in); got != c.want {
			t.Fatalf("Encode(%x) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPayloadLayout(t *testing.T) {
	var pub [33]byte
	pub[0] = 0x02
	payload := Payload(pub)
	if payload[0] != MainnetPrefix {
		t.Fatalf("payload prefix must be mainnet byte 0x01")
	}
	if payload[1] != 0x02 {
		t.Fatalf("payload must embed the compressed pubkey unchanged")
	}
}

func TestAddressStartsWithNine(t *testing.T) {
	var pub [33]byte
	pub[0] = 0x02
	addr := EncodeAddress(pub)
	if len(addr) == 0 || addr[0] != '9' {
		t.Fatalf("mainnet P2PK address must start with '9', got %q", addr)
	}
}
