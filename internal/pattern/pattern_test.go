package pattern

import (
	"math/rand"
	"testing"
)

func randomPayload(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}

func TestFastMatchAgreesWithGenericAcrossRandomPayloads(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	prefixes := [][]byte{
		[]byte("9e"), []byte("9err"), []byte("9errK7"), []byte("9f"),
		[]byte("9egoabc"), []byte("9h1234567890"),
	}
	for trial := 0; trial < 500; trial++ {
		payload := randomPayload(r, 38)
		for _, p := range prefixes {
			for _, ignoreCase := range []bool{false, true} {
				want := GenericMatch(payload, p, ignoreCase)
				got := FastMatch(payload, p, ignoreCase)
				if got != want {
					t.Fatalf("mismatch payload=%x prefix=%q ignoreCase=%v: fast=%v generic=%v",
						payload, p, ignoreCase, got, want)
				}
			}
		}
	}
}

func TestLeadingOnePrefixBehaviour(t *testing.T) {
	oneLeadingZero := append([]byte{0x00}, make([]byte, 34)...)
	oneLeadingZero = append(oneLeadingZero, 0x01)
	noLeadingZero := append([]byte{0x01}, oneLeadingZero[1:]...)

	if !FastMatch(oneLeadingZero, []byte("1"), false) {
		t.Fatalf("payload with one leading zero byte must match prefix \"1\"")
	}
	if FastMatch(noLeadingZero, []byte("1"), false) {
		t.Fatalf("payload with no leading zero byte must not match prefix \"1\"")
	}
}

func TestTwoLeadingZerosPrefix(t *testing.T) {
	payload := make([]byte, 38)
	payload[2] = 0x01 // two leading zero bytes, then a non-zero tail
	if !FastMatch(payload, []byte("11"), false) {
		t.Fatalf("two leading zero bytes must match prefix \"11\"")
	}
	if FastMatch(payload, []byte("1a"), false) {
		t.Fatalf("two leading zero bytes encode as \"11\" and must not match \"1a\"")
	}
}

func TestValidationRejectsBadPrefixes(t *testing.T) {
	cases := []struct {
		name string
		p    []byte
	}{
		{"not-starting-with-9", []byte("8err")},
		{"bad-second-char", []byte("9zzz")},
		{"non-alphabet-char", []byte("9e0")}, // '0' is excluded from base58
		{"empty", []byte("")},
	}
	for _, c := range cases {
		if _, err := NewSet([][]byte{c.p}, false); err == nil {
			t.Fatalf("%s: expected validation error, got none", c.name)
		}
	}
}

func TestValidationAcceptsGoodPrefixes(t *testing.T) {
	set, err := NewSet([][]byte{[]byte("9err"), []byte("9EGO")}, true)
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if set.Patterns[1].Bytes[0] != '9' || set.Patterns[1].Bytes[1] != 'e' {
		t.Fatalf("case-insensitive set must lowercase stored prefixes")
	}
}

func TestTooManyPatternsRejected(t *testing.T) {
	raw := make([][]byte, MaxPatterns+1)
	for i := range raw {
		raw[i] = []byte("9err")
	}
	if _, err := NewSet(raw, false); err != ErrTooManyPatterns {
		t.Fatalf("expected ErrTooManyPatterns, got %v", err)
	}
}
