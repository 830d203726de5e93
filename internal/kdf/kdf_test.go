package kdf

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"testing"

	xpbkdf2 "golang.org/x/crypto/pbkdf2"
)

func TestHMAC512MatchesStdlib(t *testing.T) {
	key := []byte("a reasonably short hmac key")
	msg := []byte("message to authenticate")

	h, ok := NewHMAC512(key)
	if !ok {
		t.Fatalf("NewHMAC512 rejected a <=128 byte key")
	}
	got := h.Compute(msg)

	ref := hmac.New(sha512.New, key)
	ref.Write(msg)
	want := ref.Sum(nil)

	if !bytes.Equal(got[:], want) {
		t.Fatalf("hmac mismatch:\n got  %x\n want %x", got, want)
	}
}

func TestHMAC512RejectsOversizeKey(t *testing.T) {
	key := make([]byte, 129)
	if _, ok := NewHMAC512(key); ok {
		t.Fatalf("NewHMAC512 must reject keys over 128 bytes")
	}
}

func TestComputeWordsMatchesComputeOnBytes(t *testing.T) {
	h, _ := NewHMAC512([]byte("key"))
	var msgBytes [64]byte
	for i := range msgBytes {
		msgBytes[i] = byte(i * 3)
	}
	viaBytes := h.Compute(msgBytes[:])
	viaWords := h.ComputeWords(WordsFromBytes(msgBytes))
	if viaBytes != BytesFromWords(viaWords) {
		t.Fatalf("register path diverges from byte path")
	}
}

func TestPbkdf2OneBlockMatchesReferenceAcrossIterationCounts(t *testing.T) {
	password := []byte("password")
	salt := []byte("salt")

	for _, iters := range []int{1, 2, 5, 2048} {
		got := Pbkdf2HmacSha512OneBlock(password, salt, iters)
		want := xpbkdf2.Key(password, salt, iters, 64, sha512.New)
		if !bytes.Equal(got[:], want) {
			t.Fatalf("iters=%d: pbkdf2 mismatch:\n got  %x\n want %x", iters, got, want)
		}
	}
}

func TestPbkdf2RejectsInvalidParameters(t *testing.T) {
	if got := Pbkdf2HmacSha512OneBlock(make([]byte, 129), []byte("salt"), 1); got != ([64]byte{}) {
		t.Fatalf("oversize password must yield zero block")
	}
	if got := Pbkdf2HmacSha512OneBlock([]byte("pw"), make([]byte, 257), 1); got != ([64]byte{}) {
		t.Fatalf("oversize salt must yield zero block")
	}
	if got := Pbkdf2HmacSha512OneBlock([]byte("pw"), []byte("salt"), 0); got != ([64]byte{}) {
		t.Fatalf("zero iterations must yield zero block")
	}
}
