// Package searchkernel implements the per-work-item sweep of spec.md
// §4.I: the sequential pipeline a GPU lane runs (entropy -> BIP39 seed ->
// BIP32 external chain -> per-index child key -> compressed pubkey ->
// address -> pattern match), plus the hit record layout shared with the
// device kernel's C ABI. This is the host-side "software device" used
// both to verify GPU hits (spec.md §4.J step 4) and, via
// internal/gpuexec's software fallback, to run the search entirely on
// the CPU when no OpenCL device is present.
package searchkernel

import "encoding/binary"

// HitSize is the fixed hit record size: 8 LE u32 entropy words + 3 u32
// fields + 5 reserved u32 words, 64 bytes total, 16-byte aligned
// (spec.md §6).
const HitSize = 64

// Hit mirrors the device-side hit record exactly: entropy as 8
// little-endian u32 words, the originating work-item id, the matched
// address index, and the matched pattern index. Reserved bytes are kept
// zeroed and are not modelled as a field since nothing ever reads them.
type Hit struct {
	EntropyWords [8]uint32
	WorkItemID   uint32
	AddressIndex uint32
	PatternIndex uint32
}

// Entropy reconstructs the 32 raw entropy bytes from the hit's
// little-endian word encoding (spec.md §4.J step 4).
func (h Hit) Entropy() [32]byte {
	var out [32]byte
	for i, w := range h.EntropyWords {
		binary.LittleEndian.PutUint32(out[i*4:i*4+4], w)
	}
	return out
}

// EntropyToWords is the inverse of Entropy: the 8 LE u32 words a work
// item would have written into a hit record for this entropy.
func EntropyToWords(entropy [32]byte) [8]uint32 {
	var out [8]uint32
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(entropy[i*4 : i*4+4])
	}
	return out
}

// MarshalBinary encodes h into the 64-byte C-ABI layout (spec.md §6):
// u32[8] entropy_words LE, u32 work_item_id, u32 address_index, u32
// pattern_index, u32[5] reserved (zeroed). All fields, including the
// reserved tail, are little-endian to match the device layout exactly.
func (h Hit) MarshalBinary() []byte {
	buf := make([]byte, HitSize)
	for i, w := range h.EntropyWords {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	binary.LittleEndian.PutUint32(buf[32:], h.WorkItemID)
	binary.LittleEndian.PutUint32(buf[36:], h.AddressIndex)
	binary.LittleEndian.PutUint32(buf[40:], h.PatternIndex)
	return buf
}

// UnmarshalHit decodes a 64-byte hit record read back from device
// memory. ok is false if buf is not exactly HitSize bytes.
func UnmarshalHit(buf []byte) (Hit, bool) {
	if len(buf) != HitSize {
		return Hit{}, false
	}
	var h Hit
	for i := range h.EntropyWords {
		h.EntropyWords[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	h.WorkItemID = binary.LittleEndian.Uint32(buf[32:])
	h.AddressIndex = binary.LittleEndian.Uint32(buf[36:])
	h.PatternIndex = binary.LittleEndian.Uint32(buf[40:])
	return h, true
}
