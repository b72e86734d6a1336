package simd

import (
	"encoding/binary"
	"math/bits"
)

// IndexByte returns the index of the first occurrence of needle in
// haystack, or -1 if it is not present. engine.fastForward does not call
// it: a single required leading byte is scanned with ScanSet like any
// other byte set.
//
// Algorithm (SWAR, per the teacher's simd.memchrGeneric):
//  1. Broadcast needle into every byte of a uint64 mask.
//  2. XOR each 8-byte chunk of haystack against the mask; matching bytes
//     become 0x00.
//  3. Use the classic "has a zero byte" bit trick to detect a match and
//     bits.TrailingZeros64 to locate it.
func IndexByte(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	needleMask := uint64(needle) * 0x0101010101010101
	step := 8 * chunkWords()

	idx := 0
	for idx+step <= n {
		for w := 0; w < step; w += 8 {
			chunk := binary.LittleEndian.Uint64(haystack[idx+w:])
			if pos, ok := firstZeroByte(chunk ^ needleMask); ok {
				return idx + w + pos
			}
		}
		idx += step
	}
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		if pos, ok := firstZeroByte(chunk ^ needleMask); ok {
			return idx + pos
		}
		idx += 8
	}
	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// firstZeroByte reports the index (0-7) of the least-significant zero byte
// in v, if any.
func firstZeroByte(v uint64) (int, bool) {
	const lo8 = 0x0101010101010101
	const hi8 = 0x8080808080808080
	hasZero := (v - lo8) & ^v & hi8
	if hasZero == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(hasZero) / 8, true
}

// ScanSet returns the index of the first byte in haystack that is a member
// of set, or -1 if none is. Used by fast-forward whenever no literal
// automaton applies (a single leading byte, a character class, or a mix
// of classes and literals).
//
// Unlike IndexByte, this has no word-at-a-time form to fall back to:
// ByteSet.Contains is already an O(1) table lookup, not a byte comparison,
// so there is no equivalent of the XOR/zero-byte trick to batch it under
// chunkWords() — a direct scan is the honest implementation.
func ScanSet(haystack []byte, set *ByteSet) int {
	for i, b := range haystack {
		if set.Contains(b) {
			return i
		}
	}
	return -1
}
