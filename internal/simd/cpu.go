// Package simd provides the byte-scanning primitives used by the fast-forward
// acceleration (see engine.fastForward): finding the first byte of a haystack
// that belongs to a small set, or the first occurrence of a single literal
// byte.
//
// The actual vector instructions the teacher corpus dispatches to
// (memchr_amd64.s, ascii_amd64.s) are native code generated by an assembler,
// which is the same kind of code sink this module's §1 scope excludes for
// the regex JIT itself. Every path below is therefore a portable,
// allocation-free SWAR (SIMD-within-a-register) loop over uint64 words; CPU
// feature detection only picks the chunk width used by that loop, not a
// different code path.
package simd

import "golang.org/x/sys/cpu"

// hasAVX2 reports whether the host CPU has AVX2, matching the teacher's
// simd.hasAVX2 dispatch flag. It is used here only to widen the SWAR chunk
// from 8 to 32 bytes at a time on CPUs that can move wider words through
// cache efficiently; it never selects assembly.
var hasAVX2 = cpu.X86.HasAVX2

// chunkWords returns how many uint64 words to process per unrolled
// iteration of IndexByte's scan loop in scan.go.
func chunkWords() int {
	if hasAVX2 {
		return 4 // 32 bytes/iteration, mirrors the AVX2 register width
	}
	return 1 // 8 bytes/iteration
}
