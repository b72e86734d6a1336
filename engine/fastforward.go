package engine

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/posixre/internal/simd"
	"github.com/coregx/posixre/parser"
	"github.com/coregx/posixre/program"
)

// Accelerator is the fast-forward helper of §4.7: when a search is
// unanchored and the only active thread is BEGIN's own ε-closure, the
// engine can skip ahead to the next byte that could possibly start a
// match instead of stepping through every byte one at a time.
//
// It is only ever an overhead optimization: when none of the heuristics
// below apply, Accelerator is nil and ContinueMatch falls back to
// stepping byte by byte, which is always correct.
type Accelerator struct {
	firstBytes *simd.ByteSet
	literal    *ahocorasick.Automaton
}

// NewAccelerator inspects BEGIN's ε-closure and builds whichever
// accelerator applies, or returns nil if none does. It returns nil
// whenever the pattern can match the empty string (END is reachable
// directly from BEGIN), since then every offset is a potential
// zero-length match and skipping ahead would step over valid ones.
func NewAccelerator(prog *program.Program, sm *program.SlotMap, flags parser.Flags) *Accelerator {
	if flags&parser.MatchBegin != 0 {
		return nil // anchored: BEGIN's closure is only ever traced once, at offset 0
	}

	tr := program.NewTracer(prog, sm)
	reached := tr.Trace(1, -1, nil)

	set := &simd.ByteSet{}
	var literals [][]byte
	allLiteral := true

	for _, r := range reached {
		inst := prog.Insts[r.Pos]
		switch inst.Op {
		case program.OpEnd:
			return nil
		case program.OpChar:
			set.Add(byte(inst.Value))
			literals = append(literals, []byte{byte(inst.Value)})
		case program.OpRngStart:
			allLiteral = false
			for b := 0; b < 256; b++ {
				if program.MatchesClass(prog, r.Pos, byte(b)) {
					set.Add(byte(b))
				}
			}
		default:
			allLiteral = false
		}
	}

	if !set.IsUseful() {
		return nil
	}

	accel := &Accelerator{firstBytes: set}
	if allLiteral && len(literals) >= 2 {
		builder := ahocorasick.NewBuilder()
		for _, lit := range literals {
			builder.AddPattern(lit)
		}
		if auto, err := builder.Build(); err == nil {
			accel.literal = auto
		}
	}
	return accel
}

// fastForward returns the index (>= from) of the next byte in chunk that
// could start a match, or len(chunk) if none remains.
func (e *Engine) fastForward(chunk []byte, from int) int {
	if e.accel == nil || from >= len(chunk) {
		return from
	}
	rest := chunk[from:]

	if e.accel.literal != nil {
		if m := e.accel.literal.Find(rest, 0); m != nil {
			return from + m.Start
		}
		return len(chunk)
	}

	idx := simd.ScanSet(rest, e.accel.firstBytes)
	if idx < 0 {
		return len(chunk)
	}
	return from + idx
}
