// Package program implements the transition builder (§4.3), the
// search-state analyzer (§4.4), and the ε-closure trace (§4.5): it turns a
// parser.Result's linear term sequence into a flat program of typed
// instructions with resolved branch/jump edges, then into the parallel
// slot map and on-demand ε-closure walker the match engine drives.
package program

import "fmt"

// Op identifies the kind of a program instruction. It is the parser's
// Kind set minus the parser-only kinds (OpenBr, CloseBr, Select, Star,
// Plus, Question), plus Branch and Jump.
type Op uint8

const (
	OpBegin Op = iota
	OpEnd
	OpChar
	OpID
	OpRngStart
	OpRngEnd
	OpRngChar
	OpRngLeft
	OpRngRight
	// OpBranch is a non-deterministic fork: Value is the absolute program
	// index of the alternate path; the fallthrough path is the next
	// instruction.
	OpBranch
	// OpJump is an unconditional goto to Value.
	OpJump
)

func (o Op) String() string {
	switch o {
	case OpBegin:
		return "BEGIN"
	case OpEnd:
		return "END"
	case OpChar:
		return "CHAR"
	case OpID:
		return "ID"
	case OpRngStart:
		return "RNG_START"
	case OpRngEnd:
		return "RNG_END"
	case OpRngChar:
		return "RNG_CHAR"
	case OpRngLeft:
		return "RNG_LEFT"
	case OpRngRight:
		return "RNG_RIGHT"
	case OpBranch:
		return "BRANCH"
	case OpJump:
		return "JUMP"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Inst is a single program instruction. Value is reinterpreted by Op:
// a character code (Char, RngChar, RngLeft, RngRight), an id tag (ID), an
// invert flag 0/1 (RngStart), a back-link to the matching RngStart
// (RngEnd), or a target program index (Branch, Jump).
type Inst struct {
	Op    Op
	Value int32
}

// Program is the flat instruction sequence the transition builder
// produces. Program[0] is always OpBegin; Program[len-1] is always OpEnd.
type Program struct {
	Insts []Inst
}

// Len returns the number of instructions.
func (p *Program) Len() int { return len(p.Insts) }

func (p *Program) String() string {
	s := ""
	for i, inst := range p.Insts {
		s += fmt.Sprintf("%4d: %-10s %d\n", i, inst.Op, inst.Value)
	}
	return s
}
