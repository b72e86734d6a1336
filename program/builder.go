package program

import (
	"fmt"

	"github.com/coregx/posixre/parser"
)

// Build runs the transition builder (§4.3) over terms, producing a flat
// Program with every BRANCH/JUMP target resolved to an absolute index.
// terms must be the output of parser.Parse: Terms[0] is BEGIN and
// Terms[len-1] is END. sizeHint preallocates the instruction slice (use
// parser.Result.ProgramSizeUpperBound).
func Build(terms []parser.Term, sizeHint int) (*Program, error) {
	if len(terms) < 2 || terms[0].Kind != parser.Begin || terms[len(terms)-1].Kind != parser.End {
		return nil, &BuildError{Reason: "term stream missing BEGIN/END sentinels"}
	}

	match, err := computeMatches(terms)
	if err != nil {
		return nil, err
	}

	if sizeHint <= 0 {
		sizeHint = len(terms) * 2
	}
	b := &builder{terms: terms, match: match, prog: make([]Inst, 0, sizeHint)}

	b.emit(OpBegin, 0)
	if err := b.compileAlt(1, len(terms)-1); err != nil {
		return nil, err
	}
	b.emit(OpEnd, 0)

	return &Program{Insts: b.prog}, nil
}

// builder walks the term stream left to right with a recursive-descent
// grammar mirroring exactly how the parser laid the terms down: SELECT
// separates alternation arms at the current nesting level, OpenBr/CloseBr
// bracket a sub-alternation, and an iterator marker directly follows the
// atom or group it modifies. This produces a program logically equivalent
// to a right-to-left, backward-filled construction without needing to
// shift already-emitted instructions when an iterator wraps a unit whose
// body has already been compiled (see DESIGN.md).
type builder struct {
	terms []parser.Term
	match map[int]int // OpenBr<->CloseBr and RngStart<->RngEnd, both directions
	prog  []Inst
}

func (b *builder) emit(op Op, val int32) {
	b.prog = append(b.prog, Inst{Op: op, Value: val})
}

// reserve appends a placeholder instruction and returns its index, to be
// patched once the information it depends on (a loop-back or merge
// target) is known.
func (b *builder) reserve() int {
	idx := len(b.prog)
	b.prog = append(b.prog, Inst{})
	return idx
}

// computeMatches pairs every OpenBr with its CloseBr and every RngStart
// with its RngEnd in a single pass. Both pairings are well-nested by
// construction (a character class never contains a group or another
// class), so one stack suffices for both.
func computeMatches(terms []parser.Term) (map[int]int, error) {
	m := make(map[int]int, len(terms))
	var stack []int
	for i, t := range terms {
		switch t.Kind {
		case parser.OpenBr, parser.RngStart:
			stack = append(stack, i)
		case parser.CloseBr, parser.RngEnd:
			if len(stack) == 0 {
				return nil, &BuildError{Reason: fmt.Sprintf("unmatched closing term at %d", i)}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			m[top] = i
			m[i] = top
		}
	}
	if len(stack) != 0 {
		return nil, &BuildError{Reason: "unbalanced group or character class"}
	}
	return m, nil
}

func isIterator(k parser.Kind) bool {
	return k == parser.Star || k == parser.Plus || k == parser.Question
}

// splitArms partitions terms[lo:hi] into alternation arms, splitting on
// every top-level SELECT (nested groups and character classes are
// skipped over via the match table so a SELECT inside a group does not
// split the outer alternation).
func (b *builder) splitArms(lo, hi int) [][2]int {
	var arms [][2]int
	start := lo
	i := lo
	for i < hi {
		switch b.terms[i].Kind {
		case parser.OpenBr, parser.RngStart:
			i = b.match[i] + 1
		case parser.Select:
			arms = append(arms, [2]int{start, i})
			i++
			start = i
		default:
			i++
		}
	}
	arms = append(arms, [2]int{start, hi})
	return arms
}

// compileAlt compiles terms[lo:hi] as a (possibly single-arm)
// alternation. Each non-final arm gets a leading BRANCH whose explicit
// target is the next arm's decision point and whose fallthrough enters
// the arm itself; each non-final arm ends with a JUMP to the shared
// merge point patched in once every arm has been compiled.
func (b *builder) compileAlt(lo, hi int) error {
	arms := b.splitArms(lo, hi)
	if len(arms) == 1 {
		return b.compileConcat(arms[0][0], arms[0][1])
	}

	var mergeJumps []int
	for i, arm := range arms {
		last := i == len(arms)-1
		var branchIdx int
		if !last {
			branchIdx = b.reserve()
		}
		if err := b.compileConcat(arm[0], arm[1]); err != nil {
			return err
		}
		if !last {
			jumpIdx := b.reserve()
			b.prog[branchIdx] = Inst{Op: OpBranch, Value: int32(len(b.prog))}
			mergeJumps = append(mergeJumps, jumpIdx)
		}
	}
	merge := int32(len(b.prog))
	for _, j := range mergeJumps {
		b.prog[j] = Inst{Op: OpJump, Value: merge}
	}
	return nil
}

// compileConcat compiles a sequence of atoms/groups with no top-level
// SELECT, applying at most one trailing iterator per unit.
func (b *builder) compileConcat(lo, hi int) error {
	i := lo
	for i < hi {
		t := b.terms[i]

		var atomEnd int
		var compileAtom func() error

		switch t.Kind {
		case parser.OpenBr:
			closeIdx, ok := b.match[i]
			if !ok {
				return &BuildError{Reason: fmt.Sprintf("unmatched '(' at term %d", i)}
			}
			innerLo, innerHi := i+1, closeIdx
			atomEnd = closeIdx + 1
			compileAtom = func() error { return b.compileAlt(innerLo, innerHi) }

		case parser.Char:
			val := t.Value
			atomEnd = i + 1
			compileAtom = func() error { b.emit(OpChar, val); return nil }

		case parser.ID:
			val := t.Value
			atomEnd = i + 1
			compileAtom = func() error { b.emit(OpID, val); return nil }

		case parser.RngStart:
			rngEnd, ok := b.match[i]
			if !ok {
				return &BuildError{Reason: fmt.Sprintf("unmatched char class at term %d", i)}
			}
			rngLo := i
			atomEnd = rngEnd + 1
			compileAtom = func() error { return b.compileCharClass(rngLo, rngEnd) }

		default:
			return &BuildError{Reason: fmt.Sprintf("unexpected %s in concatenation", t.Kind)}
		}

		hasIter := atomEnd < hi && isIterator(b.terms[atomEnd].Kind)
		var iterKind parser.Kind
		if hasIter {
			iterKind = b.terms[atomEnd].Kind
		}

		switch {
		case hasIter && iterKind == parser.Star:
			branchIdx := b.reserve()
			if err := compileAtom(); err != nil {
				return err
			}
			b.emit(OpJump, int32(branchIdx))
			b.prog[branchIdx] = Inst{Op: OpBranch, Value: int32(len(b.prog))}

		case hasIter && iterKind == parser.Question:
			branchIdx := b.reserve()
			if err := compileAtom(); err != nil {
				return err
			}
			b.prog[branchIdx] = Inst{Op: OpBranch, Value: int32(len(b.prog))}

		case hasIter && iterKind == parser.Plus:
			bodyStart := int32(len(b.prog))
			if err := compileAtom(); err != nil {
				return err
			}
			b.emit(OpBranch, bodyStart)

		default:
			if err := compileAtom(); err != nil {
				return err
			}
		}

		i = atomEnd
		if hasIter {
			i++
		}
	}
	return nil
}

// compileCharClass copies the RngStart..RngEnd run at terms[rngLo:rngEnd]
// (inclusive) into the program, giving the emitted RngEnd the program
// index of its RngStart as its Value (the back-link TestPos follows).
func (b *builder) compileCharClass(rngLo, rngEnd int) error {
	startPos := int32(len(b.prog))
	b.emit(OpRngStart, b.terms[rngLo].Value)
	for k := rngLo + 1; k < rngEnd; k++ {
		t := b.terms[k]
		switch t.Kind {
		case parser.RngChar:
			b.emit(OpRngChar, t.Value)
		case parser.RngLeft:
			b.emit(OpRngLeft, t.Value)
		case parser.RngRight:
			b.emit(OpRngRight, t.Value)
		default:
			return &BuildError{Reason: fmt.Sprintf("unexpected %s inside character class", t.Kind)}
		}
	}
	b.emit(OpRngEnd, startPos)
	return nil
}
