// Package parser turns a regex source string into the linearized term
// sequence the transition builder consumes. It validates syntax, expands
// bounded repetition by unrolling, and folds leading/trailing anchors into
// flags.
package parser

import "fmt"

// Kind identifies the role of a Term in the linear term sequence.
type Kind uint8

const (
	// Begin and End are the sentinel terms bracketing every term sequence.
	Begin Kind = iota
	End

	// Char is a single literal character.
	Char

	// ID is a non-POSIX id-tag annotation, `{n!}`.
	ID

	// RngStart opens a character class; Value's low bit is the invert flag.
	RngStart
	// RngEnd closes a character class. Its Value is unused (0) in the
	// term sequence; the transition builder pairs it with its RngStart
	// itself.
	RngEnd
	// RngChar is a single member character of an open character class.
	RngChar
	// RngLeft/RngRight bracket a contiguous member range ("c-c") of an
	// open character class; they always appear as a RngLeft,RngRight
	// pair.
	RngLeft
	RngRight

	// OpenBr/CloseBr bracket a parenthesized group.
	OpenBr
	CloseBr

	// Select separates alternation arms ("|").
	Select

	// Star, Plus, Question are postfix iterator markers.
	Star
	Plus
	Question
)

func (k Kind) String() string {
	switch k {
	case Begin:
		return "BEGIN"
	case End:
		return "END"
	case Char:
		return "CHAR"
	case ID:
		return "ID"
	case RngStart:
		return "RNG_START"
	case RngEnd:
		return "RNG_END"
	case RngChar:
		return "RNG_CHAR"
	case RngLeft:
		return "RNG_LEFT"
	case RngRight:
		return "RNG_RIGHT"
	case OpenBr:
		return "OPEN_BR"
	case CloseBr:
		return "CLOSE_BR"
	case Select:
		return "SELECT"
	case Star:
		return "STAR"
	case Plus:
		return "PLUS"
	case Question:
		return "QUESTION"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Term is a single element of the linearized parse of a pattern.
//
// Value is reinterpreted depending on Kind: a character code for Char,
// RngChar, RngLeft, RngRight; an id tag for ID; an invert flag (0 or 1)
// for RngStart. Terms that need none of these (Begin, End, RngEnd,
// OpenBr, CloseBr, Select, Star, Plus, Question) leave Value at 0.
type Term struct {
	Kind  Kind
	Value int32
}

// Invert reports the invert flag of a RngStart term.
func (t Term) Invert() bool {
	return t.Kind == RngStart && t.Value != 0
}

// CharCode returns the literal character of a Char/RngChar/RngLeft/RngRight
// term.
func (t Term) CharCode() byte {
	return byte(t.Value)
}
