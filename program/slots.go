package program

import "fmt"

// SlotMap is the search-state analyzer's output (§4.4): a parallel array
// to Program assigning a slot index to every char-consuming or anchor
// position (BEGIN, each CHAR, each RNG_END, END). Positions that are
// ε-only (ID, the interior of a character class, BRANCH, JUMP) map to -1.
type SlotMap struct {
	Slots []int32
	// NumSlots is T, the total number of slot-bearing positions.
	NumSlots int32
	// IDCheck is true once the program contains at least one ID n, n>0
	// term. Compile folds this back into Flags so callers never have to
	// set it by hand.
	IDCheck bool
	// Width is the number of data words a single active thread carries
	// per slot in the match engine's state vector: 2 (start offset, chain
	// link) normally, 3 when IDCheck adds an id_acc word.
	Width int
	// MaxClassWidth is the largest number of program positions inside any
	// one character class (its RNG_CHAR, RNG_LEFT and RNG_RIGHT entries,
	// so a `c-c` range counts twice), informational only (sizing hint for
	// a caller building a custom character-predicate cache).
	MaxClassWidth int
	// ClassExit maps a RNG_START position to its matching RNG_END
	// position; -1 everywhere else. The trace walker uses it to find the
	// slot a class test lands on without rescanning the program.
	ClassExit []int32
	// PosOf is the inverse of Slots: PosOf[slot] is the program position
	// that slot was assigned to.
	PosOf []int32
}

// TestPos returns the program position the match engine should evaluate
// the current input byte against for a thread occupying slot: the CHAR
// position itself, or the RNG_START position for a class (slots are
// assigned to RNG_END, so this follows RNG_END's back-link).
func (sm *SlotMap) TestPos(p *Program, slot int32) int {
	pos := int(sm.PosOf[slot])
	if p.Insts[pos].Op == OpRngEnd {
		return int(p.Insts[pos].Value)
	}
	return pos
}

// Analyze runs the search-state analyzer over p.
func Analyze(p *Program) *SlotMap {
	slots := make([]int32, len(p.Insts))
	classExit := make([]int32, len(p.Insts))
	posOf := make([]int32, 0, len(p.Insts))
	var next int32
	idCheck := false
	maxClassWidth := 0
	classWidth := 0
	classStart := -1

	for i := range classExit {
		classExit[i] = -1
	}

	for i, inst := range p.Insts {
		switch inst.Op {
		case OpBegin, OpChar, OpRngEnd, OpEnd:
			slots[i] = next
			posOf = append(posOf, int32(i))
			next++
		default:
			slots[i] = -1
		}

		switch inst.Op {
		case OpID:
			if inst.Value > 0 {
				idCheck = true
			}
		case OpRngStart:
			classStart = i
			classWidth = 0
		case OpRngChar, OpRngLeft, OpRngRight:
			if classStart >= 0 {
				classWidth++
			}
		case OpRngEnd:
			if classWidth > maxClassWidth {
				maxClassWidth = classWidth
			}
			if classStart >= 0 {
				classExit[classStart] = int32(i)
			}
			classStart = -1
		}
	}

	width := 2
	if idCheck {
		width = 3
	}

	return &SlotMap{
		Slots:         slots,
		NumSlots:      next,
		IDCheck:       idCheck,
		Width:         width,
		MaxClassWidth: maxClassWidth,
		ClassExit:     classExit,
		PosOf:         posOf,
	}
}

// SlotOf returns the slot index of program position i, or -1 if i carries
// no slot.
func (sm *SlotMap) SlotOf(i int) int32 {
	if i < 0 || i >= len(sm.Slots) {
		return -1
	}
	return sm.Slots[i]
}

func (sm *SlotMap) String() string {
	s := fmt.Sprintf("slots: T=%d width=%d idcheck=%v maxclass=%d\n", sm.NumSlots, sm.Width, sm.IDCheck, sm.MaxClassWidth)
	for i, slot := range sm.Slots {
		if slot >= 0 {
			s += fmt.Sprintf("  pos %4d -> slot %d\n", i, slot)
		}
	}
	return s
}
