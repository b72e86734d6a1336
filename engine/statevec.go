// Package engine implements the match engine (§4.6) and its
// fast-forward acceleration (§4.7): a Pike-VM-style double-buffered NFA
// simulation driven by program.Program, program.SlotMap and
// program.Tracer.
package engine

import (
	"fmt"

	"github.com/coregx/posixre/internal/conv"
	"github.com/coregx/posixre/internal/sparse"
)

// thread is the per-slot data a single active path through the program
// carries: the input offset it started matching at, and (when the
// program has an id tag) the highest id value seen along its path.
type thread struct {
	start int32
	idAcc int32
}

// stateVector is one of the double-buffered "current"/"next" state
// vectors. Membership and insertion order are tracked with
// internal/sparse.SparseSet, an O(1)-clear membership structure, with
// data holding the per-slot thread payload the set itself doesn't carry.
//
// nonGreedy mirrors the Engine's NonGreedy flag: it is fixed at
// construction (flags never change mid-match) and decides which way
// insert resolves a start-offset collision on a shared slot.
type stateVector struct {
	data      []thread
	set       *sparse.SparseSet
	nonGreedy bool
}

func newStateVector(numSlots int32, nonGreedy bool) *stateVector {
	return &stateVector{
		data:      make([]thread, numSlots),
		set:       sparse.NewSparseSet(conv.IntToUint32(int(numSlots))),
		nonGreedy: nonGreedy,
	}
}

// Order returns the occupied slots in insertion order. The returned
// slice aliases the set's internal dense array; it is only valid until
// the next insert or reset.
func (sv *stateVector) Order() []uint32 {
	return sv.set.Values()
}

// Len reports how many slots are currently occupied.
func (sv *stateVector) Len() int {
	return sv.set.Len()
}

// reset clears every occupied slot in O(active), not O(T).
func (sv *stateVector) reset() {
	sv.set.Clear()
}

// insert is the cond-tran insert of §4.6: merge a candidate thread into
// slot, keeping whichever of the two threads has higher priority when
// one is already occupying it.
//
// Priority on a start-offset collision follows spec.md §4.6 exactly:
// under the default greedy policy an earlier start wins (leftmost), but
// under NonGreedy a later start wins — the newest thread supersedes an
// older one occupying the same slot, so a shared slot (e.g. a `*`/`+`
// loop body revisited on every iteration) always reflects the most
// recently started attempt instead of getting stuck on the first one.
// When starts tie, a higher id_acc wins (a later/higher id tag carries
// strictly more information than a lower one, independent of
// greediness). When both tie exactly, the newly inserted thread wins —
// the most-recent-write rule that resolves spec.md §9's id-tag tie-break
// Open Question.
func (sv *stateVector) insert(slot int32, start, idAcc int32) {
	if sv.set.Insert(uint32(slot)) {
		sv.data[slot] = thread{start: start, idAcc: idAcc}
		return
	}
	cur := sv.data[slot]
	if start != cur.start {
		keepNew := start < cur.start
		if sv.nonGreedy {
			keepNew = start > cur.start
		}
		if keepNew {
			sv.data[slot] = thread{start: start, idAcc: idAcc}
		}
		return
	}
	if idAcc != cur.idAcc {
		if idAcc > cur.idAcc {
			sv.data[slot] = thread{start: start, idAcc: idAcc}
		}
		return
	}
	sv.data[slot] = thread{start: start, idAcc: idAcc}
}

func (sv *stateVector) String() string {
	order := sv.Order()
	s := fmt.Sprintf("active=%d\n", len(order))
	for _, slot := range order {
		t := sv.data[slot]
		s += fmt.Sprintf("  slot %d: start=%d idAcc=%d\n", slot, t.start, t.idAcc)
	}
	return s
}
