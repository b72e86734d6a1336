package engine

import (
	"github.com/coregx/posixre/parser"
	"github.com/coregx/posixre/program"
)

// Result is the outcome of a match: the byte offsets it spans and the
// highest id tag observed along the winning path (-1 if the pattern has
// no id tags). Start is -1 when no match was found.
type Result struct {
	Start int32
	End   int32
	ID    int32
}

// Matched reports whether r represents a successful match.
func (r Result) Matched() bool { return r.Start >= 0 }

var noMatch = Result{Start: -1, End: -1, ID: -1}

// Engine is the match session of §4.6: a reusable, double-buffered NFA
// simulation over a compiled program.Program. One Engine may be reset and
// driven through many independent matches (BeginMatch/ResetMatch) without
// reallocating its state vectors.
type Engine struct {
	prog   *program.Program
	sm     *program.SlotMap
	flags  parser.Flags
	tracer *program.Tracer

	cur, next *stateVector
	scratch   []program.Reached

	best     Result
	fastQuit bool
	pos      int32

	accel *Accelerator // optional fast-forward helper; nil if none applies
}

// New builds an Engine ready to match against prog/sm under flags.
func New(prog *program.Program, sm *program.SlotMap, flags parser.Flags) *Engine {
	nonGreedy := flags&parser.NonGreedy != 0
	e := &Engine{
		prog:   prog,
		sm:     sm,
		flags:  flags,
		tracer: program.NewTracer(prog, sm),
		cur:    newStateVector(sm.NumSlots, nonGreedy),
		next:   newStateVector(sm.NumSlots, nonGreedy),
	}
	e.accel = NewAccelerator(prog, sm, flags)
	e.ResetMatch()
	return e
}

// BeginMatch starts a fresh match against a new input, equivalent to
// ResetMatch. Both names are kept for API parity with §6.
func (e *Engine) BeginMatch() { e.ResetMatch() }

// ResetMatch discards any in-progress match and reseeds the engine at
// input offset 0, ready for a new ContinueMatch/GetResult cycle. It does
// not reallocate the state vectors.
func (e *Engine) ResetMatch() {
	e.cur.reset()
	e.next.reset()
	e.best = noMatch
	e.fastQuit = false
	e.pos = 0
	e.seed(0)
}

// FreeMatch releases engine-internal resources. The Go garbage collector
// reclaims everything an Engine holds once it is unreachable; FreeMatch
// exists only so callers porting §6's explicit free_match call have
// somewhere to put it (see SPEC_FULL.md §10).
func (e *Engine) FreeMatch() {}

// seed starts a brand-new thread at input offset start by tracing the
// ε-closure from just after BEGIN (program index 1) and merging the
// result into cur. It is called once at offset 0 unconditionally, and,
// when the match is unanchored, again at every later offset the engine
// steps from (offsets passed over by a fast-forward skip are not seeded).
func (e *Engine) seed(start int32) {
	e.scratch = e.tracer.Trace(1, -1, e.scratch[:0])
	for _, r := range e.scratch {
		if e.prog.Insts[r.Pos].Op == program.OpEnd {
			e.recordMatch(start, start, r.IDAcc)
			continue
		}
		e.cur.insert(r.Slot, start, r.IDAcc)
	}
}

// ContinueMatch feeds chunk to the engine, advancing the simulation one
// byte at a time. It may be called repeatedly with successive chunks of
// a streamed input; GetResult reflects the best match found across every
// call so far.
func (e *Engine) ContinueMatch(chunk []byte) {
	unanchored := e.flags&parser.MatchBegin == 0
	i := 0

	// i (chunk-local) and e.pos (global offset) must stay in lockstep: a
	// fast-forward skip advances both by the same amount. A skip drops the
	// threads seeded at the old offset; the loop re-seeds at the landing one.
	if unanchored && !e.fastQuit && e.accel != nil && e.onlyBeginClosureActive() {
		skip := e.fastForward(chunk, i)
		if skip > i {
			e.cur.reset()
		}
		e.pos += int32(skip - i)
		i = skip
	}

	for i < len(chunk) {
		if e.fastQuit {
			return
		}
		if unanchored && e.pos > 0 {
			e.seed(e.pos)
		}
		e.step(chunk[i])
		e.pos++
		i++

		if unanchored && !e.fastQuit && e.accel != nil && e.onlyBeginClosureActive() {
			skip := e.fastForward(chunk, i)
			if skip > i {
				e.cur.reset()
			}
			e.pos += int32(skip - i)
			i = skip
		}
	}
}

// step advances every active thread past one input byte ch: each thread
// tests ch against the leaf it is waiting on (a CHAR or a character
// class) and, on success, traces the ε-closure onward from the position
// right after that leaf, merging every destination into next via
// cond-tran insert. Reaching END along the way finalizes a candidate
// match instead of becoming an active thread.
func (e *Engine) step(ch byte) {
	e.next.reset()
	for _, s := range e.cur.Order() {
		slot := int32(s)
		th := e.cur.data[slot]
		testPos := e.sm.TestPos(e.prog, slot)
		inst := e.prog.Insts[testPos]

		var ok bool
		var afterPos int
		switch inst.Op {
		case program.OpChar:
			ok = int32(ch) == inst.Value
			afterPos = testPos + 1
		case program.OpRngStart:
			ok = program.MatchesClass(e.prog, testPos, ch)
			afterPos = int(e.sm.ClassExit[testPos]) + 1
		default:
			continue
		}
		if !ok {
			continue
		}

		e.scratch = e.tracer.Trace(afterPos, th.idAcc, e.scratch[:0])
		for _, r := range e.scratch {
			if e.prog.Insts[r.Pos].Op == program.OpEnd {
				e.recordMatch(th.start, e.pos+1, r.IDAcc)
				continue
			}
			e.next.insert(r.Slot, th.start, r.IDAcc)
		}
	}
	e.cur, e.next = e.next, e.cur
}

// onlyBeginClosureActive reports whether every currently active thread
// started at the current offset — i.e. nothing older is still
// in-progress. That's the precondition §4.7 requires before fast-forward
// may safely skip ahead: skipping only ever discards threads that would
// be reconstructed identically by re-seeding at the landing offset, never
// one that began matching earlier and is still alive.
func (e *Engine) onlyBeginClosureActive() bool {
	for _, slot := range e.cur.Order() {
		if e.cur.data[slot].start != e.pos {
			return false
		}
	}
	return true
}

// recordMatch applies the best-match-update policy of §4.6: leftmost
// start always wins, unconditionally — even under NonGreedy, a later
// thread completing first never preempts an earlier-starting thread that
// is still in progress. When starts tie, NonGreedy keeps the first
// (shortest) completion found, while the default greedy policy keeps
// extending to the longest end (and, on an exact (start,end) tie, the
// highest id tag — SPEC_FULL.md §12's most-recent tie-break, applied
// here as "prefer newer information").
//
// fast_quit is only ever set when NonGreedy and MatchBegin are both set
// (spec.md §4.6 line 149): with MatchBegin, start is always 0, so the
// first completion really is the final answer. Without MatchBegin,
// other starting offsets may still be mid-match and could yet produce a
// smaller (more leftmost) start, so the search must keep running.
func (e *Engine) recordMatch(start, end, id int32) {
	if e.fastQuit {
		return
	}
	switch {
	case e.best.Start < 0:
		e.best = Result{Start: start, End: end, ID: id}
	case start < e.best.Start:
		e.best = Result{Start: start, End: end, ID: id}
	case start == e.best.Start:
		if e.flags&parser.NonGreedy != 0 {
			break
		}
		if end > e.best.End || (end == e.best.End && id > e.best.ID) {
			e.best = Result{Start: start, End: end, ID: id}
		}
	}
	if e.flags&parser.NonGreedy != 0 && e.flags&parser.MatchBegin != 0 && e.best.Start == start {
		e.fastQuit = true
	}
}

// GetResult returns the best match found so far. When MatchEnd is set,
// a result is only reported once its End exactly reaches the current
// input offset — the streaming equivalent of requiring the match to
// reach end of input; feed the rest of the input and call GetResult
// again if this returns a non-match.
func (e *Engine) GetResult() Result {
	if e.flags&parser.MatchEnd != 0 {
		if e.best.Start >= 0 && e.best.End == e.pos {
			return e.best
		}
		return noMatch
	}
	return e.best
}

// IsMatchFinished reports whether the match is settled, i.e. no further
// input can change the result returned by GetResult.
func (e *Engine) IsMatchFinished() bool {
	if e.fastQuit {
		return true
	}
	if e.cur.Len() == 0 && e.flags&parser.MatchBegin != 0 {
		return true
	}
	return false
}
