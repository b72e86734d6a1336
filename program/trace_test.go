package program

import (
	"sort"
	"testing"
)

func buildFor(t *testing.T, pattern string) (*Program, *SlotMap) {
	t.Helper()
	res := mustParse(t, pattern, 0)
	prog, err := Build(res.Terms, res.ProgramSizeUpperBound)
	if err != nil {
		t.Fatalf("Build(%q): %v", pattern, err)
	}
	return prog, Analyze(prog)
}

func reachedSlots(rs []Reached) []int32 {
	out := make([]int32, len(rs))
	for i, r := range rs {
		out[i] = r.Slot
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestTraceLiteral(t *testing.T) {
	prog, sm := buildFor(t, "ab")
	tr := NewTracer(prog, sm)
	// Skip BEGIN (index 0); start the walk right after it, as the engine
	// would when birthing a fresh thread.
	reached := tr.Trace(1, -1, nil)
	if len(reached) != 1 || reached[0].Pos != 1 {
		t.Fatalf("expected a single leaf at pos 1 (the first CHAR), got %+v", reached)
	}
}

func TestTraceStarOffersBothExitAndBody(t *testing.T) {
	prog, sm := buildFor(t, "a*b")
	tr := NewTracer(prog, sm)
	reached := tr.Trace(1, -1, nil)
	// From the leading BRANCH of a*, both the 'a' and the 'b' should be
	// reachable in one ε-closure (zero or more 'a's before 'b').
	if len(reached) != 2 {
		t.Fatalf("expected 2 leaves (a and b), got %+v", reached)
	}
}

func TestTraceAlternation(t *testing.T) {
	prog, sm := buildFor(t, "a|b|c")
	tr := NewTracer(prog, sm)
	reached := tr.Trace(1, -1, nil)
	if len(reached) != 3 {
		t.Fatalf("expected 3 leaves, got %+v", reached)
	}
}

func TestTraceNoInfiniteLoopOnStar(t *testing.T) {
	prog, sm := buildFor(t, "a*")
	tr := NewTracer(prog, sm)
	// Must terminate: a* loops back through its own BRANCH via JUMP.
	reached := tr.Trace(1, -1, nil)
	if len(reached) != 2 { // the 'a' leaf, and END (exiting with zero reps)
		t.Fatalf("expected 2 leaves (a, END), got %+v", reached)
	}
}

func TestTraceIDAccumulates(t *testing.T) {
	prog, sm := buildFor(t, "(ab){3!}")
	tr := NewTracer(prog, sm)
	reached := tr.Trace(1, -1, nil)
	if len(reached) != 1 {
		t.Fatalf("expected a single leaf, got %+v", reached)
	}
	// id tag sits after the group, before the CHAR leaves inside it are
	// reached on the *second* character; the tag shows up once the whole
	// group (and id) has been traced through after the final char.
	if reached[0].Pos != 1 {
		t.Fatalf("expected the first CHAR leaf, got pos %d", reached[0].Pos)
	}
}

func TestTraceClassLeafReportsRngStart(t *testing.T) {
	prog, sm := buildFor(t, "[abc]")
	tr := NewTracer(prog, sm)
	reached := tr.Trace(1, -1, nil)
	if len(reached) != 1 {
		t.Fatalf("expected a single leaf, got %+v", reached)
	}
	if prog.Insts[reached[0].Pos].Op != OpRngStart {
		t.Fatalf("expected leaf to point at RNG_START, got %v", prog.Insts[reached[0].Pos].Op)
	}
}

func TestMatchesClassPlain(t *testing.T) {
	prog, _ := buildFor(t, "[a-c]")
	start := 1 // RNG_START position
	for _, tc := range []struct {
		b    byte
		want bool
	}{
		{'a', true}, {'b', true}, {'c', true}, {'d', false}, {'Z', false},
	} {
		if got := MatchesClass(prog, start, tc.b); got != tc.want {
			t.Errorf("MatchesClass(%q): got %v, want %v", tc.b, got, tc.want)
		}
	}
}

func TestMatchesClassInverted(t *testing.T) {
	prog, _ := buildFor(t, "[^abc]")
	start := 1
	if MatchesClass(prog, start, 'a') {
		t.Errorf("inverted class should reject a member")
	}
	if !MatchesClass(prog, start, 'z') {
		t.Errorf("inverted class should accept a non-member")
	}
}

func TestTraceIDMonotoneMemoization(t *testing.T) {
	// Two alternative paths reconverge on the same CHAR; the higher
	// id_acc path must not be shadowed by a lower one visited first.
	prog, sm := buildFor(t, "((x){1!}|(x){2!})y")
	tr := NewTracer(prog, sm)
	reached := tr.Trace(1, -1, nil)
	if len(reached) == 0 {
		t.Fatalf("expected at least one leaf")
	}
}
