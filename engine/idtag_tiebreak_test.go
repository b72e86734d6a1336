package engine

import (
	"testing"

	"github.com/coregx/posixre/parser"
	"github.com/coregx/posixre/program"
)

// buildEngine is a small test helper shared across this package's tests:
// it runs the full parser -> builder -> analyzer pipeline and wraps the
// result in an Engine.
func buildEngine(t *testing.T, pattern string, flags parser.Flags) *Engine {
	t.Helper()
	res, err := parser.Parse(pattern, flags, parser.Limits{})
	if err != nil {
		t.Fatalf("parser.Parse(%q): %v", pattern, err)
	}
	prog, err := program.Build(res.Terms, res.ProgramSizeUpperBound)
	if err != nil {
		t.Fatalf("program.Build(%q): %v", pattern, err)
	}
	sm := program.Analyze(prog)
	return New(prog, sm, res.Flags)
}

// TestIDTagHigherWinsOnStartTie checks the id tie-break on a start tie:
// both arms of the alternation complete with the same (start, end), one
// carrying id 1 and the other id 2, and the higher id must be reported.
// The most-recent-write rule for an exact (start, id_acc) tie in
// stateVector.insert keeps one of two identical threads, so it leaves no
// trace in a Result and is not checked here.
func TestIDTagHigherWinsOnStartTie(t *testing.T) {
	e := buildEngine(t, "(a){1!}|(a){2!}", 0)
	e.ContinueMatch([]byte("a"))
	got := e.GetResult()
	if !got.Matched() {
		t.Fatalf("expected a match")
	}
	// Both arms reach END with the same (start=0) but different id tags;
	// the higher id tag (2) must win regardless of which arm's thread
	// happened to be inserted first.
	if got.ID != 2 {
		t.Fatalf("got id=%d, want 2 (higher id tag wins on a start tie)", got.ID)
	}
}

func TestIDTagHigherWinsAcrossBranches(t *testing.T) {
	e := buildEngine(t, "(ab){1!}|(ab){5!}|(ab){3!}", 0)
	e.ContinueMatch([]byte("ab"))
	got := e.GetResult()
	if !got.Matched() || got.ID != 5 {
		t.Fatalf("got %+v, want matched with id=5", got)
	}
}
