package engine

import (
	"testing"

	"github.com/coregx/posixre/parser"
)

func runMatch(t *testing.T, pattern string, flags parser.Flags, input string) Result {
	t.Helper()
	e := buildEngine(t, pattern, flags)
	e.ContinueMatch([]byte(input))
	return e.GetResult()
}

// TestScenarioGreedyAlternationStar is spec.md §8's first concrete
// scenario: "a(b|c)*d" against "abbcdxx" must match [0,5) with no id tag.
func TestScenarioGreedyAlternationStar(t *testing.T) {
	got := runMatch(t, "a(b|c)*d", 0, "abbcdxx")
	want := Result{Start: 0, End: 5, ID: -1}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// TestScenarioAnchors is spec.md §8's second concrete scenario: "^foo$"
// with MATCH_BEGIN+MATCH_END matches "foo" at [0,3) and rejects "foox".
func TestScenarioAnchors(t *testing.T) {
	got := runMatch(t, "^foo$", 0, "foo")
	want := Result{Start: 0, End: 3, ID: -1}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	got2 := runMatch(t, "^foo$", 0, "foox")
	if got2.Matched() {
		t.Fatalf("expected no match for %q, got %+v", "foox", got2)
	}
}

// TestScenarioInvertedClassPlus is spec.md §8's third concrete scenario:
// "[^abc]+" against "abxyzab" must match [2,5).
func TestScenarioInvertedClassPlus(t *testing.T) {
	got := runMatch(t, "[^abc]+", 0, "abxyzab")
	want := Result{Start: 2, End: 5, ID: -1}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// TestScenarioBoundedRepetitionGreedyAndNonGreedy is spec.md §8's fourth
// concrete scenario: "a{2,4}" against "aaaaaa" matches [0,4) greedily and
// [0,2) under NON_GREEDY.
func TestScenarioBoundedRepetitionGreedyAndNonGreedy(t *testing.T) {
	got := runMatch(t, "a{2,4}", 0, "aaaaaa")
	want := Result{Start: 0, End: 4, ID: -1}
	if got != want {
		t.Fatalf("greedy: got %+v, want %+v", got, want)
	}

	gotNG := runMatch(t, "a{2,4}", parser.NonGreedy, "aaaaaa")
	wantNG := Result{Start: 0, End: 2, ID: -1}
	if gotNG != wantNG {
		t.Fatalf("non-greedy: got %+v, want %+v", gotNG, wantNG)
	}
}

// TestScenarioIDTag is spec.md §8's fifth concrete scenario: "(ab){3!}"
// against "ababab" matches [0,6) with id tag 3.
func TestScenarioIDTag(t *testing.T) {
	got := runMatch(t, "(ab){3!}", 0, "ababab")
	want := Result{Start: 0, End: 6, ID: 3}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// TestScenarioNewlineFlag is spec.md §8's sixth concrete scenario: "a.*b"
// with NEWLINE rejects "ax\nyb" (the embedded newline blocks '.') but
// matches [0,5) without the flag.
func TestScenarioNewlineFlag(t *testing.T) {
	got := runMatch(t, "a.*b", parser.Newline, "ax\nyb")
	if got.Matched() {
		t.Fatalf("NEWLINE set: expected no match, got %+v", got)
	}

	got2 := runMatch(t, "a.*b", 0, "ax\nyb")
	want := Result{Start: 0, End: 5, ID: -1}
	if got2 != want {
		t.Fatalf("NEWLINE unset: got %+v, want %+v", got2, want)
	}
}

func TestResetMatchIsIdempotent(t *testing.T) {
	e := buildEngine(t, "ab+", 0)
	e.ContinueMatch([]byte("abbb"))
	first := e.GetResult()

	e.ResetMatch()
	e.ContinueMatch([]byte("abbb"))
	second := e.GetResult()

	if first != second {
		t.Fatalf("ResetMatch should make the engine reusable: got %+v then %+v", first, second)
	}
}

func TestResetMatchClearsPriorMatch(t *testing.T) {
	e := buildEngine(t, "a+", 0)
	e.ContinueMatch([]byte("aaa"))
	if !e.GetResult().Matched() {
		t.Fatalf("expected a match before reset")
	}
	e.ResetMatch()
	if e.GetResult().Matched() {
		t.Fatalf("expected no match immediately after ResetMatch, got %+v", e.GetResult())
	}
}

func TestStreamingEquivalesBatch(t *testing.T) {
	batch := buildEngine(t, "a(b|c)*d", 0)
	batch.ContinueMatch([]byte("abbcdxx"))
	batchResult := batch.GetResult()

	streamed := buildEngine(t, "a(b|c)*d", 0)
	for _, ch := range []byte("abbcdxx") {
		streamed.ContinueMatch([]byte{ch})
	}
	streamedResult := streamed.GetResult()

	if batchResult != streamedResult {
		t.Fatalf("streamed result %+v should equal batch result %+v", streamedResult, batchResult)
	}
}

func TestIsMatchFinishedAnchored(t *testing.T) {
	e := buildEngine(t, "^abc$", 0)
	if e.IsMatchFinished() {
		t.Fatalf("should not be finished before any input")
	}
	e.ContinueMatch([]byte("xyz"))
	if !e.IsMatchFinished() {
		t.Fatalf("anchored pattern with no surviving threads should be finished")
	}
}

// TestNonGreedyEarlyAccept checks that NON_GREEDY still reports the
// shortest match even when unanchored, where fast_quit never fires
// (spec.md §4.6 line 149 requires MATCH_BEGIN too — see
// TestNonGreedyFastQuitRequiresMatchBegin for that path specifically).
func TestNonGreedyEarlyAccept(t *testing.T) {
	e := buildEngine(t, "a+", parser.NonGreedy)
	e.ContinueMatch([]byte("aaaaaaaaaa"))
	want := Result{Start: 0, End: 1, ID: -1}
	if got := e.GetResult(); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestUnanchoredLeftmost(t *testing.T) {
	got := runMatch(t, "bc", 0, "abcabc")
	want := Result{Start: 1, End: 3, ID: -1}
	if got != want {
		t.Fatalf("got %+v, want %+v (leftmost match)", got, want)
	}
}

func TestNoMatch(t *testing.T) {
	got := runMatch(t, "xyz", 0, "abc")
	if got.Matched() {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestEmptyPatternMatchesEmptyString(t *testing.T) {
	got := runMatch(t, "a{0,0}", 0, "anything")
	want := Result{Start: 0, End: 0, ID: -1}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
