package posixre

import "github.com/coregx/posixre/engine"

// Result is the outcome of a match: the byte offsets it spans and the
// highest id tag observed along the winning path (-1 if the pattern has
// no id tags, or if no match was found).
type Result struct {
	Start int
	End   int
	ID    int
}

// Matched reports whether r represents a successful match.
func (r Result) Matched() bool { return r.Start >= 0 }

// MatchState is one in-progress (or finished) match session against a
// Machine — §6's begin_match/continue_match/get_result/free_match group.
// A MatchState may be reused across independent matches via ResetMatch
// without reallocating its internal state vectors.
type MatchState struct {
	e *engine.Engine
}

// BeginMatch starts a new match session against m.
func (m *Machine) BeginMatch() *MatchState {
	return &MatchState{e: engine.New(m.prog, m.sm, m.flags)}
}

// ContinueMatch feeds chunk to the match session, advancing the
// simulation. It may be called repeatedly with successive chunks of a
// streamed input; GetResult reflects the best match found across every
// call so far.
func (ms *MatchState) ContinueMatch(chunk []byte) {
	ms.e.ContinueMatch(chunk)
}

// GetResult returns the best match found so far.
func (ms *MatchState) GetResult() Result {
	r := ms.e.GetResult()
	return Result{Start: int(r.Start), End: int(r.End), ID: int(r.ID)}
}

// IsMatchFinished reports whether the match is settled, i.e. no further
// input can change the result returned by GetResult.
func (ms *MatchState) IsMatchFinished() bool {
	return ms.e.IsMatchFinished()
}

// ResetMatch discards any in-progress match and makes the MatchState
// ready for a new ContinueMatch/GetResult cycle against the same Machine.
func (ms *MatchState) ResetMatch() {
	ms.e.ResetMatch()
}

// FreeMatch releases match-internal resources. The Go garbage collector
// reclaims a MatchState once it is unreachable; FreeMatch exists only so
// callers porting §6's explicit free_match call have somewhere to put it.
func (ms *MatchState) FreeMatch() {}
