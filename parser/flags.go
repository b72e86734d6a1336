package parser

// Flags is the bitmask passed to Parse and threaded through compilation,
// matching §6's flag set exactly.
type Flags uint32

const (
	// MatchBegin anchors the match at input position 0. Set automatically
	// when a leading, unescaped `^` is parsed at position 0.
	MatchBegin Flags = 1 << iota
	// MatchEnd requires the match to reach end of input. Set automatically
	// when a trailing, unescaped `$` is parsed at the final position.
	MatchEnd
	// Newline causes `.` and inverted classes to exclude `\n` and `\r`.
	Newline
	// NonGreedy selects shortest-match-wins instead of longest-match-wins.
	NonGreedy
	// IDCheck is set internally once the search-state analyzer observes an
	// `ID n, n>0` term; callers do not need to set it themselves.
	IDCheck
	// Verbose is accepted for API compatibility with the original
	// implementation's diagnostic flag. It is inert: this module has no
	// runtime debug-printing path (see SPEC_FULL.md §10).
	Verbose
)
