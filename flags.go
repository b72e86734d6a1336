package posixre

import "github.com/coregx/posixre/parser"

// Flags is the bitmask threaded through Compile, matching §6's flag set.
type Flags = parser.Flags

// Limits bounds the work Compile is willing to do expanding a pattern,
// giving MemoryError a real, reachable trigger.
type Limits = parser.Limits

const (
	// MatchBegin anchors the match at input position 0. Set automatically
	// when a leading, unescaped `^` is parsed at position 0; callers may
	// also set it explicitly to anchor a pattern that doesn't itself
	// start with `^`.
	MatchBegin = parser.MatchBegin
	// MatchEnd requires the match to reach end of input. Set
	// automatically when a trailing, unescaped `$` is parsed.
	MatchEnd = parser.MatchEnd
	// Newline causes `.` and inverted classes to exclude `\n` and `\r`.
	Newline = parser.Newline
	// NonGreedy selects shortest-match-wins instead of longest-match-wins.
	NonGreedy = parser.NonGreedy
	// IDCheck is set internally once a compiled pattern contains an id
	// tag term (`{n!}` with n > 0); callers do not need to set it themselves — see
	// Machine.Flags.
	IDCheck = parser.IDCheck
	// Verbose is accepted for API compatibility with the original
	// implementation's diagnostic flag. It is inert.
	Verbose = parser.Verbose
)

// DefaultLimits returns generous limits that accept any pattern a human
// would plausibly write by hand.
func DefaultLimits() Limits { return parser.DefaultLimits() }
