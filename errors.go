package posixre

import "github.com/coregx/posixre/parser"

// Sentinel errors matching §7's three-kind error model: Compile only ever
// fails with ErrInvalidRegex or ErrMemory wrapped in a *ParseError or
// *LimitError carrying context.
var (
	// ErrInvalidRegex indicates a structural or syntactic fault in the
	// pattern source.
	ErrInvalidRegex = parser.ErrInvalidRegex

	// ErrMemory indicates an internal limit (program size, repetition
	// count) was exceeded while expanding the pattern.
	ErrMemory = parser.ErrMemory
)

// ParseError wraps ErrInvalidRegex with the offset and reason.
type ParseError = parser.ParseError

// LimitError wraps ErrMemory with the limit that was exceeded.
type LimitError = parser.LimitError
