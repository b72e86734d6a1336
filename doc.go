// Package posixre compiles a POSIX-like regular expression into a flat,
// inspectable program and matches it against a byte stream.
//
// It implements the architecture of a small, well-understood pipeline:
// a recursive-descent parser linearizes the pattern into a term sequence
// (package parser), a left-to-right transition builder compiles that
// sequence into BEGIN/CHAR/RNG_*/BRANCH/JUMP/END instructions (package
// program), a search-state analyzer assigns each instruction a slot, and
// a Pike-VM-style match engine (package engine) simulates every active
// path through the program in lockstep with the input, one byte at a
// time, with an optional fast-forward accelerator that skips ahead when
// no match could possibly be starting mid-skip.
//
// Basic usage:
//
//	re, err := posixre.NewRegex(`a(b|c)*d`, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loc := re.FindStringIndex("xxabbcdxx")
//	fmt.Println(loc) // [2 7]
//
// For streaming input, or to recover a pattern's id tag (see below), use
// the lower-level Machine/MatchState pair directly:
//
//	m, err := posixre.Compile(`(ab){3!}`, 0)
//	ms := m.BeginMatch()
//	ms.ContinueMatch([]byte("ababab"))
//	res := ms.GetResult() // {Start:0 End:6 ID:3}
//
// Syntax
//
// Literals, `.` (any byte, or any byte but `\n` and `\r` under the
// Newline flag), `^`/`$` anchors, `*`/`+`/`?`, bounded and unbounded `{m,n}`
// repetition, `[...]`/`[^...]` character classes, `(...)` grouping and
// `|` alternation, escaped metacharacters (`\.`, `\*`, ...), and an `{n!}`
// id tag extension for distinguishing which alternative matched.
//
// Limitations
//
// This package has no capture groups, no Unicode character classes
// (`\p{...}`), no backreferences, and no lookaround — the same exclusions
// spec.md names as non-goals. Patterns operate over raw bytes ([]byte),
// not runes; there is no 16-bit code unit mode. A compiled Machine is
// safe to share across goroutines; a MatchState is not, and should not
// outlive the Machine it was built from.
package posixre
