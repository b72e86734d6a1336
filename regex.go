package posixre

// Regex is the convenience, stdlib-regexp-flavored wrapper over Machine
// for one-shot searches, mirroring the teacher's own top-level Regex
// type. Unlike Machine/MatchState (which expose the streaming §6 API
// directly), Regex always runs a match to completion against a
// fully-buffered []byte or string.
//
// A Regex is safe to use concurrently from multiple goroutines: every
// method call drives its own fresh MatchState.
type Regex struct {
	m *Machine
}

// NewRegex compiles pattern into a Regex, using DefaultLimits.
//
// Syntax is the POSIX-like grammar of spec.md §4.1: literals, `.`, `^`/`$`
// anchors, `*`/`+`/`?`, bounded `{m,n}` repetition, `[...]`/`[^...]`
// character classes, `(...)` grouping and `|` alternation, and the
// `{n!}` id tag extension. No capture groups, Unicode classes,
// backreferences or lookaround — see doc.go.
func NewRegex(pattern string, flags Flags) (*Regex, error) {
	m, err := CompileWithLimits(pattern, flags, DefaultLimits())
	if err != nil {
		return nil, err
	}
	return &Regex{m: m}, nil
}

// MustCompile compiles pattern and panics if it fails. Useful for
// patterns known to be valid at compile time.
func MustCompile(pattern string, flags Flags) *Regex {
	re, err := NewRegex(pattern, flags)
	if err != nil {
		panic("posixre: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// find runs one match to completion against b and returns its Result.
func (r *Regex) find(b []byte) Result {
	ms := r.m.BeginMatch()
	ms.ContinueMatch(b)
	return ms.GetResult()
}

// Match reports whether b contains a match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.find(b).Matched()
}

// MatchString reports whether s contains a match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Find returns a slice holding the text of the leftmost match in b, or
// nil if there is none.
func (r *Regex) Find(b []byte) []byte {
	res := r.find(b)
	if !res.Matched() {
		return nil
	}
	return b[res.Start:res.End]
}

// FindString returns the text of the leftmost match in s, or "" if there
// is none.
func (r *Regex) FindString(s string) string {
	res := r.find([]byte(s))
	if !res.Matched() {
		return ""
	}
	return s[res.Start:res.End]
}

// FindIndex returns a two-element slice [start, end) for the leftmost
// match in b, or nil if there is none.
func (r *Regex) FindIndex(b []byte) []int {
	res := r.find(b)
	if !res.Matched() {
		return nil
	}
	return []int{res.Start, res.End}
}

// FindStringIndex is FindIndex for a string input.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindID returns the id tag of the leftmost match in b, or -1 if there is
// no match or the pattern carries no id tags.
func (r *Regex) FindID(b []byte) int {
	return r.find(b).ID
}

// FindAll returns a slice of all non-overlapping successive matches of
// the pattern in b. If n >= 0, it returns at most n matches; a negative n
// returns all of them.
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	if n == 0 {
		return nil
	}
	var out [][]byte
	pos := 0
	for pos <= len(b) {
		res := r.find(b[pos:])
		if !res.Matched() {
			break
		}
		start, end := pos+res.Start, pos+res.End
		out = append(out, b[start:end])
		if end > pos {
			pos = end
		} else {
			pos++
		}
		if n >= 0 && len(out) >= n {
			break
		}
	}
	return out
}

// FindAllString is FindAll for a string input.
func (r *Regex) FindAllString(s string, n int) []string {
	matches := r.FindAll([]byte(s), n)
	if matches == nil {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = string(m)
	}
	return out
}

// String returns the source pattern text the Regex was compiled from.
func (r *Regex) String() string {
	return r.m.String()
}
