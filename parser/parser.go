package parser

import "strconv"

// Result is the parser's output: the linearized term sequence plus the
// flags folded in from `^`/`$` and an upper bound on the flat program size
// the transition builder should pre-allocate.
type Result struct {
	Terms                 []Term
	Flags                 Flags
	ProgramSizeUpperBound int
}

// posState tracks whether an iterator (`*`, `+`, `?`, `{m,n}`) may legally
// appear at the current position.
type posState uint8

const (
	stateTermBegin posState = iota // start of input, or just after '(' or '|'
	stateAfterAtom
	stateAfterIterator
	stateAfterEmptySub // just substituted a `{0,0}` empty group
)

type parser struct {
	pattern []byte
	pos     int
	flags   Flags
	limits  Limits
	stack   *termStack
	depth   int
	state   posState
}

// Parse compiles pattern (with the given flags) into a linear term
// sequence. limits bounds repetition-expansion work; pass Limits{} for
// DefaultLimits().
func Parse(pattern string, flags Flags, limits Limits) (*Result, error) {
	p := &parser{
		pattern: []byte(pattern),
		flags:   flags,
		limits:  limits.normalized(),
		stack:   newTermStack(),
		state:   stateTermBegin,
	}

	if len(p.pattern) > 0 && p.pattern[0] == '^' {
		p.flags |= MatchBegin
		p.pos = 1
	}

	trailingDollar := false
	end := len(p.pattern)
	if end > 0 && p.pattern[end-1] == '$' && !isEscaped(p.pattern, end-1) {
		trailingDollar = true
		end--
	}

	for p.pos < end {
		if err := p.parseOne(end); err != nil {
			return nil, err
		}
	}

	if p.depth != 0 {
		return nil, &ParseError{Pattern: pattern, Offset: p.pos, Reason: "unbalanced parentheses"}
	}

	if trailingDollar {
		p.flags |= MatchEnd
	}

	terms := make([]Term, 0, p.stack.len()+2)
	terms = append(terms, Term{Kind: Begin})
	terms = append(terms, p.stack.all()...)
	terms = append(terms, Term{Kind: End})

	if len(terms) > p.limits.MaxTerms {
		return nil, &LimitError{Pattern: pattern, Reason: "expanded term count exceeds limit"}
	}

	// Each term maps to at most one program instruction, plus head/tail
	// BRANCH/JUMP bookkeeping the transition builder may add per
	// iterator/alternation; double the term count as a safe upper bound.
	return &Result{
		Terms:                 terms,
		Flags:                 p.flags,
		ProgramSizeUpperBound: len(terms)*2 + 2,
	}, nil
}

// isEscaped reports whether pattern[i] is preceded by an odd number of
// backslashes (i.e. it is itself escaped, not a live metacharacter).
func isEscaped(pattern []byte, i int) bool {
	count := 0
	for j := i - 1; j >= 0 && pattern[j] == '\\'; j-- {
		count++
	}
	return count%2 == 1
}

func (p *parser) requireIteratorLegal() error {
	switch p.state {
	case stateAfterAtom:
		return nil
	case stateTermBegin:
		return &ParseError{Offset: p.pos, Reason: "iterator at start of expression"}
	case stateAfterIterator:
		return &ParseError{Offset: p.pos, Reason: "iterator following another iterator"}
	case stateAfterEmptySub:
		return &ParseError{Offset: p.pos, Reason: "iterator following {0,0} substitution"}
	default:
		return &ParseError{Offset: p.pos, Reason: "iterator at invalid position"}
	}
}

func (p *parser) parseOne(end int) error {
	c := p.pattern[p.pos]
	switch c {
	case '(':
		p.pos++
		p.depth++
		p.stack.push(Term{Kind: OpenBr})
		p.state = stateTermBegin
		return nil

	case ')':
		if p.depth == 0 {
			return &ParseError{Offset: p.pos, Reason: "unmatched closing parenthesis"}
		}
		p.pos++
		p.depth--
		p.stack.push(Term{Kind: CloseBr})
		p.state = stateAfterAtom
		return nil

	case '|':
		p.pos++
		p.stack.push(Term{Kind: Select})
		p.state = stateTermBegin
		return nil

	case '*', '+', '?':
		if err := p.requireIteratorLegal(); err != nil {
			return err
		}
		p.pos++
		kind := map[byte]Kind{'*': Star, '+': Plus, '?': Question}[c]
		p.stack.push(Term{Kind: kind})
		p.state = stateAfterIterator
		return nil

	case '{':
		if err := p.requireIteratorLegal(); err != nil {
			return err
		}
		return p.parseBraces(end)

	case '[':
		p.pos++
		terms, newPos, err := parseCharClass(p.pattern, p.pos, p.flags)
		if err != nil {
			return err
		}
		p.pos = newPos
		p.stack.pushAll(terms)
		p.state = stateAfterAtom
		return nil

	case '.':
		p.pos++
		p.stack.push(Term{Kind: RngStart, Value: 1})
		if p.flags&Newline != 0 {
			p.stack.push(Term{Kind: RngChar, Value: int32('\n')})
			p.stack.push(Term{Kind: RngChar, Value: int32('\r')})
		}
		p.stack.push(Term{Kind: RngEnd})
		p.state = stateAfterAtom
		return nil

	case '\\':
		p.pos++
		if p.pos >= len(p.pattern) {
			return &ParseError{Offset: p.pos, Reason: "dangling backslash"}
		}
		lit := p.pattern[p.pos]
		p.pos++
		p.stack.push(Term{Kind: Char, Value: int32(lit)})
		p.state = stateAfterAtom
		return nil

	default:
		p.pos++
		p.stack.push(Term{Kind: Char, Value: int32(c)})
		p.state = stateAfterAtom
		return nil
	}
}

// parseBraces parses `{m,n}`, `{m,}`, `{,n}`, `{n}`, and the `{n!}` id-tag
// extension. p.pos is positioned at the opening `{`.
func (p *parser) parseBraces(end int) error {
	start := p.pos
	pos := p.pos + 1

	readDigits := func() (int, bool) {
		s := pos
		for pos < end && p.pattern[pos] >= '0' && p.pattern[pos] <= '9' {
			pos++
		}
		if pos == s {
			return 0, false
		}
		v, err := strconv.Atoi(string(p.pattern[s:pos]))
		if err != nil {
			return 0, false
		}
		return v, true
	}

	mVal, hasM := readDigits()

	if pos < end && p.pattern[pos] == '!' {
		pos++
		if !hasM || pos >= end || p.pattern[pos] != '}' {
			return &ParseError{Offset: start, Reason: "malformed {n!} id tag"}
		}
		pos++
		p.pos = pos
		p.stack.push(Term{Kind: ID, Value: int32(mVal)})
		p.state = stateAfterAtom
		return nil
	}

	hasComma := pos < end && p.pattern[pos] == ','
	var m, n int
	unboundedUpper := false
	switch {
	case hasComma:
		pos++
		nVal, hasN := readDigits()
		if pos >= end || p.pattern[pos] != '}' || (!hasM && !hasN) {
			return &ParseError{Offset: start, Reason: "malformed {m,n} repetition"}
		}
		pos++
		m = mVal
		if !hasM {
			m = 0
		}
		if hasN {
			n = nVal
		} else {
			unboundedUpper = true
		}
	case hasM:
		if pos >= end || p.pattern[pos] != '}' {
			return &ParseError{Offset: start, Reason: "malformed {n} repetition"}
		}
		pos++
		m, n = mVal, mVal
	default:
		return &ParseError{Offset: start, Reason: "malformed repetition bound"}
	}

	if !unboundedUpper && n < m {
		return &ParseError{Offset: start, Reason: "repetition bound out of order"}
	}
	if m > p.limits.MaxRepeat || (!unboundedUpper && n > p.limits.MaxRepeat) {
		return &LimitError{Reason: "repetition count exceeds limit"}
	}

	p.pos = pos
	upper := n
	if unboundedUpper {
		upper = unbounded
	}
	emptySub, err := rewriteIterator(p.stack, m, upper)
	if err != nil {
		return err
	}
	if emptySub {
		p.state = stateAfterEmptySub
	} else if m == 0 && unboundedUpper {
		// `{0,}` is rewritten to the bare atom plus a trailing Star.
		p.state = stateAfterIterator
	} else {
		p.state = stateAfterAtom
	}
	return nil
}
