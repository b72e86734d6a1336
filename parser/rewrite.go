package parser

// unbounded is the sentinel upper bound for `{m,}`.
const unbounded = -1

// lastUnitLen returns the length, in terms, of the complete
// subexpression most recently pushed onto s — a single atom (Char, ID,
// a whole character class) or a balanced parenthesized group. Iterators
// and the `{m,n}` rewriter both operate on this unit.
func lastUnitLen(s *termStack) (int, error) {
	if s.len() == 0 {
		return 0, &ParseError{Reason: "iterator with no preceding term"}
	}
	top := s.at(s.len() - 1)
	switch top.Kind {
	case CloseBr:
		depth := 0
		for i := s.len() - 1; i >= 0; i-- {
			switch s.at(i).Kind {
			case CloseBr:
				depth++
			case OpenBr:
				depth--
				if depth == 0 {
					return s.len() - i, nil
				}
			}
		}
		return 0, &ParseError{Reason: "unbalanced group before iterator"}
	case RngEnd:
		for i := s.len() - 1; i >= 0; i-- {
			if s.at(i).Kind == RngStart {
				return s.len() - i, nil
			}
		}
		return 0, &ParseError{Reason: "unbalanced character class before iterator"}
	default:
		return 1, nil
	}
}

// rewriteIterator implements the iterator rewriter of §4.2: it replaces the
// subexpression that was just parsed (the one lastUnitLen measures) with
// its `{m,n}` expansion. n == unbounded means `{m,}`.
//
// Returns true if the substituted replacement was the `{0,0}` empty group,
// so the caller can reject a trailing iterator on it (see Open Question
// #2 in spec.md §9).
func rewriteIterator(s *termStack, m, n int) (emptySub bool, err error) {
	unitLen, err := lastUnitLen(s)
	if err != nil {
		return false, err
	}
	atom := s.top(unitLen)
	s.truncate(unitLen)

	switch {
	case m == 0 && n == 0:
		s.push(Term{Kind: OpenBr})
		s.push(Term{Kind: CloseBr})
		return true, nil

	case n == unbounded && m == 0:
		s.pushAll(atom)
		s.push(Term{Kind: Star})

	case n == unbounded:
		s.push(Term{Kind: OpenBr})
		for i := 0; i < m-1; i++ {
			s.pushAll(atom)
		}
		s.pushAll(atom)
		s.push(Term{Kind: Plus})
		s.push(Term{Kind: CloseBr})

	default:
		s.push(Term{Kind: OpenBr})
		for i := 0; i < m; i++ {
			s.pushAll(atom)
		}
		for i := 0; i < n-m; i++ {
			s.pushAll(atom)
			s.push(Term{Kind: Question})
		}
		s.push(Term{Kind: CloseBr})
	}
	return false, nil
}
