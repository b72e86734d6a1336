package posixre

import (
	"github.com/coregx/posixre/parser"
	"github.com/coregx/posixre/program"
)

// Machine is a compiled pattern: the immutable output of Compile, safe to
// share across goroutines and to drive any number of concurrent matches
// from (each match needs its own MatchState, since that's where the
// mutable simulation state lives).
//
// This is §6's "machine" handle, renamed from the out-parameter style the
// original API used (compile(pattern, flags, &machine)) to a constructor
// returning a value.
type Machine struct {
	pattern string
	flags   parser.Flags
	prog    *program.Program
	sm      *program.SlotMap
}

// Compile builds a Machine from pattern under flags, using DefaultLimits.
// It fails with an error wrapping ErrInvalidRegex or ErrMemory.
func Compile(pattern string, flags Flags) (*Machine, error) {
	return CompileWithLimits(pattern, flags, DefaultLimits())
}

// CompileWithLimits is Compile with explicit Limits, mirroring
// meta.CompileWithConfig in shape.
func CompileWithLimits(pattern string, flags Flags, limits Limits) (*Machine, error) {
	res, err := parser.Parse(pattern, flags, limits)
	if err != nil {
		return nil, err
	}
	prog, err := program.Build(res.Terms, res.ProgramSizeUpperBound)
	if err != nil {
		return nil, err
	}
	sm := program.Analyze(prog)

	finalFlags := res.Flags
	if sm.IDCheck {
		finalFlags |= parser.IDCheck
	}

	return &Machine{
		pattern: pattern,
		flags:   finalFlags,
		prog:    prog,
		sm:      sm,
	}, nil
}

// FreeMachine releases machine-internal resources. The Go garbage
// collector reclaims a Machine once it is unreachable; FreeMachine exists
// only so callers porting §6's explicit free_machine call have somewhere
// to put it.
func (m *Machine) FreeMachine() {}

// String returns the source pattern the machine was compiled from.
func (m *Machine) String() string { return m.pattern }

// Flags reports the flags actually in effect, including any implicitly
// set by the pattern itself (`^`/`$` anchors, or IDCheck when the pattern
// contains an id tag).
func (m *Machine) Flags() Flags { return m.flags }

// Program exposes the compiled instruction stream, mostly useful for
// tests and diagnostics (see Program.String).
func (m *Machine) Program() *program.Program { return m.prog }
