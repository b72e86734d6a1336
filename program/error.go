package program

import "fmt"

// BuildError reports a failure in the transition builder: an internal
// inconsistency in the term stream handed to Build. Limit overruns are
// reported by the parser (parser.LimitError), never by Build.
type BuildError struct {
	Reason string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("program: build failed: %s", e.Reason)
}
