package stepgraph

import "fmt"

// ErrBuildFailed is the sentinel every BuildFailedError wraps, for callers
// that only want errors.Is.
var ErrBuildFailed = fmt.Errorf("stepgraph: build failed")

// BuildFailedError reports that Build's breadth-first closure exceeded its
// Position budget before reaching a fixed point, per spec.md §4.2's
// StepGraphBuildFailed. Region names the Position whose expansion pushed
// the catalogue over budget, as a diagnostic for "the over-explored
// region."
type BuildFailedError struct {
	Budget int
	Region string
}

func (e *BuildFailedError) Error() string {
	return fmt.Sprintf("stepgraph: build failed: exceeded position budget %d while expanding %s", e.Budget, e.Region)
}

func (e *BuildFailedError) Unwrap() error { return ErrBuildFailed }
