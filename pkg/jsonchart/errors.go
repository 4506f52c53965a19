package jsonchart

import (
	"errors"
	"fmt"
)

// ErrNoCharts indicates the view tree contains no chart node.
var ErrNoCharts = errors.New("no chart views found")

// BuildError represents an error while building or rendering one chart view.
type BuildError struct {
	Path  string
	Stage string // "configure", "render"
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("chart %s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(path, stage string, err error) *BuildError {
	return &BuildError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
