package pipeline

import "fmt"

// ============================================================================
// STAGE ERRORS — Fail fast, name the stage
// ============================================================================
// Any failure aborts the whole run; the run produces either a complete
// export or none at all. Wrapping preserves the underlying typed error
// (schema.MissingColumnError, schema.ValueError, gower.DimensionError,
// cluster.ConvergenceError, I/O errors) for errors.As.
// ============================================================================

// Pipeline stage names, as they appear in error messages.
const (
	StageLoad      = "load"
	StageDistance  = "distance"
	StageCluster   = "cluster"
	StageProject   = "project"
	StageSummarize = "summarize"
	StageExport    = "export"
)

// StageError wraps a failure with the pipeline stage it occurred in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: %s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}
