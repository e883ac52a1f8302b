package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/segmenta-org/segmenta/project"
	"github.com/segmenta-org/segmenta/summary"
)

// ============================================================================
// PIPELINE OPTIONS — Functional options for Run()
// ============================================================================

// PlotRenderer draws the cluster scatter. Tests substitute one to avoid
// writing image files.
type PlotRenderer func(coords []project.Coordinate, labels []int, title, path string, jitterSeed int64) error

// Option configures pipeline behavior via functional options.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	notes    summary.Interpretations
	now      func() time.Time
	renderer PlotRenderer
}

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithInterpretations supplies the analyst-authored cluster readings.
func WithInterpretations(n summary.Interpretations) Option {
	return func(o *options) { o.notes = n }
}

// WithNow overrides the clock used for the date-stamped artifact name.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithPlotRenderer replaces the scatter renderer.
func WithPlotRenderer(r PlotRenderer) Option {
	return func(o *options) {
		if r != nil {
			o.renderer = r
		}
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		logger:   zap.NewNop(),
		notes:    DefaultInterpretations(),
		now:      time.Now,
		renderer: project.RenderScatter,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
