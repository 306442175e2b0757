package plugin

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vexyart/stripprefix/internal/logfields"
	"github.com/vexyart/stripprefix/internal/metrics"
)

// PluginContext provides plugins with the services of one build pass.
type PluginContext struct {
	// Context is checked by the pipeline between phases.
	Context context.Context

	// Logger carries the build_id and, inside a hook, the plugin name.
	Logger *slog.Logger

	// BuildID uniquely identifies this build pass.
	BuildID string

	// Recorder receives plugin counters. Never nil.
	Recorder metrics.Recorder
}

// NewPluginContext creates a context for a new build pass with a fresh build ID.
// Nil arguments fall back to context.Background, slog.Default and a NoopRecorder.
func NewPluginContext(ctx context.Context, logger *slog.Logger, recorder metrics.Recorder) *PluginContext {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	buildID := uuid.NewString()
	return &PluginContext{
		Context:  ctx,
		Logger:   logger.With(logfields.BuildID(buildID)),
		BuildID:  buildID,
		Recorder: recorder,
	}
}

// ForPlugin returns a copy whose logger is tagged with the plugin name.
func (pc *PluginContext) ForPlugin(name string) *PluginContext {
	cp := *pc
	cp.Logger = pc.Logger.With(logfields.Plugin(name))
	return &cp
}
