package hooking

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sarchlab/gradetracker/idgen"
)

// LogHook writes one info entry per invocation. The entry message is the
// hook position name. Every entry gets a fresh event ID.
type LogHook struct {
	logger *zap.Logger
	ids    idgen.Generator
}

// NewLogHook creates a LogHook that logs to logger.
func NewLogHook(logger *zap.Logger, ids idgen.Generator) *LogHook {
	return &LogHook{
		logger: logger,
		ids:    ids,
	}
}

// Func logs the change described by ctx.
func (h *LogHook) Func(ctx HookCtx) {
	if ctx.Pos == nil {
		return
	}

	fields := []zap.Field{zap.String("event", h.ids.Generate())}

	switch item := ctx.Item.(type) {
	case nil:
	case zapcore.ObjectMarshaler:
		fields = append(fields, zap.Object("item", item))
	default:
		fields = append(fields, zap.Any("item", item))
	}

	if ctx.Detail != nil {
		fields = append(fields, zap.Any("detail", ctx.Detail))
	}

	h.logger.Info(ctx.Pos.Name, fields...)
}
