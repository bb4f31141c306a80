package logging

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements Logger using zap
type ZapLogger struct {
	logger    *zap.Logger
	component string
	context   Fields
}

// NewZapLogger builds a JSON production logger at the given level ("debug",
// "info", "warn", "error"). Development mode switches to the console encoder.
func NewZapLogger(component, level string, development bool) (*ZapLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return NewFromZap(logger, component), nil
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(logger *zap.Logger, component string) *ZapLogger {
	return &ZapLogger{
		logger:    logger,
		component: component,
		context:   Fields{},
	}
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return NewFromZap(zap.NewNop(), "")
}

func (z *ZapLogger) Info(msg string, fields Fields) {
	z.logger.Info(z.message(msg), z.buildZapFields(fields)...)
}

func (z *ZapLogger) Error(msg string, err error, fields Fields) {
	zapFields := z.buildZapFields(fields)
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	z.logger.Error(z.message(msg), zapFields...)
}

func (z *ZapLogger) Warn(msg string, fields Fields) {
	z.logger.Warn(z.message(msg), z.buildZapFields(fields)...)
}

func (z *ZapLogger) Debug(msg string, fields Fields) {
	z.logger.Debug(z.message(msg), z.buildZapFields(fields)...)
}

func (z *ZapLogger) With(fields Fields) Logger {
	newContext := make(Fields, len(z.context)+len(fields))
	for k, v := range z.context {
		newContext[k] = v
	}
	for k, v := range fields {
		newContext[k] = v
	}

	return &ZapLogger{
		logger:    z.logger,
		component: z.component,
		context:   newContext,
	}
}

func (z *ZapLogger) Component(name string) Logger {
	component := name
	if z.component != "" {
		component = z.component + "." + name
	}
	return &ZapLogger{
		logger:    z.logger,
		component: component,
		context:   z.context,
	}
}

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error {
	return z.logger.Sync()
}

func (z *ZapLogger) message(msg string) string {
	if z.component == "" {
		return msg
	}
	return fmt.Sprintf("[%s] %s", z.component, msg)
}

// buildZapFields converts context and call fields to zap fields in a stable
// order; call fields win over context fields with the same key.
func (z *ZapLogger) buildZapFields(fields Fields) []zap.Field {
	merged := make(Fields, len(z.context)+len(fields))
	for k, v := range z.context {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	zapFields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		zapFields = append(zapFields, zap.Any(k, merged[k]))
	}
	return zapFields
}
