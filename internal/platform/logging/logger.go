// Package logging wraps zap behind a small key/value API shaped like
// log/slog. Context-aware calls add trace_id and span_id when a span is active.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

type Logger struct {
	z      *zap.Logger
	synced atomic.Bool
}

var fallback atomic.Pointer[Logger]

func init() {
	fallback.Store(NewNop())
}

// ParseLevel accepts debug, info, warn or error. Empty input selects info.
func ParseLevel(raw string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "warning" {
		name = "warn"
	}
	if name == "" {
		return LevelInfo, nil
	}

	level, err := zapcore.ParseLevel(name)
	if err != nil || level < LevelDebug || level > LevelError {
		return LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
	return level, nil
}

func NewJSON(level Level) *Logger {
	return NewJSONWriter(os.Stdout, level)
}

// NewJSONWriter writes one JSON object per entry to w. fields are attached
// to every entry.
func NewJSONWriter(w io.Writer, level Level, fields ...any) *Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	enc.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), level)
	z := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(2),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(toFields(fields)...),
	)
	return &Logger{z: z}
}

func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// Default returns the process logger set by SetDefault, or a no-op logger.
func Default() *Logger {
	return fallback.Load()
}

func SetDefault(l *Logger) {
	if l == nil {
		l = NewNop()
	}
	fallback.Store(l)
}

// Sync flushes buffered entries once. Later calls are no-ops.
func (l *Logger) Sync() error {
	if l == nil || !l.synced.CompareAndSwap(false, true) {
		return nil
	}
	return l.z.Sync()
}

func (l *Logger) With(fields ...any) *Logger {
	if l == nil {
		return NewNop()
	}
	return &Logger{z: l.z.With(toFields(fields)...)}
}

func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return NewNop()
	}
	return &Logger{z: l.z.Named(name)}
}

func (l *Logger) Debug(msg string, kv ...any) { l.write(context.TODO(), LevelDebug, msg, kv) }
func (l *Logger) Info(msg string, kv ...any)  { l.write(context.TODO(), LevelInfo, msg, kv) }
func (l *Logger) Warn(msg string, kv ...any)  { l.write(context.TODO(), LevelWarn, msg, kv) }
func (l *Logger) Error(msg string, kv ...any) { l.write(context.TODO(), LevelError, msg, kv) }

func (l *Logger) InfoContext(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, LevelInfo, msg, kv)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, LevelWarn, msg, kv)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, LevelError, msg, kv)
}

func (l *Logger) write(ctx context.Context, level Level, msg string, kv []any) {
	if l == nil {
		l = Default()
	}
	entry := l.z.Check(level, msg)
	if entry == nil {
		return
	}

	fields := toFields(kv)
	if ctx != nil {
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				zap.Stringer("trace_id", sc.TraceID()),
				zap.Stringer("span_id", sc.SpanID()),
			)
		}
	}
	entry.Write(fields...)
}

// toFields pairs up alternating keys and values. A non-string key becomes
// "arg" and a trailing key without a value is logged as null.
func toFields(kv []any) []zap.Field {
	if len(kv) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, len(kv)/2+3)
	for i := 0; i < len(kv); i += 2 {
		key, _ := kv[i].(string)
		if key == "" {
			key = "arg"
		}
		if i+1 == len(kv) {
			out = append(out, zap.Any(key, nil))
			break
		}

		switch v := kv[i+1].(type) {
		case error:
			out = append(out, zap.NamedError(key, v))
		case fmt.Stringer:
			out = append(out, zap.Stringer(key, v))
		default:
			out = append(out, zap.Any(key, v))
		}
	}
	return out
}
