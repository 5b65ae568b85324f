// Package logger is the structured logging layer of wikihop, a thin
// key/value front over zap.
package logger

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Interface is the logger every component receives. Fields are alternating
// keys and values, or ready-made zap.Field values.
type Interface interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)
	With(fields ...any) Interface
	WithComponent(component string) Interface
	WithError(err error) Interface
	WithDuration(d time.Duration) Interface
}

// ZapLogger is the zap-backed Interface returned by New.
type ZapLogger struct {
	z *zap.Logger
}

var _ Interface = (*ZapLogger)(nil)

// New builds a logger from cfg. A nil cfg selects the defaults.
func New(cfg *Config) (Interface, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	levelText := string(cfg.Level)
	if levelText == "" {
		levelText = string(DefaultLevel)
	}
	level, err := zapcore.ParseLevel(strings.ToLower(levelText))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, cfg.Level)
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = DefaultEncoding
	}
	if encoding != ConsoleEncoding && encoding != JSONEncoding {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, encoding)
	}

	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = DefaultOutputPaths
	}

	zcfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		DisableStacktrace: !cfg.Development,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig(encoding, cfg.Development),
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
	}

	z, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOutputPath, err)
	}

	return &ZapLogger{z: z}, nil
}

func encoderConfig(encoding string, development bool) zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder

	if encoding == ConsoleEncoding {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		if development {
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}

	return ec
}

func (l *ZapLogger) Debug(msg string, fields ...any) {
	l.z.Debug(msg, zapFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields ...any) {
	l.z.Info(msg, zapFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields ...any) {
	l.z.Warn(msg, zapFields(fields)...)
}

func (l *ZapLogger) Error(msg string, fields ...any) {
	l.z.Error(msg, zapFields(fields)...)
}

// With returns a child logger that adds fields to every entry.
func (l *ZapLogger) With(fields ...any) Interface {
	return &ZapLogger{z: l.z.With(zapFields(fields)...)}
}

// WithComponent tags entries with the emitting package.
func (l *ZapLogger) WithComponent(component string) Interface {
	return &ZapLogger{z: l.z.With(zap.String("component", component))}
}

func (l *ZapLogger) WithError(err error) Interface {
	return &ZapLogger{z: l.z.With(zap.Error(err))}
}

func (l *ZapLogger) WithDuration(d time.Duration) Interface {
	return &ZapLogger{z: l.z.With(zap.Duration("duration", d))}
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.z.Sync()
}

// zapFields pairs up keys and values. A trailing key without a value and a
// non-string key are logged as fields of their own instead of being dropped.
func zapFields(fields []any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, (len(fields)+1)/2)
	for i := 0; i < len(fields); i++ {
		switch f := fields[i].(type) {
		case zap.Field:
			out = append(out, f)
		case string:
			if i == len(fields)-1 {
				out = append(out, zap.String("missing_value_for", f))
				break
			}
			i++
			if err, ok := fields[i].(error); ok {
				out = append(out, zap.NamedError(f, err))
				continue
			}
			out = append(out, zap.Any(f, fields[i]))
		default:
			out = append(out, zap.String("invalid_field_type", fmt.Sprintf("%T", f)))
		}
	}

	return out
}
