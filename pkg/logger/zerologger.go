package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type ZeroLogger struct {
	zlogger zerolog.Logger
}

func NewZeroLog(env string) *ZeroLogger {
	return NewWithWriter(env, os.Stdout)
}

func NewWithWriter(env string, w io.Writer) *ZeroLogger {
	level := zerolog.DebugLevel
	if env == "production" {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Str("env", env).Logger()
	return &ZeroLogger{zlogger: logger}
}

// applyFields maps Field values onto typed zerolog setters
func applyFields[T interface {
	Str(string, string) T
	Int(string, int) T
	Int64(string, int64) T
	Float64(string, float64) T
	Bool(string, bool) T
	Dur(string, time.Duration) T
	AnErr(string, error) T
	Interface(string, any) T
}](target T, fields []Field) T {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			target = target.Str(f.Key, v)
		case int:
			target = target.Int(f.Key, v)
		case int64:
			target = target.Int64(f.Key, v)
		case float64:
			target = target.Float64(f.Key, v)
		case bool:
			target = target.Bool(f.Key, v)
		case time.Duration:
			target = target.Dur(f.Key, v)
		case error:
			target = target.AnErr(f.Key, v)
		default:
			target = target.Interface(f.Key, v)
		}
	}
	return target
}

func (l *ZeroLogger) Debug(msg string, fields ...Field) {
	applyFields(l.zlogger.Debug(), fields).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, fields ...Field) {
	applyFields(l.zlogger.Info(), fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields ...Field) {
	applyFields(l.zlogger.Warn(), fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, fields ...Field) {
	applyFields(l.zlogger.Error(), fields).Msg(msg)
}

func (l *ZeroLogger) With(fields ...Field) Logger {
	return &ZeroLogger{zlogger: applyFields(l.zlogger.With(), fields).Logger()}
}
