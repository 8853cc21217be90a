// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across reclaim.
//
// The Logger type embeds zerolog.Logger so the whole zerolog API (Debug,
// Info, Warn, Error, Fatal, ...) is available on *Logger. Pass *Logger by
// pointer; request-scoped loggers come from FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

func newWithWriter(role string, w io.Writer) *Logger {
	configureGlobals()

	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// "role" field, a timestamp and a "func" caller field holding the fully
// qualified function name.
func NewLogger(role string) *Logger {
	return newWithWriter(role, os.Stdout)
}

// NewClientLogger returns a logger that appends to a "logs" file next to the
// executable so log lines never interleave with the terminal UI. Falls back
// to stdout when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")

	return NewFileLogger(role, logPath)
}

// NewFileLogger returns a logger appending to path.
func NewFileLogger(role, path string) *Logger {
	var w io.Writer = os.Stdout
	if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		w = f
	}

	return newWithWriter(role, w)
}

// Nop returns a *Logger that discards all output. Meant for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithStr returns a child logger with an extra string field.
func (l *Logger) WithStr(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// FromRequest returns the logger attached to the request context by the
// trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger stored in ctx, or zerolog's default logger
// when none was attached. Never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
