// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the planner binaries.
//
// Both binaries build one root *Logger in main and hand it down by pointer.
// Request handlers and background jobs read the logger attached to their
// context, so entries written while serving a request carry its trace_id.
package logger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const callerField = "func"

// Logger embeds zerolog.Logger, so Info, Warn, Err and friends are promoted.
type Logger struct {
	zerolog.Logger
}

// NewLogger writes JSON entries to stdout tagged with role, a timestamp and
// the calling function. The global level starts at debug; see SetLevel.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = callerField
	zerolog.CallerMarshalFunc = funcName

	zl := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Str("role", role).
		Logger()

	return &Logger{Logger: zl}
}

func funcName(pc uintptr, _ string, _ int) string {
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return "unknown"
}

// SetLevel narrows the global level. Empty input keeps the current one.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("error parsing log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(parsed)

	return nil
}

func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Child copies the receiver's fields into an independent logger that can be
// enriched without touching the parent.
func (l *Logger) Child() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromContext never returns nil: without an attached logger zerolog hands
// back its default context logger.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
