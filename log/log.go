// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package log adapts github.com/luxfi/log for components of the DAG
// commit rule that need a Logger but are run in a context where logging
// is undesired, such as unit tests and benchmarks.
package log

import (
	"context"
	"log/slog"

	"github.com/luxfi/log"
	"go.uber.org/zap"
)

// discard implements log.Logger by dropping every call. Used as the
// default logger for commitrule.Rule and epoch.Verifier when the caller
// does not supply one.
type discard struct{}

// NewDiscard returns a Logger that does nothing.
func NewDiscard() log.Logger {
	return discard{}
}

func (discard) With(ctx ...interface{}) log.Logger { return discard{} }
func (discard) New(ctx ...interface{}) log.Logger  { return discard{} }

func (discard) Log(level slog.Level, msg string, ctx ...interface{}) {}
func (discard) Trace(msg string, ctx ...interface{})                 {}
func (discard) Debug(msg string, ctx ...interface{})                 {}
func (discard) Info(msg string, ctx ...interface{})                  {}
func (discard) Warn(msg string, ctx ...interface{})                  {}
func (discard) Error(msg string, ctx ...interface{})                 {}
func (discard) Crit(msg string, ctx ...interface{})                  {}

func (discard) WriteLog(level slog.Level, msg string, attrs ...any) {}

func (discard) Enabled(ctx context.Context, level slog.Level) bool { return false }
func (discard) Handler() slog.Handler                              { return nil }

func (discard) Fatal(msg string, fields ...zap.Field) {}
func (discard) Verbo(msg string, fields ...zap.Field) {}

func (d discard) WithFields(fields ...zap.Field) log.Logger { return d }
func (d discard) WithOptions(opts ...zap.Option) log.Logger { return d }

func (discard) SetLevel(level slog.Level)         {}
func (discard) GetLevel() slog.Level              { return slog.Level(0) }
func (discard) EnabledLevel(lvl slog.Level) bool  { return false }

func (discard) StopOnPanic() {}
func (discard) RecoverAndPanic(f func()) {
	f()
}
func (discard) RecoverAndExit(f, exit func()) {
	f()
}
func (discard) Stop() {}

func (discard) Write(p []byte) (n int, err error) { return len(p), nil }
