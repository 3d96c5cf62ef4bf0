package log

import "context"

type nopLogger struct{}

// NewNopLogger returns a Logger that discards everything. Intended for tests.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(ctx context.Context, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any) {}

func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}
