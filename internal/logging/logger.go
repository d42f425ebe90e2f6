// Package logging defines the small structured-logging interface the
// application logs through, decoupling callers from the concrete backend.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are
// key–value pairs:
//
//	log.Info(ctx, "proxy listening", "addr", addr)
type Logger interface {
	// Debug logs fine-grained diagnostic detail.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given key–value
	// pairs.
	With(args ...any) Logger
}
