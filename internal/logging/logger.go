// Package logging defines the structured logger the server components depend
// on, so the concrete backend stays swappable and handlers/services never
// import a logging library directly.
package logging

import "context"

// Logger is the logging surface used across the server. The variadic args
// are key-value pairs, e.g.:
//
//	log.Info(ctx, "pin deleted", "pinID", id, "accountID", accountID)
type Logger interface {
	// Info records normal operational events (startup, shutdown, requests).
	Info(ctx context.Context, msg string, args ...any)

	// Warn records unusual but recoverable conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error records failures that need operator attention.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a derived logger that stamps the given key-value pairs
	// onto every record it emits.
	With(args ...any) Logger
}
