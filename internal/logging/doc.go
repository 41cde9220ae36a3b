// Package logging assembles structured slog loggers and formatting helpers used
// across translatesrt.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes attribute helpers plus standard field names so warnings and errors
// carry the same event_type/error_hint/impact shape everywhere. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging
