// Package logging builds the application slog logger and provides
// typed attribute helpers so call sites stay terse and consistent.
package logging
