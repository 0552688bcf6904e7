// Package logging assembles structured slog loggers and formatting helpers used
// across bingpaper.
//
// It owns the console and JSON handlers, level parsing, and attribute helpers
// so components emit data with the same shape. Every invocation is tagged
// with a run_id. Logs go to stderr; stdout is reserved for the status lines
// the CLI prints.
package logging
