// Package logging constructs the slog loggers used across stockmeta.
//
// Console output uses a text handler for interactive runs; the json format
// suits piping into log collectors. When a log directory is configured the
// same records are fanned out to a stockmeta.log file.
package logging
