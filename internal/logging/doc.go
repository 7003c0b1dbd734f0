// Package logging builds the slog loggers used across Reelscout.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for machine consumption. Loggers carry a "component" attribute
// that the console handler folds into the message prefix.
package logging
