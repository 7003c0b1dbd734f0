// Package apps manages the user's set of enabled streaming apps.
//
// The set defaults to all supported apps and persists as a small TOML state
// file, guarded by a file lock so concurrent CLI invocations do not clobber
// each other's writes.
package apps
