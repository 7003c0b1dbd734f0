// Package config loads, normalizes, and validates Reelscout configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// GROQ_API_KEY, TMDB_API_KEY, and STREAM_API_KEY. The Config type centralizes
// every knob the chat CLI needs, so external service credentials and the
// enabled streaming apps are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized values, canonical log formats, and clear validation errors.
package config
