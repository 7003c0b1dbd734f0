// Package streaming provides the RapidAPI streaming-availability client.
//
// The upstream title-search endpoint is loose about its response shape: it
// may return a bare JSON array or an object wrapping the array under
// "result", and record identifiers may arrive as numbers or strings. Both
// ambiguities are resolved once at the parsing boundary so callers only ever
// see a []Show with text identifiers.
package streaming
