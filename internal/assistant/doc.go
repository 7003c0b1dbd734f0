// Package assistant implements the chat pipeline: it classifies a free-text
// query into an intent, resolves where a title can be streamed by reconciling
// TMDB and streaming-availability results, or generates themed
// recommendations, and renders the answer into the conversation transcript.
//
// The pipeline is deliberately linear and synchronous: one turn runs to
// completion before the session accepts the next query, and every turn-level
// failure becomes a single assistant message instead of ending the session.
package assistant
