// Command reelscout is a chat front-end for movie and TV streaming lookups.
// It answers "where can I watch X?" by cross-referencing TMDB with a
// streaming-availability API, and generates recommendations scoped to the
// apps the user actually subscribes to.
package main
