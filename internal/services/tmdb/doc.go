// Package tmdb provides the TMDB multi-search client used for title lookups.
//
// The assistant only needs the top-ranked match: relevance ranking and tie
// breaking are delegated entirely to TMDB.
package tmdb
