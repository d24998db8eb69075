// Package tmdb provides a thin client for The Movie Database search
// API, the primary metadata source for film and series entries.
package tmdb
