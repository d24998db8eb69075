// Package rawg provides a thin client for the RAWG games catalog API,
// the primary metadata source for videogame entries.
package rawg
