// Package entry defines the tracked media entry model and the status
// inference rules that derive an entry's lifecycle state from its
// recorded dates and rating.
package entry
