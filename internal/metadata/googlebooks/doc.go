// Package googlebooks provides a thin client for the Google Books
// volumes API, the primary metadata source for book entries.
package googlebooks
