// Package openlibrary provides a thin client for the Open Library
// search API and its deterministic covers service, used as the book
// cover fallback tier.
package openlibrary
