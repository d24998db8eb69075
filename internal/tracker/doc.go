// Package tracker is the operations layer of shelf. It validates user
// input, runs status inference and cover resolution, and applies the
// results to the store through restricted patches so each operation
// can only touch the columns it owns.
package tracker
