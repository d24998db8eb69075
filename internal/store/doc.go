// Package store persists entries in SQLite. Mutations other than
// insert and delete go through a Patch that names exactly the columns a
// caller may touch, so operations like cover refresh cannot clobber
// unrelated fields.
package store
