// Command shelf is the command-line interface for the shelf media
// tracker: add and update entries, manage the pending wishlist, and
// refresh cover art.
package main
