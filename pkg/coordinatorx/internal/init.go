// Package internal contains the shared infrastructure for coordinatorx:
// logging and OS thread identification for the designated-context loop.
// Types and functions in this package are not part of the public API.
package internal
