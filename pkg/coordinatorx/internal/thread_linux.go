//go:build linux

package internal

import "golang.org/x/sys/unix"

// ThreadID returns the id of the OS thread running the caller.
// The result is only stable for goroutines locked to their thread.
func ThreadID() (int, bool) {
	return unix.Gettid(), true
}
