//go:build !linux && !windows

package internal

// ThreadID is unsupported here; callers treat every goroutine as foreign.
func ThreadID() (int, bool) {
	return 0, false
}
