//go:build !unix

package sysexit

import "os"

// termination returns the plain exit code on platforms without Unix wait
// semantics; there is no signal termination to report.
func termination(state *os.ProcessState) (code int, signal int, signaled bool) {
	return state.ExitCode(), 0, false
}
