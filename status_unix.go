//go:build unix

package sysexit

import (
	"os"
	"syscall"
)

// termination splits a wait status into its normal-exit code or the number
// of the fatal signal that killed the process.
func termination(state *os.ProcessState) (code int, signal int, signaled bool) {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 0, int(ws.Signal()), true
	}
	return state.ExitCode(), 0, false
}
