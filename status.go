package sysexit

import "os"

// FromStatus classifies the termination status of a waited-on process.
//
// A normal exit with status n yields Code(n), named or not. A process killed
// by signal N yields Code(128+N), following the shell convention. Two edges
// are classification failures that still return a best-effort value rather
// than erroring, since the operation is informational: a signal number above
// 37 produces an unnamed code, and 128+N above 255 (or a state the
// platform cannot decompose, where ExitCode reports -1) produces a value
// outside 0-255 that IsValid rejects. Such values must not be passed to
// os.Exit as-is.
//
// state must be the non-nil result of a completed wait, e.g.
// (*exec.Cmd).ProcessState or the state inside an *exec.ExitError.
func FromStatus(state *os.ProcessState) Code {
	code, sig, signaled := termination(state)
	if signaled {
		return Code(sigBase + sig)
	}
	return Code(code)
}

// IsSuccess reports whether the process exited normally with status 0.
// Signal terminations are never successful.
func IsSuccess(state *os.ProcessState) bool {
	code, _, signaled := termination(state)
	return !signaled && code == 0
}

// IsError reports whether the process terminated unsuccessfully: any nonzero
// exit or any signal termination. It is exactly the negation of IsSuccess,
// provided separately for readability at call sites.
func IsError(state *os.ProcessState) bool {
	return !IsSuccess(state)
}
