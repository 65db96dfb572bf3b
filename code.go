// Package sysexit classifies process exit statuses into a fixed vocabulary
// of well-known exit codes.
//
// The choice of an appropriate exit value is often ambiguous, and no single
// anthology applies under all circumstances. This package collects the most
// frequently recognised codes across Unix systems: 0 for success, the
// sysexits(3) codes 64-78 from BSD, the shell statuses 126-128 used by
// bash(1), and the fatal-signal codes 129-165 that shells report as 128+N
// when a command dies from signal N. Everything else in 0-255 is an
// application-defined code with no name here.
//
// The package is a pure mapping: no state, no I/O, no spawning. Callers feed
// it either a bare integer, an *os.ProcessState obtained from waiting on a
// child, or an error value, and get back a Code suitable for logging or for
// passing to os.Exit.
package sysexit

import (
	"errors"
	"fmt"
)

// Code is a process exit code in the range 0-255. The value of a Code is the
// exit code itself, so it can be passed directly to os.Exit. Values without
// a named constant below are application-defined; Defined reports the
// difference.
type Code int

// sigBase is the offset shells add to a fatal signal number to form an exit
// code, per the bash convention.
const sigBase = 128

// maxSignal is the highest signal number the classification covers. Exit
// codes 129 through 128+maxSignal (165) are treated as signal-derived. The
// bound is deliberately 37 rather than the 26 some references use, so that
// the reserved-range check and the classification table agree.
const maxSignal = 37

// Named exit codes.
//
// 64-78 are the sysexits(3) codes from /usr/include/sysexits.h. 126-128 are
// shell statuses. Signal codes follow the conventional Linux numbering; only
// the commonly handled signals get a constant, the rest of 129-165 is still
// classified and rendered by table.
const (
	// Success indicates the process exited normally with status 0. Every
	// other code indicates failure.
	Success Code = 0

	Usage       Code = 64 // command line usage error
	DataErr     Code = 65 // data format error
	NoInput     Code = 66 // cannot open input
	NoUser      Code = 67 // addressee unknown
	NoHost      Code = 68 // host name unknown
	Unavailable Code = 69 // service unavailable
	Software    Code = 70 // internal software error
	OSErr       Code = 71 // system error (e.g., can't fork)
	OSFile      Code = 72 // critical OS file missing
	CantCreat   Code = 73 // can't create (user) output file
	IOErr       Code = 74 // input/output error
	TempFail    Code = 75 // temporary failure; user is invited to retry
	Protocol    Code = 76 // remote error in protocol
	NoPerm      Code = 77 // permission denied
	Config      Code = 78 // configuration error

	NotExecutable   Code = 126 // command found but not executable
	NotFound        Code = 127 // command not found
	InvalidArgument Code = 128 // invalid argument to exit

	SigHup    Code = sigBase + 1  // controlling terminal closed
	SigInt    Code = sigBase + 2  // interrupt from terminal
	SigQuit   Code = sigBase + 3  // quit from terminal
	SigAbrt   Code = sigBase + 6  // process abort
	SigKill   Code = sigBase + 9  // killed, uncatchable
	SigUsr1   Code = sigBase + 10 // user-defined condition 1
	SigSegv   Code = sigBase + 11 // invalid memory reference
	SigUsr2   Code = sigBase + 12 // user-defined condition 2
	SigPipe   Code = sigBase + 13 // write on a pipe with no reader
	SigAlrm   Code = sigBase + 14 // alarm clock elapsed
	SigTerm   Code = sigBase + 15 // termination requested
	SigVtAlrm Code = sigBase + 26 // virtual timer expired
)

// ErrOutOfRange is returned by FromCode when the integer is outside the
// representable exit-status range 0-255.
var ErrOutOfRange = errors.New("exit code out of range 0-255")

// labels holds the human-readable reason for every named non-signal code.
// It is the single source of truth for which of those codes are defined;
// Defined and String both consult it, so the two directions of the mapping
// cannot drift apart.
var labels = map[Code]string{
	Success:         "success",
	Usage:           "usage",
	DataErr:         "data",
	NoInput:         "no input",
	NoUser:          "no user",
	NoHost:          "no host",
	Unavailable:     "unavailable",
	Software:        "software",
	OSErr:           "os err",
	OSFile:          "os file",
	CantCreat:       "cannot create",
	IOErr:           "i/o error",
	TempFail:        "temporary failure",
	Protocol:        "protocol",
	NoPerm:          "permission denied",
	Config:          "config",
	NotExecutable:   "not executable",
	NotFound:        "not found",
	InvalidArgument: "invalid exit argument",
}

// signalLabels holds the reason phrase for signal-derived codes, indexed by
// signal number under the conventional Linux numbering. Numbers 32-37 have
// no conventional name and render generically.
var signalLabels = [maxSignal + 1]string{
	1:  "hangup signal",
	2:  "terminal interrupt signal",
	3:  "terminal quit signal",
	4:  "illegal instruction signal",
	5:  "trace/breakpoint trap signal",
	6:  "process abort signal",
	7:  "bus error signal",
	8:  "erroneous arithmetic operation signal",
	9:  "kill signal",
	10: "user-defined signal 1",
	11: "invalid memory reference signal",
	12: "user-defined signal 2",
	13: "write on a pipe with no one to read it signal",
	14: "alarm clock signal",
	15: "termination signal",
	16: "stack fault signal",
	17: "child status changed signal",
	18: "continue signal",
	19: "stop signal",
	20: "terminal stop signal",
	21: "background read from control terminal signal",
	22: "background write to control terminal signal",
	23: "urgent data available signal",
	24: "cpu time limit exceeded signal",
	25: "file size limit exceeded signal",
	26: "virtual timer expired signal",
	27: "profiling timer expired signal",
	28: "window size change signal",
	29: "i/o possible signal",
	30: "power failure signal",
	31: "bad system call signal",
}

// FromCode classifies a bare integer as an exit code.
//
// Integers outside 0-255 cannot be exit statuses and yield an error wrapping
// ErrOutOfRange; callers with untrusted input should gate on IsValid first.
// Within range the classification is total: the result is the named code if
// n has one, otherwise an unnamed Code carrying n.
func FromCode(n int) (Code, error) {
	if !IsValid(n) {
		return 0, fmt.Errorf("exit code %d: %w", n, ErrOutOfRange)
	}
	return Code(n), nil
}

// IsValid reports whether n is within the representable exit-status range
// 0-255.
func IsValid(n int) bool {
	return n >= 0 && n <= 255
}

// IsReserved reports whether n has a shell- or signal-reserved meaning:
// 125-128 are shell-specific statuses and 129-165 are the fatal-signal codes
// 128+N for signals 1 through 37 (see maxSignal for the bound choice).
// IsReserved does not validate n against 0-255; out-of-range values are
// simply not reserved, and IsValid is the gate for overall legality.
func IsReserved(n int) bool {
	return (n >= 125 && n <= sigBase) ||
		(n > sigBase && n <= sigBase+maxSignal)
}

// Defined reports whether c has a recognised meaning: success, a sysexits(3)
// code, a shell status, or a signal-derived code. Application-defined codes
// and out-of-range values report false.
func (c Code) Defined() bool {
	if _, ok := labels[c]; ok {
		return true
	}
	_, signaled := c.Signal()
	return signaled
}

// Signal returns the number of the fatal signal a signal-derived code stands
// for, per the 128+N convention, and reports whether c is such a code.
func (c Code) Signal() (int, bool) {
	if c > sigBase && c <= sigBase+maxSignal {
		return int(c) - sigBase, true
	}
	return 0, false
}
