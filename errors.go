package sysexit

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
)

// FromError picks the exit code that best describes an error value.
//
// A nil error is Success. An *exec.ExitError is classified through its
// process state, so a failed child run maps straight to the child's own
// code. Well-known I/O conditions map to their sysexits(3) counterparts;
// errors.Is unwraps wrapped errors, so values produced with fmt.Errorf and
// %w classify the same as their cause. Anything unrecognised is Software,
// the catch-all for internal errors.
func FromError(err error) Code {
	if err == nil {
		return Success
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return FromStatus(exitErr.ProcessState)
	}

	switch {
	case errors.Is(err, exec.ErrNotFound):
		return NotFound
	case errors.Is(err, fs.ErrNotExist):
		return OSFile
	case errors.Is(err, fs.ErrPermission):
		return NoPerm
	case errors.Is(err, fs.ErrExist):
		return CantCreat
	case errors.Is(err, os.ErrInvalid):
		return DataErr
	case errors.Is(err, syscall.EADDRINUSE),
		errors.Is(err, syscall.EADDRNOTAVAIL):
		return Unavailable
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNABORTED),
		errors.Is(err, syscall.ENOTCONN),
		errors.Is(err, syscall.EPIPE):
		return Protocol
	case errors.Is(err, context.DeadlineExceeded):
		return TempFail
	default:
		return Software
	}
}
