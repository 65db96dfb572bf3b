package sysexit

import (
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// String tests
// ---------------------------------------------------------------------------

func TestString_NamedCodes(t *testing.T) {
	tests := []struct {
		c    Code
		want string
	}{
		{Success, "success (0)"},
		{Usage, "usage (64)"},
		{IOErr, "i/o error (74)"},
		{TempFail, "temporary failure (75)"},
		{NoPerm, "permission denied (77)"},
		{NotExecutable, "not executable (126)"},
		{NotFound, "not found (127)"},
		{InvalidArgument, "invalid exit argument (128)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.String())
	}
}

func TestString_SignalCodes(t *testing.T) {
	tests := []struct {
		c    Code
		want string
	}{
		{SigHup, "hangup signal (129)"},
		{SigInt, "terminal interrupt signal (130)"},
		{SigKill, "kill signal (137)"},
		{SigUsr1, "user-defined signal 1 (138)"},
		{SigPipe, "write on a pipe with no one to read it signal (141)"},
		{SigAlrm, "alarm clock signal (142)"},
		{SigTerm, "termination signal (143)"},
		{SigVtAlrm, "virtual timer expired signal (154)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.String())
	}
}

func TestString_UnnamedSignalRendersGenerically(t *testing.T) {
	// Signals 32-37 have no conventional name but are still signal-derived.
	assert.Equal(t, "terminated by signal 33 (161)", Code(161).String())
	assert.Equal(t, "terminated by signal 37 (165)", Code(165).String())
}

func TestString_UnknownCodes(t *testing.T) {
	assert.Equal(t, "unknown error (1)", Code(1).String())
	assert.Equal(t, "unknown error (42)", Code(42).String())
	assert.Equal(t, "unknown error (125)", Code(125).String())
	assert.Equal(t, "unknown error (200)", Code(200).String())
}

func TestString_ReproducesNumericValue(t *testing.T) {
	for n := 0; n <= 255; n++ {
		assert.Contains(t, Code(n).String(), fmt.Sprintf("(%d)", n), "code %d", n)
	}
}

// ---------------------------------------------------------------------------
// Colored tests
// ---------------------------------------------------------------------------

func TestColored_PlainWhenColorDisabled(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	for _, c := range []Code{Success, IOErr, SigTerm, Code(42)} {
		assert.Equal(t, c.String(), c.Colored())
	}
}

func TestColored_ContainsLabel(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	assert.Contains(t, Success.Colored(), "success (0)")
	assert.Contains(t, IOErr.Colored(), "i/o error (74)")
	assert.Contains(t, SigHup.Colored(), "hangup signal (129)")
}
