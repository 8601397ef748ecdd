//go:build linux
// +build linux

package suppress_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cdr.dev/suppress"
)

func TestExitCodeSignalName(t *testing.T) {
	t.Parallel()

	code, err := suppress.ExitCode(suppress.ExitStatus{Signaled: true, Signal: 15})
	require.Equal(t, suppress.ExitFailure, code)
	require.EqualError(t, err, "child process terminated by signal 15 (SIGTERM)")

	// Unknown signal numbers have no name.
	_, err = suppress.ExitCode(suppress.ExitStatus{Signaled: true, Signal: 200})
	require.EqualError(t, err, "child process terminated by signal 200")
}
