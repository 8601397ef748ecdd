//go:build linux
// +build linux

package suppress

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"
)

func TestDecodeWaitStatus(t *testing.T) {
	t.Parallel()

	// Encoded as by wait(2): exit code in bits 8-15, signal in bits 0-6.
	require.Equal(t, ExitStatus{Exited: true, Code: 3}, decodeWaitStatus(syscall.WaitStatus(3<<8)))
	require.Equal(t, ExitStatus{Exited: true, Code: 0}, decodeWaitStatus(syscall.WaitStatus(0)))
	require.Equal(t, ExitStatus{Signaled: true, Signal: 9}, decodeWaitStatus(syscall.WaitStatus(9)))
	// Stopped by SIGSTOP.
	require.Equal(t, ExitStatus{}, decodeWaitStatus(syscall.WaitStatus(0x7f|19<<8)))
}

func TestIsForkError(t *testing.T) {
	t.Parallel()

	require.True(t, isForkError(xerrors.Errorf("fork/exec: %w", unix.EAGAIN)))
	require.True(t, isForkError(unix.ENOMEM))
	require.False(t, isForkError(xerrors.Errorf("fork/exec: %w", unix.ENOENT)))
	require.False(t, isForkError(unix.EACCES))
}

func TestExecReason(t *testing.T) {
	t.Parallel()

	require.Equal(t, "permission denied", execReason(xerrors.Errorf("fork/exec /usr/bin/cc: %w", unix.EACCES)))
	require.Equal(t, "boom", execReason(xerrors.New("boom")))
}
