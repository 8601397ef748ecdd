//go:build linux
// +build linux

package suppress

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"
)

type execSpawner struct {
	stdin  *os.File
	stdout *os.File
}

var _ Spawner = &execSpawner{}

// NewSpawner returns a Spawner that starts targets as direct children of the
// current process. The children inherit the wrapper's standard input,
// standard output and environment.
func NewSpawner() Spawner {
	return &execSpawner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

// Spawn starts target with its standard error connected to a new pipe.
//
// Failing to create the pipe or to fork is returned as an error. Failing to
// execute the target once forked is not: the failure is written into the pipe
// as the child's last words and the returned Child reports an exit code of
// ExitFailure, so it goes through the same filtering as any other child
// output.
func (s *execSpawner) Spawn(target string, argv []string) (Child, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, xerrors.Errorf("create pipe: %w", err)
	}

	//nolint:gosec // the target is resolved from a fixed directory
	cmd := &exec.Cmd{
		Path:   target,
		Args:   argv,
		Stdin:  s.stdin,
		Stdout: s.stdout,
		Stderr: w,
	}
	startErr := cmd.Start()
	if startErr != nil && isForkError(startErr) {
		var merr error = xerrors.Errorf("fork child process: %w", startErr)
		merr = closeAll(merr, w, r)
		return nil, merr
	}

	c := &execChild{
		cmd:    cmd,
		stderr: r,
	}
	if startErr != nil {
		c.cmd = nil
		_, _ = fmt.Fprintf(w, "Error executing command '%s': %s\n", target, execReason(startErr))
	}

	// The child has its own copy of the write end. Closing ours is what lets
	// the read loop see EOF once the child exits.
	err = w.Close()
	if err != nil {
		var merr error = xerrors.Errorf("close pipe write end: %w", err)
		merr = closeAll(merr, r)
		return nil, merr
	}

	return c, nil
}

func closeAll(merr error, files ...*os.File) error {
	for _, f := range files {
		err := f.Close()
		if err != nil {
			merr = multierror.Append(merr, xerrors.Errorf("close %s: %w", f.Name(), err))
		}
	}
	return merr
}

// isForkError reports whether err happened before the child process existed,
// as opposed to the child failing to execute the target. execve can also fail
// with EAGAIN (RLIMIT_NPROC) or ENOMEM; those are indistinguishable here and
// are treated as fork failures too.
func isForkError(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.ENOMEM)
}

func execReason(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno.Error()
	}
	return err.Error()
}

type execChild struct {
	// cmd is nil if the target could not be executed.
	cmd    *exec.Cmd
	stderr *os.File

	waitOnce sync.Once
}

var _ Child = &execChild{}

func (c *execChild) Pid() int {
	if c.cmd == nil || c.cmd.Process == nil {
		return 0
	}
	return c.cmd.Process.Pid
}

func (c *execChild) Stderr() io.ReadCloser {
	return c.stderr
}

func (c *execChild) Signal(sig os.Signal) error {
	if c.cmd == nil || c.cmd.Process == nil {
		return xerrors.New("child process was never started")
	}
	return c.cmd.Process.Signal(sig)
}

func (c *execChild) Wait() (ExitStatus, error) {
	var (
		didWait bool
		status  ExitStatus
		waitErr error
	)
	c.waitOnce.Do(func() {
		didWait = true
		status, waitErr = c.wait()
	})
	if !didWait {
		return ExitStatus{}, xerrors.New("child process has already been waited for")
	}
	return status, waitErr
}

func (c *execChild) wait() (ExitStatus, error) {
	if c.cmd == nil {
		return ExitStatus{Exited: true, Code: ExitFailure}, nil
	}

	err := c.cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return ExitStatus{}, err
		}
	}

	ws, ok := c.cmd.ProcessState.Sys().(syscall.WaitStatus)
	if !ok {
		return ExitStatus{}, xerrors.Errorf("unexpected wait status type %T", c.cmd.ProcessState.Sys())
	}
	return decodeWaitStatus(ws), nil
}

func decodeWaitStatus(ws syscall.WaitStatus) ExitStatus {
	switch {
	case ws.Exited():
		return ExitStatus{Exited: true, Code: ws.ExitStatus()}
	case ws.Signaled():
		return ExitStatus{Signaled: true, Signal: int(ws.Signal())}
	default:
		return ExitStatus{}
	}
}

// SignalName returns the name of signal number sig, e.g. "SIGKILL", or an
// empty string if it is unknown.
func SignalName(sig int) string {
	return unix.SignalName(syscall.Signal(sig))
}
