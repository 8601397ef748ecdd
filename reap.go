package suppress

import (
	"golang.org/x/xerrors"
)

// Reap waits for child to terminate and translates its status into the
// wrapper's exit code. A child killed by a signal, or terminated any other
// abnormal way, yields ExitFailure and an error describing what happened.
func Reap(child Child) (int, error) {
	status, err := child.Wait()
	if err != nil {
		return ExitFailure, xerrors.Errorf("wait for child process: %w", err)
	}

	return ExitCode(status)
}

// ExitCode translates a child status into the wrapper's exit code.
func ExitCode(status ExitStatus) (int, error) {
	switch {
	case status.Exited:
		return status.Code, nil
	case status.Signaled:
		if name := SignalName(status.Signal); name != "" {
			return ExitFailure, xerrors.Errorf("child process terminated by signal %d (%s)", status.Signal, name)
		}
		return ExitFailure, xerrors.Errorf("child process terminated by signal %d", status.Signal)
	default:
		return ExitFailure, ErrChildAbnormal
	}
}
