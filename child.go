package suppress

import (
	"io"
	"os"
)

// ExitFailure is the wrapper's own exit code for every failure that is not a
// faithfully propagated child exit code.
const ExitFailure = 1

// Spawner starts the target executable with its standard error captured.
type Spawner interface {
	// Spawn starts target with the given argument vector. argv[0] is passed
	// to the program unmodified. Standard input and output are inherited.
	Spawn(target string, argv []string) (Child, error)
}

// Child is a running target process whose standard error is readable by the
// wrapper.
type Child interface {
	// Pid returns the process ID of the child, or 0 if it never started.
	Pid() int
	// Stderr returns the read end of the child's error stream. It reaches EOF
	// once every writer of the stream has exited or closed it.
	Stderr() io.ReadCloser
	// Signal sends sig to the child.
	Signal(sig os.Signal) error
	// Wait blocks until the child terminates and returns its status. It must
	// be called at most once.
	Wait() (ExitStatus, error)
}

// ExitStatus is the decoded termination status of a child.
type ExitStatus struct {
	// Exited is true if the child called exit. Code holds the exit code.
	Exited bool
	Code   int
	// Signaled is true if the child was killed by a signal. Signal holds the
	// signal number.
	Signaled bool
	Signal   int
}
