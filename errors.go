package suppress

import (
	"runtime"

	"golang.org/x/xerrors"
)

var (
	// ErrPathTooLong is returned by the Resolver when the target directory and
	// the invocation name together would not fit in a path.
	ErrPathTooLong = xerrors.New("command path is too long")
	// ErrTargetNotExecutable is returned by the Resolver when the target path
	// does not exist or is not executable.
	ErrTargetNotExecutable = xerrors.New("command not found or not executable")
	// ErrChildAbnormal is returned by Reap when the child neither exited nor
	// was killed by a signal.
	ErrChildAbnormal = xerrors.New("child process terminated abnormally")

	errUnsupportedOS = xerrors.Errorf(`%q is an unsupported OS, only "linux" is supported`, runtime.GOOS)
)

// Suppress unused variable errors. These variables are used in files that are
// not included in all builds.
var (
	_ = errUnsupportedOS
)
