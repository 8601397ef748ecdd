package suppress

import (
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// DefaultTargetDir is where the real toolchain binaries live.
const DefaultTargetDir = "/usr/bin/"

// Resolver maps the wrapper's invocation name to the real executable.
type Resolver struct {
	// Dir is the directory holding the real executables. A trailing slash is
	// added if missing.
	Dir string
	// Fs is used to check that the target exists and is executable. When it
	// is the OS filesystem, access(2) is consulted as well so that ownership
	// and mount options are taken into account.
	Fs afero.Fs
}

// NewResolver returns a Resolver for dir backed by the OS filesystem.
func NewResolver(dir string) *Resolver {
	return &Resolver{
		Dir: dir,
		Fs:  afero.NewOsFs(),
	}
}

// Resolve returns the path of the executable named name inside r.Dir. It
// fails with ErrPathTooLong or ErrTargetNotExecutable.
func (r *Resolver) Resolve(name string) (string, error) {
	dir := r.Dir
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	if len(dir)+len(name) >= MaxPathLen {
		return "", xerrors.Errorf("resolve %q in %q: %w", name, dir, ErrPathTooLong)
	}
	target := dir + name

	fs := r.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	fi, err := fs.Stat(target)
	if err != nil {
		return "", xerrors.Errorf("command %q (%v): %w", target, err, ErrTargetNotExecutable)
	}
	if fi.IsDir() || fi.Mode().Perm()&0o111 == 0 {
		return "", xerrors.Errorf("command %q (mode %v): %w", target, fi.Mode(), ErrTargetNotExecutable)
	}
	if _, ok := fs.(*afero.OsFs); ok {
		err = access(target)
		if err != nil {
			return "", xerrors.Errorf("command %q (%v): %w", target, err, ErrTargetNotExecutable)
		}
	}

	return target, nil
}

// Argv builds the argument vector for target: argv[0] is the target path and
// the remaining elements are args, copied.
func Argv(target string, args []string) []string {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, target)
	argv = append(argv, args...)
	return argv
}
