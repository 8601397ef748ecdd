package suppress

import (
	"context"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/kballard/go-shellquote"
	"golang.org/x/xerrors"

	"cdr.dev/slog"
)

// Options contains the configuration for a single wrapped invocation. Only
// Name is required.
type Options struct {
	// Name is the base name the wrapper was invoked as. It selects the target
	// executable.
	Name string
	// Args are the arguments to pass to the target, without argv[0].
	Args []string

	// Resolver locates the target. Defaults to NewResolver(DefaultTargetDir).
	Resolver *Resolver
	// Spawner starts the target. Defaults to NewSpawner().
	Spawner Spawner
	// Stderr receives the filtered error stream of the target. Defaults to
	// os.Stderr.
	Stderr io.Writer
	// RelaySignals forwards SIGTERM and SIGHUP to the target and keeps the
	// wrapper alive through SIGINT and SIGQUIT while the target runs.
	RelaySignals bool
}

// Run resolves and starts the target, filters its standard error into
// opts.Stderr until EOF, then waits for it. The returned code is the target's
// exit code if it exited normally, ExitFailure otherwise. A non-nil error is
// always accompanied by ExitFailure.
func Run(ctx context.Context, log slog.Logger, opts Options) (int, error) {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = NewResolver(DefaultTargetDir)
	}
	spawner := opts.Spawner
	if spawner == nil {
		spawner = NewSpawner()
	}
	out := opts.Stderr
	if out == nil {
		out = os.Stderr
	}

	target, err := resolver.Resolve(opts.Name)
	if err != nil {
		return ExitFailure, err
	}
	argv := Argv(target, opts.Args)
	log.Debug(ctx, "resolved target", slog.F("target", target), slog.F("argv", shellquote.Join(argv...)))

	child, err := spawner.Spawn(target, argv)
	if err != nil {
		return ExitFailure, xerrors.Errorf("spawn %q: %w", target, err)
	}
	log.Debug(ctx, "started child", slog.F("pid", child.Pid()))

	if opts.RelaySignals {
		stop := relaySignals(ctx, log, child)
		defer stop()
	}

	// The child's stderr must be drained completely before reaping so that no
	// diagnostic is lost.
	var filter Filter
	stderr := child.Stderr()
	err = filter.Copy(out, stderr)
	if err != nil {
		var merr error = xerrors.Errorf("filter child stderr: %w", err)
		cerr := stderr.Close()
		if cerr != nil {
			merr = multierror.Append(merr, xerrors.Errorf("close child stderr: %w", cerr))
		}
		return ExitFailure, merr
	}
	err = stderr.Close()
	if err != nil {
		return ExitFailure, xerrors.Errorf("close child stderr: %w", err)
	}
	if filter.Triggered() {
		log.Debug(ctx, "suppressed license diagnostics",
			slog.F("dropped_lines", filter.Dropped()),
			slog.F("window_closed", filter.State() == StatePassing),
		)
	}

	code, err := Reap(child)
	if err != nil {
		log.Debug(ctx, "child terminated abnormally", slog.F("pid", child.Pid()), slog.Error(err))
		return code, err
	}
	log.Debug(ctx, "child exited", slog.F("pid", child.Pid()), slog.F("code", code))

	return code, nil
}
