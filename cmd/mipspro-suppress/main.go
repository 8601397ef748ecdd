// Command mipspro-suppress runs the /usr/bin executable it is named after and
// hides the MIPSpro license manager warnings from its standard error.
//
// Install it as a symlink named after the wrapped tool, e.g.
//
//	ln -s /usr/local/bin/mipspro-suppress /usr/local/bin/cc
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"cdr.dev/slog"
	"cdr.dev/suppress"
)

const programName = "mipspro-suppress"

func main() {
	os.Exit(run(context.Background(), os.Args))
}

// run executes the wrapper for the given process arguments and returns the
// exit code.
func run(ctx context.Context, args []string) int {
	var name string
	if len(args) > 0 {
		name = filepath.Base(args[0])
	}

	var forwarded []string
	if len(args) > 0 {
		forwarded = args[1:]
	}

	code := suppress.ExitFailure
	cmd := rootCmd(name, &code)
	// Execute would route "__complete", "completion" and "help" to cobra's own
	// commands. The wrapper has no commands of its own, so RunE gets every
	// argument directly.
	cmd.SetContext(ctx)
	err := cmd.RunE(cmd, forwarded)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		return suppress.ExitFailure
	}
	return code
}

func rootCmd(name string, code *int) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: "Runs /usr/bin/" + name + " without the MIPSpro license warnings.",
		// Every argument belongs to the wrapped command, including ones that
		// look like flags.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig()
			if err != nil {
				return xerrors.Errorf("load config: %w", err)
			}
			log, closeLog, err := newLogger(config)
			if err != nil {
				return xerrors.Errorf("create logger: %w", err)
			}
			defer func() { _ = closeLog() }()
			log = log.Named(programName).With(slog.F("identity", name))

			*code, err = suppress.Run(cmd.Context(), log, suppress.Options{
				Name:         name,
				Args:         args,
				RelaySignals: true,
			})
			if err != nil {
				log.Error(cmd.Context(), "wrapped command failed", slog.Error(err))
				return err
			}
			return nil
		},
	}
}
