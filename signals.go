package suppress

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cdr.dev/slog"
)

var (
	// relayedSignals are usually aimed at the wrapper's PID alone, so they are
	// forwarded to the child.
	relayedSignals = []os.Signal{syscall.SIGTERM, syscall.SIGHUP}
	// absorbedSignals come from the terminal and already reach the child
	// through the foreground process group. The wrapper must survive them to
	// drain the child's stderr and report its status.
	absorbedSignals = []os.Signal{os.Interrupt, syscall.SIGQUIT}
)

func isRelayed(sig os.Signal) bool {
	for _, s := range relayedSignals {
		if s == sig {
			return true
		}
	}
	return false
}

// relaySignals starts forwarding signals to child until the returned function
// is called.
func relaySignals(ctx context.Context, log slog.Logger, child Child) (stop func()) {
	signals := make(chan os.Signal, len(relayedSignals)+len(absorbedSignals))
	signal.Notify(signals, append(append([]os.Signal{}, relayedSignals...), absorbedSignals...)...)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case sig := <-signals:
				if !isRelayed(sig) {
					log.Debug(ctx, "signal absorbed", slog.F("signal", sig.String()))
					continue
				}

				log.Debug(ctx, "forwarding signal to child", slog.F("signal", sig.String()), slog.F("pid", child.Pid()))
				err := child.Signal(sig)
				if err != nil {
					log.Warn(ctx, "failed to forward signal to child", slog.F("signal", sig.String()), slog.Error(err))
				}
			}
		}
	}()

	return func() {
		signal.Stop(signals)
		close(done)
	}
}
