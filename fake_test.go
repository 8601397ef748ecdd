package suppress_test

import (
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/xerrors"

	"cdr.dev/suppress"
)

// fakeChild is a Child with canned stderr output and exit status.
type fakeChild struct {
	stderr io.ReadCloser
	status suppress.ExitStatus
	err    error

	mu       sync.Mutex
	waited   bool
	drained  bool
	// requireDrained makes Wait fail unless Stderr was read to EOF first.
	requireDrained bool
	signals  []os.Signal
	onSignal func(os.Signal)
	onStderr func()
}

var _ suppress.Child = &fakeChild{}

func newFakeChild(stderr string, status suppress.ExitStatus) *fakeChild {
	return &fakeChild{
		stderr: io.NopCloser(strings.NewReader(stderr)),
		status: status,
	}
}

func (c *fakeChild) Pid() int {
	return 4242
}

func (c *fakeChild) Stderr() io.ReadCloser {
	if c.onStderr != nil {
		c.onStderr()
	}
	return &eofTracker{ReadCloser: c.stderr, child: c}
}

// eofTracker records on its fakeChild when the stream has been read to EOF.
type eofTracker struct {
	io.ReadCloser
	child *fakeChild
}

func (r *eofTracker) Read(p []byte) (int, error) {
	n, err := r.ReadCloser.Read(p)
	if xerrors.Is(err, io.EOF) {
		r.child.mu.Lock()
		r.child.drained = true
		r.child.mu.Unlock()
	}
	return n, err
}

func (c *fakeChild) Signal(sig os.Signal) error {
	c.mu.Lock()
	c.signals = append(c.signals, sig)
	onSignal := c.onSignal
	c.mu.Unlock()

	if onSignal != nil {
		onSignal(sig)
	}
	return nil
}

func (c *fakeChild) Signals() []os.Signal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]os.Signal{}, c.signals...)
}

func (c *fakeChild) Wait() (suppress.ExitStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.waited {
		return suppress.ExitStatus{}, xerrors.New("already waited")
	}
	c.waited = true
	if c.requireDrained && !c.drained {
		return suppress.ExitStatus{}, xerrors.New("child waited for before its stderr reached EOF")
	}
	return c.status, c.err
}

func (c *fakeChild) Waited() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waited
}

// fakeSpawner hands out a single fakeChild and records what it was asked to
// run.
type fakeSpawner struct {
	child *fakeChild
	err   error

	calls  int
	target string
	argv   []string
}

var _ suppress.Spawner = &fakeSpawner{}

func (s *fakeSpawner) Spawn(target string, argv []string) (suppress.Child, error) {
	s.calls++
	s.target = target
	s.argv = argv
	if s.err != nil {
		return nil, s.err
	}
	s.child.requireDrained = true
	return s.child, nil
}

// failingReadCloser fails every read and optionally its close.
type failingReadCloser struct {
	readErr  error
	closeErr error
	closed   bool
}

func (r *failingReadCloser) Read(_ []byte) (int, error) {
	return 0, r.readErr
}

func (r *failingReadCloser) Close() error {
	r.closed = true
	return r.closeErr
}
