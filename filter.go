package suppress

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"golang.org/x/xerrors"
)

// The license manager diagnostics printed by the MIPSpro toolchain when it
// cannot reach a license server. The block always starts with one of the two
// trigger lines and ends with the closing marker followed by a blank line.
const (
	MsgCannotFindServer        = "Cannot find SERVER hostname in network database (-14,7:2) No such file or directory"
	MsgNoSuchFeature           = "No such feature exists (-5,116)"
	MsgGraphicsSupportCustomer = "Graphics support customer then contact your local support provider."
)

// State is the position of a Filter inside the suppression window.
type State int

const (
	// StatePassing emits every line.
	StatePassing State = iota
	// StateSuppressing drops every line until the closing marker.
	StateSuppressing
	// StateSeparator drops exactly one more line after the closing marker.
	StateSeparator
)

func (s State) String() string {
	switch s {
	case StatePassing:
		return "passing"
	case StateSuppressing:
		return "suppressing"
	case StateSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// IsTrigger reports whether line opens the suppression window.
func IsTrigger(line string) bool {
	return line == MsgCannotFindServer || line == MsgNoSuchFeature
}

// Filter drops the license diagnostics block from a stream of lines. The
// window opens at most once per Filter; later trigger lines are passed
// through like any other output.
//
// The zero value is ready to use.
type Filter struct {
	state     State
	triggered bool
	dropped   int
}

// State returns the current state of the filter.
func (f *Filter) State() State {
	return f.state
}

// Triggered reports whether the suppression window has been opened.
func (f *Filter) Triggered() bool {
	return f.triggered
}

// Dropped returns the number of lines dropped so far.
func (f *Filter) Dropped() int {
	return f.dropped
}

// Step consumes one line, without its trailing newline, and reports whether
// it should be emitted.
func (f *Filter) Step(line string) bool {
	switch f.state {
	case StateSeparator:
		// The line after the closing marker is discarded whatever it holds.
		f.state = StatePassing
		f.dropped++
		return false

	case StateSuppressing:
		if line == MsgGraphicsSupportCustomer {
			f.state = StateSeparator
		}
		f.dropped++
		return false
	}

	if !f.triggered && IsTrigger(line) {
		f.triggered = true
		f.state = StateSuppressing
		f.dropped++
		return false
	}

	return true
}

// Copy reads newline delimited text from src until EOF and writes every line
// that passes the filter to dst, newline terminated. Lines may be of any
// length. A read or write error aborts the copy.
func (f *Filter) Copy(dst io.Writer, src io.Reader) error {
	r := bufio.NewReader(src)
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			if f.Step(line) {
				_, werr := io.WriteString(dst, line+"\n")
				if werr != nil {
					return xerrors.Errorf("write line: %w", werr)
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return xerrors.Errorf("read line: %w", err)
		}
	}
}
