// Package hostio is the LC-3 core's host collaborator: raw-mode terminal
// scoping, non-blocking keyboard polling, and buffered character output.
// It satisfies lc3.Keyboard and lc3.IO but never imports lc3, so the core
// stays testable with in-memory fixtures while this package carries the
// real terminal/keyboard dependencies (spec.md §9, §6).
package hostio

import (
	"os"

	"golang.org/x/term"
)

// Terminal scopes raw-mode acquisition to the lifetime of one emulator
// run. Open puts stdin into raw, non-echo, non-canonical mode; Close
// restores whatever mode stdin was in before, and is safe to call more
// than once (e.g. once from a defer and once from a signal handler) and
// safe to call if Open never succeeded.
type Terminal struct {
	fd    int
	state *term.State
}

// OpenTerminal enters raw mode on stdin, per spec.md §6: "stdin in raw,
// non-echo, non-canonical mode for the duration of execution".
func OpenTerminal() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &Terminal{fd: fd, state: state}, nil
}

// Close restores the terminal to its pre-raw-mode state. It must be safe
// to call from both a normal defer and an asynchronous signal handler
// (spec.md §5 "Cancellation semantics", §6).
func (t *Terminal) Close() error {
	if t == nil || t.state == nil {
		return nil
	}
	err := term.Restore(t.fd, t.state)
	t.state = nil
	return err
}
