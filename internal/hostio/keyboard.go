package hostio

import (
	"errors"
	"io"

	"github.com/eiannone/keyboard"
)

// ErrInterrupted is returned from ReadByte when a Ctrl+C key event arrives
// while a blocking read (GETC/IN) is in flight. cmd/lc3vm treats it the
// same as an OS-delivered SIGINT: restore the terminal and exit with a
// distinguishing non-zero status (spec.md §5, §7 AsynchronousTerminate).
var ErrInterrupted = errors.New("hostio: interrupted")

// Keyboard drains github.com/eiannone/keyboard's key-event stream into a
// buffered byte channel, turning its blocking-by-nature API into
// something that can also be polled non-blockingly: Poll is a
// select/default receive, ReadByte is a blocking receive. This is what the
// KBSR memory-mapped read (spec.md §4.A) and the GETC/IN traps
// (spec.md §4.E) both need.
type Keyboard struct {
	bytes     chan byte
	interrupt chan struct{}
}

// OpenKeyboard opens the terminal keyboard and starts the background pump
// goroutine. The returned Keyboard's Close stops the pump and releases the
// underlying keyboard handle.
func OpenKeyboard() (*Keyboard, error) {
	if err := keyboard.Open(); err != nil {
		return nil, err
	}
	events, err := keyboard.GetKeys(64)
	if err != nil {
		keyboard.Close()
		return nil, err
	}

	k := &Keyboard{
		bytes:     make(chan byte, 64),
		interrupt: make(chan struct{}),
	}
	go k.pump(events)
	return k, nil
}

// pump is the sole goroutine in this host collaborator (spec.md §5: the
// core itself stays single-threaded; this is host-side plumbing). It
// forwards key events as bytes until a Ctrl+C event, at which point it
// closes the interrupt channel and stops.
func (k *Keyboard) pump(events <-chan keyboard.KeyEvent) {
	for ev := range events {
		if ev.Err != nil {
			continue
		}
		if ev.Key == keyboard.KeyCtrlC {
			close(k.interrupt)
			return
		}
		k.bytes <- byte(ev.Rune)
	}
}

// Poll implements lc3.Keyboard: non-blocking, consumes a pending byte if
// one is buffered.
func (k *Keyboard) Poll() (byte, bool) {
	select {
	case b := <-k.bytes:
		return b, true
	default:
		return 0, false
	}
}

// ReadByte implements the blocking half of lc3.IO (GETC/IN). It also
// watches for the Ctrl+C interrupt so a trap blocked on input doesn't
// hang forever past an asynchronous terminate request.
func (k *Keyboard) ReadByte() (byte, error) {
	select {
	case b, ok := <-k.bytes:
		if !ok {
			return 0, io.EOF
		}
		return b, nil
	case <-k.interrupt:
		return 0, ErrInterrupted
	}
}

// Interrupted is closed the moment a Ctrl+C key event is observed, for
// callers (cmd/lc3vm) that want to select on it outside of a ReadByte
// call.
func (k *Keyboard) Interrupted() <-chan struct{} {
	return k.interrupt
}

// Close releases the underlying keyboard handle.
func (k *Keyboard) Close() error {
	keyboard.Close()
	return nil
}
