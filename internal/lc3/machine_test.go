package lc3

import "errors"

// fakeIO is an in-memory IO fixture standing in for the terminal, per the
// explicit-dependency design in SPEC_FULL.md §4.E.
type fakeIO struct {
	in  []byte // bytes ReadByte returns, in order
	out []byte // bytes written via WriteByte
}

func (f *fakeIO) ReadByte() (byte, error) {
	if len(f.in) == 0 {
		return 0, errors.New("fakeIO: no more input")
	}
	b := f.in[0]
	f.in = f.in[1:]
	return b, nil
}

func (f *fakeIO) WriteByte(b byte) error {
	f.out = append(f.out, b)
	return nil
}

func (f *fakeIO) Flush() error { return nil }

// fakeKeyboard lets tests control KBSR polling deterministically.
type fakeKeyboard struct {
	pending []byte
}

func (k *fakeKeyboard) Poll() (byte, bool) {
	if len(k.pending) == 0 {
		return 0, false
	}
	b := k.pending[0]
	k.pending = k.pending[1:]
	return b, true
}

// load writes words into m.Mem starting at addr.
func load(m *Machine, addr uint16, words ...uint16) {
	for i, w := range words {
		m.Mem[addr+uint16(i)] = w
	}
}
