package hostio

// IO bundles a Keyboard and a Writer into the single collaborator the
// trap service (lc3.IO) needs: blocking reads for GETC/IN, buffered
// writes for OUT/PUTS/PUTSP/HALT.
type IO struct {
	*Keyboard
	*Writer
}

// NewIO opens the keyboard and wraps stdout, returning the combined
// collaborator cmd/lc3vm hands to lc3.Machine.Run.
func NewIO() (*IO, error) {
	kbd, err := OpenKeyboard()
	if err != nil {
		return nil, err
	}
	return &IO{Keyboard: kbd, Writer: NewStdoutWriter()}, nil
}

// Close releases the keyboard handle. The Writer has nothing to release.
func (io *IO) Close() error {
	return io.Keyboard.Close()
}
