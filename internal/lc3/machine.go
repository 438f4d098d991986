// Package lc3 implements the LC-3 fetch/decode/execute core: memory,
// registers, the opcode handlers, the six trap vectors, and the image
// loader. It holds no process-global state — every operation takes a
// *Machine explicitly, so a Machine can be created, run, and inspected
// entirely in-memory by tests without touching a real terminal.
package lc3

// Keyboard is the non-blocking keyboard collaborator the Memory read path
// needs. Poll reports whether a key is pending and, if so, its byte value,
// consuming it from the input stream. Concrete implementations live in
// internal/hostio; tests supply fakes.
type Keyboard interface {
	Poll() (b byte, ok bool)
}

// Machine bundles the registers, the 2^16-cell memory, and the running
// flag that together make up one LC-3 process. Zero value is not ready to
// run; use NewMachine.
type Machine struct {
	Reg     [R_COUNT]uint16
	Mem     [1 << 16]uint16
	Running bool

	kbd Keyboard
}

// NewMachine builds a Machine with PC at PCStart, COND at ZRO (one
// condition flag must be set at all times per spec.md §3), and the
// running flag set. kbd is the non-blocking keyboard collaborator used by
// Read when an instruction touches the KBSR address; it may be nil if the
// program never reads KBSR (e.g. the end-to-end scenarios that only use
// OUT/PUTS/HALT).
func NewMachine(kbd Keyboard) *Machine {
	m := &Machine{
		kbd:     kbd,
		Running: true,
	}
	m.Reg[R_COND] = FL_ZRO
	m.Reg[R_PC] = PCStart
	return m
}
