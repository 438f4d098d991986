package lc3

// Read returns the cell at addr. Reading KBSR polls the keyboard
// collaborator first: if a key is pending, KBSR is set to 0x8000 and KBDR
// is loaded with the character code; otherwise KBSR is cleared to 0. The
// poll never blocks (spec.md §4.A, §5).
func (m *Machine) Read(addr uint16) uint16 {
	if addr == MR_KBSR {
		if m.kbd != nil {
			if b, ok := m.kbd.Poll(); ok {
				m.Mem[MR_KBSR] = 1 << 15
				m.Mem[MR_KBDR] = uint16(b)
			} else {
				m.Mem[MR_KBSR] = 0
			}
		} else {
			m.Mem[MR_KBSR] = 0
		}
	}
	return m.Mem[addr]
}

// Write stores word at addr. Device addresses are not intercepted on the
// write path (spec.md §3, §9 Open Questions): a store to KBSR/KBDR is an
// ordinary memory write.
func (m *Machine) Write(addr, word uint16) {
	m.Mem[addr] = word
}
