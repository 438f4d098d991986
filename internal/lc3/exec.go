package lc3

// Run drives the fetch-execute loop until the HALT trap clears m.Running
// or a step returns an error (a fatal opcode, or an I/O error from a trap
// handler). io supplies the host terminal for the trap service.
func (m *Machine) Run(io IO) error {
	for m.Running {
		if err := m.Step(io); err != nil {
			return err
		}
	}
	return nil
}

// Step performs one fetch-decode-execute cycle: read the word at PC,
// increment PC, decode the top 4 bits as an opcode, and dispatch. All
// address and PC arithmetic wraps modulo 2^16 (spec.md §4.D, §9).
func (m *Machine) Step(io IO) error {
	pc := m.Reg[R_PC]
	instr := m.Read(pc)
	m.Reg[R_PC] = pc + 1

	switch opcode(instr) {
	case OP_BR:
		m.execBR(instr)
	case OP_ADD:
		m.execADD(instr)
	case OP_AND:
		m.execAND(instr)
	case OP_NOT:
		m.execNOT(instr)
	case OP_JMP:
		m.execJMP(instr)
	case OP_JSR:
		m.execJSR(instr)
	case OP_LD:
		m.execLD(instr)
	case OP_LDI:
		m.execLDI(instr)
	case OP_LDR:
		m.execLDR(instr)
	case OP_LEA:
		m.execLEA(instr)
	case OP_ST:
		m.execST(instr)
	case OP_STI:
		m.execSTI(instr)
	case OP_STR:
		m.execSTR(instr)
	case OP_TRAP:
		m.Reg[R_R7] = m.Reg[R_PC]
		return m.trap(instr&0xFF, io)
	case OP_RTI, OP_RES:
		return &FatalOpcodeError{Opcode: opcode(instr), PC: pc}
	}
	return nil
}

// execBR implements BR: branch iff the n/z/p mask in bits 11..9 shares a
// bit with COND. A mask of 0 never branches; a mask of 7 always does
// (spec.md §8 boundary cases).
func (m *Machine) execBR(instr uint16) {
	condMask := (instr >> 9) & 0x7
	if (condMask & m.Reg[R_COND]) != 0 {
		m.Reg[R_PC] += SignExtend(instr&0x1FF, 9)
	}
}

// execADD implements ADD, register and immediate forms.
func (m *Machine) execADD(instr uint16) {
	dr := (instr >> 9) & 0x7
	sr1 := (instr >> 6) & 0x7
	if (instr>>5)&0x1 != 0 {
		imm5 := SignExtend(instr&0x1F, 5)
		m.Reg[dr] = m.Reg[sr1] + imm5
	} else {
		sr2 := instr & 0x7
		m.Reg[dr] = m.Reg[sr1] + m.Reg[sr2]
	}
	m.updateFlags(dr)
}

// execAND implements AND, register and immediate forms.
func (m *Machine) execAND(instr uint16) {
	dr := (instr >> 9) & 0x7
	sr1 := (instr >> 6) & 0x7
	if (instr>>5)&0x1 != 0 {
		imm5 := SignExtend(instr&0x1F, 5)
		m.Reg[dr] = m.Reg[sr1] & imm5
	} else {
		sr2 := instr & 0x7
		m.Reg[dr] = m.Reg[sr1] & m.Reg[sr2]
	}
	m.updateFlags(dr)
}

// execNOT implements NOT.
func (m *Machine) execNOT(instr uint16) {
	dr := (instr >> 9) & 0x7
	sr := (instr >> 6) & 0x7
	m.Reg[dr] = ^m.Reg[sr]
	m.updateFlags(dr)
}

// execJMP implements JMP; BaseR==R7 is the RET idiom.
func (m *Machine) execJMP(instr uint16) {
	baseR := (instr >> 6) & 0x7
	m.Reg[R_PC] = m.Reg[baseR]
}

// execJSR implements JSR/JSRR. R7 always receives the post-increment PC
// (the return address) before the jump, regardless of form (spec.md §4.D
// tie-breaks).
func (m *Machine) execJSR(instr uint16) {
	m.Reg[R_R7] = m.Reg[R_PC]
	if (instr>>11)&0x1 != 0 {
		off := SignExtend(instr&0x7FF, 11)
		m.Reg[R_PC] += off
	} else {
		baseR := (instr >> 6) & 0x7
		m.Reg[R_PC] = m.Reg[baseR]
	}
}

// execLD implements LD.
func (m *Machine) execLD(instr uint16) {
	dr := (instr >> 9) & 0x7
	m.Reg[dr] = m.Read(m.Reg[R_PC] + SignExtend(instr&0x1FF, 9))
	m.updateFlags(dr)
}

// execLDI implements LDI: two levels of indirection. The intermediate
// address may legally be KBSR, which runs the device's read side effect
// (spec.md §8 boundary cases).
func (m *Machine) execLDI(instr uint16) {
	dr := (instr >> 9) & 0x7
	ptr := m.Reg[R_PC] + SignExtend(instr&0x1FF, 9)
	m.Reg[dr] = m.Read(m.Read(ptr))
	m.updateFlags(dr)
}

// execLDR implements LDR.
func (m *Machine) execLDR(instr uint16) {
	dr := (instr >> 9) & 0x7
	baseR := (instr >> 6) & 0x7
	m.Reg[dr] = m.Read(m.Reg[baseR] + SignExtend(instr&0x3F, 6))
	m.updateFlags(dr)
}

// execLEA implements LEA. Flags are NOT updated: some LC-3 references
// disagree on this, but this core follows the no-update convention fixed
// in spec.md §4.D/§9.
func (m *Machine) execLEA(instr uint16) {
	dr := (instr >> 9) & 0x7
	m.Reg[dr] = m.Reg[R_PC] + SignExtend(instr&0x1FF, 9)
}

// execST implements ST. Stores never update flags.
func (m *Machine) execST(instr uint16) {
	sr := (instr >> 9) & 0x7
	m.Write(m.Reg[R_PC]+SignExtend(instr&0x1FF, 9), m.Reg[sr])
}

// execSTI implements STI.
func (m *Machine) execSTI(instr uint16) {
	sr := (instr >> 9) & 0x7
	ptr := m.Reg[R_PC] + SignExtend(instr&0x1FF, 9)
	m.Write(m.Read(ptr), m.Reg[sr])
}

// execSTR implements STR.
func (m *Machine) execSTR(instr uint16) {
	sr := (instr >> 9) & 0x7
	baseR := (instr >> 6) & 0x7
	m.Write(m.Reg[baseR]+SignExtend(instr&0x3F, 6), m.Reg[sr])
}
