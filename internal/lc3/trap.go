package lc3

import "fmt"

// IO is the trap service's host collaborator: blocking character input
// for GETC/IN, and buffered character output for OUT/PUTS/PUTSP/HALT.
// Concrete implementation lives in internal/hostio; tests use fakes.
type IO interface {
	ReadByte() (byte, error)
	WriteByte(b byte) error
	Flush() error
}

// HaltMessage is written to the IO collaborator when the HALT trap runs.
// spec.md §9 notes the source's message was the apparent typo "HATL"; this
// core emits the corrected spelling, since tests must not assume either
// exact string.
const HaltMessage = "HALT"

// trap dispatches on the low 8 bits of a TRAP instruction. Registers are
// not saved automatically (spec.md §4.E): handlers may clobber R0.
func (m *Machine) trap(vect uint16, io IO) error {
	switch vect {
	case TRAP_GETC:
		b, err := io.ReadByte()
		if err != nil {
			return err
		}
		m.Reg[R_R0] = uint16(b)
		m.updateFlags(R_R0)

	case TRAP_OUT:
		if err := io.WriteByte(byte(m.Reg[R_R0])); err != nil {
			return err
		}
		return io.Flush()

	case TRAP_PUTS:
		for i := uint16(0); ; i++ {
			c := m.Mem[m.Reg[R_R0]+i]
			if c == 0 {
				break
			}
			if err := io.WriteByte(byte(c)); err != nil {
				return err
			}
		}
		return io.Flush()

	case TRAP_IN:
		for _, c := range "Enter a character: " {
			if err := io.WriteByte(byte(c)); err != nil {
				return err
			}
		}
		if err := io.Flush(); err != nil {
			return err
		}
		b, err := io.ReadByte()
		if err != nil {
			return err
		}
		m.Reg[R_R0] = uint16(b)
		m.updateFlags(R_R0)
		if err := io.WriteByte(b); err != nil {
			return err
		}
		return io.Flush()

	case TRAP_PUTSP:
		for i := m.Reg[R_R0]; ; i++ {
			c := m.Mem[i]
			if c == 0 {
				break
			}
			if err := io.WriteByte(byte(c & 0xFF)); err != nil {
				return err
			}
			if hi := byte(c >> 8); hi != 0 {
				if err := io.WriteByte(hi); err != nil {
					return err
				}
			}
		}
		return io.Flush()

	case TRAP_HALT:
		for i := 0; i < len(HaltMessage); i++ {
			if err := io.WriteByte(HaltMessage[i]); err != nil {
				return err
			}
		}
		if err := io.Flush(); err != nil {
			return err
		}
		m.Running = false

	default:
		// Unknown trap vectors are silently ignored (spec.md §4.E, §7).
	}
	return nil
}

// FatalOpcodeError is returned when the Execution Unit decodes RTI or RES:
// both are architecturally privileged/reserved and have no meaning in this
// user-mode-only core (spec.md §7).
type FatalOpcodeError struct {
	Opcode uint16
	PC     uint16
}

func (e *FatalOpcodeError) Error() string {
	return fmt.Sprintf("fatal opcode 0x%X at pc 0x%04X", e.Opcode, e.PC)
}
