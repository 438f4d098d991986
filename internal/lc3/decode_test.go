package lc3

import "testing"

func TestSignExtendPositive(t *testing.T) {
	got := SignExtend(0x0D, 5) // 01101, positive 5-bit value
	if got != 13 {
		t.Errorf("SignExtend(0x0D, 5) = 0x%04X, want 13", got)
	}
}

func TestSignExtendNegative(t *testing.T) {
	got := SignExtend(0x13, 5) // 10011, -13 as a 5-bit signed value
	want := uint16(0xFFF3)
	if got != want {
		t.Errorf("SignExtend(0x13, 5) = 0x%04X, want 0x%04X", got, want)
	}
}

func TestSignExtendRoundTrip(t *testing.T) {
	for n := 1; n <= 15; n++ {
		mask := uint16(1<<n) - 1
		for x := uint16(0); x <= mask; x++ {
			got := int16(SignExtend(x, n))
			// reference: interpret x as an n-bit two's-complement value directly
			var want int16
			if x&(1<<(n-1)) != 0 {
				want = int16(x) - int16(1<<n)
			} else {
				want = int16(x)
			}
			if got != want {
				t.Fatalf("SignExtend(%d, %d) = %d, want %d", x, n, got, want)
			}
		}
	}
}

func TestOpcodeExtraction(t *testing.T) {
	// TRAP HALT: 1111 0000 0010 0101
	instr := uint16(0xF025)
	if op := opcode(instr); op != OP_TRAP {
		t.Errorf("opcode(0x%04X) = %d, want OP_TRAP (%d)", instr, op, OP_TRAP)
	}
}
