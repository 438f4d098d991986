package lc3

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestLoadImagePlacesWordsAtOrigin(t *testing.T) {
	var buf bytes.Buffer
	words := []uint16{0x3000, 0xF025, 0x1234, 0xBEEF}
	for _, w := range words {
		binary.Write(&buf, binary.BigEndian, w)
	}

	var mem [1 << 16]uint16
	if err := LoadImage(&mem, &buf); err != nil {
		t.Fatalf("LoadImage returned error: %v", err)
	}
	for i, w := range words[1:] {
		if got := mem[0x3000+uint16(i)]; got != w {
			t.Errorf("mem[0x%04X] = 0x%04X, want 0x%04X", 0x3000+i, got, w)
		}
	}
}

func TestLoadImageRoundTrip(t *testing.T) {
	origin := uint16(0x4000)
	payload := []uint16{0x1111, 0x2222, 0x3333}

	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, origin)
	for _, w := range payload {
		binary.Write(&buf, binary.BigEndian, w)
	}

	var mem [1 << 16]uint16
	if err := LoadImage(&mem, &buf); err != nil {
		t.Fatalf("LoadImage returned error: %v", err)
	}
	for i, w := range payload {
		if mem[origin+uint16(i)] != w {
			t.Fatalf("round trip mismatch at offset %d: got 0x%04X, want 0x%04X", i, mem[origin+uint16(i)], w)
		}
	}
}

func TestLoadImageStopsAtEOF(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint16(0x3000))
	binary.Write(&buf, binary.BigEndian, uint16(0xAAAA))

	var mem [1 << 16]uint16
	mem[0x3001] = 0x5555 // sentinel: must not be touched
	if err := LoadImage(&mem, &buf); err != nil {
		t.Fatalf("LoadImage returned error: %v", err)
	}
	if mem[0x3000] != 0xAAAA {
		t.Errorf("mem[0x3000] = 0x%04X, want 0xAAAA", mem[0x3000])
	}
	if mem[0x3001] != 0x5555 {
		t.Errorf("mem[0x3001] was touched, got 0x%04X", mem[0x3001])
	}
}
