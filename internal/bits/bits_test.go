package bits

import (
	"bytes"
	"testing"
)

func TestReader(t *testing.T) {
	r := NewReader([]byte{0b1010_1100, 0b0011_0101, 0xFF})

	if got := r.Read(4); got != 0b1010 {
		t.Errorf("Read(4) = %04b, want 1010", got)
	}
	if got := r.ReadBool(); got != true {
		t.Errorf("ReadBool() = %v, want true", got)
	}
	if got := r.Read(5); got != 0b10000 {
		t.Errorf("Read(5) = %05b, want 10000", got)
	}
	r.Skip(2)
	if got := r.Read(4); got != 0b0101 {
		t.Errorf("Read(4) = %04b, want 0101", got)
	}
	if got := r.BitsRead(); got != 16 {
		t.Errorf("BitsRead() = %d, want 16", got)
	}
	if r.Err() {
		t.Error("Err() = true before any overrun")
	}
}

func TestReaderCrossesBytes(t *testing.T) {
	r := NewReader([]byte{0x12, 0x34, 0x56})
	if got := r.Read(24); got != 0x123456 {
		t.Errorf("Read(24) = %#x, want 0x123456", got)
	}
}

func TestReaderOverrun(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if got := r.Read(16); got != 0xFF00 {
		t.Errorf("Read(16) = %#x, want 0xff00", got)
	}
	if !r.Err() {
		t.Error("Err() = false after reading past the buffer")
	}
	if got := r.Read(8); got != 0 {
		t.Errorf("Read(8) after overrun = %#x, want 0", got)
	}
}

func TestReaderSkipOverrun(t *testing.T) {
	r := NewReader([]byte{0x00})
	r.Skip(8)
	if r.Err() {
		t.Error("Err() = true after skipping exactly to the end")
	}
	r.Skip(1)
	if !r.Err() {
		t.Error("Err() = false after skipping past the end")
	}
}

func TestWriter(t *testing.T) {
	w := NewWriter()
	w.Write(0b1010, 4)
	w.WriteBool(true)
	w.Write(0, 5)
	w.Write(0b0011_0101, 8)

	if got := w.Len(); got != 18 {
		t.Errorf("Len() = %d, want 18", got)
	}
	want := []byte{0b1010_1000, 0b0000_1101, 0b0100_0000}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("Bytes() = %08b, want %08b", w.Bytes(), want)
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	fields := []struct {
		v uint32
		n int
	}{
		{0xFFF, 12},
		{0, 1},
		{1, 2},
		{0x1FFF, 13},
		{0x2AA, 11},
		{3, 2},
	}

	w := NewWriter()
	for _, f := range fields {
		w.Write(f.v, f.n)
	}

	r := NewReader(w.Bytes())
	for i, f := range fields {
		if got := r.Read(f.n); got != f.v {
			t.Errorf("field %d: read %#x, want %#x", i, got, f.v)
		}
	}
	if r.Err() {
		t.Error("Err() = true after reading written fields")
	}
}
