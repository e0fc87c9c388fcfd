package bitcodec

import "testing"

func TestSplitJoinNibbles(t *testing.T) {
	tests := []struct {
		b      byte
		hi, lo byte
	}{
		{0xAB, 0x0A, 0x0B},
		{0x00, 0x00, 0x00},
		{0xFF, 0x0F, 0x0F},
	}
	for _, tt := range tests {
		hi, lo := SplitByte(tt.b)
		if hi != tt.hi || lo != tt.lo {
			t.Errorf("SplitByte(0x%02X) = (0x%X, 0x%X), want (0x%X, 0x%X)", tt.b, hi, lo, tt.hi, tt.lo)
		}
		if got := JoinNibbles(tt.hi, tt.lo); got != tt.b {
			t.Errorf("JoinNibbles(0x%X, 0x%X) = 0x%02X, want 0x%02X", tt.hi, tt.lo, got, tt.b)
		}
	}
}

func TestJoinNibblesMasksOverflow(t *testing.T) {
	if got := JoinNibbles(0xFF, 0xFF); got != 0xFF {
		t.Errorf("JoinNibbles(0xFF, 0xFF) = 0x%02X, want 0xFF", got)
	}
	if got := JoinNibbles(0x1F, 0x01); got != 0xF1 {
		t.Errorf("JoinNibbles(0x1F, 0x01) = 0x%02X, want 0xF1", got)
	}
}

func TestReadFixedStringTerminators(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want string
	}{
		{"nul terminated", []byte("KICK\x00\x00\x00\x00"), "KICK"},
		{"ff terminated", append([]byte("HAT"), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF), "HAT"},
		{"fully used", []byte("012345678901"), "012345678901"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadFixedString(tt.buf, 0, len(tt.buf))
			if got != tt.want {
				t.Errorf("ReadFixedString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteFixedStringTruncatesAndPads(t *testing.T) {
	got := WriteFixedString("A_NAME_TOO_LONG_FOR_TWELVE_BYTES", 12)
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	if string(got) != "A_NAME_TOO_L" {
		t.Errorf("got %q, want %q", string(got), "A_NAME_TOO_L")
	}

	got = WriteFixedString("HI", 5)
	want := []byte{'H', 'I', 0, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = 0x%02X, want 0x%02X", i, got[i], want[i])
		}
	}
}

func TestU16AndF32RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	WriteU16LE(buf, 0, 0xBEEF)
	if got := ReadU16LE(buf, 0); got != 0xBEEF {
		t.Errorf("ReadU16LE = 0x%04X, want 0xBEEF", got)
	}

	WriteF32LE(buf, 2, 120.0)
	if got := ReadF32LE(buf, 2); got != 120.0 {
		t.Errorf("ReadF32LE = %v, want 120.0", got)
	}
}
