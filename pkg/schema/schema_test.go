package schema

import "testing"

func testMap() *Map {
	return NewMap([]Field{
		{Name: "type", Offset: 0, Width: 1, Kind: KindU8},
		{Name: "name", Offset: 1, Width: 4, Kind: KindString},
		{Name: "transpose", Offset: 5, Width: 1, Kind: KindNibbleLow},
		{Name: "eq", Offset: 5, Width: 1, Kind: KindNibbleHigh},
		{Name: "tempo", Offset: 6, Width: 4, Kind: KindF32LE},
		{Name: "cutoff", Offset: 10, Width: 1, Kind: KindU8, Default: byte(0xFF)},
	})
}

func TestUnknownField(t *testing.T) {
	m := testMap()
	buf := make([]byte, 11)
	if _, err := m.GetInt(buf, "nope"); err == nil {
		t.Fatal("expected UnknownFieldError")
	} else if _, ok := err.(*UnknownFieldError); !ok {
		t.Fatalf("got %T, want *UnknownFieldError", err)
	}
}

func TestNibbleFieldsPreserveEachOther(t *testing.T) {
	m := testMap()
	buf := make([]byte, 11)
	if err := m.SetInt(buf, "transpose", 0x5); err != nil {
		t.Fatal(err)
	}
	if err := m.SetInt(buf, "eq", 0xA); err != nil {
		t.Fatal(err)
	}
	tr, _ := m.GetInt(buf, "transpose")
	eq, _ := m.GetInt(buf, "eq")
	if tr != 0x5 || eq != 0xA {
		t.Fatalf("transpose=0x%X eq=0x%X, want 0x5/0xA", tr, eq)
	}
	if buf[5] != 0xA5 {
		t.Errorf("packed byte = 0x%02X, want 0xA5", buf[5])
	}
}

func TestSetIntMasksNibbleOverflow(t *testing.T) {
	m := testMap()
	buf := make([]byte, 11)
	if err := m.SetInt(buf, "transpose", 0xFF); err != nil {
		t.Fatal(err)
	}
	got, _ := m.GetInt(buf, "transpose")
	if got != 0x0F {
		t.Errorf("transpose = 0x%X, want 0x0F", got)
	}
}

func TestStringTruncatesToWidth(t *testing.T) {
	m := testMap()
	buf := make([]byte, 11)
	if err := m.SetString(buf, "name", "TOOLONGNAME"); err != nil {
		t.Fatal(err)
	}
	got, _ := m.GetString(buf, "name")
	if got != "TOOL" {
		t.Errorf("name = %q, want %q", got, "TOOL")
	}
}

func TestU16OutOfRange(t *testing.T) {
	m := NewMap([]Field{{Name: "x", Offset: 0, Width: 2, Kind: KindU16LE}})
	buf := make([]byte, 2)
	if err := m.SetInt(buf, "x", 70000); err == nil {
		t.Fatal("expected OutOfRangeError")
	} else if _, ok := err.(*OutOfRangeError); !ok {
		t.Fatalf("got %T, want *OutOfRangeError", err)
	}
}

func TestApplyDefaultsIfZeroOnlyWhenZero(t *testing.T) {
	m := testMap()
	buf := make([]byte, 11)
	buf[10] = 0x00
	if err := m.ApplyDefaultsIfZero(buf, []DefaultEntry{{Name: "cutoff", Value: byte(0xFF)}}); err != nil {
		t.Fatal(err)
	}
	if buf[10] != 0xFF {
		t.Errorf("cutoff = 0x%02X, want 0xFF (zero region repaired)", buf[10])
	}

	buf[10] = 0x42
	if err := m.ApplyDefaultsIfZero(buf, []DefaultEntry{{Name: "cutoff", Value: byte(0xFF)}}); err != nil {
		t.Fatal(err)
	}
	if buf[10] != 0x42 {
		t.Errorf("cutoff = 0x%02X, want unchanged 0x42", buf[10])
	}
}

func TestRecordReadShortInput(t *testing.T) {
	m := testMap()
	if _, err := Read(m, make([]byte, 3), 11); err == nil {
		t.Fatal("expected ShortInputError")
	} else if _, ok := err.(*ShortInputError); !ok {
		t.Fatalf("got %T, want *ShortInputError", err)
	}
}

func TestRecordPreservesUnknownBytes(t *testing.T) {
	m := testMap()
	raw := make([]byte, 12)
	raw[11] = 0xAB // not covered by any field
	rec, err := Read(m, raw, 12)
	if err != nil {
		t.Fatal(err)
	}
	_ = rec.SetInt("type", 2)
	out := rec.Write()
	if out[11] != 0xAB {
		t.Errorf("unknown byte region not preserved: got 0x%02X, want 0xAB", out[11])
	}
}

func TestRecordCloneIsIndependent(t *testing.T) {
	m := testMap()
	rec := NewRecord(m, 11)
	clone := rec.Clone()
	_ = clone.SetInt("type", 9)
	orig, _ := rec.GetInt("type")
	if orig != 0 {
		t.Errorf("mutating clone affected original: type = %d", orig)
	}
}
