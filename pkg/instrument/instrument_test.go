package instrument

import "testing"

func TestSamplerDefaultsAndRoundTrip(t *testing.T) {
	s := NewSampler("BASS", "samples/bass.wav")
	if got := s.ExtraField(); got != "samples/bass.wav" {
		t.Fatalf("sample_path = %q", got)
	}
	if got, _ := s.GetParam("length"); got != 0xFF {
		t.Errorf("length default = 0x%X, want 0xFF", got)
	}
	if got, _ := s.GetParam("pan"); got != 0x80 {
		t.Errorf("pan default = 0x%X, want 0x80", got)
	}
	s.SetParam("cutoff", 0x40)

	data := s.Write()
	if len(data) != BlockSize {
		t.Fatalf("len(Write()) = %d, want %d", len(data), BlockSize)
	}
	if TypeID(data[0]) != TypeSampler {
		t.Fatalf("type byte = %d, want %d", data[0], TypeSampler)
	}

	read, err := ReadSampler(data)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := read.GetParam("cutoff"); got != 0x40 {
		t.Errorf("cutoff after round trip = 0x%X, want 0x40", got)
	}
	if got := read.ExtraField(); got != "samples/bass.wav" {
		t.Errorf("sample_path after round trip = %q", got)
	}
}

func TestSamplerIsEmpty(t *testing.T) {
	s := NewSampler("", "")
	s.SetParam("volume", 0)
	if !s.IsEmpty() {
		t.Error("blank name, zero volume, empty sample_path should be empty")
	}
	s.SetExtraField("kick.wav")
	if s.IsEmpty() {
		t.Error("non-empty sample_path should make it non-empty")
	}
}

func TestWavSynthMacroSynthIsEmptyByShape(t *testing.T) {
	w := NewWavSynth("")
	w.SetParam("volume", 0)
	if !w.IsEmpty() {
		t.Error("blank name, zero volume, zero shape should be empty")
	}
	w.SetParam("shape", 2)
	if w.IsEmpty() {
		t.Error("non-zero shape should make it non-empty")
	}

	m := NewMacroSynth("LEAD")
	if m.IsEmpty() {
		t.Error("non-blank name should make it non-empty regardless of shape")
	}
}

func TestExternalRoundTrip(t *testing.T) {
	e := NewExternal("SYNTH1")
	e.SetParam("channel", 3)
	e.SetParam("program", 0x21)
	data := e.Write()
	read, err := ReadExternal(data)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := read.GetParam("channel"); got != 3 {
		t.Errorf("channel = %d, want 3", got)
	}
	if got, _ := read.GetParam("cutoff"); got != 0xFF {
		t.Errorf("cutoff default = 0x%X, want 0xFF", got)
	}
}

func TestFMSynthOperatorRoundTrip(t *testing.T) {
	f := NewFMSynth("FM")
	op := Operator{Shape: 2, RatioFine: 3, Ratio: 10, Level: 0x7F, Feedback: 1, ModA: 5, ModB: 6}
	if err := f.SetOperator(3, op); err != nil {
		t.Fatal(err)
	}
	data := f.Write()
	read, err := ReadFMSynth(data)
	if err != nil {
		t.Fatal(err)
	}
	got, err := read.Operator(3)
	if err != nil {
		t.Fatal(err)
	}
	if got != op {
		t.Errorf("Operator(3) = %+v, want %+v", got, op)
	}
	other, _ := read.Operator(1)
	if other.Shape == op.Shape && other.Level == op.Level {
		t.Error("operator 1 unexpectedly mirrors operator 3's values")
	}
}

// TestFMSynthOperatorLayout exercises the interleaved-by-field byte layout
// directly: operator A (shape SIN, ratio 25) and operator D (shape SQR,
// ratio 4) land at the offsets reverse_engineer_fmsynth_grouped.py and
// tests/api/fmsynth.py found on a real project file, not at the
// contiguous-per-operator offsets an operator-sized stride would produce.
func TestFMSynthOperatorLayout(t *testing.T) {
	f := NewFMSynth("FM")
	if err := f.SetParam("algo", 0x0B); err != nil {
		t.Fatal(err)
	}
	opA := Operator{Shape: 0x00, Ratio: 25, Level: 0xA0, Feedback: 0xA1}
	opD := Operator{Shape: 0x08, Ratio: 4, Level: 0xD0, Feedback: 0xD1}
	if err := f.SetOperator(1, opA); err != nil {
		t.Fatal(err)
	}
	if err := f.SetOperator(4, opD); err != nil {
		t.Fatal(err)
	}

	data := f.Write()
	if data[18] != 0x0B {
		t.Errorf("data[18] (algo) = 0x%02X, want 0x0B", data[18])
	}
	if data[19] != 0x00 {
		t.Errorf("data[19] (shape1) = 0x%02X, want 0x00", data[19])
	}
	if data[22] != 0x08 {
		t.Errorf("data[22] (shape4) = 0x%02X, want 0x08", data[22])
	}

	read, err := ReadFMSynth(data)
	if err != nil {
		t.Fatal(err)
	}
	gotA, err := read.Operator(1)
	if err != nil {
		t.Fatal(err)
	}
	gotD, err := read.Operator(4)
	if err != nil {
		t.Fatal(err)
	}
	if gotA.Ratio != 25 {
		t.Errorf("operator A ratio = %d, want 25", gotA.Ratio)
	}
	if gotD.Ratio != 4 {
		t.Errorf("operator D ratio = %d, want 4", gotD.Ratio)
	}
	if gotA.Level != 0xA0 {
		t.Errorf("operator A level = 0x%02X, want 0xA0", gotA.Level)
	}
	if gotD.Feedback != 0xD1 {
		t.Errorf("operator D feedback = 0x%02X, want 0xD1", gotD.Feedback)
	}
}

func TestFMSynthOperatorOutOfRange(t *testing.T) {
	f := NewFMSynth("FM")
	if _, err := f.Operator(0); err == nil {
		t.Fatal("expected out-of-range error for operator 0")
	}
	if _, err := f.Operator(5); err == nil {
		t.Fatal("expected out-of-range error for operator 5")
	}
}

func TestHyperSynthIsSkeleton(t *testing.T) {
	h := NewHyperSynth("FUTURE")
	data := h.Write()
	read, err := ReadHyperSynth(data)
	if err != nil {
		t.Fatal(err)
	}
	if read.Name() != "FUTURE" {
		t.Errorf("Name() = %q, want FUTURE", read.Name())
	}
	if len(read.ParamNames()) != 0 {
		t.Errorf("ParamNames() = %v, want empty", read.ParamNames())
	}
}

func TestOpaqueFallbackForUnknownType(t *testing.T) {
	data := make([]byte, BlockSize)
	data[0] = 0x7F // unrecognized type byte
	copy(data[1:13], "WEIRD")

	inst, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	o, ok := inst.(*Opaque)
	if !ok {
		t.Fatalf("Read() type = %T, want *Opaque", inst)
	}
	if o.TypeID() != 0x7F {
		t.Errorf("TypeID() = %d, want 0x7F", o.TypeID())
	}
	if o.Name() != "WEIRD" {
		t.Errorf("Name() = %q, want WEIRD", o.Name())
	}
	out := o.Write()
	if len(out) != BlockSize || out[0] != 0x7F {
		t.Error("Opaque.Write() did not preserve the unrecognized type byte")
	}
	if _, err := o.GetParam("anything"); err == nil {
		t.Error("expected GetParam to fail on an Opaque instrument")
	}
}

func TestDispatchByTypeByte(t *testing.T) {
	cases := []struct {
		typ  TypeID
		want string
	}{
		{TypeWavSynth, "WAVSYNTH"},
		{TypeMacroSynth, "MACROSYNTH"},
		{TypeSampler, "SAMPLER"},
		{TypeFMSynth, "FMSYNTH"},
		{TypeHyperSynth, "HYPERSYNTH"},
		{TypeExternal, "EXTERNAL"},
	}
	for _, c := range cases {
		inst := New(c.typ, "X")
		if inst.FamilyName() != c.want {
			t.Errorf("New(%d).FamilyName() = %q, want %q", c.typ, inst.FamilyName(), c.want)
		}
		data := inst.Write()
		read, err := Read(data)
		if err != nil {
			t.Fatalf("Read() after New(%d): %v", c.typ, err)
		}
		if read.FamilyName() != c.want {
			t.Errorf("Read() after New(%d) family = %q, want %q", c.typ, read.FamilyName(), c.want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewSampler("ORIG", "a.wav")
	clone := s.Clone()
	clone.SetName("CLONE")
	clone.SetParam("pan", 0x01)
	if s.Name() != "ORIG" {
		t.Error("mutating clone's name affected the original")
	}
	if got, _ := s.GetParam("pan"); got != 0x80 {
		t.Error("mutating clone's pan affected the original")
	}
}

func TestModulatorBankSurvivesWriteRead(t *testing.T) {
	s := NewSampler("M", "")
	s.Modulators().Get(1).SetAmount(0x42)
	data := s.Write()
	read, err := ReadSampler(data)
	if err != nil {
		t.Fatal(err)
	}
	if got := read.Modulators().Get(1).Amount(); got != 0x42 {
		t.Errorf("modulator amount after round trip = 0x%02X, want 0x42", got)
	}
}

func TestTableRoundTrip(t *testing.T) {
	table := NewTable()
	s := NewSampler("SLOT5", "kick.wav")
	table.Set(5, s)

	data := table.Write()
	if len(data) != BlockCount*BlockSize {
		t.Fatalf("len(Write()) = %d, want %d", len(data), BlockCount*BlockSize)
	}

	read, err := ReadTable(data)
	if err != nil {
		t.Fatal(err)
	}
	if read.Get(5).Name() != "SLOT5" {
		t.Errorf("slot 5 name = %q, want SLOT5", read.Get(5).Name())
	}
	if read.Get(0).FamilyName() != "WAVSYNTH" {
		t.Errorf("slot 0 family = %q, want WAVSYNTH (template default)", read.Get(0).FamilyName())
	}
}

func TestParamEnumBinding(t *testing.T) {
	s := NewSampler("", "")
	pe := s.ParamEnum("play_mode")
	if pe == nil {
		t.Fatal("expected play_mode to have a bound enum")
	}
	v, err := pe.ValueOf("REVLOOP")
	if err != nil || v != 0x03 {
		t.Fatalf("ValueOf(REVLOOP) = (%d, %v), want (3, nil)", v, err)
	}
	if s.ParamEnum("slice") != nil {
		t.Error("slice has no bound enum and should return nil")
	}
}
