package track

import "testing"

func TestStepIsEmptyDefault(t *testing.T) {
	s := NewEmptyStep()
	if !s.IsEmpty() {
		t.Error("fresh step should be empty")
	}
}

func TestStepAddFXFillsFirstAvailableSlot(t *testing.T) {
	s := NewEmptyStep()
	slot, err := s.AddFX(0x02, 0x10)
	if err != nil {
		t.Fatal(err)
	}
	if slot != 0 {
		t.Errorf("first AddFX slot = %d, want 0", slot)
	}
	if s.IsEmpty() {
		t.Error("step with an FX tuple should not be empty")
	}
	for i := 1; i < FXBlockCount; i++ {
		if _, err := s.AddFX(byte(i), byte(i)); err != nil {
			t.Fatalf("AddFX slot %d: %v", i, err)
		}
	}
	if _, err := s.AddFX(0x09, 0x09); err != ErrNoFXSlotAvailable {
		t.Fatalf("AddFX on full slots = %v, want ErrNoFXSlotAvailable", err)
	}
}

func TestStepRoundTripPreservesNoteOffSentinel(t *testing.T) {
	s := NewEmptyStep()
	s.Note = NoteOff
	s.Instrument = 0x03
	s.SetFX(0, 0x05, 0x20)

	data := s.write()
	read := readStep(data)
	if read.Note != NoteOff {
		t.Errorf("Note after round trip = 0x%02X, want NoteOff", read.Note)
	}
	if read.Instrument != 0x03 {
		t.Errorf("Instrument after round trip = %d, want 3", read.Instrument)
	}
	if read.FX[0].Key != 0x05 || read.FX[0].Value != 0x20 {
		t.Errorf("FX[0] after round trip = %+v", read.FX[0])
	}
}

func TestPhraseWriteExactSizeAndRoundTrip(t *testing.T) {
	p := NewEmptyPhrase()
	step := NewEmptyStep()
	step.Note = 60
	step.Instrument = 2
	p.SetStep(3, step)

	data := p.Write()
	if len(data) != PhraseBlockSize {
		t.Fatalf("len(Write()) = %d, want %d", len(data), PhraseBlockSize)
	}
	read, err := ReadPhrase(data)
	if err != nil {
		t.Fatal(err)
	}
	if read.Step(3).Note != 60 {
		t.Errorf("step 3 note = %d, want 60", read.Step(3).Note)
	}
	if read.IsEmpty() {
		t.Error("phrase with a populated step should not be empty")
	}
}

func TestPhraseValidateInstruments(t *testing.T) {
	p := NewEmptyPhrase()
	step := NewEmptyStep()
	step.Note = 60
	step.Instrument = 5
	p.SetStep(0, step)

	alwaysEmpty := func(idx int) bool { return true }
	if err := p.ValidateInstruments(128, alwaysEmpty); err == nil {
		t.Fatal("expected validation error for empty-instrument reference")
	}

	neverEmpty := func(idx int) bool { return false }
	if err := p.ValidateInstruments(128, neverEmpty); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if err := p.ValidateInstruments(3, neverEmpty); err == nil {
		t.Fatal("expected out-of-range validation error")
	}
}

func TestChainStepIsEmptyDefault(t *testing.T) {
	s := NewEmptyChainStep()
	if !s.IsEmpty() {
		t.Error("fresh chain step should be empty")
	}
}

func TestChainRoundTripAndValidate(t *testing.T) {
	c := NewEmptyChain()
	c.SetStep(0, ChainStep{Phrase: 4, Transpose: 2})

	data := c.Write()
	if len(data) != ChainBlockSize {
		t.Fatalf("len(Write()) = %d, want %d", len(data), ChainBlockSize)
	}
	read, err := ReadChain(data)
	if err != nil {
		t.Fatal(err)
	}
	if read.Step(0).Phrase != 4 || read.Step(0).Transpose != 2 {
		t.Errorf("step 0 after round trip = %+v", read.Step(0))
	}

	if err := c.ValidatePhrases(255, func(idx int) bool { return true }); err == nil {
		t.Fatal("expected validation error for empty-phrase reference")
	}
	if err := c.ValidatePhrases(255, func(idx int) bool { return false }); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestSongRowIsEmptyAndValidate(t *testing.T) {
	row := NewEmptySongRow()
	if !row.IsEmpty() {
		t.Error("fresh song row should be empty")
	}
	row.SetCell(2, 7)
	if row.IsEmpty() {
		t.Error("row with a chain reference should not be empty")
	}
	if err := row.ValidateChains(255, func(idx int) bool { return true }); err == nil {
		t.Fatal("expected validation error for empty-chain reference")
	}
	if err := row.ValidateChains(255, func(idx int) bool { return false }); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestSongWriteExactSizeAndClone(t *testing.T) {
	s := NewEmptySong()
	row := NewEmptySongRow()
	row.SetCell(0, 9)
	s.SetRow(10, row)

	data := s.Write()
	if len(data) != SongBlockSize {
		t.Fatalf("len(Write()) = %d, want %d", len(data), SongBlockSize)
	}

	clone := s.Clone()
	mutated := clone.Row(10)
	mutated.SetCell(1, 1)
	clone.SetRow(10, mutated)
	if s.Row(10).Cell(1) != SongChainEmpty {
		t.Error("mutating clone's row affected the original")
	}
}

func TestPhrasesCollectionValidate(t *testing.T) {
	phrases := NewEmptyPhrases()
	p := NewEmptyPhrase()
	step := NewEmptyStep()
	step.Note = 10
	step.Instrument = 200
	p.SetStep(0, step)
	phrases.Set(1, p)

	err := phrases.ValidateInstruments(128, func(idx int) bool { return true })
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestChainsCollectionRoundTrip(t *testing.T) {
	chains := NewEmptyChains()
	c := NewEmptyChain()
	c.SetStep(0, ChainStep{Phrase: 1, Transpose: 0})
	chains.Set(7, c)

	data := chains.Write()
	read, err := ReadChains(data)
	if err != nil {
		t.Fatal(err)
	}
	if read.Get(7).Step(0).Phrase != 1 {
		t.Errorf("chain 7 step 0 phrase = %d, want 1", read.Get(7).Step(0).Phrase)
	}
}
