package modulator

import "testing"

func TestNewAHDDefaults(t *testing.T) {
	m := New(TypeAHDEnvelope)
	if m.ModType() != TypeAHDEnvelope {
		t.Errorf("ModType() = %v, want AHD", m.ModType())
	}
	if m.Amount() != DefaultAmount {
		t.Errorf("Amount() = 0x%02X, want 0x%02X", m.Amount(), DefaultAmount)
	}
	if m.AHDDecay() != DefaultAHDDecay {
		t.Errorf("AHDDecay() = 0x%02X, want 0x%02X", m.AHDDecay(), DefaultAHDDecay)
	}
	if m.Destination() != DefaultDestination {
		t.Errorf("Destination() = 0x%02X, want 0x00", m.Destination())
	}
}

func TestNewLFODefaults(t *testing.T) {
	m := New(TypeLFO)
	if m.LFOFrequency() != DefaultLFOFrequency {
		t.Errorf("LFOFrequency() = 0x%02X, want 0x%02X", m.LFOFrequency(), DefaultLFOFrequency)
	}
}

// TestAHDDecayRoundTrip is a regression guard against the historical bug
// (spec.md scenario S3) where decay at offset 4 was lost to a 6-byte block
// being read past its end.
func TestAHDDecayRoundTrip(t *testing.T) {
	m := New(TypeAHDEnvelope)
	m.SetDestination(0x01)
	m.SetAmount(0xFF)
	m.SetAHDAttack(0x00)
	m.SetAHDHold(0x00)
	m.SetAHDDecay(0x60)

	data := m.Write()
	read, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	if read.AHDDecay() != 0x60 {
		t.Errorf("AHDDecay() after round trip = 0x%02X, want 0x60", read.AHDDecay())
	}
}

func TestModTypeDestinationNibblesIndependent(t *testing.T) {
	m := New(TypeAHDEnvelope)
	m.SetDestination(0x07)
	m.SetModType(TypeLFO)
	if m.Destination() != 0x07 {
		t.Errorf("Destination() = 0x%X, want 0x7 (unaffected by SetModType)", m.Destination())
	}
	if m.ModType() != TypeLFO {
		t.Errorf("ModType() = %v, want LFO", m.ModType())
	}
}

func TestReadShortInput(t *testing.T) {
	if _, err := Read([]byte{0x01, 0x02}); err == nil {
		t.Fatal("expected short input error")
	}
}

func TestWriteExactSize(t *testing.T) {
	m := New(TypeADSREnvelope)
	if got := len(m.Write()); got != BlockSize {
		t.Errorf("len(Write()) = %d, want %d", got, BlockSize)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := New(TypeAHDEnvelope)
	c := m.Clone()
	c.SetAmount(0x01)
	if m.Amount() == 0x01 {
		t.Error("mutating clone affected original")
	}
}

func TestIsEmpty(t *testing.T) {
	m := New(TypeAHDEnvelope)
	if !m.IsEmpty() {
		t.Error("fresh modulator with destination 0x00 should be empty")
	}
	m.SetDestination(0x01)
	if m.IsEmpty() {
		t.Error("modulator with non-zero destination should not be empty")
	}
}

func TestBankWriteExactSize(t *testing.T) {
	b := NewBank([SlotCount]Type{TypeAHDEnvelope, TypeAHDEnvelope, TypeLFO, TypeLFO})
	if got := len(b.Write()); got != BankSize {
		t.Errorf("len(Write()) = %d, want %d", got, BankSize)
	}
}

func TestBankAddFailsWhenFull(t *testing.T) {
	b := NewBank([SlotCount]Type{TypeAHDEnvelope, TypeAHDEnvelope, TypeLFO, TypeLFO})
	for i := 0; i < SlotCount; i++ {
		m := New(TypeAHDEnvelope)
		m.SetDestination(byte(i + 1))
		if _, err := b.Add(m); err != nil {
			t.Fatalf("Add() slot %d: %v", i, err)
		}
	}
	fifth := New(TypeAHDEnvelope)
	fifth.SetDestination(0x09)
	if _, err := b.Add(fifth); err != ErrNoSlotAvailable {
		t.Fatalf("Add() on full bank = %v, want ErrNoSlotAvailable", err)
	}
}

func TestBankRoundTrip(t *testing.T) {
	b := NewBank([SlotCount]Type{TypeAHDEnvelope, TypeAHDEnvelope, TypeLFO, TypeLFO})
	b.Get(2).SetLFOFrequency(0x55)

	data := b.Write()
	read, err := ReadBank(data)
	if err != nil {
		t.Fatal(err)
	}
	if read.Get(2).LFOFrequency() != 0x55 {
		t.Errorf("slot 2 LFOFrequency = 0x%02X, want 0x55", read.Get(2).LFOFrequency())
	}
}
