// Package modulator implements the M8 6-byte modulator record and its
// 4-slot bank, grounded on original_source/m8/api/modulator.go (the v0.3.1
// byte layout, including the AHD decay-at-offset-4 fix called out in
// spec.md §9 and regression-tested by scenario S3).
package modulator

import (
	"fmt"

	"github.com/m8kit/m8codec/pkg/bitcodec"
)

// Type identifies a modulator's shape, packed in the high nibble of byte 0.
type Type byte

const (
	TypeAHDEnvelope Type = 0
	TypeADSREnvelope Type = 1
	TypeDrumEnvelope Type = 2
	TypeLFO          Type = 3
	TypeTrigEnvelope Type = 4
	TypeTrack        Type = 5
)

func (t Type) String() string {
	switch t {
	case TypeAHDEnvelope:
		return "AHD_ENVELOPE"
	case TypeADSREnvelope:
		return "ADSR_ENVELOPE"
	case TypeDrumEnvelope:
		return "DRUM_ENVELOPE"
	case TypeLFO:
		return "LFO"
	case TypeTrigEnvelope:
		return "TRIG_ENVELOPE"
	case TypeTrack:
		return "TRACK"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", byte(t))
	}
}

// BlockSize is the fixed on-disk size of a single modulator record.
const BlockSize = 6

// Common byte offsets shared by every modulator type.
const (
	offTypeDest = 0
	offAmount   = 1
)

// Type-specific tail offsets, v0.3.1 layout.
const (
	offAHDAttack = 2
	offAHDHold   = 3
	offAHDDecay  = 4

	offADSRAttack  = 2
	offADSRDecay   = 3
	offADSRSustain = 4
	offADSRRelease = 5

	offLFOOscillator = 2
	offLFOTrigger    = 3
	offLFOFrequency  = 4
)

// Defaults per spec.md §4.4.
const (
	DefaultAmount      = 0xFF
	DefaultDestination = 0x00
	DefaultAHDDecay    = 0x80
	DefaultLFOFrequency = 0x10
)

// Modulator is a 6-byte record: type in the high nibble of byte 0,
// destination in the low nibble, amount at byte 1, and a type-specific
// tail in bytes 2-5. Destination semantics depend on the enclosing
// instrument family and are resolved by that family's enum bindings, not
// by this package.
type Modulator struct {
	data [BlockSize]byte
}

// New creates a modulator of the given type with its type-specific defaults applied.
func New(t Type) *Modulator {
	m := &Modulator{}
	m.data[offTypeDest] = bitcodec.JoinNibbles(byte(t), DefaultDestination)
	m.data[offAmount] = DefaultAmount
	switch t {
	case TypeAHDEnvelope:
		m.data[offAHDDecay] = DefaultAHDDecay
	case TypeLFO:
		m.data[offLFOFrequency] = DefaultLFOFrequency
	}
	return m
}

// Read parses a modulator from the first BlockSize bytes of data.
func Read(data []byte) (*Modulator, error) {
	if len(data) < BlockSize {
		return nil, fmt.Errorf("modulator: short input: got %d bytes, need %d", len(data), BlockSize)
	}
	m := &Modulator{}
	copy(m.data[:], data[:BlockSize])
	return m, nil
}

// Write emits the exact 6-byte record.
func (m *Modulator) Write() []byte {
	out := make([]byte, BlockSize)
	copy(out, m.data[:])
	return out
}

// Clone returns an independent copy.
func (m *Modulator) Clone() *Modulator {
	c := &Modulator{}
	c.data = m.data
	return c
}

// ModType returns the modulator's type (high nibble of byte 0).
func (m *Modulator) ModType() Type {
	hi, _ := bitcodec.SplitByte(m.data[offTypeDest])
	return Type(hi)
}

// SetModType sets the modulator's type, preserving the destination nibble.
func (m *Modulator) SetModType(t Type) {
	_, lo := bitcodec.SplitByte(m.data[offTypeDest])
	m.data[offTypeDest] = bitcodec.JoinNibbles(byte(t), lo)
}

// Destination returns the raw destination nibble (low nibble of byte 0).
// Its meaning depends on the enclosing instrument family.
func (m *Modulator) Destination() byte {
	_, lo := bitcodec.SplitByte(m.data[offTypeDest])
	return lo
}

// SetDestination sets the destination nibble, preserving the type nibble.
func (m *Modulator) SetDestination(d byte) {
	hi, _ := bitcodec.SplitByte(m.data[offTypeDest])
	m.data[offTypeDest] = bitcodec.JoinNibbles(hi, d&0x0F)
}

// Amount returns the modulation amount.
func (m *Modulator) Amount() byte { return m.data[offAmount] }

// SetAmount sets the modulation amount.
func (m *Modulator) SetAmount(v byte) { m.data[offAmount] = v }

// IsEmpty reports whether this slot is unused (destination == 0x00), per
// spec.md's "0x00 destination = empty modulator" sentinel.
func (m *Modulator) IsEmpty() bool { return m.Destination() == 0x00 }

// AHD accessors (type 0).
func (m *Modulator) AHDAttack() byte     { return m.data[offAHDAttack] }
func (m *Modulator) SetAHDAttack(v byte) { m.data[offAHDAttack] = v }
func (m *Modulator) AHDHold() byte       { return m.data[offAHDHold] }
func (m *Modulator) SetAHDHold(v byte)   { m.data[offAHDHold] = v }
func (m *Modulator) AHDDecay() byte      { return m.data[offAHDDecay] }
func (m *Modulator) SetAHDDecay(v byte)  { m.data[offAHDDecay] = v }

// ADSR accessors (type 1).
func (m *Modulator) ADSRAttack() byte      { return m.data[offADSRAttack] }
func (m *Modulator) SetADSRAttack(v byte)  { m.data[offADSRAttack] = v }
func (m *Modulator) ADSRDecay() byte       { return m.data[offADSRDecay] }
func (m *Modulator) SetADSRDecay(v byte)   { m.data[offADSRDecay] = v }
func (m *Modulator) ADSRSustain() byte     { return m.data[offADSRSustain] }
func (m *Modulator) SetADSRSustain(v byte) { m.data[offADSRSustain] = v }
func (m *Modulator) ADSRRelease() byte     { return m.data[offADSRRelease] }
func (m *Modulator) SetADSRRelease(v byte) { m.data[offADSRRelease] = v }

// LFO accessors (type 3).
func (m *Modulator) LFOOscillator() byte     { return m.data[offLFOOscillator] }
func (m *Modulator) SetLFOOscillator(v byte) { m.data[offLFOOscillator] = v }
func (m *Modulator) LFOTrigger() byte        { return m.data[offLFOTrigger] }
func (m *Modulator) SetLFOTrigger(v byte)    { m.data[offLFOTrigger] = v }
func (m *Modulator) LFOFrequency() byte      { return m.data[offLFOFrequency] }
func (m *Modulator) SetLFOFrequency(v byte)  { m.data[offLFOFrequency] = v }

// RawTail returns bytes 2..5 verbatim, for types (Drum/TrigEnv/Track) whose
// exact field layout is family-documented rather than universal.
func (m *Modulator) RawTail() [4]byte {
	var tail [4]byte
	copy(tail[:], m.data[2:6])
	return tail
}

// SetRawTail overwrites bytes 2..5 verbatim.
func (m *Modulator) SetRawTail(tail [4]byte) {
	copy(m.data[2:6], tail[:])
}
