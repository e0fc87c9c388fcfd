package instrument

import "fmt"

// Read parses a 215-byte instrument record, dispatching on its type byte
// (offset 0) to the matching family constructor, or to Opaque when the
// byte doesn't match any known family.
func Read(data []byte) (Instrument, error) {
	if len(data) < BlockSize {
		return nil, fmt.Errorf("instrument: short input: got %d bytes, need %d", len(data), BlockSize)
	}
	switch TypeID(data[0]) {
	case TypeWavSynth:
		return ReadWavSynth(data)
	case TypeMacroSynth:
		return ReadMacroSynth(data)
	case TypeSampler:
		return ReadSampler(data)
	case TypeFMSynth:
		return ReadFMSynth(data)
	case TypeHyperSynth:
		return ReadHyperSynth(data)
	case TypeExternal:
		return ReadExternal(data)
	default:
		return ReadOpaque(data)
	}
}

// New constructs a fresh, default-initialized instrument of the given
// family, or, for an unrecognized type byte, an Opaque record that is zero
// apart from that type byte and the name.
func New(t TypeID, name string) Instrument {
	switch t {
	case TypeWavSynth:
		return NewWavSynth(name)
	case TypeMacroSynth:
		return NewMacroSynth(name)
	case TypeSampler:
		return NewSampler(name, "")
	case TypeFMSynth:
		return NewFMSynth(name)
	case TypeHyperSynth:
		return NewHyperSynth(name)
	case TypeExternal:
		return NewExternal(name)
	default:
		o := &Opaque{typeID: t}
		o.data[0] = byte(t)
		o.SetName(name)
		return o
	}
}

// Table is the fixed 128-slot instrument collection carried by a project.
type Table struct {
	slots [BlockCount]Instrument
}

// NewTable returns a table of 128 empty WavSynth instruments, the M8
// project template's default instrument type.
func NewTable() *Table {
	t := &Table{}
	for i := range t.slots {
		t.slots[i] = NewWavSynth("")
	}
	return t
}

// ReadTable parses BlockCount consecutive BlockSize-byte instrument
// records out of data.
func ReadTable(data []byte) (*Table, error) {
	t := &Table{}
	for i := 0; i < BlockCount; i++ {
		start := i * BlockSize
		end := start + BlockSize
		if end > len(data) {
			return nil, fmt.Errorf("instrument: table: short input at slot %d: got %d bytes", i, len(data)-start)
		}
		inst, err := Read(data[start:end])
		if err != nil {
			return nil, fmt.Errorf("instrument: table: slot %d: %w", i, err)
		}
		t.slots[i] = inst
	}
	return t, nil
}

// Write emits exactly BlockCount*BlockSize bytes.
func (t *Table) Write() []byte {
	out := make([]byte, 0, BlockCount*BlockSize)
	for _, inst := range t.slots {
		out = append(out, inst.Write()...)
	}
	return out
}

// Clone returns an independent deep copy.
func (t *Table) Clone() *Table {
	c := &Table{}
	for i, inst := range t.slots {
		c.slots[i] = inst.Clone()
	}
	return c
}

// Get returns the instrument in the given slot (0..127).
func (t *Table) Get(slot int) Instrument { return t.slots[slot] }

// Set replaces the instrument in the given slot.
func (t *Table) Set(slot int, inst Instrument) { t.slots[slot] = inst }

// Len returns the number of slots (always BlockCount).
func (t *Table) Len() int { return len(t.slots) }
