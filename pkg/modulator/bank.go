package modulator

import "errors"

// SlotCount is the fixed number of modulator slots in an instrument.
const SlotCount = 4

// BankSize is the exact on-disk size of a ModulatorBank.
const BankSize = SlotCount * BlockSize

// ErrNoSlotAvailable is returned by Add when every slot is occupied.
var ErrNoSlotAvailable = errors.New("modulator: no slot available")

// Bank is a fixed 4-slot collection of Modulators.
type Bank struct {
	slots [SlotCount]*Modulator
}

// NewBank builds a bank with the given default type pattern (e.g.
// [AHD, AHD, LFO, LFO]), one default modulator per slot.
func NewBank(defaultTypes [SlotCount]Type) *Bank {
	b := &Bank{}
	for i, t := range defaultTypes {
		b.slots[i] = New(t)
	}
	return b
}

// ReadBank slices four 6-byte windows out of data; each window's type
// nibble selects its tail interpretation (handled transparently by Modulator's
// typed accessors).
func ReadBank(data []byte) (*Bank, error) {
	b := &Bank{}
	for i := 0; i < SlotCount; i++ {
		start := i * BlockSize
		end := start + BlockSize
		window := make([]byte, BlockSize)
		if start < len(data) {
			copy(window, data[start:min(end, len(data))])
		}
		m, err := Read(window)
		if err != nil {
			return nil, err
		}
		b.slots[i] = m
	}
	return b, nil
}

// Write emits exactly BankSize bytes.
func (b *Bank) Write() []byte {
	out := make([]byte, 0, BankSize)
	for _, m := range b.slots {
		out = append(out, m.Write()...)
	}
	return out
}

// Clone returns an independent deep copy.
func (b *Bank) Clone() *Bank {
	c := &Bank{}
	for i, m := range b.slots {
		c.slots[i] = m.Clone()
	}
	return c
}

// Get returns the modulator in the given slot (0..3).
func (b *Bank) Get(slot int) *Modulator { return b.slots[slot] }

// Set replaces the modulator in the given slot.
func (b *Bank) Set(slot int, m *Modulator) { b.slots[slot] = m }

// All returns all four slots in order.
func (b *Bank) All() [SlotCount]*Modulator { return b.slots }

// AvailableSlot returns the index of the first slot whose destination is
// 0x00 (empty), or -1 if the bank is full.
func (b *Bank) AvailableSlot() int {
	for i, m := range b.slots {
		if m.IsEmpty() {
			return i
		}
	}
	return -1
}

// Add places m in the first available slot, returning its index, or fails
// with ErrNoSlotAvailable when the bank is full.
func (b *Bank) Add(m *Modulator) (int, error) {
	slot := b.AvailableSlot()
	if slot < 0 {
		return 0, ErrNoSlotAvailable
	}
	b.slots[slot] = m
	return slot, nil
}
