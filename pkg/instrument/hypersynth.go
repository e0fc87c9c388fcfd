package instrument

import (
	"github.com/m8kit/m8codec/pkg/enum"
	"github.com/m8kit/m8codec/pkg/modulator"
)

// HyperSynthModDest is a minimal placeholder destination enum: the
// original M8HyperSynth is itself documented as "a skeleton implementation
// for a hypothetical HyperSynth instrument type" with no parameters beyond
// the common header, so its only modulation target is volume/pitch.
var HyperSynthModDest = enum.NewClass("HYPERSYNTH_MOD_DEST", []enum.Member{
	{Name: "OFF", Value: 0x00},
	{Name: "VOLUME", Value: 0x01},
	{Name: "PITCH", Value: 0x02},
})

var hypersynthSpec = &Spec{
	TypeID:          TypeHyperSynth,
	FamilyName:      "HYPERSYNTH",
	ModDestEnum:     HyperSynthModDest,
	DefaultModTypes: [modulator.SlotCount]modulator.Type{modulator.TypeAHDEnvelope, modulator.TypeAHDEnvelope, modulator.TypeLFO, modulator.TypeLFO},
}

// HyperSynth is a forward-compatible instrument family carrying only the
// common header and modulator bank, mirroring M8HyperSynth's skeleton
// status in the original implementation.
type HyperSynth struct{ *family }

// NewHyperSynth creates a hypersynth instrument with only common defaults applied.
func NewHyperSynth(name string) *HyperSynth {
	h := &HyperSynth{family: newFamily(hypersynthSpec)}
	h.SetName(name)
	return h
}

// ReadHyperSynth parses a hypersynth instrument from a 215-byte record.
func ReadHyperSynth(data []byte) (*HyperSynth, error) {
	f, err := readFamily(hypersynthSpec, data)
	if err != nil {
		return nil, err
	}
	return &HyperSynth{family: f}, nil
}

func (h *HyperSynth) Clone() Instrument { return &HyperSynth{family: h.family.clone()} }

// IsEmpty follows M8Instrument.is_empty's default branch: name only.
func (h *HyperSynth) IsEmpty() bool { return !trimmedNonEmpty(h.Name()) }
