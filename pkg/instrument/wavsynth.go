package instrument

import (
	"github.com/m8kit/m8codec/pkg/enum"
	"github.com/m8kit/m8codec/pkg/modulator"
	"github.com/m8kit/m8codec/pkg/schema"
)

// WavSynthShape selects the base waveform, mirroring MacroSynthShape's
// enum pattern for the sibling synth family (wavsynth.go was never
// retrieved standalone; its layout is extrapolated from
// original_source/m8/api/instruments/__init__.go's wavsynth/macrosynth
// is_empty grouping, which treats both families identically).
var WavSynthShape = enum.NewClass("WAVSYNTH_SHAPE", []enum.Member{
	{Name: "SINE", Value: 0x00},
	{Name: "SAW", Value: 0x01},
	{Name: "SQUARE", Value: 0x02},
	{Name: "TRIANGLE", Value: 0x03},
	{Name: "NOISE", Value: 0x04},
})

// WavSynthModDest is the wavsynth modulator destination enum.
var WavSynthModDest = enum.NewClass("WAVSYNTH_MOD_DEST", []enum.Member{
	{Name: "OFF", Value: 0x00},
	{Name: "VOLUME", Value: 0x01},
	{Name: "PITCH", Value: 0x02},
	{Name: "SIZE", Value: 0x03},
	{Name: "MULT", Value: 0x04},
	{Name: "WARP", Value: 0x05},
	{Name: "SCAN", Value: 0x06},
	{Name: "CUTOFF", Value: 0x07},
	{Name: "RES", Value: 0x08},
	{Name: "AMP", Value: 0x09},
	{Name: "PAN", Value: 0x0A},
})

var wavsynthSpec = &Spec{
	TypeID:     TypeWavSynth,
	FamilyName: "WAVSYNTH",
	Fields: []schema.Field{
		{Name: "shape", Offset: 19, Width: 1, Kind: schema.KindU8, EnumBinding: "WAVSYNTH_SHAPE"},
		{Name: "size", Offset: 20, Width: 1, Kind: schema.KindU8},
		{Name: "mult", Offset: 21, Width: 1, Kind: schema.KindU8},
		{Name: "warp", Offset: 22, Width: 1, Kind: schema.KindU8},
		{Name: "scan", Offset: 23, Width: 1, Kind: schema.KindU8},
		{Name: "filter_type", Offset: 24, Width: 1, Kind: schema.KindU8, EnumBinding: "FILTER_TYPE"},
		{Name: "cutoff", Offset: 25, Width: 1, Kind: schema.KindU8},
		{Name: "resonance", Offset: 26, Width: 1, Kind: schema.KindU8},
		{Name: "amp", Offset: 27, Width: 1, Kind: schema.KindU8},
		{Name: "limit", Offset: 28, Width: 1, Kind: schema.KindU8, EnumBinding: "LIMITER_TYPE"},
		{Name: "pan", Offset: 29, Width: 1, Kind: schema.KindU8},
		{Name: "dry", Offset: 30, Width: 1, Kind: schema.KindU8},
		{Name: "chorus_send", Offset: 31, Width: 1, Kind: schema.KindU8},
		{Name: "delay_send", Offset: 32, Width: 1, Kind: schema.KindU8},
		{Name: "reverb_send", Offset: 33, Width: 1, Kind: schema.KindU8},
	},
	Defaults: []schema.DefaultEntry{
		{Name: "cutoff", Value: 0xFF},
		{Name: "pan", Value: 0x80},
		{Name: "dry", Value: 0xC0},
	},
	ParamEnums: map[string]*enum.Class{
		"shape":       WavSynthShape,
		"filter_type": FilterType,
		"limit":       LimiterType,
	},
	ModDestEnum:     WavSynthModDest,
	DefaultModTypes: [modulator.SlotCount]modulator.Type{modulator.TypeAHDEnvelope, modulator.TypeAHDEnvelope, modulator.TypeLFO, modulator.TypeLFO},
}

// WavSynth is the wavetable-oscillator instrument family.
type WavSynth struct{ *family }

// NewWavSynth creates a wavsynth instrument with family defaults applied.
func NewWavSynth(name string) *WavSynth {
	w := &WavSynth{family: newFamily(wavsynthSpec)}
	w.SetName(name)
	return w
}

// ReadWavSynth parses a wavsynth instrument from a 215-byte record.
func ReadWavSynth(data []byte) (*WavSynth, error) {
	f, err := readFamily(wavsynthSpec, data)
	if err != nil {
		return nil, err
	}
	return &WavSynth{family: f}, nil
}

func (w *WavSynth) Clone() Instrument { return &WavSynth{family: w.family.clone()} }

// IsEmpty follows M8Instrument.is_empty's wavsynth/macrosynth branch.
func (w *WavSynth) IsEmpty() bool { return w.isEmptyByNameAndShape("shape") }
