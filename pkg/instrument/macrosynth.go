package instrument

import (
	"github.com/m8kit/m8codec/pkg/enum"
	"github.com/m8kit/m8codec/pkg/modulator"
	"github.com/m8kit/m8codec/pkg/schema"
)

// MacroSynthShape selects the Braids-style macro oscillator model,
// grounded on original_source/m8/api/instruments/macrosynth.go's
// M8MacroSynthParams shape/timbre/color/degrade/redux param group.
var MacroSynthShape = enum.NewClass("MACROSYNTH_SHAPE", []enum.Member{
	{Name: "CSAW", Value: 0x00},
	{Name: "MORPH", Value: 0x01},
	{Name: "SAW_SQUARE", Value: 0x02},
	{Name: "SINE_TRIANGLE", Value: 0x03},
	{Name: "BUZZ", Value: 0x04},
	{Name: "SQUARE_SUB", Value: 0x05},
	{Name: "SAW_SUB", Value: 0x06},
	{Name: "SQUARE_SYNC", Value: 0x07},
	{Name: "SAW_SYNC", Value: 0x08},
	{Name: "TRIPLE_SAW", Value: 0x09},
	{Name: "NOISE", Value: 0x0A},
})

// MacroSynthModDest is the macrosynth modulator destination enum.
var MacroSynthModDest = enum.NewClass("MACROSYNTH_MOD_DEST", []enum.Member{
	{Name: "OFF", Value: 0x00},
	{Name: "VOLUME", Value: 0x01},
	{Name: "PITCH", Value: 0x02},
	{Name: "TIMBRE", Value: 0x03},
	{Name: "COLOR", Value: 0x04},
	{Name: "DEGRADE", Value: 0x05},
	{Name: "REDUX", Value: 0x06},
	{Name: "CUTOFF", Value: 0x07},
	{Name: "RES", Value: 0x08},
	{Name: "AMP", Value: 0x09},
	{Name: "PAN", Value: 0x0A},
})

var macrosynthSpec = &Spec{
	TypeID:     TypeMacroSynth,
	FamilyName: "MACROSYNTH",
	Fields: []schema.Field{
		{Name: "shape", Offset: 19, Width: 1, Kind: schema.KindU8, EnumBinding: "MACROSYNTH_SHAPE"},
		{Name: "timbre", Offset: 20, Width: 1, Kind: schema.KindU8},
		{Name: "color", Offset: 21, Width: 1, Kind: schema.KindU8},
		{Name: "degrade", Offset: 22, Width: 1, Kind: schema.KindU8},
		{Name: "redux", Offset: 23, Width: 1, Kind: schema.KindU8},
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
		{Name: "timbre", Value: 0x80},
		{Name: "color", Value: 0x80},
		{Name: "cutoff", Value: 0xFF},
		{Name: "pan", Value: 0x80},
		{Name: "dry", Value: 0xC0},
	},
	ParamEnums: map[string]*enum.Class{
		"shape":       MacroSynthShape,
		"filter_type": FilterType,
		"limit":       LimiterType,
	},
	ModDestEnum:     MacroSynthModDest,
	DefaultModTypes: [modulator.SlotCount]modulator.Type{modulator.TypeAHDEnvelope, modulator.TypeAHDEnvelope, modulator.TypeLFO, modulator.TypeLFO},
}

// MacroSynth is the Braids-style macro oscillator instrument family.
type MacroSynth struct{ *family }

// NewMacroSynth creates a macrosynth instrument with family defaults applied.
func NewMacroSynth(name string) *MacroSynth {
	m := &MacroSynth{family: newFamily(macrosynthSpec)}
	m.SetName(name)
	return m
}

// ReadMacroSynth parses a macrosynth instrument from a 215-byte record.
func ReadMacroSynth(data []byte) (*MacroSynth, error) {
	f, err := readFamily(macrosynthSpec, data)
	if err != nil {
		return nil, err
	}
	return &MacroSynth{family: f}, nil
}

func (m *MacroSynth) Clone() Instrument { return &MacroSynth{family: m.family.clone()} }

// IsEmpty follows M8Instrument.is_empty's wavsynth/macrosynth branch.
func (m *MacroSynth) IsEmpty() bool { return m.isEmptyByNameAndShape("shape") }
