package instrument

import (
	"github.com/m8kit/m8codec/pkg/enum"
	"github.com/m8kit/m8codec/pkg/modulator"
	"github.com/m8kit/m8codec/pkg/schema"
)

// ExternalInput is the audio input source enum, grounded on
// original_source/m8/api/instruments/external.go's M8ExternalInput.
var ExternalInput = enum.NewClass("EXTERNAL_INPUT", []enum.Member{
	{Name: "OFF", Value: 0x00},
	{Name: "LINE_IN_L", Value: 0x01},
	{Name: "LINE_IN_R", Value: 0x02},
	{Name: "LINE_IN_LR", Value: 0x03},
})

// ExternalPort is the MIDI output port enum, grounded on M8ExternalPort.
var ExternalPort = enum.NewClass("EXTERNAL_PORT", []enum.Member{
	{Name: "DISABLED", Value: 0x00},
	{Name: "USB", Value: 0x01},
	{Name: "MIDI", Value: 0x02},
	{Name: "USB_MIDI", Value: 0x03},
})

// ExternalModDest is the external instrument's modulator destination enum,
// grounded on M8ExternalModDest (itself sourced from the m8-file-parser
// EXTERNAL_INST_DESTINATIONS array).
var ExternalModDest = enum.NewClass("EXTERNAL_MOD_DEST", []enum.Member{
	{Name: "OFF", Value: 0x00},
	{Name: "VOLUME", Value: 0x01},
	{Name: "CUTOFF", Value: 0x02},
	{Name: "RES", Value: 0x03},
	{Name: "AMP", Value: 0x04},
	{Name: "PAN", Value: 0x05},
	{Name: "CCA", Value: 0x06},
	{Name: "CCB", Value: 0x07},
	{Name: "CCC", Value: 0x08},
	{Name: "CCD", Value: 0x09},
	{Name: "MOD_AMT", Value: 0x0A},
	{Name: "MOD_RATE", Value: 0x0B},
	{Name: "MOD_BOTH", Value: 0x0C},
	{Name: "MOD_BINV", Value: 0x0D},
})

var externalSpec = &Spec{
	TypeID:     TypeExternal,
	FamilyName: "EXTERNAL",
	Fields: []schema.Field{
		{Name: "input", Offset: 18, Width: 1, Kind: schema.KindU8, EnumBinding: "EXTERNAL_INPUT"},
		{Name: "port", Offset: 19, Width: 1, Kind: schema.KindU8, EnumBinding: "EXTERNAL_PORT"},
		{Name: "channel", Offset: 20, Width: 1, Kind: schema.KindU8},
		{Name: "bank", Offset: 21, Width: 1, Kind: schema.KindU8},
		{Name: "program", Offset: 22, Width: 1, Kind: schema.KindU8},
		{Name: "cca_num", Offset: 23, Width: 1, Kind: schema.KindU8},
		{Name: "cca_val", Offset: 24, Width: 1, Kind: schema.KindU8},
		{Name: "ccb_num", Offset: 25, Width: 1, Kind: schema.KindU8},
		{Name: "ccb_val", Offset: 26, Width: 1, Kind: schema.KindU8},
		{Name: "ccc_num", Offset: 27, Width: 1, Kind: schema.KindU8},
		{Name: "ccc_val", Offset: 28, Width: 1, Kind: schema.KindU8},
		{Name: "ccd_num", Offset: 29, Width: 1, Kind: schema.KindU8},
		{Name: "ccd_val", Offset: 30, Width: 1, Kind: schema.KindU8},
		{Name: "filter_type", Offset: 31, Width: 1, Kind: schema.KindU8, EnumBinding: "FILTER_TYPE"},
		{Name: "cutoff", Offset: 32, Width: 1, Kind: schema.KindU8},
		{Name: "resonance", Offset: 33, Width: 1, Kind: schema.KindU8},
		{Name: "amp", Offset: 34, Width: 1, Kind: schema.KindU8},
		{Name: "limit", Offset: 35, Width: 1, Kind: schema.KindU8, EnumBinding: "LIMITER_TYPE"},
		{Name: "pan", Offset: 36, Width: 1, Kind: schema.KindU8},
		{Name: "dry", Offset: 37, Width: 1, Kind: schema.KindU8},
		{Name: "chorus_send", Offset: 38, Width: 1, Kind: schema.KindU8},
		{Name: "delay_send", Offset: 39, Width: 1, Kind: schema.KindU8},
		{Name: "reverb_send", Offset: 40, Width: 1, Kind: schema.KindU8},
	},
	Defaults: []schema.DefaultEntry{
		{Name: "fine_tune", Value: 0x80},
		{Name: "cutoff", Value: 0xFF},
		{Name: "pan", Value: 0x80},
		{Name: "dry", Value: 0xC0},
	},
	ParamEnums: map[string]*enum.Class{
		"input":       ExternalInput,
		"port":        ExternalPort,
		"filter_type": FilterType,
		"limit":       LimiterType,
	},
	ModDestEnum:     ExternalModDest,
	DefaultModTypes: [modulator.SlotCount]modulator.Type{modulator.TypeAHDEnvelope, modulator.TypeAHDEnvelope, modulator.TypeLFO, modulator.TypeLFO},
}

// External is the MIDI-output-to-hardware instrument family.
type External struct{ *family }

// NewExternal creates an external instrument with family defaults applied.
func NewExternal(name string) *External {
	e := &External{family: newFamily(externalSpec)}
	e.SetName(name)
	return e
}

// ReadExternal parses an external instrument from a 215-byte record.
func ReadExternal(data []byte) (*External, error) {
	f, err := readFamily(externalSpec, data)
	if err != nil {
		return nil, err
	}
	return &External{family: f}, nil
}

func (e *External) Clone() Instrument { return &External{family: e.family.clone()} }

// IsEmpty follows M8Instrument.is_empty's default branch: name only.
func (e *External) IsEmpty() bool { return !trimmedNonEmpty(e.Name()) }
