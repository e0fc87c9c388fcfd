package instrument

import (
	"github.com/m8kit/m8codec/pkg/enum"
	"github.com/m8kit/m8codec/pkg/modulator"
	"github.com/m8kit/m8codec/pkg/schema"
)

// SamplerPlayMode is the sample playback mode enum, grounded on
// original_source/m8/api/instruments/sampler.go's M8PlayMode.
var SamplerPlayMode = enum.NewClass("PLAY_MODE", []enum.Member{
	{Name: "FWD", Value: 0x00},
	{Name: "REV", Value: 0x01},
	{Name: "FWDLOOP", Value: 0x02},
	{Name: "REVLOOP", Value: 0x03},
	{Name: "FWD_PP", Value: 0x04},
	{Name: "REV_PP", Value: 0x05},
	{Name: "OSC", Value: 0x06},
	{Name: "OSC_REV", Value: 0x07},
	{Name: "OSC_PP", Value: 0x08},
	{Name: "REPITCH", Value: 0x09},
	{Name: "REP_REV", Value: 0x0A},
	{Name: "REP_PP", Value: 0x0B},
	{Name: "REP_BPM", Value: 0x0C},
	{Name: "BPM_REV", Value: 0x0D},
	{Name: "BPM_PP", Value: 0x0E},
})

// SamplerModDest is the sampler's modulator destination enum, grounded on
// M8SamplerModDest.
var SamplerModDest = enum.NewClass("SAMPLER_MOD_DEST", []enum.Member{
	{Name: "OFF", Value: 0x00},
	{Name: "VOLUME", Value: 0x01},
	{Name: "PITCH", Value: 0x02},
	{Name: "LOOP_ST", Value: 0x03},
	{Name: "LENGTH", Value: 0x04},
	{Name: "DEGRADE", Value: 0x05},
	{Name: "CUTOFF", Value: 0x06},
	{Name: "RES", Value: 0x07},
	{Name: "AMP", Value: 0x08},
	{Name: "PAN", Value: 0x09},
})

const (
	samplerSamplePathOffset = 87
	samplerSamplePathLength = 128
)

var samplerSpec = &Spec{
	TypeID:     TypeSampler,
	FamilyName: "SAMPLER",
	Fields: []schema.Field{
		{Name: "play_mode", Offset: 18, Width: 1, Kind: schema.KindU8, EnumBinding: "PLAY_MODE"},
		{Name: "slice", Offset: 19, Width: 1, Kind: schema.KindU8},
		{Name: "start", Offset: 20, Width: 1, Kind: schema.KindU8},
		{Name: "loop_start", Offset: 21, Width: 1, Kind: schema.KindU8},
		{Name: "length", Offset: 22, Width: 1, Kind: schema.KindU8},
		{Name: "degrade", Offset: 23, Width: 1, Kind: schema.KindU8},
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
		{Name: "fine_tune", Value: 0x80},
		{Name: "length", Value: 0xFF},
		{Name: "cutoff", Value: 0xFF},
		{Name: "pan", Value: 0x80},
		{Name: "dry", Value: 0xC0},
	},
	ParamEnums: map[string]*enum.Class{
		"play_mode":   SamplerPlayMode,
		"filter_type": FilterType,
		"limit":       LimiterType,
	},
	ModDestEnum:     SamplerModDest,
	DefaultModTypes: [modulator.SlotCount]modulator.Type{modulator.TypeAHDEnvelope, modulator.TypeAHDEnvelope, modulator.TypeLFO, modulator.TypeLFO},
	ExtraField:      &ExtraField{Name: "sample_path", Offset: samplerSamplePathOffset, Length: samplerSamplePathLength},
}

// Sampler is the M8Sampler equivalent: a sample-playback instrument with a
// sample_path string field in addition to its 215-byte scalar record.
type Sampler struct{ *family }

// NewSampler creates a sampler with sampler defaults applied and the given
// name and sample path.
func NewSampler(name, samplePath string) *Sampler {
	s := &Sampler{family: newFamily(samplerSpec)}
	s.SetName(name)
	s.SetExtraField(samplePath)
	return s
}

// ReadSampler parses a sampler instrument from a 215-byte record.
func ReadSampler(data []byte) (*Sampler, error) {
	f, err := readFamily(samplerSpec, data)
	if err != nil {
		return nil, err
	}
	return &Sampler{family: f}, nil
}

func (s *Sampler) Clone() Instrument { return &Sampler{family: s.family.clone()} }

// IsEmpty reports true for an empty name, zero volume, and an empty sample
// path (stricter than the name-only default branch; see DESIGN.md).
func (s *Sampler) IsEmpty() bool {
	if trimmedNonEmpty(s.Name()) {
		return false
	}
	vol, _ := s.rec.GetInt("volume")
	if vol != 0 {
		return false
	}
	return s.ExtraField() == ""
}
