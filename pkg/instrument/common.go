// Package instrument implements the M8 instrument families: a common
// 215-byte header (grounded on original_source/m8/api/instruments/base.go's
// common_fields table) wrapping six family-specific parameter layouts plus
// an embedded ModulatorBank, dispatched by the type byte at offset 0.
package instrument

import (
	"fmt"

	"github.com/m8kit/m8codec/pkg/enum"
	"github.com/m8kit/m8codec/pkg/modulator"
	"github.com/m8kit/m8codec/pkg/schema"
)

// TypeID is the instrument family discriminator stored at offset 0.
type TypeID byte

const (
	TypeWavSynth   TypeID = 0x00
	TypeMacroSynth TypeID = 0x01
	TypeSampler    TypeID = 0x02
	TypeFMSynth    TypeID = 0x04
	TypeHyperSynth TypeID = 0x05
	TypeExternal   TypeID = 0x06
)

// BlockSize is the fixed on-disk size of one instrument record.
const BlockSize = 215

// BlockCount is the maximum number of instrument slots in a project.
const BlockCount = 128

// NameLength is the width of the common name field.
const NameLength = 12

// ModulatorsOffset is where the 24-byte ModulatorBank lives inside the
// 215-byte instrument record.
const ModulatorsOffset = 63

// Instrument is implemented by every family (and by Opaque, the fallback
// for unrecognized type bytes).
type Instrument interface {
	TypeID() TypeID
	FamilyName() string
	Name() string
	SetName(name string)
	Write() []byte
	Clone() Instrument
	IsEmpty() bool
	Modulators() *modulator.Bank
	ParamNames() []string
	GetParam(name string) (int64, error)
	SetParam(name string, value int64) error
	ParamEnum(name string) *enum.Class
	ModDestEnum() *enum.Class
	ExtraFieldName() string
	ExtraField() string
	SetExtraField(value string)
}

// ExtraField describes a family's one non-enum string field outside the
// common params table (the Sampler's sample path; no other family has one).
type ExtraField struct {
	Name   string
	Offset int
	Length int
}

// Spec declares a family's parameter layout: its fields beyond the common
// header, their non-zero defaults, the enum classes its params and
// modulator destinations bind to, and its default modulator shapes.
type Spec struct {
	TypeID          TypeID
	FamilyName      string
	Fields          []schema.Field
	Defaults        []schema.DefaultEntry
	ParamEnums      map[string]*enum.Class
	ModDestEnum     *enum.Class
	DefaultModTypes [modulator.SlotCount]modulator.Type
	ExtraField      *ExtraField
}

func commonFields() []schema.Field {
	return []schema.Field{
		{Name: "type", Offset: 0, Width: 1, Kind: schema.KindU8},
		{Name: "name", Offset: 1, Width: NameLength, Kind: schema.KindString},
		{Name: "transpose", Offset: 13, Width: 1, Kind: schema.KindNibbleLow},
		{Name: "eq", Offset: 13, Width: 1, Kind: schema.KindNibbleHigh},
		{Name: "table_tick", Offset: 14, Width: 1, Kind: schema.KindU8},
		{Name: "volume", Offset: 15, Width: 1, Kind: schema.KindU8},
		{Name: "pitch", Offset: 16, Width: 1, Kind: schema.KindU8},
		{Name: "fine_tune", Offset: 17, Width: 1, Kind: schema.KindU8},
	}
}

// commonDefaults mirrors M8InstrumentBase.__init__'s defaults: volume and
// pitch start at zero, transpose/eq/table_tick/fine_tune are the only
// common fields with a non-zero default.
func commonDefaults() []schema.DefaultEntry {
	return []schema.DefaultEntry{
		{Name: "transpose", Value: 4},
		{Name: "eq", Value: 1},
		{Name: "table_tick", Value: 1},
		{Name: "fine_tune", Value: 128},
	}
}

func buildMap(spec *Spec) *schema.Map {
	fields := append(commonFields(), spec.Fields...)
	if spec.ExtraField != nil {
		fields = append(fields, schema.Field{
			Name:   spec.ExtraField.Name,
			Offset: spec.ExtraField.Offset,
			Width:  spec.ExtraField.Length,
			Kind:   schema.KindString,
		})
	}
	return schema.NewMap(fields)
}

// family is the shared engine behind every concrete instrument type: a
// schema.Record for the scalar fields and a modulator.Bank for the 4
// modulator slots embedded at ModulatorsOffset.
type family struct {
	spec *Spec
	rec  *schema.Record
	mods *modulator.Bank
}

func newFamily(spec *Spec) *family {
	m := buildMap(spec)
	rec := schema.NewRecord(m, BlockSize)
	rec.SetInt("type", int64(spec.TypeID))
	rec.ApplyDefaults(commonDefaults())
	rec.ApplyDefaults(spec.Defaults)
	return &family{
		spec: spec,
		rec:  rec,
		mods: modulator.NewBank(spec.DefaultModTypes),
	}
}

func readFamily(spec *Spec, data []byte) (*family, error) {
	m := buildMap(spec)
	rec, err := schema.Read(m, data, BlockSize)
	if err != nil {
		return nil, fmt.Errorf("instrument: %s: %w", spec.FamilyName, err)
	}
	if err := rec.ApplyDefaultsIfZero(commonDefaults()); err != nil {
		return nil, err
	}
	if err := rec.ApplyDefaultsIfZero(spec.Defaults); err != nil {
		return nil, err
	}
	mods, err := modulator.ReadBank(data[ModulatorsOffset:])
	if err != nil {
		return nil, err
	}
	return &family{spec: spec, rec: rec, mods: mods}, nil
}

func (f *family) TypeID() TypeID      { return f.spec.TypeID }
func (f *family) FamilyName() string  { return f.spec.FamilyName }
func (f *family) Name() string        { s, _ := f.rec.GetString("name"); return s }
func (f *family) SetName(name string) { f.rec.SetString("name", name) }

// Write stitches the live ModulatorBank back into the record buffer before
// emitting it, since modulators are mutated through f.mods directly rather
// than through the schema.Record.
func (f *family) Write() []byte {
	out := f.rec.Write()
	copy(out[ModulatorsOffset:ModulatorsOffset+modulator.BankSize], f.mods.Write())
	return out
}

func (f *family) clone() *family {
	return &family{spec: f.spec, rec: f.rec.Clone(), mods: f.mods.Clone()}
}

func (f *family) Modulators() *modulator.Bank { return f.mods }

func (f *family) ParamNames() []string {
	names := make([]string, 0, len(f.spec.Fields))
	for _, field := range f.spec.Fields {
		names = append(names, field.Name)
	}
	return names
}

func (f *family) GetParam(name string) (int64, error) { return f.rec.GetInt(name) }
func (f *family) SetParam(name string, value int64) error {
	return f.rec.SetInt(name, value)
}

func (f *family) ParamEnum(name string) *enum.Class { return f.spec.ParamEnums[name] }
func (f *family) ModDestEnum() *enum.Class          { return f.spec.ModDestEnum }

func (f *family) ExtraFieldName() string {
	if f.spec.ExtraField == nil {
		return ""
	}
	return f.spec.ExtraField.Name
}

func (f *family) ExtraField() string {
	if f.spec.ExtraField == nil {
		return ""
	}
	s, _ := f.rec.GetString(f.spec.ExtraField.Name)
	return s
}

func (f *family) SetExtraField(value string) {
	if f.spec.ExtraField == nil {
		return
	}
	f.rec.SetString(f.spec.ExtraField.Name, value)
}

// isEmptyByNameAndShape matches M8Instrument.is_empty's wavsynth/macrosynth
// rule: empty name, zero volume, and a zero "shape"-equivalent field.
func (f *family) isEmptyByNameAndShape(shapeField string) bool {
	if trimmedNonEmpty(f.Name()) {
		return false
	}
	vol, _ := f.rec.GetInt("volume")
	if vol != 0 {
		return false
	}
	shape, _ := f.rec.GetInt(shapeField)
	return shape == 0
}

func trimmedNonEmpty(s string) bool {
	for _, r := range s {
		if r != ' ' && r != 0 {
			return true
		}
	}
	return false
}
