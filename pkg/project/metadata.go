// Package project implements the M8 project file aggregator: the fixed
// section offset table, version/metadata blocks, and read/write/validate
// over the whole file, grounded on original_source/m8/project.go.
package project

import "github.com/m8kit/m8codec/pkg/schema"

// Version is the 2-byte project format version: minor/patch packed into
// byte 0, major in the low nibble of byte 1.
type Version struct {
	Major, Minor, Patch byte
}

const versionSize = 2

func readVersion(data []byte) Version {
	minor := data[0] >> 4 & 0x0F
	patch := data[0] & 0x0F
	major := data[1] & 0x0F
	return Version{Major: major, Minor: minor, Patch: patch}
}

func (v Version) write() [versionSize]byte {
	return [versionSize]byte{
		(v.Minor&0x0F)<<4 | (v.Patch & 0x0F),
		v.Major & 0x0F,
	}
}

const metadataSize = 147

func metadataMap() *schema.Map {
	return schema.NewMap([]schema.Field{
		{Name: "directory", Offset: 0, Width: 128, Kind: schema.KindString, Default: "/Songs/woldo/"},
		{Name: "transpose", Offset: 128, Width: 1, Kind: schema.KindU8},
		{Name: "tempo", Offset: 129, Width: 4, Kind: schema.KindF32LE, Default: float32(120.0)},
		{Name: "quantize", Offset: 133, Width: 1, Kind: schema.KindU8},
		{Name: "name", Offset: 134, Width: 12, Kind: schema.KindString},
		{Name: "key", Offset: 146, Width: 1, Kind: schema.KindU8},
	})
}

var metadataFieldMap = metadataMap()

// Metadata is the project-level song metadata block: save directory,
// global transpose, tempo, quantize, song name, and key.
type Metadata struct {
	rec *schema.Record
}

// NewMetadata builds a metadata block with the template defaults: save
// directory "/Songs/woldo/" and tempo 120 BPM.
func NewMetadata() *Metadata {
	rec := schema.NewRecord(metadataFieldMap, metadataSize)
	rec.SetString("directory", "/Songs/woldo/")
	rec.SetFloat32("tempo", 120.0)
	return &Metadata{rec: rec}
}

// ReadMetadata parses a 147-byte metadata block.
func ReadMetadata(data []byte) (*Metadata, error) {
	rec, err := schema.Read(metadataFieldMap, data, metadataSize)
	if err != nil {
		return nil, err
	}
	return &Metadata{rec: rec}, nil
}

// Write emits exactly metadataSize bytes.
func (m *Metadata) Write() []byte { return m.rec.Write() }

// Clone returns an independent deep copy.
func (m *Metadata) Clone() *Metadata { return &Metadata{rec: m.rec.Clone()} }

func (m *Metadata) Directory() string     { s, _ := m.rec.GetString("directory"); return s }
func (m *Metadata) SetDirectory(v string) { m.rec.SetString("directory", v) }
func (m *Metadata) Name() string          { s, _ := m.rec.GetString("name"); return s }
func (m *Metadata) SetName(v string)      { m.rec.SetString("name", v) }
func (m *Metadata) Transpose() int64      { v, _ := m.rec.GetInt("transpose"); return v }
func (m *Metadata) SetTranspose(v int64)  { m.rec.SetInt("transpose", v) }
func (m *Metadata) Tempo() float32        { v, _ := m.rec.GetFloat32("tempo"); return v }
func (m *Metadata) SetTempo(v float32)    { m.rec.SetFloat32("tempo", v) }
func (m *Metadata) Quantize() int64       { v, _ := m.rec.GetInt("quantize"); return v }
func (m *Metadata) SetQuantize(v int64)   { m.rec.SetInt("quantize", v) }
func (m *Metadata) Key() int64            { v, _ := m.rec.GetInt("key"); return v }
func (m *Metadata) SetKey(v int64)        { m.rec.SetInt("key", v) }
