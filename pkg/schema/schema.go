// Package schema maps logical, typed field names onto byte ranges inside a
// fixed-size buffer. It is the Go-idiomatic replacement for the dynamic
// attribute dispatch (__getattr__/__setattr__) that the Python original
// used: a compile-time constant table plus explicit Get/Set calls, per
// spec.md's "Dynamic field dispatch" design note.
package schema

import (
	"fmt"

	"github.com/m8kit/m8codec/pkg/bitcodec"
)

// Kind identifies how a Field's bytes are interpreted.
type Kind int

const (
	KindU8 Kind = iota
	KindU16LE
	KindF32LE
	KindString
	KindNibbleHigh
	KindNibbleLow
)

// Field describes one logical field: its offset/width, its encoding kind,
// its non-zero default (if any), and the name of the enum class bound to it
// (empty if the field is a plain scalar).
type Field struct {
	Name        string
	Offset      int
	Width       int // byte width for scalar kinds; string length for KindString
	Kind        Kind
	Default     any // int, float32, or string depending on Kind
	EnumBinding string
}

// UnknownFieldError is returned by Map.Get/Set when a name isn't declared.
type UnknownFieldError struct{ Name string }

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("schema: unknown field %q", e.Name)
}

// OutOfRangeError is returned when a numeric write doesn't fit its declared width.
type OutOfRangeError struct {
	Name  string
	Value int64
	Width int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("schema: value %d out of range for field %q (width %d)", e.Value, e.Name, e.Width)
}

// Map is a declarative field schema: logical name -> descriptor. Two
// composite fields (NIBBLE_HIGH/NIBBLE_LOW) may share one byte offset;
// writing one preserves the other.
type Map struct {
	fields  []Field
	byName  map[string]*Field
	maxByte int
}

// NewMap builds a Map from a list of field descriptors.
func NewMap(fields []Field) *Map {
	m := &Map{fields: fields, byName: make(map[string]*Field, len(fields))}
	for i := range m.fields {
		f := &m.fields[i]
		m.byName[f.Name] = f
		end := f.Offset + f.Width
		if f.Kind == KindNibbleHigh || f.Kind == KindNibbleLow {
			end = f.Offset + 1
		}
		if end > m.maxByte {
			m.maxByte = end
		}
	}
	return m
}

// MaxOffset returns the smallest buffer length that can hold every declared field.
func (m *Map) MaxOffset() int { return m.maxByte }

// Fields returns the declared fields in declaration order.
func (m *Map) Fields() []Field { return m.fields }

func (m *Map) field(name string) (*Field, error) {
	f, ok := m.byName[name]
	if !ok {
		return nil, &UnknownFieldError{Name: name}
	}
	return f, nil
}

// GetInt reads an integer-kinded field (U8, U16LE, or either nibble).
func (m *Map) GetInt(buf []byte, name string) (int64, error) {
	f, err := m.field(name)
	if err != nil {
		return 0, err
	}
	switch f.Kind {
	case KindU8:
		return int64(bitcodec.ReadU8(buf, f.Offset)), nil
	case KindU16LE:
		return int64(bitcodec.ReadU16LE(buf, f.Offset)), nil
	case KindNibbleHigh:
		hi, _ := bitcodec.SplitByte(buf[f.Offset])
		return int64(hi), nil
	case KindNibbleLow:
		_, lo := bitcodec.SplitByte(buf[f.Offset])
		return int64(lo), nil
	default:
		return 0, fmt.Errorf("schema: field %q is not integer-kinded", name)
	}
}

// SetInt writes an integer-kinded field. U8 values are masked to 8 bits,
// nibble values masked to 4 bits; u16 values wider than 16 bits fail with
// OutOfRangeError.
func (m *Map) SetInt(buf []byte, name string, value int64) error {
	f, err := m.field(name)
	if err != nil {
		return err
	}
	switch f.Kind {
	case KindU8:
		bitcodec.WriteU8(buf, f.Offset, byte(value&0xFF))
		return nil
	case KindU16LE:
		if value < 0 || value > 0xFFFF {
			return &OutOfRangeError{Name: name, Value: value, Width: 16}
		}
		bitcodec.WriteU16LE(buf, f.Offset, uint16(value))
		return nil
	case KindNibbleHigh:
		_, lo := bitcodec.SplitByte(buf[f.Offset])
		buf[f.Offset] = bitcodec.JoinNibbles(byte(value&0x0F), lo)
		return nil
	case KindNibbleLow:
		hi, _ := bitcodec.SplitByte(buf[f.Offset])
		buf[f.Offset] = bitcodec.JoinNibbles(hi, byte(value&0x0F))
		return nil
	default:
		return fmt.Errorf("schema: field %q is not integer-kinded", name)
	}
}

// GetFloat32 reads an F32LE field.
func (m *Map) GetFloat32(buf []byte, name string) (float32, error) {
	f, err := m.field(name)
	if err != nil {
		return 0, err
	}
	if f.Kind != KindF32LE {
		return 0, fmt.Errorf("schema: field %q is not F32_LE", name)
	}
	return bitcodec.ReadF32LE(buf, f.Offset), nil
}

// SetFloat32 writes an F32LE field.
func (m *Map) SetFloat32(buf []byte, name string, value float32) error {
	f, err := m.field(name)
	if err != nil {
		return err
	}
	if f.Kind != KindF32LE {
		return fmt.Errorf("schema: field %q is not F32_LE", name)
	}
	bitcodec.WriteF32LE(buf, f.Offset, value)
	return nil
}

// GetString reads a STRING(len) field.
func (m *Map) GetString(buf []byte, name string) (string, error) {
	f, err := m.field(name)
	if err != nil {
		return "", err
	}
	if f.Kind != KindString {
		return "", fmt.Errorf("schema: field %q is not STRING", name)
	}
	return bitcodec.ReadFixedString(buf, f.Offset, f.Width), nil
}

// SetString writes a STRING(len) field, truncating/padding to its width.
func (m *Map) SetString(buf []byte, name string, value string) error {
	f, err := m.field(name)
	if err != nil {
		return err
	}
	if f.Kind != KindString {
		return fmt.Errorf("schema: field %q is not STRING", name)
	}
	copy(buf[f.Offset:f.Offset+f.Width], bitcodec.WriteFixedString(value, f.Width))
	return nil
}

// DefaultEntry is one (field name, default value) pair used by
// ApplyDefaults / ApplyDefaultsIfZero.
type DefaultEntry struct {
	Name  string
	Value any
}

// ApplyDefaults writes every entry unconditionally.
func (m *Map) ApplyDefaults(buf []byte, entries []DefaultEntry) error {
	for _, e := range entries {
		if err := m.setTyped(buf, e.Name, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// ApplyDefaultsIfZero writes each entry only where the field's current raw
// byte(s) are all zero. This repairs instruments loaded from a
// zero-initialized template, per spec.md invariant 4.
func (m *Map) ApplyDefaultsIfZero(buf []byte, entries []DefaultEntry) error {
	for _, e := range entries {
		f, err := m.field(e.Name)
		if err != nil {
			return err
		}
		if !m.isZero(buf, f) {
			continue
		}
		if err := m.setTyped(buf, e.Name, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func (m *Map) isZero(buf []byte, f *Field) bool {
	switch f.Kind {
	case KindU8:
		return buf[f.Offset] == 0
	case KindU16LE:
		return buf[f.Offset] == 0 && buf[f.Offset+1] == 0
	case KindF32LE:
		for i := 0; i < 4; i++ {
			if buf[f.Offset+i] != 0 {
				return false
			}
		}
		return true
	case KindNibbleHigh:
		hi, _ := bitcodec.SplitByte(buf[f.Offset])
		return hi == 0
	case KindNibbleLow:
		_, lo := bitcodec.SplitByte(buf[f.Offset])
		return lo == 0
	case KindString:
		for i := 0; i < f.Width; i++ {
			if buf[f.Offset+i] != 0 {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (m *Map) setTyped(buf []byte, name string, value any) error {
	switch v := value.(type) {
	case int:
		return m.SetInt(buf, name, int64(v))
	case int64:
		return m.SetInt(buf, name, v)
	case byte:
		return m.SetInt(buf, name, int64(v))
	case float32:
		return m.SetFloat32(buf, name, v)
	case string:
		return m.SetString(buf, name, v)
	default:
		return fmt.Errorf("schema: unsupported default value type %T for field %q", value, name)
	}
}
