package schema

import "fmt"

// ShortInputError is returned when a buffer is too small to hold a record.
type ShortInputError struct {
	Got, Want int
}

func (e *ShortInputError) Error() string {
	return fmt.Sprintf("schema: short input: got %d bytes, need %d", e.Got, e.Want)
}

// Record owns a fixed-size byte buffer and exposes typed get/set through a
// Map. Bytes outside the Map's declared fields are preserved verbatim
// across Read/Write/Clone, satisfying spec.md invariant 7.
type Record struct {
	Map  *Map
	Data []byte
}

// NewRecord allocates a zeroed record of the given size bound to m.
func NewRecord(m *Map, size int) *Record {
	return &Record{Map: m, Data: make([]byte, size)}
}

// Read makes a defensive copy of data into a new record of size N,
// failing with ShortInputError if data is smaller than N.
func Read(m *Map, data []byte, size int) (*Record, error) {
	if len(data) < size {
		return nil, &ShortInputError{Got: len(data), Want: size}
	}
	buf := make([]byte, size)
	copy(buf, data[:size])
	return &Record{Map: m, Data: buf}, nil
}

// Write returns an exact-size copy of the record's buffer.
func (r *Record) Write() []byte {
	out := make([]byte, len(r.Data))
	copy(out, r.Data)
	return out
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	return &Record{Map: r.Map, Data: append([]byte(nil), r.Data...)}
}

func (r *Record) GetInt(name string) (int64, error)             { return r.Map.GetInt(r.Data, name) }
func (r *Record) SetInt(name string, v int64) error              { return r.Map.SetInt(r.Data, name, v) }
func (r *Record) GetFloat32(name string) (float32, error)        { return r.Map.GetFloat32(r.Data, name) }
func (r *Record) SetFloat32(name string, v float32) error        { return r.Map.SetFloat32(r.Data, name, v) }
func (r *Record) GetString(name string) (string, error)          { return r.Map.GetString(r.Data, name) }
func (r *Record) SetString(name string, v string) error          { return r.Map.SetString(r.Data, name, v) }
func (r *Record) ApplyDefaults(entries []DefaultEntry) error      { return r.Map.ApplyDefaults(r.Data, entries) }
func (r *Record) ApplyDefaultsIfZero(entries []DefaultEntry) error {
	return r.Map.ApplyDefaultsIfZero(r.Data, entries)
}
