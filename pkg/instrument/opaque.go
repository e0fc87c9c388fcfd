package instrument

import (
	"fmt"

	"github.com/m8kit/m8codec/pkg/enum"
	"github.com/m8kit/m8codec/pkg/modulator"
)

// Opaque holds an instrument record whose type byte doesn't match any
// known family. It preserves every byte verbatim (round-trippable) while
// exposing just enough of the Instrument surface to sit in a project's
// instrument table alongside typed families; no param names are known so
// GetParam/SetParam always fail.
type Opaque struct {
	typeID TypeID
	data   [BlockSize]byte
}

// ReadOpaque wraps an unrecognized 215-byte instrument record verbatim.
func ReadOpaque(data []byte) (*Opaque, error) {
	if len(data) < BlockSize {
		return nil, fmt.Errorf("instrument: opaque: short input: got %d bytes, need %d", len(data), BlockSize)
	}
	o := &Opaque{typeID: TypeID(data[0])}
	copy(o.data[:], data[:BlockSize])
	return o, nil
}

func (o *Opaque) TypeID() TypeID     { return o.typeID }
func (o *Opaque) FamilyName() string { return "OPAQUE" }

func (o *Opaque) Name() string {
	return string(bytesTrim(o.data[1 : 1+NameLength]))
}

func (o *Opaque) SetName(name string) {
	b := make([]byte, NameLength)
	copy(b, name)
	copy(o.data[1:1+NameLength], b)
}

func (o *Opaque) Write() []byte {
	out := make([]byte, BlockSize)
	copy(out, o.data[:])
	return out
}

func (o *Opaque) Clone() Instrument {
	c := &Opaque{typeID: o.typeID}
	c.data = o.data
	return c
}

// IsEmpty mirrors M8Instrument.is_empty's default branch: an unrecognized
// instrument is empty only if its name field is blank.
func (o *Opaque) IsEmpty() bool { return len(bytesTrim(o.data[1:1+NameLength])) == 0 }

func (o *Opaque) Modulators() *modulator.Bank {
	b, err := modulator.ReadBank(o.data[ModulatorsOffset:])
	if err != nil {
		return modulator.NewBank([modulator.SlotCount]modulator.Type{})
	}
	return b
}

func (o *Opaque) ParamNames() []string                { return nil }
func (o *Opaque) GetParam(name string) (int64, error) { return 0, fmt.Errorf("instrument: opaque family has no named params") }
func (o *Opaque) SetParam(name string, value int64) error {
	return fmt.Errorf("instrument: opaque family has no named params")
}
func (o *Opaque) ParamEnum(name string) *enum.Class { return nil }
func (o *Opaque) ModDestEnum() *enum.Class          { return nil }
func (o *Opaque) ExtraFieldName() string            { return "" }
func (o *Opaque) ExtraField() string                { return "" }
func (o *Opaque) SetExtraField(value string)         {}

func bytesTrim(b []byte) []byte {
	end := len(b)
	for end > 0 && (b[end-1] == 0x00 || b[end-1] == 0xFF || b[end-1] == ' ') {
		end--
	}
	return b[:end]
}
