// Package dictcodec converts instruments and modulators to and from the
// nested dict shape described in spec.md §4.8, the boundary format YAML
// and JSON layers speak. The core codec packages never import this one;
// dictcodec sits outside them the way the teacher's pkg/converter sits
// below pkg/api rather than the other way around.
package dictcodec

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/m8kit/m8codec/pkg/enum"
	"github.com/m8kit/m8codec/pkg/instrument"
	"github.com/m8kit/m8codec/pkg/modulator"
)

// EnumMode selects how enum-bound fields render in a Dict: as their raw
// integer value or as their uppercase symbolic name.
type EnumMode int

const (
	Value EnumMode = iota
	Name
)

// Dict is the generic nested map shape a Project or Instrument renders to.
type Dict = map[string]interface{}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON renders a Dict as indented JSON, the export format used by
// `m8codec export --format json`.
func MarshalJSON(d Dict) ([]byte, error) {
	return jsonAPI.MarshalIndent(d, "", "  ")
}

// UnmarshalJSON parses JSON into a Dict.
func UnmarshalJSON(data []byte) (Dict, error) {
	var d Dict
	if err := jsonAPI.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return d, nil
}

var familyTypes = map[string]instrument.TypeID{
	"WAVSYNTH":   instrument.TypeWavSynth,
	"MACROSYNTH": instrument.TypeMacroSynth,
	"SAMPLER":    instrument.TypeSampler,
	"FMSYNTH":    instrument.TypeFMSynth,
	"HYPERSYNTH": instrument.TypeHyperSynth,
	"EXTERNAL":   instrument.TypeExternal,
}

var modulatorTypes = map[string]modulator.Type{
	"AHD_ENVELOPE":  modulator.TypeAHDEnvelope,
	"ADSR_ENVELOPE": modulator.TypeADSREnvelope,
	"DRUM_ENVELOPE": modulator.TypeDrumEnvelope,
	"LFO":           modulator.TypeLFO,
	"TRIG_ENVELOPE": modulator.TypeTrigEnvelope,
	"TRACK":         modulator.TypeTrack,
}

// ToDict renders an instrument as {type, name, sample_path?, params,
// modulators}, per spec.md §4.8.
func ToDict(inst instrument.Instrument, mode EnumMode) Dict {
	params := Dict{}
	for _, name := range inst.ParamNames() {
		v, _ := inst.GetParam(name)
		params[strings.ToUpper(name)] = renderEnumOrInt(inst.ParamEnum(name), v, mode)
	}

	d := Dict{
		"type":   inst.FamilyName(),
		"name":   inst.Name(),
		"params": params,
	}
	if fieldName := inst.ExtraFieldName(); fieldName != "" {
		d[fieldName] = inst.ExtraField()
	}

	bank := inst.Modulators()
	mods := make([]interface{}, 0, modulator.SlotCount)
	for i := 0; i < modulator.SlotCount; i++ {
		mods = append(mods, ModulatorToDict(bank.Get(i), i, inst.ModDestEnum(), mode))
	}
	d["modulators"] = mods

	return d
}

// FromDict reconstructs an instrument from its dict form. enum fields may
// be given as either their integer value or their symbolic name,
// regardless of which mode produced the dict.
func FromDict(d Dict) (instrument.Instrument, error) {
	typeName, _ := d["type"].(string)
	typeID, ok := familyTypes[strings.ToUpper(typeName)]
	if !ok {
		return nil, fmt.Errorf("dictcodec: unknown instrument type %q", typeName)
	}
	name, _ := d["name"].(string)
	inst := instrument.New(typeID, name)

	if fieldName := inst.ExtraFieldName(); fieldName != "" {
		if raw, ok := d[fieldName].(string); ok {
			inst.SetExtraField(raw)
		}
	}

	paramsRaw, _ := d["params"].(map[string]interface{})
	for _, name := range inst.ParamNames() {
		key := strings.ToUpper(name)
		raw, present := paramsRaw[key]
		if !present {
			continue
		}
		v, err := parseEnumOrInt(inst.ParamEnum(name), raw)
		if err != nil {
			return nil, fmt.Errorf("dictcodec: param %s: %w", key, err)
		}
		if err := inst.SetParam(name, v); err != nil {
			return nil, fmt.Errorf("dictcodec: param %s: %w", key, err)
		}
	}

	if modsRaw, ok := d["modulators"].([]interface{}); ok {
		bank := inst.Modulators()
		for _, raw := range modsRaw {
			md, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			m, idx, err := ModulatorFromDict(md, inst.ModDestEnum())
			if err != nil {
				return nil, err
			}
			if idx < 0 || idx >= modulator.SlotCount {
				return nil, fmt.Errorf("dictcodec: modulator index %d out of range", idx)
			}
			bank.Set(idx, m)
		}
	}

	return inst, nil
}

// ModulatorToDict renders one modulator with its type-specific tail
// fields flattened alongside index/type/destination/amount.
func ModulatorToDict(m *modulator.Modulator, index int, destEnum *enum.Class, mode EnumMode) Dict {
	d := Dict{
		"index":       index,
		"type":        m.ModType().String(),
		"destination": renderEnumOrInt(destEnum, int64(m.Destination()), mode),
		"amount":      int64(m.Amount()),
	}
	switch m.ModType() {
	case modulator.TypeAHDEnvelope:
		d["attack"] = int64(m.AHDAttack())
		d["hold"] = int64(m.AHDHold())
		d["decay"] = int64(m.AHDDecay())
	case modulator.TypeADSREnvelope:
		d["attack"] = int64(m.ADSRAttack())
		d["decay"] = int64(m.ADSRDecay())
		d["sustain"] = int64(m.ADSRSustain())
		d["release"] = int64(m.ADSRRelease())
	case modulator.TypeLFO:
		d["oscillator"] = int64(m.LFOOscillator())
		d["trigger"] = int64(m.LFOTrigger())
		d["frequency"] = int64(m.LFOFrequency())
	default:
		tail := m.RawTail()
		d["raw"] = []interface{}{int64(tail[0]), int64(tail[1]), int64(tail[2]), int64(tail[3])}
	}
	return d
}

// ModulatorFromDict reconstructs a modulator and its bank index from a dict.
func ModulatorFromDict(d Dict, destEnum *enum.Class) (*modulator.Modulator, int, error) {
	typeName, _ := d["type"].(string)
	t, ok := modulatorTypes[strings.ToUpper(typeName)]
	if !ok {
		return nil, 0, fmt.Errorf("dictcodec: unknown modulator type %q", typeName)
	}
	index := int(toInt64(d["index"]))

	m := modulator.New(t)
	if raw, present := d["destination"]; present {
		dest, err := parseEnumOrInt(destEnum, raw)
		if err != nil {
			return nil, 0, fmt.Errorf("dictcodec: modulator destination: %w", err)
		}
		m.SetDestination(byte(dest))
	}
	if raw, present := d["amount"]; present {
		m.SetAmount(byte(toInt64(raw)))
	}

	switch t {
	case modulator.TypeAHDEnvelope:
		m.SetAHDAttack(byteField(d, "attack"))
		m.SetAHDHold(byteField(d, "hold"))
		m.SetAHDDecay(byteField(d, "decay"))
	case modulator.TypeADSREnvelope:
		m.SetADSRAttack(byteField(d, "attack"))
		m.SetADSRDecay(byteField(d, "decay"))
		m.SetADSRSustain(byteField(d, "sustain"))
		m.SetADSRRelease(byteField(d, "release"))
	case modulator.TypeLFO:
		m.SetLFOOscillator(byteField(d, "oscillator"))
		m.SetLFOTrigger(byteField(d, "trigger"))
		m.SetLFOFrequency(byteField(d, "frequency"))
	default:
		if raw, ok := d["raw"].([]interface{}); ok && len(raw) == 4 {
			var tail [4]byte
			for i, v := range raw {
				tail[i] = byte(toInt64(v))
			}
			m.SetRawTail(tail)
		}
	}

	return m, index, nil
}

// renderEnumOrInt downgrades an unbound or unrecognized enum value to a
// pass-through integer rather than failing, per spec.md §7's non-strict
// export policy.
func renderEnumOrInt(e *enum.Class, v int64, mode EnumMode) interface{} {
	if e == nil || mode == Value {
		return v
	}
	name, err := e.NameOf(v)
	if err != nil {
		return v
	}
	return name
}

// parseEnumOrInt accepts either a symbolic name or a numeric value,
// regardless of which mode was used to produce the dict.
func parseEnumOrInt(e *enum.Class, raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case string:
		if e == nil {
			return 0, fmt.Errorf("field has no enum binding, got string %q", v)
		}
		return e.ValueOf(v)
	default:
		return toInt64(raw), nil
	}
}

func toInt64(raw interface{}) int64 {
	switch v := raw.(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}

func byteField(d Dict, key string) byte {
	raw, ok := d[key]
	if !ok {
		return 0
	}
	return byte(toInt64(raw))
}
