package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/m8kit/m8codec/pkg/api"
	"github.com/m8kit/m8codec/pkg/dictcodec"
	"github.com/m8kit/m8codec/pkg/project"
)

func loadProject(path string) (*project.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return project.Read(data)
}

func newProject() *project.Project {
	return project.New()
}

func parseEnumMode(s string) (dictcodec.EnumMode, error) {
	switch s {
	case "", "name":
		return dictcodec.Name, nil
	case "value":
		return dictcodec.Value, nil
	default:
		return 0, fmt.Errorf("unknown enum mode %q, want \"value\" or \"name\"", s)
	}
}

// exportProject renders every non-empty instrument slot into a dict
// document, sharing the server's encoding so both surfaces produce
// identical output for the same input.
func exportProject(p *project.Project, format string, mode dictcodec.EnumMode) ([]byte, error) {
	data, _, err := api.ExportProjectAs(p, format, mode)
	return data, err
}

// importProject rebuilds a project template and overlays its instrument
// table from a previously exported dict document; §4.8's dict shape does
// not carry song/chain/phrase data, so those sections keep the template's
// empty defaults.
func importProject(data []byte, format string) (*project.Project, error) {
	var doc dictcodec.Dict
	switch format {
	case "", "json":
		d, err := dictcodec.UnmarshalJSON(data)
		if err != nil {
			return nil, err
		}
		doc = d
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown import format %q, want \"json\" or \"yaml\"", format)
	}

	p := project.New()
	if name, ok := doc["name"].(string); ok {
		p.Metadata.SetName(name)
	}
	if tempo, ok := doc["tempo"].(float64); ok {
		p.Metadata.SetTempo(float32(tempo))
	}

	rawInstruments, _ := doc["instruments"].([]interface{})
	for _, raw := range rawInstruments {
		id, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		inst, err := dictcodec.FromDict(id)
		if err != nil {
			return nil, err
		}
		index := 0
		if v, ok := id["index"].(float64); ok {
			index = int(v)
		}
		if index < 0 || index >= p.Instruments.Len() {
			return nil, fmt.Errorf("import: instrument index %d out of range", index)
		}
		p.Instruments.Set(index, inst)
	}

	return p, nil
}
