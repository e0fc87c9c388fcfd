package api

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/m8kit/m8codec/pkg/dictcodec"
	"github.com/m8kit/m8codec/pkg/project"
)

// ExportProjectAs renders a project's non-empty instrument slots into a
// dict document and encodes it, mirroring the CLI's export command so
// both surfaces produce identical output for the same input.
func ExportProjectAs(p *project.Project, format string, mode dictcodec.EnumMode) ([]byte, string, error) {
	instruments := make([]dictcodec.Dict, 0, p.Instruments.Len())
	for i := 0; i < p.Instruments.Len(); i++ {
		inst := p.Instruments.Get(i)
		if inst.IsEmpty() {
			continue
		}
		d := dictcodec.ToDict(inst, mode)
		d["index"] = i
		instruments = append(instruments, d)
	}

	doc := dictcodec.Dict{
		"name":        p.Metadata.Name(),
		"tempo":       p.Metadata.Tempo(),
		"instruments": instruments,
	}

	switch format {
	case "", "json":
		data, err := dictcodec.MarshalJSON(doc)
		return data, "application/json", err
	case "yaml":
		data, err := yaml.Marshal(doc)
		return data, "application/x-yaml", err
	default:
		return nil, "", fmt.Errorf("unknown export format %q, want \"json\" or \"yaml\"", format)
	}
}
