package project

import (
	"fmt"

	"github.com/m8kit/m8codec/pkg/instrument"
	"github.com/m8kit/m8codec/pkg/midisettings"
	"github.com/m8kit/m8codec/pkg/track"
	"github.com/m8kit/m8codec/pkg/validate"
)

// Section byte offsets within a project file, grounded on
// original_source/m8/project.go's OFFSETS table. "table" and
// "effect_settings" are parameter-table and device-settings regions this
// codec does not model; they are preserved verbatim as opaque bytes.
const (
	VersionOffset        = 0x0A
	MetadataOffset       = 0x0E
	MidiSettingsOffset   = 0xA1
	GrooveOffset         = 0xEE
	SongOffset           = 0x2EE
	PhrasesOffset        = 0xAEE
	ChainsOffset         = 0x9A5E
	TableOffset          = 0xBA3E
	InstrumentsOffset    = 0x13A3E
	EffectSettingsOffset = 0x1A5C1
)

// GrooveSize is the on-disk size of the (unmodeled) groove table region.
const GrooveSize = 512

// trailerSize pads the template past effect_settings/midi_mapping/scale/eq,
// none of which this codec models; a real file read preserves whatever
// actually follows, since Read keeps the entire input buffer.
const trailerSize = 4096

// TemplateSize is the total byte size of a freshly constructed project.
const TemplateSize = EffectSettingsOffset + trailerSize

// Project aggregates every section of an M8 project file: version,
// metadata, MIDI settings, song matrix, chains, phrases, and instruments.
// The full byte image is retained so unmodeled regions (groove, table,
// effect_settings, and beyond) round-trip unchanged, per spec.md
// invariant 7.
type Project struct {
	data []byte

	Version      Version
	Metadata     *Metadata
	MidiSettings *midisettings.Settings
	Song         *track.Song
	Chains       *track.Chains
	Phrases      *track.Phrases
	Instruments  *instrument.Table
}

// New builds a fresh project from template defaults: a zero-filled
// TemplateSize buffer with metadata/MIDI-settings defaults and 128 default
// WavSynth instruments. No template blob is bundled, so every region this
// codec does not model (groove, table, effect_settings, trailer) is zero.
func New() *Project {
	p := &Project{
		data:         make([]byte, TemplateSize),
		Metadata:     NewMetadata(),
		MidiSettings: midisettings.New(),
		Song:         track.NewEmptySong(),
		Chains:       track.NewEmptyChains(),
		Phrases:      track.NewEmptyPhrases(),
		Instruments:  instrument.NewTable(),
	}
	return p
}

// Read parses a complete project file image.
func Read(data []byte) (*Project, error) {
	if len(data) < InstrumentsOffset+instrument.BlockCount*instrument.BlockSize {
		return nil, fmt.Errorf("project: short input: got %d bytes, need at least %d",
			len(data), InstrumentsOffset+instrument.BlockCount*instrument.BlockSize)
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	version := readVersion(buf[VersionOffset:])

	metadata, err := ReadMetadata(buf[MetadataOffset:])
	if err != nil {
		return nil, fmt.Errorf("project: metadata: %w", err)
	}
	midi, err := midisettings.Read(buf[MidiSettingsOffset:])
	if err != nil {
		return nil, fmt.Errorf("project: midi settings: %w", err)
	}
	song, err := track.ReadSong(buf[SongOffset:])
	if err != nil {
		return nil, fmt.Errorf("project: song: %w", err)
	}
	chains, err := track.ReadChains(buf[ChainsOffset:])
	if err != nil {
		return nil, fmt.Errorf("project: chains: %w", err)
	}
	phrases, err := track.ReadPhrases(buf[PhrasesOffset:])
	if err != nil {
		return nil, fmt.Errorf("project: phrases: %w", err)
	}
	instruments, err := instrument.ReadTable(buf[InstrumentsOffset:])
	if err != nil {
		return nil, fmt.Errorf("project: instruments: %w", err)
	}

	return &Project{
		data:         buf,
		Version:      version,
		Metadata:     metadata,
		MidiSettings: midi,
		Song:         song,
		Chains:       chains,
		Phrases:      phrases,
		Instruments:  instruments,
	}, nil
}

// Write stitches every section back into a copy of the retained byte
// image and returns the complete file.
func (p *Project) Write() []byte {
	out := make([]byte, len(p.data))
	copy(out, p.data)

	putSection := func(offset int, section []byte) {
		copy(out[offset:offset+len(section)], section)
	}

	v := p.Version.write()
	putSection(VersionOffset, v[:])
	putSection(MetadataOffset, p.Metadata.Write())
	putSection(MidiSettingsOffset, p.MidiSettings.Write())
	putSection(SongOffset, p.Song.Write())
	putSection(ChainsOffset, p.Chains.Write())
	putSection(PhrasesOffset, p.Phrases.Write())
	putSection(InstrumentsOffset, p.Instruments.Write())

	return out
}

// Validate sweeps the full cross-reference chain: every song cell must
// name a non-empty chain, every chain step a non-empty phrase, and every
// phrase step a non-empty instrument. Unlike the fail-fast Validate*
// helpers in pkg/track, this accumulates every violation into one
// ordered report, per spec.md §7's "users fixing project files want the
// full report" policy.
func (p *Project) Validate() *validate.Report {
	return validate.Sweep(validate.Project{
		Song:        p.Song,
		Chains:      p.Chains,
		Phrases:     p.Phrases,
		Instruments: p.Instruments,
	})
}

// Clone returns an independent deep copy of the entire project.
func (p *Project) Clone() *Project {
	data := make([]byte, len(p.data))
	copy(data, p.data)
	return &Project{
		data:         data,
		Version:      p.Version,
		Metadata:     p.Metadata.Clone(),
		MidiSettings: p.MidiSettings.Clone(),
		Song:         p.Song.Clone(),
		Chains:       p.Chains.Clone(),
		Phrases:      p.Phrases.Clone(),
		Instruments:  p.Instruments.Clone(),
	}
}
