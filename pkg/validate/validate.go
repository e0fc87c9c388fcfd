// Package validate implements the cross-reference sweep described in
// spec.md §7-8: every non-empty song cell must name a non-empty chain,
// every chain step a non-empty phrase, every phrase step a non-empty
// instrument. Unlike the entity-level Validate* methods in pkg/track
// (which stop at the first violation, mirroring M8SongRow.validate_chains
// and friends), Sweep accumulates every violation into an ordered report,
// because a user fixing a broken project wants the full list in one pass.
package validate

import (
	"fmt"

	"github.com/m8kit/m8codec/pkg/instrument"
	"github.com/m8kit/m8codec/pkg/track"
)

// Kind identifies the category of a cross-reference violation.
type Kind int

const (
	EmptyReference Kind = iota
	IndexOutOfRange
	VersionMismatch
)

func (k Kind) String() string {
	switch k {
	case EmptyReference:
		return "EmptyReference"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case VersionMismatch:
		return "VersionMismatch"
	default:
		return "Unknown"
	}
}

// Error is one violation: the dotted path to the offending reference and
// its kind.
type Error struct {
	Path string
	Kind Kind
}

func (e Error) Error() string { return fmt.Sprintf("%s: %s", e.Path, e.Kind) }

// Report is the ordered list of every violation found by Sweep.
type Report struct {
	Errors []Error
}

// OK reports whether the sweep found no violations.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) add(path string, kind Kind) {
	r.Errors = append(r.Errors, Error{Path: path, Kind: kind})
}

// Project is the minimal surface Sweep needs. pkg/project's Project
// builds one from its own section fields; validate does not import
// pkg/project so pkg/project can import validate without a cycle.
type Project struct {
	Song        *track.Song
	Chains      *track.Chains
	Phrases     *track.Phrases
	Instruments *instrument.Table
}

// Sweep walks song -> chain -> phrase -> instrument, recording every
// dangling or out-of-range reference.
func Sweep(p Project) *Report {
	r := &Report{}

	for i := 0; i < track.SongRowCount; i++ {
		row := p.Song.Row(i)
		for col := 0; col < track.SongColumnCount; col++ {
			cell := row.Cell(col)
			if cell == track.SongChainEmpty {
				continue
			}
			path := fmt.Sprintf("song.row[%d].col[%d]", i, col)
			idx := int(cell)
			if idx >= track.ChainCount {
				r.add(path, IndexOutOfRange)
				continue
			}
			if p.Chains.Get(idx).IsEmpty() {
				r.add(path, EmptyReference)
			}
		}
	}

	for i := 0; i < track.ChainCount; i++ {
		chain := p.Chains.Get(i)
		for s := 0; s < track.ChainStepCount; s++ {
			step := chain.Step(s)
			if step.Phrase == track.ChainPhraseEmpty {
				continue
			}
			path := fmt.Sprintf("chain[%d].step[%d]", i, s)
			idx := int(step.Phrase)
			if idx >= track.PhraseCount {
				r.add(path, IndexOutOfRange)
				continue
			}
			if p.Phrases.Get(idx).IsEmpty() {
				r.add(path, EmptyReference)
			}
		}
	}

	for i := 0; i < track.PhraseCount; i++ {
		phrase := p.Phrases.Get(i)
		for s := 0; s < track.StepCount; s++ {
			step := phrase.Step(s)
			if step.Instrument == track.InstrumentNone {
				continue
			}
			path := fmt.Sprintf("phrase[%d].step[%d]", i, s)
			idx := int(step.Instrument)
			if idx >= p.Instruments.Len() {
				r.add(path, IndexOutOfRange)
				continue
			}
			if p.Instruments.Get(idx).IsEmpty() {
				r.add(path, EmptyReference)
			}
		}
	}

	return r
}
