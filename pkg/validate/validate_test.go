package validate

import (
	"testing"

	"github.com/m8kit/m8codec/pkg/instrument"
	"github.com/m8kit/m8codec/pkg/track"
)

func freshProject() Project {
	return Project{
		Song:        track.NewEmptySong(),
		Chains:      track.NewEmptyChains(),
		Phrases:     track.NewEmptyPhrases(),
		Instruments: instrument.NewTable(),
	}
}

func TestSweepCleanProject(t *testing.T) {
	r := Sweep(freshProject())
	if !r.OK() {
		t.Fatalf("expected clean sweep, got %v", r.Errors)
	}
}

func TestSweepAccumulatesAllThreeLevels(t *testing.T) {
	p := freshProject()

	row := track.NewEmptySongRow()
	row.SetCell(0, 5) // dangling: chain 5 is empty
	p.Song.SetRow(0, row)

	chain := track.NewEmptyChain()
	chain.SetStep(0, track.ChainStep{Phrase: 9}) // dangling: phrase 9 is empty
	p.Chains.Set(1, chain)

	phrase := track.NewEmptyPhrase()
	phrase.SetStep(0, track.Step{Note: 60, Instrument: 3}) // dangling: instrument 3 is default wavsynth (empty)
	p.Phrases.Set(2, phrase)

	r := Sweep(p)
	if r.OK() {
		t.Fatal("expected violations")
	}
	if len(r.Errors) < 3 {
		t.Fatalf("expected at least 3 accumulated errors, got %d: %v", len(r.Errors), r.Errors)
	}
	for _, e := range r.Errors {
		if e.Kind != EmptyReference {
			t.Errorf("unexpected kind %v for %s", e.Kind, e.Path)
		}
	}
}

func TestSweepIndexOutOfRange(t *testing.T) {
	p := freshProject()
	phrase := track.NewEmptyPhrase()
	// instrument count is 128 (0..127); 200 is a valid non-sentinel byte
	// but names no instrument slot at all.
	phrase.SetStep(0, track.Step{Note: 60, Instrument: 200})
	p.Phrases.Set(0, phrase)

	r := Sweep(p)
	if r.OK() {
		t.Fatal("expected a violation")
	}
	if r.Errors[0].Kind != IndexOutOfRange {
		t.Errorf("kind = %v, want IndexOutOfRange", r.Errors[0].Kind)
	}
}
