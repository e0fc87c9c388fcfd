package track

import "fmt"

// Phrases is the fixed 255-slot phrase table carried by a project.
type Phrases struct {
	slots [PhraseCount]*Phrase
}

// NewEmptyPhrases returns a table of 255 empty phrases.
func NewEmptyPhrases() *Phrases {
	p := &Phrases{}
	for i := range p.slots {
		p.slots[i] = NewEmptyPhrase()
	}
	return p
}

// ReadPhrases parses PhraseCount consecutive phrases out of data.
func ReadPhrases(data []byte) (*Phrases, error) {
	p := &Phrases{}
	for i := range p.slots {
		start := i * PhraseBlockSize
		end := start + PhraseBlockSize
		if end > len(data) {
			return nil, fmt.Errorf("track: phrases: short input at slot %d", i)
		}
		ph, err := ReadPhrase(data[start:end])
		if err != nil {
			return nil, fmt.Errorf("track: phrases: slot %d: %w", i, err)
		}
		p.slots[i] = ph
	}
	return p, nil
}

// Write emits exactly PhraseCount*PhraseBlockSize bytes.
func (p *Phrases) Write() []byte {
	out := make([]byte, 0, PhraseCount*PhraseBlockSize)
	for _, ph := range p.slots {
		out = append(out, ph.Write()...)
	}
	return out
}

// Clone returns an independent deep copy.
func (p *Phrases) Clone() *Phrases {
	c := &Phrases{}
	for i, ph := range p.slots {
		c.slots[i] = ph.Clone()
	}
	return c
}

// Get returns the phrase at the given index.
func (p *Phrases) Get(i int) *Phrase { return p.slots[i] }

// Set replaces the phrase at the given index.
func (p *Phrases) Set(i int, ph *Phrase) { p.slots[i] = ph }

// ValidateInstruments checks every phrase, prefixing errors with the
// phrase index, per M8Phrases.validate_instruments.
func (p *Phrases) ValidateInstruments(instrumentCount int, isEmptyInstrument func(idx int) bool) error {
	for i, ph := range p.slots {
		if err := ph.ValidateInstruments(instrumentCount, isEmptyInstrument); err != nil {
			return fmt.Errorf("track: phrase %d: %w", i, err)
		}
	}
	return nil
}

// Chains is the fixed 255-slot chain table carried by a project.
type Chains struct {
	slots [ChainCount]*Chain
}

// NewEmptyChains returns a table of 255 empty chains.
func NewEmptyChains() *Chains {
	c := &Chains{}
	for i := range c.slots {
		c.slots[i] = NewEmptyChain()
	}
	return c
}

// ReadChains parses ChainCount consecutive chains out of data.
func ReadChains(data []byte) (*Chains, error) {
	c := &Chains{}
	for i := range c.slots {
		start := i * ChainBlockSize
		end := start + ChainBlockSize
		if end > len(data) {
			return nil, fmt.Errorf("track: chains: short input at slot %d", i)
		}
		ch, err := ReadChain(data[start:end])
		if err != nil {
			return nil, fmt.Errorf("track: chains: slot %d: %w", i, err)
		}
		c.slots[i] = ch
	}
	return c, nil
}

// Write emits exactly ChainCount*ChainBlockSize bytes.
func (c *Chains) Write() []byte {
	out := make([]byte, 0, ChainCount*ChainBlockSize)
	for _, ch := range c.slots {
		out = append(out, ch.Write()...)
	}
	return out
}

// Clone returns an independent deep copy.
func (c *Chains) Clone() *Chains {
	clone := &Chains{}
	for i, ch := range c.slots {
		clone.slots[i] = ch.Clone()
	}
	return clone
}

// Get returns the chain at the given index.
func (c *Chains) Get(i int) *Chain { return c.slots[i] }

// Set replaces the chain at the given index.
func (c *Chains) Set(i int, ch *Chain) { c.slots[i] = ch }

// ValidatePhrases checks every chain, prefixing errors with the chain
// index, per M8Chains.validate_phrases.
func (c *Chains) ValidatePhrases(phraseCount int, isEmptyPhrase func(idx int) bool) error {
	for i, ch := range c.slots {
		if err := ch.ValidatePhrases(phraseCount, isEmptyPhrase); err != nil {
			return fmt.Errorf("track: chain %d: %w", i, err)
		}
	}
	return nil
}
