package generator

import (
	"fmt"

	"github.com/james-see/midipatterns/pkg/theory"
)

// TrackChords is the chord progression track name
const TrackChords = "chords"

// ChordProgression voices a list of roots as inverted chords, one chord
// every BarsPerChord bars
type ChordProgression struct {
	Roots        []string
	Inversions   []string
	ChordType    string
	OctaveOffset int
	BarsPerChord int

	params Params
}

// NewChordProgression returns the stock F# D A C# minor progression
func NewChordProgression(p Params) *ChordProgression {
	return &ChordProgression{
		Roots:        []string{"F#", "D", "A", "C#"},
		Inversions:   []string{theory.InversionName(0), theory.InversionName(1), theory.InversionName(2)},
		ChordType:    "Minor",
		OctaveOffset: 60,
		BarsPerChord: 4,
		params:       p,
	}
}

// Name returns the registry name
func (c *ChordProgression) Name() string {
	return "chords"
}

// Description returns a short summary
func (c *ChordProgression) Description() string {
	return fmt.Sprintf("%s chord progression over %v with rotating inversions", c.ChordType, c.Roots)
}

// Generate voices each chord; a chord whose root or inversion is missing
// is skipped
func (c *ChordProgression) Generate() (*Result, error) {
	p := c.params
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(c.Inversions) == 0 {
		return nil, fmt.Errorf("chord progression needs at least one inversion")
	}

	res := &Result{}
	var events []NoteEvent

	for i, rootName := range c.Roots {
		root, err := theory.Semitone(rootName)
		if err != nil {
			res.Misses = append(res.Misses, fmt.Errorf("chord %d: %w", i, err))
			continue
		}
		voicing, err := theory.InversionIntervals(c.ChordType, c.Inversions[i%len(c.Inversions)])
		if err != nil {
			res.Misses = append(res.Misses, fmt.Errorf("chord %d: %w", i, err))
			continue
		}

		start := float64(i * c.BarsPerChord * p.BeatsPerBar)
		for _, interval := range voicing {
			pitch := root + interval + c.OctaveOffset
			ev, ok := newEvent(pitch, start, p.Velocity, p.ChordChannel)
			if !ok {
				res.Misses = append(res.Misses, fmt.Errorf("chord %d: pitch %d out of range 0-%d", i, pitch, MaxPitch))
				continue
			}
			events = append(events, ev)
		}
	}

	res.Tracks = []Track{{Name: TrackChords, Channel: p.ChordChannel, Events: events}}
	return res, nil
}
