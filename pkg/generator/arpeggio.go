package generator

import (
	"fmt"

	"github.com/james-see/midipatterns/pkg/theory"
)

// TrackArpeggio is the arpeggio track name
const TrackArpeggio = "arpeggio"

// fallbackStep is used when the step duration lookup misses
const fallbackStep = 0.25

// Arpeggio cycles through a chord spread over several octaves
type Arpeggio struct {
	Root      string
	Chord     string
	Step      string
	LowOctave int
	// HighOctave is inclusive
	HighOctave int
	Count      int

	params Params
}

// NewArpeggio returns the stock C Major 7th sixteenth-note arpeggio over
// octaves 4 to 6
func NewArpeggio(p Params) *Arpeggio {
	return &Arpeggio{
		Root:       "C",
		Chord:      "Major 7th",
		Step:       "sixteenth_note",
		LowOctave:  4,
		HighOctave: 6,
		Count:      32,
		params:     p,
	}
}

// Name returns the registry name
func (a *Arpeggio) Name() string {
	return "arpeggio"
}

// Description returns a short summary
func (a *Arpeggio) Description() string {
	return fmt.Sprintf("%s %s arpeggio in %s steps", a.Root, a.Chord, a.Step)
}

// Generate emits Count events cycling through the candidate pitches
func (a *Arpeggio) Generate() (*Result, error) {
	p := a.params
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if a.Count < 0 {
		return nil, fmt.Errorf("arpeggio count must not be negative, got %d", a.Count)
	}
	if a.LowOctave > a.HighOctave {
		return nil, fmt.Errorf("arpeggio octave range %d-%d is inverted", a.LowOctave, a.HighOctave)
	}

	res := &Result{}

	root, err := theory.Semitone(a.Root)
	if err != nil {
		res.Misses = append(res.Misses, err)
		return res, nil
	}
	intervals, err := theory.ChordIntervals(a.Chord)
	if err != nil {
		res.Misses = append(res.Misses, err)
		return res, nil
	}
	step, err := theory.DurationBeats(a.Step)
	if err != nil {
		res.Misses = append(res.Misses, err)
		step = fallbackStep
	}

	pitches := a.candidates(root, intervals)
	if len(pitches) == 0 {
		res.Misses = append(res.Misses, fmt.Errorf("arpeggio %s %s: no pitches in octaves %d-%d",
			a.Root, a.Chord, a.LowOctave, a.HighOctave))
		return res, nil
	}

	events := make([]NoteEvent, 0, a.Count)
	for i := 0; i < a.Count; i++ {
		if ev, ok := newEvent(pitches[i%len(pitches)], float64(i)*step, p.Velocity, p.ChordChannel); ok {
			events = append(events, ev)
		}
	}

	res.Tracks = []Track{{Name: TrackArpeggio, Channel: p.ChordChannel, Events: events}}
	return res, nil
}

// candidates flattens octave x interval into pitches, dropping any that
// fall outside the MIDI range
func (a *Arpeggio) candidates(root int, intervals []int) []int {
	var out []int
	for octave := a.LowOctave; octave <= a.HighOctave; octave++ {
		for _, interval := range intervals {
			pitch := 12*octave + root%12 + interval
			if pitch < 0 || pitch > MaxPitch {
				continue
			}
			out = append(out, pitch)
		}
	}
	return out
}
