// Package generator turns music theory table lookups into timed note events
package generator

import (
	"errors"
	"fmt"
)

// MIDI data limits
const (
	MaxPitch    = 127
	MaxVelocity = 127
	MaxChannel  = 15
)

// Upper bounds on sequence length; every event list grows linearly with both
const (
	MaxBars        = 1024
	MaxBeatsPerBar = 64
)

// ErrNotImplemented is returned by generators that are registered but not yet built
var ErrNotImplemented = errors.New("generator not implemented")

// NoteEvent is a single note onset
type NoteEvent struct {
	Pitch    uint8   `json:"pitch"`    // MIDI note number (0-127)
	Time     float64 `json:"time"`     // Start in beats from the beginning of the sequence
	Velocity uint8   `json:"velocity"` // Velocity (0-127)
	Channel  uint8   `json:"channel"`  // MIDI channel (0-15)
}

// Track is one named note sequence, exported as its own artifact
type Track struct {
	Name    string      `json:"name"`
	Channel uint8       `json:"channel"`
	Events  []NoteEvent `json:"events"`
}

// Result holds the output of one generator run
type Result struct {
	Tracks []Track
	// Misses records every table lookup that caused a step to be skipped
	Misses []error
}

// Generator produces note tracks from the theory tables
type Generator interface {
	Name() string
	Description() string
	Generate() (*Result, error)
}

// Exporter persists a note sequence under a name
type Exporter interface {
	Export(name string, events []NoteEvent, channel uint8) error
}

// Params holds the shared generation settings
type Params struct {
	Bars         int
	BeatsPerBar  int
	HiHatNote    int
	SnareNote    int
	KickNote     int
	Velocity     int
	DrumChannel  uint8
	ChordChannel uint8
}

// DefaultParams returns the stock settings: 32 bars of 4/4 with every drum
// lane on note 60
func DefaultParams() Params {
	return Params{
		Bars:         32,
		BeatsPerBar:  4,
		HiHatNote:    60,
		SnareNote:    60,
		KickNote:     60,
		Velocity:     100,
		DrumChannel:  9,
		ChordChannel: 1,
	}
}

// Validate checks that params can only produce valid MIDI data
func (p Params) Validate() error {
	if p.Bars <= 0 || p.Bars > MaxBars {
		return fmt.Errorf("bars must be 1-%d, got %d", MaxBars, p.Bars)
	}
	if p.BeatsPerBar <= 0 || p.BeatsPerBar > MaxBeatsPerBar {
		return fmt.Errorf("beats per bar must be 1-%d, got %d", MaxBeatsPerBar, p.BeatsPerBar)
	}
	for name, v := range map[string]int{"hihat": p.HiHatNote, "snare": p.SnareNote, "kick": p.KickNote} {
		if v < 0 || v > MaxPitch {
			return fmt.Errorf("%s note %d out of range 0-%d", name, v, MaxPitch)
		}
	}
	if p.Velocity < 0 || p.Velocity > MaxVelocity {
		return fmt.Errorf("velocity %d out of range 0-%d", p.Velocity, MaxVelocity)
	}
	if p.DrumChannel > MaxChannel || p.ChordChannel > MaxChannel {
		return fmt.Errorf("channels must be 0-%d", MaxChannel)
	}
	return nil
}

// newEvent builds an event, rejecting pitches outside the MIDI range
func newEvent(pitch int, time float64, velocity int, channel uint8) (NoteEvent, bool) {
	if pitch < 0 || pitch > MaxPitch || velocity < 0 || velocity > MaxVelocity || time < 0 {
		return NoteEvent{}, false
	}
	return NoteEvent{
		Pitch:    uint8(pitch),
		Time:     time,
		Velocity: uint8(velocity),
		Channel:  channel,
	}, true
}

// ValidateEvents reports the first event that is not valid MIDI data
func ValidateEvents(events []NoteEvent) error {
	for i, ev := range events {
		if ev.Pitch > MaxPitch {
			return fmt.Errorf("event %d: pitch %d out of range", i, ev.Pitch)
		}
		if ev.Velocity > MaxVelocity {
			return fmt.Errorf("event %d: velocity %d out of range", i, ev.Velocity)
		}
		if ev.Time < 0 {
			return fmt.Errorf("event %d: negative start time %v", i, ev.Time)
		}
	}
	return nil
}
