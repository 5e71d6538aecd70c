// Package export persists generated note sequences as Standard MIDI Files
package export

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/james-see/midipatterns/pkg/generator"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Options controls SMF encoding
type Options struct {
	Tempo      float64 // BPM
	Gate       float64 // Note length in beats
	Resolution uint16  // Ticks per quarter note
}

// DefaultOptions returns 156 BPM, sixteenth-note gates at 480 ticks per quarter
func DefaultOptions() Options {
	return Options{
		Tempo:      156.0,
		Gate:       0.25,
		Resolution: 480,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Tempo <= 0 {
		o.Tempo = d.Tempo
	}
	if o.Gate <= 0 {
		o.Gate = d.Gate
	}
	if o.Resolution == 0 {
		o.Resolution = d.Resolution
	}
	return o
}

// SMFWriter writes each exported sequence to <Dir>/<name>.mid
type SMFWriter struct {
	Dir     string
	Options Options
}

// NewSMFWriter creates a writer rooted at dir
func NewSMFWriter(dir string, opts Options) *SMFWriter {
	return &SMFWriter{Dir: dir, Options: opts}
}

// Path returns the file an export named name is written to
func (w *SMFWriter) Path(name string) string {
	return filepath.Join(w.Dir, name+".mid")
}

// Export implements generator.Exporter
func (w *SMFWriter) Export(name string, events []generator.NoteEvent, channel uint8) error {
	data, err := EncodeSMF(name, events, channel, w.Options)
	if err != nil {
		return err
	}
	if err := os.WriteFile(w.Path(name), data, 0644); err != nil {
		return fmt.Errorf("failed to write MIDI file: %w", err)
	}
	return nil
}

type timedMessage struct {
	tick uint32
	off  bool
	msg  midi.Message
}

// EncodeSMF renders events as a single-track SMF. Every event becomes a
// note on/off pair on the given channel.
func EncodeSMF(name string, events []generator.NoteEvent, channel uint8, opts Options) ([]byte, error) {
	if channel > generator.MaxChannel {
		return nil, fmt.Errorf("channel %d out of range 0-%d", channel, generator.MaxChannel)
	}
	if err := generator.ValidateEvents(events); err != nil {
		return nil, err
	}
	opts = opts.normalized()

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(opts.Resolution)

	var track smf.Track
	if name != "" {
		track.Add(0, smf.MetaTrackSequenceName(name))
	}
	track.Add(0, smf.MetaTempo(opts.Tempo))
	track.Add(0, smf.MetaMeter(4, 4))

	gateTicks := beatsToTicks(opts.Gate, opts.Resolution)
	if gateTicks == 0 {
		gateTicks = 1
	}

	timeline := make([]timedMessage, 0, len(events)*2)
	for _, ev := range events {
		on := beatsToTicks(ev.Time, opts.Resolution)
		timeline = append(timeline,
			timedMessage{tick: on, msg: midi.NoteOn(channel, ev.Pitch, ev.Velocity)},
			timedMessage{tick: on + gateTicks, off: true, msg: midi.NoteOff(channel, ev.Pitch)},
		)
	}

	// Note offs sort ahead of note ons on the same tick so repeated
	// pitches retrigger cleanly.
	sort.SliceStable(timeline, func(i, j int) bool {
		if timeline[i].tick != timeline[j].tick {
			return timeline[i].tick < timeline[j].tick
		}
		return timeline[i].off && !timeline[j].off
	})

	var current uint32
	for _, tm := range timeline {
		track.Add(tm.tick-current, tm.msg)
		current = tm.tick
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return buf.Bytes(), nil
}

// Decoded is the content recovered from an SMF
type Decoded struct {
	Tempo  float64
	Events []generator.NoteEvent
}

// IsSMF reports whether data starts with the "MThd" header chunk
func IsSMF(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == "MThd"
}

// DecodeSMF reads note onsets back out of SMF data, merging all tracks in
// time order
func DecodeSMF(data []byte) (decoded *Decoded, err error) {
	if !IsSMF(data) {
		return nil, errors.New("not a MIDI file: missing MThd header")
	}

	// smf can panic on malformed input
	defer func() {
		if r := recover(); r != nil {
			decoded, err = nil, fmt.Errorf("failed to parse MIDI: %v", r)
		}
	}()

	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse MIDI: %w", err)
	}

	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, errors.New("unsupported time format: only metric ticks are supported")
	}
	resolution := float64(mt.Resolution())

	out := &Decoded{Tempo: 120.0}
	for _, track := range s.Tracks {
		var tick int64
		for _, ev := range track {
			tick += int64(ev.Delta)
			msg := ev.Message

			// Tempo meta message (FF 51 03 tt tt tt)
			if len(msg) >= 6 && msg[0] == 0xFF && msg[1] == 0x51 && msg[2] == 0x03 {
				microsecondsPerBeat := uint32(msg[3])<<16 | uint32(msg[4])<<8 | uint32(msg[5])
				if microsecondsPerBeat > 0 {
					out.Tempo = 60000000.0 / float64(microsecondsPerBeat)
				}
				continue
			}

			var channel, key, velocity uint8
			if midi.Message(msg).GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				out.Events = append(out.Events, generator.NoteEvent{
					Pitch:    key,
					Time:     float64(tick) / resolution,
					Velocity: velocity,
					Channel:  channel,
				})
			}
		}
	}

	sort.SliceStable(out.Events, func(i, j int) bool {
		return out.Events[i].Time < out.Events[j].Time
	})
	return out, nil
}

// ReadSMFFile decodes an SMF from disk
func ReadSMFFile(path string) (*Decoded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read MIDI file: %w", err)
	}
	return DecodeSMF(data)
}

func beatsToTicks(beats float64, resolution uint16) uint32 {
	return uint32(math.Round(beats * float64(resolution)))
}
