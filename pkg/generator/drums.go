package generator

// Drum track names
const (
	TrackHiHat = "hihat"
	TrackSnare = "snare"
	TrackKick  = "kick"
)

// Drums generates hi-hat, snare and kick lanes
type Drums struct {
	params Params
}

// NewDrums creates a drum pattern generator
func NewDrums(p Params) *Drums {
	return &Drums{params: p}
}

// Name returns the registry name
func (d *Drums) Name() string {
	return "drums"
}

// Description returns a short summary
func (d *Drums) Description() string {
	return "Eighth-note hi-hats, backbeat snare, kick on even bars"
}

// Generate builds the three drum lanes
func (d *Drums) Generate() (*Result, error) {
	p := d.params
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Result{
		Tracks: []Track{
			{Name: TrackHiHat, Channel: p.DrumChannel, Events: d.hiHat()},
			{Name: TrackSnare, Channel: p.DrumChannel, Events: d.snare()},
			{Name: TrackKick, Channel: p.DrumChannel, Events: d.kick()},
		},
	}, nil
}

// hiHat plays every half beat for the whole piece
func (d *Drums) hiHat() []NoteEvent {
	p := d.params
	slots := p.Bars * p.BeatsPerBar * 2
	events := make([]NoteEvent, 0, slots)
	for t := 0; t < slots; t++ {
		if ev, ok := newEvent(p.HiHatNote, float64(t)*0.5, p.Velocity, p.DrumChannel); ok {
			events = append(events, ev)
		}
	}
	return events
}

// snare hits beat 2 of every bar
func (d *Drums) snare() []NoteEvent {
	p := d.params
	events := make([]NoteEvent, 0, p.Bars)
	for bar := 0; bar < p.Bars; bar++ {
		if ev, ok := newEvent(p.SnareNote, float64(bar*p.BeatsPerBar+2), p.Velocity, p.DrumChannel); ok {
			events = append(events, ev)
		}
	}
	return events
}

// kick hits beats 0 and 3 of every even bar
func (d *Drums) kick() []NoteEvent {
	p := d.params
	events := make([]NoteEvent, 0, p.Bars)
	for bar := 0; bar < p.Bars; bar += 2 {
		start := bar * p.BeatsPerBar
		for _, offset := range []int{0, 3} {
			if ev, ok := newEvent(p.KickNote, float64(start+offset), p.Velocity, p.DrumChannel); ok {
				events = append(events, ev)
			}
		}
	}
	return events
}
