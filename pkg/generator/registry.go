package generator

import (
	"fmt"
	"strings"
)

// Entry is one generator in the registry
type Entry struct {
	Generator Generator
	// Available is false for placeholders that return ErrNotImplemented
	Available bool
}

// Registry is the ordered generator roster
type Registry struct {
	entries []Entry
}

// NewRegistry builds the stock roster: drums, chords, arpeggio, velocity-triad
func NewRegistry(p Params) *Registry {
	return &Registry{
		entries: []Entry{
			{Generator: NewDrums(p), Available: true},
			{Generator: NewChordProgression(p), Available: true},
			{Generator: NewArpeggio(p), Available: true},
			{Generator: NewVelocityTriad(p), Available: false},
		},
	}
}

// Entries returns the roster in run order
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Names returns generator names in run order
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Generator.Name()
	}
	return names
}

// Get finds a generator by name
func (r *Registry) Get(name string) (Entry, error) {
	for _, e := range r.entries {
		if strings.EqualFold(e.Generator.Name(), name) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("unknown generator %q (available: %s)", name, strings.Join(r.Names(), ", "))
}

// Select returns the named entries in the given order, or the whole roster
// when names is empty
func (r *Registry) Select(names []string) ([]Entry, error) {
	if len(names) == 0 {
		return r.Entries(), nil
	}
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		e, err := r.Get(n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
