package theory

import (
	"errors"
	"testing"
)

func TestNoteTablesUnique(t *testing.T) {
	if len(NoteNames) != 12 {
		t.Fatalf("NoteNames has %d entries, want 12", len(NoteNames))
	}

	seenSemitone := make(map[int]string)
	seenAbsolute := make(map[int]string)
	for _, name := range NoteNames {
		s, err := Semitone(name)
		if err != nil {
			t.Fatalf("Semitone(%q) error = %v", name, err)
		}
		if s < 0 || s > 11 {
			t.Errorf("Semitone(%q) = %d, out of range 0-11", name, s)
		}
		if prev, ok := seenSemitone[s]; ok {
			t.Errorf("Semitone(%q) = %d collides with %q", name, s, prev)
		}
		seenSemitone[s] = name

		a, err := AbsolutePitch(name)
		if err != nil {
			t.Fatalf("AbsolutePitch(%q) error = %v", name, err)
		}
		if a != AbsoluteBase+s {
			t.Errorf("AbsolutePitch(%q) = %d, want %d", name, a, AbsoluteBase+s)
		}
		seenAbsolute[a] = name
	}

	if len(seenAbsolute) != 12 {
		t.Errorf("AbsolutePitch produced %d unique values, want 12", len(seenAbsolute))
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"note", func() error { _, err := Semitone("f#"); return err }},
		{"absolute", func() error { _, err := AbsolutePitch("Db"); return err }},
		{"chord", func() error { _, err := ChordIntervals("minor"); return err }},
		{"inversion type", func() error { _, err := InversionIntervals("Sus", "Inversion 0"); return err }},
		{"inversion index", func() error { _, err := InversionIntervals("Minor", "Inversion 3"); return err }},
		{"inversion name", func() error { _, err := InversionIntervals("Minor", "inversion 0"); return err }},
		{"inversion padded", func() error { _, err := InversionIntervals("Minor", "Inversion 01"); return err }},
		{"duration", func() error { _, err := DurationBeats("Sixteenth_note"); return err }},
		{"scale", func() error { _, err := ScalePitches("C major"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("error = %v, want ErrNotFound", err)
			}
			var le *LookupError
			if !errors.As(err, &le) {
				t.Fatalf("error %T is not a *LookupError", err)
			}
		})
	}
}

func TestChordIntervals(t *testing.T) {
	got, err := ChordIntervals("Major 7th")
	if err != nil {
		t.Fatalf("ChordIntervals() error = %v", err)
	}
	want := []int{0, 4, 7, 11}
	if !equal(got, want) {
		t.Errorf("ChordIntervals(Major 7th) = %v, want %v", got, want)
	}

	for _, name := range ChordNames() {
		iv, _ := ChordIntervals(name)
		seen := make(map[int]bool)
		for _, v := range iv {
			if v < 0 {
				t.Errorf("%s has negative interval %d", name, v)
			}
			if seen[v] {
				t.Errorf("%s has duplicate interval %d", name, v)
			}
			seen[v] = true
		}
	}
}

func TestTablesAreNotMutable(t *testing.T) {
	iv, _ := ChordIntervals("Minor")
	iv[0] = 99

	again, _ := ChordIntervals("Minor")
	if again[0] != 0 {
		t.Errorf("chord table mutated through returned slice: %v", again)
	}

	inv, _ := InversionIntervals("Minor", "Inversion 1")
	inv[0] = 99
	again, _ = InversionIntervals("Minor", "Inversion 1")
	if again[0] != 3 {
		t.Errorf("inversion table mutated through returned slice: %v", again)
	}
}

func TestInversionsContiguous(t *testing.T) {
	for _, chordType := range InversionChordTypes() {
		names, err := InversionNames(chordType)
		if err != nil {
			t.Fatalf("InversionNames(%q) error = %v", chordType, err)
		}
		if len(names) == 0 {
			t.Errorf("%s has no inversions", chordType)
			continue
		}

		root, _ := InversionIntervals(chordType, InversionName(0))
		for i, name := range names {
			if name != InversionName(i) {
				t.Errorf("%s inversion %d named %q", chordType, i, name)
			}
			v, err := InversionIntervals(chordType, name)
			if err != nil {
				t.Errorf("InversionIntervals(%q, %q) error = %v", chordType, name, err)
				continue
			}
			if len(v) != len(root) {
				t.Errorf("%s/%s has %d notes, root position has %d", chordType, name, len(v), len(root))
			}
		}
	}
}

func TestMinorInversions(t *testing.T) {
	tests := []struct {
		inversion string
		expected  []int
	}{
		{"Inversion 0", []int{0, 3, 7}},
		{"Inversion 1", []int{3, 7, 12}},
		{"Inversion 2", []int{7, 12, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.inversion, func(t *testing.T) {
			got, err := InversionIntervals("Minor", tt.inversion)
			if err != nil {
				t.Fatalf("InversionIntervals() error = %v", err)
			}
			if !equal(got, tt.expected) {
				t.Errorf("InversionIntervals(Minor, %s) = %v, want %v", tt.inversion, got, tt.expected)
			}
		})
	}
}

func TestDurations(t *testing.T) {
	d, err := DurationBeats("sixteenth_note")
	if err != nil {
		t.Fatalf("DurationBeats() error = %v", err)
	}
	if d != 0.25 {
		t.Errorf("DurationBeats(sixteenth_note) = %v, want 0.25", d)
	}

	names := DurationNames()
	if len(names) != 18 {
		t.Errorf("DurationNames() returned %d names, want 18", len(names))
	}
	if names[0] != "dotted_whole_note" {
		t.Errorf("longest duration = %q, want dotted_whole_note", names[0])
	}
	for _, n := range names {
		v, _ := DurationBeats(n)
		if v <= 0 {
			t.Errorf("%s = %v, want > 0", n, v)
		}
	}
}

func TestScales(t *testing.T) {
	tests := []struct {
		name     string
		expected []int
	}{
		{"C MAJOR", []int{60, 62, 64, 65, 67, 69, 71, 72}},
		{"A MINOR", []int{69, 71, 72, 74, 76, 77, 79, 81}},
		{"F MINOR", []int{65, 67, 68, 70, 72, 73, 75, 77}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScalePitches(tt.name)
			if err != nil {
				t.Fatalf("ScalePitches() error = %v", err)
			}
			if !equal(got, tt.expected) {
				t.Errorf("ScalePitches(%s) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}

	if n := len(ScaleNames()); n != 24 {
		t.Errorf("ScaleNames() returned %d names, want 24", n)
	}
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
