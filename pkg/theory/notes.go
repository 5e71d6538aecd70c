package theory

// NoteNames lists the 12 canonical pitch class names in chromatic order
var NoteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// AbsoluteBase is the MIDI note number of C in the absolute note table
const AbsoluteBase = 60

var noteSemitones = map[string]int{
	"C": 0, "C#": 1, "D": 2, "D#": 3, "E": 4,
	"F": 5, "F#": 6, "G": 7, "G#": 8, "A": 9,
	"A#": 10, "B": 11,
}

var absoluteNotes = map[string]int{
	"C": 60, "C#": 61, "D": 62, "D#": 63, "E": 64,
	"F": 65, "F#": 66, "G": 67, "G#": 68, "A": 69,
	"A#": 70, "B": 71,
}

// Semitone returns the pitch class (0-11) for a note name
func Semitone(name string) (int, error) {
	v, ok := noteSemitones[name]
	if !ok {
		return 0, miss("note", name)
	}
	return v, nil
}

// AbsolutePitch returns the MIDI note number (60-71) for a note name
func AbsolutePitch(name string) (int, error) {
	v, ok := absoluteNotes[name]
	if !ok {
		return 0, miss("note", name)
	}
	return v, nil
}
