package theory

import "strings"

// Scale steps above the root, including the octave
var (
	majorSteps = []int{0, 2, 4, 5, 7, 9, 11, 12}
	minorSteps = []int{0, 2, 3, 5, 7, 8, 10, 12}
)

var scales = buildScales()

func buildScales() map[string][]int {
	out := make(map[string][]int, len(NoteNames)*2)
	for _, name := range NoteNames {
		root := absoluteNotes[name]
		out[name+" MAJOR"] = offset(root, majorSteps)
		out[name+" MINOR"] = offset(root, minorSteps)
	}
	return out
}

func offset(root int, steps []int) []int {
	out := make([]int, len(steps))
	for i, s := range steps {
		out[i] = root + s
	}
	return out
}

// ScalePitches returns the absolute pitches of a scale such as "F# MINOR"
func ScalePitches(name string) ([]int, error) {
	v, ok := scales[name]
	if !ok {
		return nil, miss("scale", name)
	}
	return clone(v), nil
}

// ScaleNames returns all scale names in chromatic root order, majors first
func ScaleNames() []string {
	names := make([]string, 0, len(scales))
	for _, mode := range []string{"MAJOR", "MINOR"} {
		for _, n := range NoteNames {
			names = append(names, strings.Join([]string{n, mode}, " "))
		}
	}
	return names
}
