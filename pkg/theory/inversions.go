package theory

import (
	"fmt"
	"strconv"
	"strings"
)

const inversionPrefix = "Inversion "

// Voicings are keyed by chord type, then by inversion index.
var inversions = map[string][][]int{
	"Major": {
		{0, 4, 7},
		{4, 7, 12},
		{7, 12, 16},
	},
	"Minor": {
		{0, 3, 7},
		{3, 7, 12},
		{7, 12, 15},
	},
	"Diminished": {
		{0, 3, 6},
		{3, 6, 12},
		{6, 12, 15},
	},
	"Augmented": {
		{0, 4, 8},
		{4, 8, 12},
		{8, 12, 16},
	},
	"Major 7th": {
		{0, 4, 7, 11},
		{4, 7, 11, 12},
		{7, 11, 12, 16},
		{11, 12, 16, 19},
	},
	"Minor 7th": {
		{0, 3, 7, 10},
		{3, 7, 10, 12},
		{7, 10, 12, 15},
		{10, 12, 15, 19},
	},
	"9 sus": {
		{0, 2, 7, 10},
		{2, 7, 10, 12},
		{7, 10, 12, 14},
		{10, 12, 14, 19},
	},
	"Major 6": {
		{0, 4, 7, 9},
		{4, 7, 9, 12},
		{7, 9, 12, 16},
		{9, 12, 16, 19},
	},
	"Minor 6": {
		{0, 3, 7, 9},
		{3, 7, 9, 12},
		{7, 9, 12, 15},
		{9, 12, 15, 19},
	},
	"5": {
		{0, 7},
		{7, 12},
		{12, 19},
	},
}

// InversionName returns the table key for inversion index i, e.g. "Inversion 1"
func InversionName(i int) string {
	return fmt.Sprintf("%s%d", inversionPrefix, i)
}

// InversionIntervals returns the voicing for a chord type and inversion name
func InversionIntervals(chordType, inversion string) ([]int, error) {
	voicings, ok := inversions[chordType]
	if !ok {
		return nil, miss("inversion chord type", chordType)
	}
	idx, ok := parseInversion(inversion)
	if !ok || idx >= len(voicings) {
		return nil, miss("inversion", chordType+"/"+inversion)
	}
	return clone(voicings[idx]), nil
}

// InversionNames returns the inversion names defined for a chord type in
// index order
func InversionNames(chordType string) ([]string, error) {
	voicings, ok := inversions[chordType]
	if !ok {
		return nil, miss("inversion chord type", chordType)
	}
	names := make([]string, len(voicings))
	for i := range voicings {
		names[i] = InversionName(i)
	}
	return names, nil
}

// InversionChordTypes returns the chord types that have inversion tables, sorted
func InversionChordTypes() []string {
	return sortedKeys(inversions)
}

func parseInversion(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, inversionPrefix)
	if !ok {
		return 0, false
	}
	idx, err := strconv.Atoi(rest)
	if err != nil || idx < 0 || strconv.Itoa(idx) != rest {
		return 0, false
	}
	return idx, true
}
