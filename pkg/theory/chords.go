package theory

import "sort"

var chords = map[string][]int{
	"Major":                {0, 4, 7},
	"Minor":                {0, 3, 7},
	"Diminished":           {0, 3, 6},
	"Augmented":            {0, 4, 8},
	"Major 7th":            {0, 4, 7, 11},
	"Minor 7th":            {0, 3, 7, 10},
	"Dominant 7th":         {0, 4, 7, 10},
	"Diminished 7th":       {0, 3, 6, 9},
	"Half-Diminished 7th":  {0, 3, 6, 10},
	"Augmented 7th":        {0, 4, 8, 10},
	"9th":                  {0, 4, 7, 10, 14},
	"Major 9th":            {0, 4, 7, 11, 14},
	"Minor 9th":            {0, 3, 7, 10, 14},
	"11th":                 {0, 4, 7, 10, 14, 17},
	"13th":                 {0, 4, 7, 10, 14, 21},
	"Suspended 2nd (sus2)": {0, 2, 7},
	"Suspended 4th (sus4)": {0, 5, 7},
	"6th":                  {0, 4, 7, 9},
	"Minor 6th":            {0, 3, 7, 9},
	"Add 9":                {0, 4, 7, 14},
	"Minor Add 9":          {0, 3, 7, 14},
	"7th Flat 5":           {0, 4, 6, 10},
	"7th Sharp 5":          {0, 4, 8, 10},
	"Major 7th Sharp 5":    {0, 4, 8, 11},
	"Minor 7th Flat 5":     {0, 3, 6, 10},
}

// ChordIntervals returns the semitone offsets of a chord template
func ChordIntervals(name string) ([]int, error) {
	v, ok := chords[name]
	if !ok {
		return nil, miss("chord", name)
	}
	return clone(v), nil
}

// ChordNames returns all chord template names, sorted
func ChordNames() []string {
	return sortedKeys(chords)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
