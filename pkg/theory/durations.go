package theory

import "sort"

// Note values in quarter-note beats
var durations = map[string]float64{
	"whole_note":                            4,
	"dotted_whole_note":                     6,
	"half_note":                             2,
	"dotted_half_note":                      3,
	"quarter_note":                          1,
	"dotted_quarter_note":                   1.5,
	"eighth_note":                           0.5,
	"dotted_eighth_note":                    0.75,
	"sixteenth_note":                        0.25,
	"dotted_sixteenth_note":                 0.375,
	"thirty_second_note":                    0.125,
	"dotted_thirty_second_note":             0.1875,
	"sixty_fourth_note":                     0.0625,
	"dotted_sixty_fourth_note":              0.09375,
	"one_hundred_twenty_eighth_note":        0.03125,
	"dotted_one_hundred_twenty_eighth_note": 0.046875,
	"two_hundred_fifty_sixth_note":          0.015625,
	"dotted_two_hundred_fifty_sixth_note":   0.0234375,
}

// DurationBeats returns the length of a note value in quarter-note beats
func DurationBeats(name string) (float64, error) {
	v, ok := durations[name]
	if !ok {
		return 0, miss("duration", name)
	}
	return v, nil
}

// DurationNames returns the note value names ordered from longest to shortest
func DurationNames() []string {
	names := sortedKeys(durations)
	sort.SliceStable(names, func(i, j int) bool {
		return durations[names[i]] > durations[names[j]]
	})
	return names
}
