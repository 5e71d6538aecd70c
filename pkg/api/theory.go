package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/james-see/midipatterns/pkg/theory"
)

// listNotes godoc
// @Summary List note names
// @Tags theory
// @Produce json
// @Success 200 {object} map[string][]map[string]interface{}
// @Router /api/v1/theory/notes [get]
func listNotes(c *gin.Context) {
	notes := make([]gin.H, 0, len(theory.NoteNames))
	for _, n := range theory.NoteNames {
		semitone, _ := theory.Semitone(n)
		pitch, _ := theory.AbsolutePitch(n)
		notes = append(notes, gin.H{"name": n, "semitone": semitone, "pitch": pitch})
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// listChords godoc
// @Summary List chord templates
// @Tags theory
// @Produce json
// @Success 200 {object} map[string]map[string][]int
// @Router /api/v1/theory/chords [get]
func listChords(c *gin.Context) {
	chords := make(map[string][]int)
	for _, n := range theory.ChordNames() {
		chords[n], _ = theory.ChordIntervals(n)
	}
	c.JSON(http.StatusOK, gin.H{"chords": chords})
}

// listInversions godoc
// @Summary List chord inversions
// @Tags theory
// @Produce json
// @Success 200 {object} map[string]map[string]map[string][]int
// @Router /api/v1/theory/inversions [get]
func listInversions(c *gin.Context) {
	out := make(map[string]map[string][]int)
	for _, chordType := range theory.InversionChordTypes() {
		names, _ := theory.InversionNames(chordType)
		voicings := make(map[string][]int, len(names))
		for _, n := range names {
			voicings[n], _ = theory.InversionIntervals(chordType, n)
		}
		out[chordType] = voicings
	}
	c.JSON(http.StatusOK, gin.H{"inversions": out})
}

// listDurations godoc
// @Summary List note durations in beats
// @Tags theory
// @Produce json
// @Success 200 {object} map[string][]map[string]interface{}
// @Router /api/v1/theory/durations [get]
func listDurations(c *gin.Context) {
	out := make([]gin.H, 0)
	for _, n := range theory.DurationNames() {
		beats, _ := theory.DurationBeats(n)
		out = append(out, gin.H{"name": n, "beats": beats})
	}
	c.JSON(http.StatusOK, gin.H{"durations": out})
}

// listScales godoc
// @Summary List scales
// @Tags theory
// @Produce json
// @Success 200 {object} map[string]map[string][]int
// @Router /api/v1/theory/scales [get]
func listScales(c *gin.Context) {
	out := make(map[string][]int)
	for _, n := range theory.ScaleNames() {
		out[n], _ = theory.ScalePitches(n)
	}
	c.JSON(http.StatusOK, gin.H{"scales": out})
}
