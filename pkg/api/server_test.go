package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/james-see/midipatterns/pkg/export"
	"github.com/james-see/midipatterns/pkg/generator"
	"github.com/james-see/midipatterns/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func do(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := NewRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

type generateResponse struct {
	ID        string            `json:"id"`
	Generator string            `json:"generator"`
	Tracks    []generator.Track `json:"tracks"`
	Misses    []string          `json:"misses"`
}

func TestHealth(t *testing.T) {
	w := do(t, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDPassthrough(t *testing.T) {
	r := NewRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	w := do(t, http.MethodOptions, "/api/v1/generators")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestListGenerators(t *testing.T) {
	w := do(t, http.MethodGet, "/api/v1/generators")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Generators []struct {
			Name      string `json:"name"`
			Available bool   `json:"available"`
		} `json:"generators"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Generators, 4)
	assert.Equal(t, "drums", body.Generators[0].Name)
	assert.Equal(t, "velocity-triad", body.Generators[3].Name)
	assert.False(t, body.Generators[3].Available)
}

func TestGenerateJSON(t *testing.T) {
	w := do(t, http.MethodPost, "/api/v1/generate/drums?bars=4")
	require.Equal(t, http.StatusOK, w.Code)

	var body generateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "drums", body.Generator)
	assert.NotEmpty(t, body.ID)
	require.Len(t, body.Tracks, 3)
	assert.Equal(t, "hihat", body.Tracks[0].Name)
	assert.Len(t, body.Tracks[0].Events, 32)
	assert.Len(t, body.Tracks[1].Events, 4)
	assert.Len(t, body.Tracks[2].Events, 4)
	assert.Empty(t, body.Misses)
}

func TestGenerateMIDI(t *testing.T) {
	w := do(t, http.MethodPost, "/api/v1/generate/arpeggio?format=midi")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/midi", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "arpeggio.mid")

	decoded, err := export.DecodeSMF(w.Body.Bytes())
	require.NoError(t, err)
	assert.Len(t, decoded.Events, 32)
}

func TestGenerateMIDINeedsTrack(t *testing.T) {
	w := do(t, http.MethodPost, "/api/v1/generate/drums?format=midi")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "hihat")

	w = do(t, http.MethodPost, "/api/v1/generate/drums?format=midi&track=kick")
	require.Equal(t, http.StatusOK, w.Code)
	decoded, err := export.DecodeSMF(w.Body.Bytes())
	require.NoError(t, err)
	assert.Len(t, decoded.Events, 32)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code int
	}{
		{"unknown generator", "/api/v1/generate/bassline", http.StatusNotFound},
		{"placeholder", "/api/v1/generate/velocity-triad", http.StatusNotImplemented},
		{"bad bars", "/api/v1/generate/drums?bars=x", http.StatusBadRequest},
		{"zero bars", "/api/v1/generate/drums?bars=0", http.StatusBadRequest},
		{"too many bars", "/api/v1/generate/drums?bars=200000", http.StatusBadRequest},
		{"too many beats", "/api/v1/generate/chords?beats=1000", http.StatusBadRequest},
		{"bad format", "/api/v1/generate/chords?format=wav", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, http.MethodPost, tt.path)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestGenerateBodyWithoutTracks(t *testing.T) {
	g := generator.NewArpeggio(generator.DefaultParams())
	g.Root = "H"
	res, err := g.Generate()
	require.NoError(t, err)
	require.Nil(t, res.Tracks)

	data, err := json.Marshal(generateBody("req-1", g.Name(), res))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, `[]`, string(raw["tracks"]))

	var body generateResponse
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "arpeggio", body.Generator)
	assert.Len(t, body.Misses, 1)
}

func TestTheoryEndpoints(t *testing.T) {
	w := do(t, http.MethodGet, "/api/v1/theory/notes")
	require.Equal(t, http.StatusOK, w.Code)
	var notes struct {
		Notes []struct {
			Name     string `json:"name"`
			Semitone int    `json:"semitone"`
			Pitch    int    `json:"pitch"`
		} `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	require.Len(t, notes.Notes, 12)
	assert.Equal(t, "F#", notes.Notes[6].Name)
	assert.Equal(t, 66, notes.Notes[6].Pitch)

	w = do(t, http.MethodGet, "/api/v1/theory/chords")
	require.Equal(t, http.StatusOK, w.Code)
	var chords struct {
		Chords map[string][]int `json:"chords"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chords))
	assert.Equal(t, []int{0, 4, 7, 11}, chords.Chords["Major 7th"])

	w = do(t, http.MethodGet, "/api/v1/theory/inversions")
	require.Equal(t, http.StatusOK, w.Code)
	var inv struct {
		Inversions map[string]map[string][]int `json:"inversions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	assert.Equal(t, []int{7, 12, 15}, inv.Inversions["Minor"]["Inversion 2"])

	for _, path := range []string{"/api/v1/theory/durations", "/api/v1/theory/scales"} {
		w = do(t, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
