// Package api provides the REST API server for midipatterns
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/james-see/midipatterns/pkg/config"
	"github.com/james-see/midipatterns/pkg/export"
	"github.com/james-see/midipatterns/pkg/generator"
	"github.com/james-see/midipatterns/pkg/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title midipatterns API
// @version 1.0
// @description API for generating drum, chord and arpeggio MIDI patterns
// @host localhost:8080
// @BasePath /api/v1

// Server holds the handlers' shared configuration
type Server struct {
	cfg *config.Config
}

// NewRouter builds the gin engine with all routes registered
func NewRouter(cfg *config.Config) *gin.Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{cfg: cfg}

	r := gin.New()
	if gin.Mode() != gin.TestMode {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(corsMiddleware())

	r.GET("/health", healthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/generators", s.listGenerators)
		v1.POST("/generate/:name", s.handleGenerate)

		theory := v1.Group("/theory")
		theory.GET("/notes", listNotes)
		theory.GET("/chords", listChords)
		theory.GET("/inversions", listInversions)
		theory.GET("/durations", listDurations)
		theory.GET("/scales", listScales)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// StartServer starts the API server on the specified port
func StartServer(port int, cfg *config.Config) error {
	r := NewRouter(cfg)
	logger.Info("api server listening", logger.Fields{"port": port})
	return r.Run(fmt.Sprintf(":%d", port))
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "midipatterns",
	})
}

// listGenerators godoc
// @Summary List generators
// @Description Returns the generator roster in run order
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]map[string]interface{}
// @Router /api/v1/generators [get]
func (s *Server) listGenerators(c *gin.Context) {
	reg := generator.NewRegistry(s.cfg.Params())
	out := make([]gin.H, 0)
	for _, e := range reg.Entries() {
		out = append(out, gin.H{
			"name":        e.Generator.Name(),
			"description": e.Generator.Description(),
			"available":   e.Available,
		})
	}
	c.JSON(http.StatusOK, gin.H{"generators": out})
}

// handleGenerate godoc
// @Summary Run a generator
// @Description Runs a generator and returns its tracks as JSON, or one track as a MIDI file
// @Tags generate
// @Produce json
// @Produce audio/midi
// @Param name path string true "Generator name (drums, chords, arpeggio, velocity-triad)"
// @Param format query string false "json (default) or midi"
// @Param track query string false "Track to download when format=midi"
// @Param bars query int false "Number of bars"
// @Param beats query int false "Beats per bar"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 501 {object} map[string]string
// @Router /api/v1/generate/{name} [post]
func (s *Server) handleGenerate(c *gin.Context) {
	params := s.cfg.Params()
	if v := c.Query("bars"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bars must be an integer"})
			return
		}
		params.Bars = n
	}
	if v := c.Query("beats"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "beats must be an integer"})
			return
		}
		params.BeatsPerBar = n
	}
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := generator.NewRegistry(params).Get(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	res, err := entry.Generator.Generate()
	if errors.Is(err, generator.ErrNotImplemented) {
		c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logger.Error("generate failed", err, logger.Fields{"request_id": c.GetString("request_id")})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, generateBody(c.GetString("request_id"), entry.Generator.Name(), res))
	case "midi":
		s.writeMIDI(c, res)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or midi"})
	}
}

// generateBody renders a result as JSON, with empty lists instead of null
func generateBody(id, name string, res *generator.Result) gin.H {
	tracks := res.Tracks
	if tracks == nil {
		tracks = []generator.Track{}
	}
	misses := make([]string, len(res.Misses))
	for i, m := range res.Misses {
		misses[i] = m.Error()
	}
	return gin.H{
		"id":        id,
		"generator": name,
		"tracks":    tracks,
		"misses":    misses,
	}
}

func (s *Server) writeMIDI(c *gin.Context, res *generator.Result) {
	var track *generator.Track
	want := c.Query("track")
	for i := range res.Tracks {
		if (want == "" && len(res.Tracks) == 1) || res.Tracks[i].Name == want {
			track = &res.Tracks[i]
			break
		}
	}
	if track == nil {
		names := make([]string, len(res.Tracks))
		for i, tr := range res.Tracks {
			names[i] = tr.Name
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "select a track", "tracks": names})
		return
	}

	data, err := export.EncodeSMF(track.Name, track.Events, track.Channel, s.cfg.ExportOptions())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.mid", track.Name))
	c.Data(http.StatusOK, "audio/midi", data)
}
