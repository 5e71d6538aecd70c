// Package config loads generation settings from YAML, .env and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/james-see/midipatterns/pkg/export"
	"github.com/james-see/midipatterns/pkg/generator"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "MIDIPATTERNS_"

// DrumsConfig sets the drum lane pitches
type DrumsConfig struct {
	HiHat int `yaml:"hihat"`
	Snare int `yaml:"snare"`
	Kick  int `yaml:"kick"`
}

// ChannelsConfig sets the MIDI channels (0-15)
type ChannelsConfig struct {
	Drums  uint8 `yaml:"drums"`
	Chords uint8 `yaml:"chords"`
}

// Config is the main configuration structure
type Config struct {
	Bars        int            `yaml:"bars"`
	BeatsPerBar int            `yaml:"beatsPerBar"`
	Velocity    int            `yaml:"velocity"`
	Tempo       float64        `yaml:"tempo"`
	Gate        float64        `yaml:"gate"`
	OutputDir   string         `yaml:"outputDir,omitempty"`
	Drums       DrumsConfig    `yaml:"drums"`
	Channels    ChannelsConfig `yaml:"channels"`
}

// Default returns the stock settings
func Default() *Config {
	p := generator.DefaultParams()
	o := export.DefaultOptions()
	return &Config{
		Bars:        p.Bars,
		BeatsPerBar: p.BeatsPerBar,
		Velocity:    p.Velocity,
		Tempo:       o.Tempo,
		Gate:        o.Gate,
		Drums: DrumsConfig{
			HiHat: p.HiHatNote,
			Snare: p.SnareNote,
			Kick:  p.KickNote,
		},
		Channels: ChannelsConfig{
			Drums:  p.DrumChannel,
			Chords: p.ChordChannel,
		},
	}
}

// Load reads defaults, then the YAML file at path (if non-empty), then a
// .env file in the working directory, then MIDIPATTERNS_* variables
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"BARS":          &c.Bars,
		"BEATS_PER_BAR": &c.BeatsPerBar,
		"VELOCITY":      &c.Velocity,
		"HIHAT_NOTE":    &c.Drums.HiHat,
		"SNARE_NOTE":    &c.Drums.Snare,
		"KICK_NOTE":     &c.Drums.Kick,
	}
	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
	}

	floats := map[string]*float64{
		"TEMPO": &c.Tempo,
		"GATE":  &c.Gate,
	}
	for key, dst := range floats {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = f
	}

	channels := map[string]*uint8{
		"DRUM_CHANNEL":  &c.Channels.Drums,
		"CHORD_CHANNEL": &c.Channels.Chords,
	}
	for key, dst := range channels {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = uint8(n)
	}

	if v, ok := lookup(EnvPrefix + "OUTPUT_DIR"); ok {
		c.OutputDir = v
	}
	return nil
}

// Validate rejects settings that would produce invalid MIDI data
func (c *Config) Validate() error {
	if c.Tempo <= 0 {
		return fmt.Errorf("tempo must be positive, got %v", c.Tempo)
	}
	if c.Gate <= 0 {
		return fmt.Errorf("gate must be positive, got %v", c.Gate)
	}
	return c.Params().Validate()
}

// Params converts the config into generator parameters
func (c *Config) Params() generator.Params {
	return generator.Params{
		Bars:         c.Bars,
		BeatsPerBar:  c.BeatsPerBar,
		HiHatNote:    c.Drums.HiHat,
		SnareNote:    c.Drums.Snare,
		KickNote:     c.Drums.Kick,
		Velocity:     c.Velocity,
		DrumChannel:  c.Channels.Drums,
		ChordChannel: c.Channels.Chords,
	}
}

// ExportOptions converts the config into SMF encoding options
func (c *Config) ExportOptions() export.Options {
	return export.Options{
		Tempo:      c.Tempo,
		Gate:       c.Gate,
		Resolution: export.DefaultOptions().Resolution,
	}
}
