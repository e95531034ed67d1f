// Package config loads YAML configuration for the dungeonforge tools:
// generation defaults, named parameter presets, and preview server settings.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
)

// Config is the top-level configuration.
type Config struct {
	Server   ServerConfig                `yaml:"server"`
	Defaults GenerationConfig            `yaml:"defaults"`
	Presets  map[string]GenerationConfig `yaml:"presets"`
}

// ServerConfig holds preview server settings.
type ServerConfig struct {
	// Address is the listen address, e.g. ":8080".
	Address string `yaml:"address"`

	// AllowedOrigins lists origins allowed to open the playback socket.
	// Empty enforces same-origin; "*" allows all.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize is the maximum inbound WebSocket message size in bytes.
	MaxMessageSize int64 `yaml:"max_message_size"`

	// StepIntervalMS is the playback delay between streamed steps.
	StepIntervalMS int `yaml:"step_interval_ms"`
}

// GenerationConfig mirrors the generator's request parameters for YAML.
type GenerationConfig struct {
	Algorithm          string  `yaml:"algorithm"`
	Width              int     `yaml:"width"`
	Height             int     `yaml:"height"`
	MinRoomSize        int     `yaml:"min_room_size"`
	MaxRoomSize        int     `yaml:"max_room_size"`
	FillProbability    float64 `yaml:"fill_probability"`
	Iterations         int     `yaml:"iterations"`
	TargetFloorPercent float64 `yaml:"target_floor_percent"`
}

// Request converts the config block into a generation request with the
// given seed. Zero-valued fields fall through to the generator's defaults.
func (g GenerationConfig) Request(seed string) dungeon.Request {
	return dungeon.Request{
		Seed:               seed,
		Algorithm:          dungeon.Algorithm(g.Algorithm),
		Width:              g.Width,
		Height:             g.Height,
		MinRoomSize:        g.MinRoomSize,
		MaxRoomSize:        g.MaxRoomSize,
		FillProbability:    g.FillProbability,
		Iterations:         g.Iterations,
		TargetFloorPercent: g.TargetFloorPercent,
	}
}

// DefaultConfig returns the built-in configuration: standard generation
// parameters plus three sizing presets.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address:        ":8080",
			AllowedOrigins: []string{},
			MaxMessageSize: 4096,
			StepIntervalMS: 150,
		},
		Defaults: GenerationConfig{
			Algorithm:          "bsp",
			Width:              50,
			Height:             40,
			MinRoomSize:        4,
			MaxRoomSize:        10,
			FillProbability:    0.45,
			Iterations:         4,
			TargetFloorPercent: 0.4,
		},
		Presets: map[string]GenerationConfig{
			"small":    {Width: 30, Height: 20},
			"standard": {Width: 50, Height: 40},
			"large":    {Width: 80, Height: 60},
		},
	}
}

// LoadConfig reads configuration from a YAML file. A missing file yields
// defaults; a malformed file yields defaults plus the parse error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Preset resolves a named preset layered over the defaults: preset fields
// that are set override the default block.
func (c *Config) Preset(name string) (GenerationConfig, bool) {
	preset, ok := c.Presets[name]
	if !ok {
		return c.Defaults, false
	}

	out := c.Defaults
	if preset.Algorithm != "" {
		out.Algorithm = preset.Algorithm
	}
	if preset.Width > 0 {
		out.Width = preset.Width
	}
	if preset.Height > 0 {
		out.Height = preset.Height
	}
	if preset.MinRoomSize > 0 {
		out.MinRoomSize = preset.MinRoomSize
	}
	if preset.MaxRoomSize > 0 {
		out.MaxRoomSize = preset.MaxRoomSize
	}
	if preset.FillProbability > 0 {
		out.FillProbability = preset.FillProbability
	}
	if preset.Iterations > 0 {
		out.Iterations = preset.Iterations
	}
	if preset.TargetFloorPercent > 0 {
		out.TargetFloorPercent = preset.TargetFloorPercent
	}
	return out, true
}

// IsOriginAllowed checks a WebSocket origin against the configured list.
// An empty list enforces same-origin.
func (s *ServerConfig) IsOriginAllowed(origin, requestHost string) bool {
	if len(s.AllowedOrigins) == 0 {
		return isSameOrigin(origin, requestHost)
	}
	for _, allowed := range s.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

func isSameOrigin(origin, requestHost string) bool {
	if origin == "" {
		return true // non-browser client
	}
	originHost := origin
	if idx := strings.Index(origin, "://"); idx != -1 {
		originHost = origin[idx+3:]
	}
	return originHost == requestHost
}
