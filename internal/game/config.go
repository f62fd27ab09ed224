/*
Package game
File: config.go
Description:
    Loads the static server configuration from YAML.
    The configuration covers the network endpoint, the shared tile count,
    the stats tuning constants, and an optional biome catalog override.

    Everything here is read once at startup and treated as immutable
    afterwards, so no lock is needed around it.
*/

package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig describes the network endpoint.
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// Addr renders the host:port pair for http.ListenAndServe.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Config is the full YAML document.
type Config struct {
	Server ServerConfig `yaml:"server" json:"server"`

	// TotalTiles is the shared constant between server and all clients.
	// Tile indices are only meaningful when both sides agree on it.
	TotalTiles int `yaml:"total_tiles" json:"total_tiles"`

	Stats StatsTuning `yaml:"stats" json:"stats"`

	// Biomes, when present, replaces the built-in catalog wholesale.
	Biomes []Biome `yaml:"biomes" json:"biomes"`
}

// DefaultConfig returns the built-in configuration: the classic 42-tile
// hexasphere, the original tuning constants, and the default catalog.
func DefaultConfig() Config {
	return Config{
		Server:     ServerConfig{Host: "0.0.0.0", Port: 8081},
		TotalTiles: 42,
		Stats:      DefaultStatsTuning(),
		Biomes:     DefaultBiomes(),
	}
}

// LoadConfig reads the YAML file at path and overlays it on the defaults.
// A missing file is not an error: the server boots on built-in defaults.
// A present-but-invalid file is fatal to the caller.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if cfg.TotalTiles <= 0 {
		return cfg, fmt.Errorf("config %s: total_tiles must be positive, got %d", path, cfg.TotalTiles)
	}
	if len(cfg.Biomes) == 0 {
		cfg.Biomes = DefaultBiomes()
	}

	return cfg, nil
}
