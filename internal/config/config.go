// Package config provides YAML-based configuration loading for the 2048
// game, its leaderboard, storage location and SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all configuration for the game and its surfaces.
type Config struct {
	Game        GameConfig        `yaml:"game"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Storage     StorageConfig     `yaml:"storage"`
	Server      ServerConfig      `yaml:"server"`
}

// GameConfig defines tile spawn probabilities.
type GameConfig struct {
	DoubleSpawnProb    float64 `yaml:"double_spawn_prob"`     // Chance a spawn places two tiles
	TwoProb            float64 `yaml:"two_prob"`              // Chance a new tile is a 2 (else 4)
	ThirdStartTileProb float64 `yaml:"third_start_tile_prob"` // Chance a new game starts with 3 tiles
}

// LeaderboardConfig defines leaderboard size and naming.
type LeaderboardConfig struct {
	Capacity    int    `yaml:"capacity"`
	DefaultName string `yaml:"default_name" env:"T2048_PLAYER_NAME"`
}

// StorageConfig defines where game state is persisted.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"T2048_DB"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address" env:"T2048_SSH_ADDR"`
	HostKeyPath string        `yaml:"host_key" env:"T2048_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"T2048_IDLE_TIMEOUT"`
}

// Validate checks value ranges.
func (c Config) Validate() error {
	probs := []struct {
		name string
		v    float64
	}{
		{"game.double_spawn_prob", c.Game.DoubleSpawnProb},
		{"game.two_prob", c.Game.TwoProb},
		{"game.third_start_tile_prob", c.Game.ThirdStartTileProb},
	}
	for _, p := range probs {
		if p.v < 0 || p.v > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	if c.Leaderboard.Capacity <= 0 {
		return fmt.Errorf("%w: leaderboard.capacity must be positive, got %d", ErrInvalidConfig, c.Leaderboard.Capacity)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}
