package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration.
// It matches defaults/t2048.yaml and is used if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			DoubleSpawnProb:    0.4,
			TwoProb:            0.9,
			ThirdStartTileProb: 0.4,
		},
		Leaderboard: LeaderboardConfig{
			Capacity:    10,
			DefaultName: "Player",
		},
		Storage: StorageConfig{
			DBPath: "~/.arcade/t2048.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
