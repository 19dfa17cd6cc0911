package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings a game session accepts at start.
type Config struct {
	PlayerCount        int  `toml:"player_count"`
	AceHigh            bool `toml:"ace_high"`
	TwoHigh            bool `toml:"two_high"`
	TerminateRank      int  `toml:"terminate_rank"`
	RevolutionsEnabled bool `toml:"revolutions_enabled"`
	// SortDescending flips the display sort of dealt hands; promoted aces
	// and twos stay at the tail either way.
	SortDescending bool `toml:"sort_descending"`
}

// Default returns the stock table settings: four players, aces and twos
// promoted, eights clear the pile, revolutions on.
func Default() Config {
	return Config{
		PlayerCount:        4,
		AceHigh:            true,
		TwoHigh:            true,
		TerminateRank:      8,
		RevolutionsEnabled: true,
	}
}

// Load reads a TOML config file, with defaults applied for omitted fields.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read game config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse game config: %w", err)
	}
	return cfg, nil
}

// Validate checks the config against the ranges a session supports.
func (c Config) Validate() error {
	if c.PlayerCount < 2 || c.PlayerCount > 7 {
		return fmt.Errorf("player_count %d outside supported range 2..7", c.PlayerCount)
	}
	if c.TerminateRank < 1 || c.TerminateRank > 15 {
		return fmt.Errorf("terminate_rank %d is not a valid effective rank", c.TerminateRank)
	}
	return nil
}
