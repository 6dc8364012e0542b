package env

import (
	"fmt"
	"os"
	"strconv"

	"goldchip_backend/internal/config"
)

const (
	startingChipsEnvName = "STARTING_CHIPS"
	pityGrantEnvName     = "PITY_GRANT"

	defaultStartingChips = 1000
	defaultPityGrant     = 5
)

type gameConfig struct {
	startingChips int
	pityGrant     int
}

func NewGameConfig() (config.GameConfig, error) {
	startingChips, err := intFromEnv(startingChipsEnvName, defaultStartingChips)
	if err != nil {
		return nil, err
	}

	pityGrant, err := intFromEnv(pityGrantEnvName, defaultPityGrant)
	if err != nil {
		return nil, err
	}

	return &gameConfig{
		startingChips: startingChips,
		pityGrant:     pityGrant,
	}, nil
}

func intFromEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if len(raw) == 0 {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}

	return value, nil
}

func (cfg *gameConfig) StartingChips() int {
	return cfg.startingChips
}

func (cfg *gameConfig) PityGrant() int {
	return cfg.pityGrant
}
