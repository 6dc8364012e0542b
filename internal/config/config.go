package config

import (
	"time"

	"github.com/joho/godotenv"

	"goldchip_backend/internal/game/slots"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// GameConfig carries the chip economy constants.
type GameConfig interface {
	StartingChips() int
	PityGrant() int
}

// SlotsConfig is the slot machine math: symbol weights and paytable.
type SlotsConfig interface {
	Symbols() []slots.Symbol
	Paytable() slots.Paytable
}
