package env

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"goldchip_backend/internal/config"
	"goldchip_backend/internal/game/slots"
)

type slotsYAML struct {
	Slots struct {
		Symbols  []slots.Symbol `yaml:"symbols"`
		Paytable slots.Paytable `yaml:"paytable"`
	} `yaml:"slots"`
}

type slotsConfig struct {
	symbols  []slots.Symbol
	paytable slots.Paytable
}

// NewSlotsConfigFromYAML loads the slot machine math from a YAML file. A
// missing file falls back to the built-in machine.
func NewSlotsConfigFromYAML(path string) (config.SlotsConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &slotsConfig{
				symbols:  slots.DefaultSymbols(),
				paytable: slots.DefaultPaytable(),
			}, nil
		}
		return nil, fmt.Errorf("read slots config: %w", err)
	}

	var parsed slotsYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse slots config: %w", err)
	}

	cfg := &slotsConfig{
		symbols:  parsed.Slots.Symbols,
		paytable: parsed.Slots.Paytable,
	}
	if len(cfg.symbols) == 0 {
		cfg.symbols = slots.DefaultSymbols()
	}
	if len(cfg.paytable.ThreeMatch) == 0 || len(cfg.paytable.TwoMatch) == 0 {
		cfg.paytable = slots.DefaultPaytable()
	}

	return cfg, nil
}

func (cfg *slotsConfig) Symbols() []slots.Symbol {
	return cfg.symbols
}

func (cfg *slotsConfig) Paytable() slots.Paytable {
	return cfg.paytable
}
