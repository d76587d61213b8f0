package inherent

import (
	"github.com/filament-chain/filament/model/relay"
	stateinherent "github.com/filament-chain/filament/state/inherent"
)

// Config is the configurable options for the inherent builder.
type Config struct {
	// MaxWeight is the weight budget available to inherent data within one
	// block. Optimistic data beyond this budget is dropped by randomized
	// selection before submission.
	MaxWeight relay.Weight
}

func DefaultConfig() Config {
	return Config{
		MaxWeight: stateinherent.InherentClaimedWeight,
	}
}

// Opt is an option function to set configurable options of the builder.
type Opt func(config *Config)

// WithMaxWeight sets the weight budget for inherent data.
func WithMaxWeight(maxWeight relay.Weight) Opt {
	return func(config *Config) {
		config.MaxWeight = maxWeight
	}
}
