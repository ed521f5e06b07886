package main

import (
	"encoding/json"
	"os"
)

// Config holds every tuning constant of the simulation. Values are fixed for
// a run but can be saved to and reloaded from disk with the S/L keys.
type Config struct {
	Gravity           float64 // downward acceleration, units/s^2
	Damping           float64 // velocity scale applied on wall bounce
	Attraction        float64 // inverse-square term of the pair force
	Repulsion         float64 // inverse-distance term of the pair force
	MaxSpeed          float64 // hard cap on velocity magnitude
	InteractionRadius float64 // pair force cutoff distance
	ConnectionRadius  float64 // proximity line cutoff distance
	InitialParticles  int
	BurstSize         int     // particles per click
	BurstRadius       float64 // max offset of burst particles from the cursor
	MinRadius         float64 // smallest spawnable particle radius
	MaxRadiusSpread   float64 // burst radius is MinRadius + [0, MaxRadiusSpread)
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Gravity:           9.81,
		Damping:           0.99,
		Attraction:        50.0,
		Repulsion:         10.0,
		MaxSpeed:          500.0,
		InteractionRadius: 100.0,
		ConnectionRadius:  100.0,
		InitialParticles:  100,
		BurstSize:         10,
		BurstRadius:       50.0,
		MinRadius:         3.0,
		MaxRadiusSpread:   5.0,
	}
}

// Save writes the config to a JSON file.
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadConfig reads a config previously written by Save.
func LoadConfig(filename string) (Config, error) {
	var c Config
	data, err := os.ReadFile(filename)
	if err != nil {
		return c, err
	}
	err = json.Unmarshal(data, &c)
	return c, err
}
