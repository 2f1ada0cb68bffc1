package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/flock"
)

type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumBoids int `json:"numBoids"`

	// Physics
	MaxSpeed float64 `json:"maxSpeed"`
	MaxForce float64 `json:"maxForce"`

	// Interaction Radii
	SeparationRadius float64 `json:"separationRadius"`
	AlignmentRadius  float64 `json:"alignmentRadius"`
	CohesionRadius   float64 `json:"cohesionRadius"`

	// Rendering
	ShowStats   bool `json:"showStats"`
	ShowTrails  bool `json:"showTrails"`
	DarkPalette bool `json:"darkPalette"`
	ShowCat     bool `json:"showCat"`

	// Engine
	UseParallel bool   `json:"useParallel"`
	Workers     int    `json:"workers"` // 0 means one per CPU
	Seed        uint64 `json:"seed"`    // 0 means a random seed
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:       1024,
		WorldHeight:      768,
		NumBoids:         150,
		MaxSpeed:         4.0,
		MaxForce:         0.1,
		SeparationRadius: 25.0,
		AlignmentRadius:  50.0,
		CohesionRadius:   50.0,
		ShowStats:        false,
		ShowTrails:       false,
		DarkPalette:      false,
		ShowCat:          true,
		UseParallel:      false,
		Workers:          0,
		Seed:             0,
	}
}

// FlockParams converts the relevant fields into steering parameters.
func (c *Config) FlockParams() flock.Params {
	return flock.Params{
		MaxSpeed:         c.MaxSpeed,
		MaxForce:         c.MaxForce,
		SeparationRadius: c.SeparationRadius,
		AlignmentRadius:  c.AlignmentRadius,
		CohesionRadius:   c.CohesionRadius,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Unmarshal over the defaults so that omitted keys keep sane values.
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
