package simulation

import (
	"os"
	"path/filepath"
	"testing"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "worldWidth": { "type": "number", "minimum": 100 },
    "worldHeight": { "type": "number", "minimum": 100 },
    "numBoids": { "type": "integer", "minimum": 0, "maximum": 10000 },
    "maxSpeed": { "type": "number", "exclusiveMinimum": 0 },
    "maxForce": { "type": "number", "exclusiveMinimum": 0 },
    "separationRadius": { "type": "number", "minimum": 0 },
    "alignmentRadius": { "type": "number", "minimum": 0 },
    "cohesionRadius": { "type": "number", "minimum": 0 },
    "showStats": { "type": "boolean" },
    "showTrails": { "type": "boolean" },
    "darkPalette": { "type": "boolean" },
    "showCat": { "type": "boolean" },
    "useParallel": { "type": "boolean" },
    "workers": { "type": "integer", "minimum": 0 },
    "seed": { "type": "integer", "minimum": 0 }
  },
  "additionalProperties": false
}`

func writeTestFiles(t *testing.T, configJSON string) (configFile, schemaFile string) {
	t.Helper()
	dir := t.TempDir()
	configFile = filepath.Join(dir, "config.json")
	schemaFile = filepath.Join(dir, "config.schema.json")

	if err := os.WriteFile(configFile, []byte(configJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(schemaFile, []byte(testSchema), 0o644); err != nil {
		t.Fatal(err)
	}
	return configFile, schemaFile
}

func TestLoadConfig_Valid(t *testing.T) {
	configFile, schemaFile := writeTestFiles(t, `{
		"worldWidth": 800,
		"worldHeight": 600,
		"numBoids": 42,
		"useParallel": true,
		"seed": 99
	}`)

	cfg, err := LoadConfig(configFile, schemaFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.WorldWidth != 800 || cfg.WorldHeight != 600 {
		t.Errorf("world = %vx%v; want 800x600", cfg.WorldWidth, cfg.WorldHeight)
	}
	if cfg.NumBoids != 42 {
		t.Errorf("NumBoids = %d; want 42", cfg.NumBoids)
	}
	if !cfg.UseParallel {
		t.Error("UseParallel not loaded")
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d; want 99", cfg.Seed)
	}
}

func TestLoadConfig_OmittedKeysKeepDefaults(t *testing.T) {
	configFile, schemaFile := writeTestFiles(t, `{"numBoids": 10}`)

	cfg, err := LoadConfig(configFile, schemaFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	d := DefaultConfig()
	if cfg.MaxSpeed != d.MaxSpeed {
		t.Errorf("MaxSpeed = %v; want default %v", cfg.MaxSpeed, d.MaxSpeed)
	}
	if cfg.CohesionRadius != d.CohesionRadius {
		t.Errorf("CohesionRadius = %v; want default %v", cfg.CohesionRadius, d.CohesionRadius)
	}
	if cfg.NumBoids != 10 {
		t.Errorf("NumBoids = %d; want 10", cfg.NumBoids)
	}
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"negative boids", `{"numBoids": -5}`},
		{"zero max speed", `{"maxSpeed": 0}`},
		{"tiny world", `{"worldWidth": 10}`},
		{"unknown key", `{"boidCount": 10}`},
		{"wrong type", `{"useParallel": "yes"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			configFile, schemaFile := writeTestFiles(t, tc.json)
			if _, err := LoadConfig(configFile, schemaFile); err == nil {
				t.Errorf("LoadConfig accepted %s", tc.json)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, schemaFile := writeTestFiles(t, `{}`)
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"), schemaFile); err == nil {
		t.Error("LoadConfig accepted a missing config file")
	}
}
