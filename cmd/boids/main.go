package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-boids-screensaver/pkg/simulation"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON config file (validated against -schema)")
		schemaPath = flag.String("schema", "config.schema.json", "path to the config JSON schema")
		width      = flag.Float64("width", 0, "window width (overrides config)")
		height     = flag.Float64("height", 0, "window height (overrides config)")
		boids      = flag.Int("boids", 0, "number of boids (overrides config)")
		parallel   = flag.Bool("parallel", false, "use the parallel flock update")
		stats      = flag.Bool("stats", false, "show the performance overlay")
		trails     = flag.Bool("trails", false, "draw fading motion trails")
		dark       = flag.Bool("dark", false, "use the dark palette")
		noCat      = flag.Bool("nocat", false, "hide the cat companion")
		seed       = flag.Uint64("seed", 0, "RNG seed, 0 picks a random one")
		workers    = flag.Int("workers", 0, "parallel worker count, 0 means one per CPU")
	)
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configPath != "" {
		loaded, err := simulation.LoadConfig(*configPath, *schemaPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.WorldWidth = *width
		case "height":
			cfg.WorldHeight = *height
		case "boids":
			cfg.NumBoids = *boids
		case "parallel":
			cfg.UseParallel = *parallel
		case "stats":
			cfg.ShowStats = *stats
		case "trails":
			cfg.ShowTrails = *trails
		case "dark":
			cfg.DarkPalette = *dark
		case "nocat":
			cfg.ShowCat = !*noCat
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		}
	})

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids Screensaver")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(simulation.NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
