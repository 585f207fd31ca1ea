package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"sitegantt/cmd/mockgen/engine"
	"sitegantt/internal/timeline"
)

func main() {
	scenario := flag.String("scenario", "steady", "Scenario to generate: steady, slipping, chaos")
	seed := flag.Int64("seed", 1, "Random seed; identical seeds produce identical snapshots")
	today := flag.String("today", "", "Reference date (YYYY-MM-DD). Default: today")
	name := flag.String("name", "", "Project name")
	outDir := flag.String("out", "./.cache", "Output directory for mock files")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Seed:     *seed,
		Name:     *name,
	}
	if *today != "" {
		t, ok := timeline.ParseDate(*today)
		if !ok {
			fmt.Fprintf(os.Stderr, "Invalid -today %q\n", *today)
			os.Exit(1)
		}
		cfg.Today = t
	}

	fmt.Printf("Generating scenario '%s' (seed %d) to %s...\n", cfg.Scenario, cfg.Seed, *outDir)

	path, err := engine.Save(*outDir, engine.Generate(cfg))
	if err != nil {
		fmt.Printf("Failed to save mock data: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done: %s\n", path)
}
