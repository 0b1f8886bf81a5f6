package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/emberhall/labyrinth/internal/content"
	"github.com/emberhall/labyrinth/internal/game"
	"github.com/emberhall/labyrinth/internal/labyrinth"
	"github.com/emberhall/labyrinth/internal/logger"
	"github.com/emberhall/labyrinth/internal/maprender"
	"github.com/emberhall/labyrinth/internal/save"
)

func main() {
	chambers := flag.Int("chambers", 13, "Number of chambers")
	topology := flag.String("topology", "hybrid", "Topology: linear, circular, tree, grid, random, hybrid")
	connectivity := flag.Float64("connectivity", 0.3, "Extra connection density (0.0 to 1.0)")
	minPath := flag.Int("min-path", 5, "Minimum start-to-exit path length")
	seed := flag.Int64("seed", 0, "Generation seed (default: random based on current time)")
	difficulty := flag.Int("difficulty", 5, "Challenge difficulty (1 to 10)")
	catalogFile := flag.String("catalog", "", "Path to chamber content YAML file (empty for built-in content)")
	outputFile := flag.String("output", "", "Write the labyrinth as a YAML snapshot (empty for none)")
	showMap := flag.Bool("map", true, "Print an ASCII map of the result")
	flag.Parse()

	logger.Initialize(logger.DefaultConfig())

	topo, err := labyrinth.ParseTopology(*topology)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := labyrinth.DefaultConfig()
	cfg.ChamberCount = *chambers
	cfg.Topology = topo
	cfg.Connectivity = *connectivity
	cfg.MinPathLength = *minPath
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	catalog := content.DefaultCatalog()
	if *catalogFile != "" {
		catalog, err = content.LoadCatalog(*catalogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}
	}

	nav, usedSeed, err := game.BuildWorld(cfg, catalog, *difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
		os.Exit(1)
	}

	graph := nav.Graph()
	fmt.Printf("Generated %d chambers (%s topology, seed %d)\n",
		graph.ChamberCount(), topo, usedSeed)
	fmt.Printf("Connections: %d\n", graph.EdgeCount())

	if *showMap {
		views := make(map[int]maprender.ChamberView, graph.ChamberCount())
		for _, id := range graph.ChamberIDs() {
			views[id] = maprender.ChamberView{
				ID:          id,
				Connections: graph.Connections(id),
			}
		}
		fmt.Println()
		fmt.Println(maprender.Render(views, labyrinth.StartChamber, labyrinth.StartChamber))
	}

	if *outputFile != "" {
		snapshot := save.BuildSnapshot(nav, usedSeed, nil)
		if err := save.WriteSnapshotFile(*outputFile, snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Snapshot written to %s\n", *outputFile)
	}
}
