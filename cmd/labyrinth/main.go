package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/emberhall/labyrinth/internal/config"
	"github.com/emberhall/labyrinth/internal/content"
	"github.com/emberhall/labyrinth/internal/game"
	"github.com/emberhall/labyrinth/internal/logger"
	"github.com/emberhall/labyrinth/internal/save"
)

// terminalClient adapts stdin/stdout to the game engine's line
// interface.
type terminalClient struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newTerminalClient() *terminalClient {
	return &terminalClient{
		scanner: bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
	}
}

func (c *terminalClient) ReadLine() (string, error) {
	fmt.Fprint(c.out, "> ")
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

func (c *terminalClient) WriteLine(message string) error {
	_, err := fmt.Fprintln(c.out, message)
	return err
}

func main() {
	configFile := flag.String("config", "data/labyrinth.yaml", "Path to game config YAML file")
	catalogFile := flag.String("catalog", "", "Path to chamber content YAML file (empty for built-in content)")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	seed := flag.Int64("seed", 0, "Generation seed (default: random based on current time)")
	chambers := flag.Int("chambers", 0, "Number of chambers (0 uses config value)")
	topology := flag.String("topology", "", "Topology: linear, circular, tree, grid, random, hybrid (empty uses config value)")
	noSave := flag.Bool("nosave", false, "Disable saved games")
	flag.Parse()

	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Config file could not be parsed, using defaults", "path", *configFile, "error", err)
	}

	if *seed != 0 {
		cfg.Generation.Seed = *seed
	}
	if *chambers != 0 {
		cfg.Generation.ChamberCount = *chambers
	}
	if *topology != "" {
		cfg.Generation.Topology = *topology
	}

	gen, err := cfg.GenerationParams()
	if err != nil {
		log.Fatalf("Invalid generation settings: %v", err)
	}

	catalog := content.DefaultCatalog()
	if *catalogFile != "" {
		catalog, err = content.LoadCatalog(*catalogFile)
		if err != nil {
			log.Fatalf("Failed to load content catalog: %v", err)
		}
	}

	var store *save.Store
	if !*noSave {
		store, err = openStore(cfg)
		if err != nil {
			logger.Warning("Saved games unavailable", "error", err)
		} else {
			defer store.Close()
		}
	}

	nav, worldSeed, err := game.BuildWorld(gen, catalog, cfg.Generation.Difficulty)
	if err != nil {
		log.Fatalf("Failed to build labyrinth: %v", err)
	}

	session := game.NewSession(nav, newTerminalClient(), store, worldSeed, cfg.Generation.Difficulty)
	if err := session.Run(); err != nil && err != io.EOF {
		log.Fatalf("Session error: %v", err)
	}
}

func openStore(cfg *config.GameConfig) (*save.Store, error) {
	switch cfg.Save.Driver {
	case "postgres":
		return save.OpenPostgres(cfg.Save.DSN)
	default:
		return save.OpenSQLite(cfg.Save.Path)
	}
}
