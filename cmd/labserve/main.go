package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/emberhall/labyrinth/internal/config"
	"github.com/emberhall/labyrinth/internal/content"
	"github.com/emberhall/labyrinth/internal/logger"
	"github.com/emberhall/labyrinth/internal/save"
	"github.com/emberhall/labyrinth/internal/server"
)

const bcryptCost = 12

func main() {
	addr := flag.String("addr", ":4443", "WebSocket listen address")
	configFile := flag.String("config", "data/labyrinth.yaml", "Path to game config YAML file")
	catalogFile := flag.String("catalog", "", "Path to chamber content YAML file (empty for built-in content)")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	hashPassword := flag.String("hash-password", "", "Print the bcrypt hash for an access password and exit")
	flag.Parse()

	// Handle --hash-password flag (prints hash and exits)
	if *hashPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*hashPassword), bcryptCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(string(hash))
		return
	}

	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	logger.Info("Starting labyrinth server")

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Config file could not be parsed, using defaults", "path", *configFile, "error", err)
	}

	if _, err := cfg.GenerationParams(); err != nil {
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
	switch cfg.Save.Driver {
	case "postgres":
		store, err = save.OpenPostgres(cfg.Save.DSN)
	default:
		store, err = save.OpenSQLite(cfg.Save.Path)
	}
	if err != nil {
		logger.Warning("Saved games unavailable", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	srv := server.New(cfg, catalog, store)
	if err := srv.Start(*addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
