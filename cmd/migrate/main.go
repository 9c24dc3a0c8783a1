package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/m04kA/SMC-VenueConsole/internal/config"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
)

func main() {
	var (
		configPath     = flag.String("config", "config.toml", "Path to config file")
		migrationsPath = flag.String("migrations", "migrations", "Path to migrations directory")
		command        = flag.String("command", "up", "Command to run (up, down, steps, version, force)")
		steps          = flag.Int("n", 0, "Steps for the steps command, version for force")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if cfg.Backend != config.BackendPostgres {
		log.Fatal("Migrations apply only to the %q backend, configured backend is %q", config.BackendPostgres, cfg.Backend)
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", *migrationsPath), cfg.Database.MigrateURL())
	if err != nil {
		log.Fatal("Migration init failed: %v", err)
	}
	defer m.Close()

	switch *command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		err = m.Steps(*steps)
	case "force":
		err = m.Force(*steps)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatal("Get version failed: %v", verr)
		}
		log.Info("Schema version: %d, dirty: %t", version, dirty)
		return
	default:
		log.Fatal("Unknown command: %s", *command)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal("Migration %s failed: %v", *command, err)
	}
	log.Info("Migration %s completed (db=%s)", *command, cfg.Database.DBName)
}
