// Command migrate applies or rolls back the PostgreSQL schema outside of
// server startup.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/JaimeStill/employee-portal/internal/config"
	"github.com/JaimeStill/employee-portal/internal/migrations"
	"github.com/JaimeStill/employee-portal/pkg/database"
	"github.com/JaimeStill/employee-portal/pkg/lifecycle"
	"github.com/JaimeStill/employee-portal/pkg/logging"
)

func main() {
	var (
		configFile = flag.String("config", config.BaseConfigFile, "Base configuration file")
		up         = flag.Bool("up", false, "Apply all pending migrations")
		down       = flag.Bool("down", false, "Roll back one migration")
		version    = flag.Bool("version", false, "Print the current schema version")
	)
	flag.Parse()

	if !*up && !*down && !*version {
		fmt.Println("usage: migrate [-config <path>] -up|-down|-version")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.LoadFrom(*configFile)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	cfg.Storage.Driver = config.DriverPostgres
	if err := cfg.Finalize(); err != nil {
		log.Fatalf("config finalize failed: %v", err)
	}

	logger := logging.New(&cfg.Logging)
	lc := lifecycle.New()
	defer lc.Shutdown(5 * time.Second)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	if err := db.Start(lc); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}

	m, err := database.NewMigrator(db.Connection(), migrations.FS, migrations.Dir, logger)
	if err != nil {
		log.Fatalf("migrator init failed: %v", err)
	}

	switch {
	case *up:
		err = m.Up()
	case *down:
		err = m.Down()
	}
	if err != nil {
		log.Fatal(err)
	}

	v, dirty, err := m.Version()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("schema version %d (dirty=%t)\n", v, dirty)
}
