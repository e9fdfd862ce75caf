// Package infrastructure assembles the systems every module depends on:
// lifecycle, logging, metrics, and the connection for the configured store.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/employee-portal/internal/config"
	"github.com/JaimeStill/employee-portal/internal/migrations"
	"github.com/JaimeStill/employee-portal/pkg/database"
	"github.com/JaimeStill/employee-portal/pkg/lifecycle"
	"github.com/JaimeStill/employee-portal/pkg/logging"
	"github.com/JaimeStill/employee-portal/pkg/mongodb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// MetricsNamespace prefixes every collector the service registers.
const MetricsNamespace = "employee_portal"

// Infrastructure holds the shared systems. Exactly one of Database and Mongo
// is set, matching storage.driver.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *prometheus.Registry
	Driver    config.Driver
	Database  database.System
	Mongo     mongodb.System

	autoMigrate bool
}

// New creates the infrastructure without connecting; call Start to connect.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := logging.New(&cfg.Logging)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	infra := &Infrastructure{
		Lifecycle:   lifecycle.New(),
		Logger:      logger,
		Metrics:     reg,
		Driver:      cfg.Storage.Driver,
		autoMigrate: cfg.Database.AutoMigrate,
	}

	switch cfg.Storage.Driver {
	case config.DriverMongo:
		m, err := mongodb.New(&cfg.Mongo, logger)
		if err != nil {
			return nil, fmt.Errorf("mongodb init failed: %w", err)
		}
		infra.Mongo = m
	default:
		db, err := database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
	}

	return infra, nil
}

// Start connects the configured store, registers its shutdown, and applies
// pending migrations when auto_migrate is set.
func (i *Infrastructure) Start() error {
	if i.Mongo != nil {
		if err := i.Mongo.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("mongodb start failed: %w", err)
		}
		return nil
	}

	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}

	if i.autoMigrate {
		m, err := database.NewMigrator(i.Database.Connection(), migrations.FS, migrations.Dir, i.Logger)
		if err != nil {
			return err
		}
		if err := m.Up(); err != nil {
			return err
		}
	}
	return nil
}
