package config

import (
	"fmt"
	"os"
)

const EnvStorageDriver = "STORAGE_DRIVER"

// Driver selects the employee store.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverMongo    Driver = "mongo"
)

// StorageConfig selects which configured store backs the employees system.
type StorageConfig struct {
	Driver Driver `toml:"driver"`
}

func (c *StorageConfig) Finalize() error {
	if c.Driver == "" {
		c.Driver = DriverPostgres
	}
	if v := os.Getenv(EnvStorageDriver); v != "" {
		c.Driver = Driver(v)
	}

	switch c.Driver {
	case DriverPostgres, DriverMongo:
		return nil
	default:
		return fmt.Errorf("unknown driver %q", c.Driver)
	}
}

func (c *StorageConfig) Merge(overlay *StorageConfig) {
	if overlay.Driver != "" {
		c.Driver = overlay.Driver
	}
}
