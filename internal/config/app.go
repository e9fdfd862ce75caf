package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-units"
)

const (
	EnvAppBasePath    = "APP_BASE_PATH"
	EnvAppMaxBodySize = "APP_MAX_BODY_SIZE"
)

// AppConfig configures the server-rendered pages module.
type AppConfig struct {
	BasePath       string `toml:"base_path"`
	MaxBodySize    string `toml:"max_body_size"`
	maxBodySizeVal int64
}

// MaxBodySizeBytes caps the add form body. Set during Finalize.
func (c *AppConfig) MaxBodySizeBytes() int64 {
	return c.maxBodySizeVal
}

func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "64KB"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
}

func (c *AppConfig) validate() error {
	if err := validatePrefix(c.BasePath); err != nil {
		return fmt.Errorf("base_path: %w", err)
	}

	size, err := units.FromHumanSize(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_body_size must be positive")
	}
	c.maxBodySizeVal = size
	return nil
}

// validatePrefix accepts "/" or a single segment such as "/api".
func validatePrefix(p string) error {
	if p == "/" {
		return nil
	}
	if !strings.HasPrefix(p, "/") || strings.Count(p, "/") != 1 {
		return fmt.Errorf("%q must be / or a single path segment", p)
	}
	return nil
}
