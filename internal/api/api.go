// Package api assembles the JSON API module.
package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/employee-portal/internal/config"
	"github.com/JaimeStill/employee-portal/internal/employees"
	"github.com/JaimeStill/employee-portal/pkg/middleware"
	"github.com/JaimeStill/employee-portal/pkg/module"
	"github.com/JaimeStill/employee-portal/pkg/openapi"
	"github.com/JaimeStill/employee-portal/pkg/routes"
)

// OpenAPIPath serves the generated document, relative to the module prefix.
const OpenAPIPath = "/openapi.json"

// NewModule mounts the employee endpoints and their OpenAPI document at
// cfg.BasePath.
func NewModule(cfg *config.APIConfig, version string, domain *Domain, metrics *middleware.Metrics, logger *slog.Logger) (*module.Module, error) {
	logger = logger.With("module", "api")

	groups := []routes.Group{
		employees.NewHandler(domain.Employees, logger).Routes(),
	}

	doc, err := document(cfg, version, groups)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	routes.Register(mux, groups...)
	mux.HandleFunc("GET "+OpenAPIPath, openapi.Handler(doc))

	m := module.New(cfg.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.Logger(logger))
	m.Use(metrics.Handler("api"))
	m.Use(middleware.CORS(&cfg.CORS))
	m.Use(middleware.MaxBytes(cfg.MaxBodySizeBytes()))

	return m, nil
}

func document(cfg *config.APIConfig, version string, groups []routes.Group) ([]byte, error) {
	components := openapi.NewComponents()
	components.AddSchemas(employees.Schemas())

	spec := openapi.New(&cfg.OpenAPI, version, cfg.BasePath, components)
	routes.Document(spec, groups...)

	doc, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi: %w", err)
	}
	return doc, nil
}
