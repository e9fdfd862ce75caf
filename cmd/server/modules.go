package main

import (
	"net/http"

	"github.com/JaimeStill/employee-portal/internal/api"
	"github.com/JaimeStill/employee-portal/internal/config"
	"github.com/JaimeStill/employee-portal/internal/infrastructure"
	"github.com/JaimeStill/employee-portal/pkg/middleware"
	"github.com/JaimeStill/employee-portal/pkg/module"
	"github.com/JaimeStill/employee-portal/web/app"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Modules struct {
	API *module.Module
	App *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	domain := api.NewDomain(infra)
	metrics := middleware.NewMetrics(infra.Metrics, infrastructure.MetricsNamespace)

	apiModule, err := api.NewModule(&cfg.API, cfg.Version, domain, metrics, infra.Logger)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(cfg.App.BasePath, domain.Employees, infra.Logger)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.RequestID())
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))
	appModule.Use(metrics.Handler("app"))
	appModule.Use(middleware.MaxBytes(cfg.App.MaxBodySizeBytes()))

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	metrics := promhttp.HandlerFor(infra.Metrics, promhttp.HandlerOpts{Registry: infra.Metrics})
	router.HandleNative("GET /metrics", metrics.ServeHTTP)

	return router
}

// rootHandler applies middleware that must see the full, unstripped path.
func rootHandler(router *module.Router) http.Handler {
	return middleware.TrimSlash()(router)
}
