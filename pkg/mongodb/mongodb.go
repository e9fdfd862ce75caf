// Package mongodb manages the MongoDB client used by document-backed stores.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/employee-portal/pkg/lifecycle"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// System exposes the configured database and ties the client to the service lifecycle.
type System interface {
	Database() *mongo.Database
	Start(lc *lifecycle.Coordinator) error
}

type client struct {
	client *mongo.Client
	cfg    *Config
	logger *slog.Logger
}

// New creates a client for cfg. The driver dials lazily; Start verifies connectivity.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnTimeoutDuration())
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}

	c, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	return &client{
		client: c,
		cfg:    cfg,
		logger: logger.With("system", "mongodb"),
	}, nil
}

func (c *client) Database() *mongo.Database {
	return c.client.Database(c.cfg.Database)
}

// Start pings the primary and registers disconnect with lc.
func (c *client) Start(lc *lifecycle.Coordinator) error {
	c.logger.Info("connecting to mongodb", "database", c.cfg.Database)

	ctx, cancel := context.WithTimeout(lc.Context(), c.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		c.logger.Info("disconnecting mongodb")

		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.ConnTimeoutDuration())
		defer cancel()

		if err := c.client.Disconnect(ctx); err != nil {
			c.logger.Error("mongodb disconnect error", "error", err)
		}
	})

	c.logger.Info("mongodb connected")
	return nil
}
