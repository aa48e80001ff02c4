// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/ports"
	"github.com/ersonp/logitrust/internal/infrastructure/config"
)

// StoreOpener opens the store described by cfg.
type StoreOpener func(cfg *config.Config) (ports.Store, error)

// InitHandler handles workspace initialization.
type InitHandler struct {
	openStore StoreOpener
	now       func() time.Time
}

// NewInitHandler creates a new init handler.
func NewInitHandler(openStore StoreOpener, now func() time.Time) *InitHandler {
	if now == nil {
		now = time.Now
	}
	return &InitHandler{
		openStore: openStore,
		now:       now,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath   string
	DatabasePath string
	Places       int
	Requests     int
}

// Handle writes the default config, creates the schema and seeds demo data.
// With force, an existing workspace keeps its config and is reseeded.
func (h *InitHandler) Handle(ctx context.Context, basePath string, force bool) (*InitResult, error) {
	exists := config.Exists(basePath)
	if exists && !force {
		return nil, fmt.Errorf("logitrust already initialized in %s (use --force to reseed)", basePath)
	}

	if !exists {
		if err := config.WriteDefault(basePath); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := h.openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	snap := entities.DemoSnapshot(h.now())
	if err := store.Seed(ctx, snap); err != nil {
		return nil, fmt.Errorf("seeding demo data: %w", err)
	}

	return &InitResult{
		ConfigPath:   config.ConfigFilePath(basePath),
		DatabasePath: cfg.SQLite.Path,
		Places:       len(snap.Places),
		Requests:     len(snap.Requests),
	}, nil
}
