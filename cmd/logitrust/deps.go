package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/logitrust/internal/application/handlers"
	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/ports"
	"github.com/ersonp/logitrust/internal/domain/services"
	"github.com/ersonp/logitrust/internal/infrastructure/config"
	embedder "github.com/ersonp/logitrust/internal/infrastructure/embedder/openai"
	llm "github.com/ersonp/logitrust/internal/infrastructure/llm/openai"
	"github.com/ersonp/logitrust/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/logitrust/internal/infrastructure/vectordb/qdrant"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config        *config.Config
	Session       *handlers.SessionHandler
	Places        *handlers.PlaceHandler
	Import        *handlers.ImportHandler
	Requests      *handlers.RequestHandler
	Reports       *handlers.ReportHandler
	Notifications *handlers.NotificationHandler
	Search        *handlers.SearchHandler
	Brief         *handlers.BriefHandler
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	site  *services.SiteService
	store *sqlite.Repository
	index *qdrant.Repository
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return withInternalDeps(ctx, nil, func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including the site
// service. A non-nil observer receives lifecycle events.
func withInternalDeps(ctx context.Context, observer ports.LifecycleObserver, fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewRepository(cfg.SQLite)
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	var opts []services.Option
	if observer != nil {
		opts = append(opts, services.WithObserver(observer))
	}
	site := services.NewSiteService(store, opts...)
	if err := site.Load(ctx); err != nil {
		return err
	}

	places := handlers.NewPlaceHandler(site)
	d := &internalDeps{
		Deps: Deps{
			Config:        cfg,
			Session:       handlers.NewSessionHandler(services.NewSessionService(store)),
			Places:        places,
			Import:        handlers.NewImportHandler(places),
			Requests:      handlers.NewRequestHandler(site),
			Reports:       handlers.NewReportHandler(site),
			Notifications: handlers.NewNotificationHandler(site),
		},
		site:  site,
		store: store,
	}

	// Semantic search and briefings are optional and need API keys.
	var (
		emb   ports.Embedder
		index ports.PlaceIndex
	)
	if cfg.SemanticSearchEnabled() {
		e, err := embedder.NewEmbedder(cfg.Embedder)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}
		repo, err := qdrant.NewRepository(cfg.Qdrant)
		if err != nil {
			return fmt.Errorf("creating qdrant repository: %w", err)
		}
		defer repo.Close()
		emb, index, d.index = e, repo, repo
	}
	d.Search = handlers.NewSearchHandler(services.NewSearchService(site, emb, index))

	if cfg.LLM.APIKey != "" {
		client, err := llm.NewClient(cfg.LLM)
		if err != nil {
			return fmt.Errorf("creating llm client: %w", err)
		}
		d.Brief = handlers.NewBriefHandler(services.NewBriefingService(site, client))
	}

	return fn(d)
}

// withSession provides the active user along with the dependencies.
func withSession(ctx context.Context, fn func(*Deps, *entities.User) error) error {
	return withDeps(ctx, func(d *Deps) error {
		user, err := d.Session.RequireUser(ctx)
		if err != nil {
			return err
		}
		return fn(d, user)
	})
}
