package main

import (
	"context"
	"fmt"

	"github.com/jonathan/talentdesk/internal/config"
	"github.com/jonathan/talentdesk/internal/db"
	"github.com/jonathan/talentdesk/internal/llm"
	"github.com/jonathan/talentdesk/internal/localstore"
	"github.com/jonathan/talentdesk/internal/logging"
	"github.com/jonathan/talentdesk/internal/parsing"
	"github.com/jonathan/talentdesk/internal/recruitment"
	"github.com/jonathan/talentdesk/internal/types"
	"github.com/jonathan/talentdesk/internal/uploads"
)

// app is the wired service graph shared by the subcommands.
type app struct {
	cfg   *config.Config
	log   *logging.Logger
	svc   *recruitment.Service
	store localstore.Store
	db    *db.DB
	llm   llm.Client
}

// loadConfig reads the configuration and applies the --log-level override.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

func openLocalStore(ctx context.Context, cfg *config.Config) (localstore.Store, error) {
	store, err := localstore.Open(ctx, localstore.Options{
		Backend:  cfg.LocalStore,
		Dir:      cfg.LocalStoreDir,
		RedisURL: cfg.RedisURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	return store, nil
}

// openApp connects every configured backend. The local store is always
// opened; PostgreSQL sits in front of it when DATABASE_URL is set.
func openApp(ctx context.Context, opts *rootOptions, log *logging.Logger) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.NewDevelopment(cfg.LogLevel)
	}

	a := &app{cfg: cfg, log: log}

	a.store, err = openLocalStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repos := recruitment.LocalRepositories(a.store)
	if cfg.DatabaseURL != "" {
		a.db, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		remote := recruitment.Repositories{
			ImportedCVs: a.db.ImportedCVs(),
			Candidates:  a.db.Candidates(),
			Interviews:  a.db.Interviews(),
			JobPostings: a.db.JobPostings(),
		}
		repos = recruitment.WithFallback(remote, repos, log)
	} else {
		log.Info("DATABASE_URL not set, records are kept in the local store only", "backend", cfg.LocalStore)
	}

	archive, err := uploads.Open(ctx, cfg.UploadsDir, cfg.UploadsBucket, cfg.AWSRegion)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to open upload archive: %w", err)
	}

	svcOpts := recruitment.Options{Logger: log, Archive: archive}
	if cfg.APIKey != "" {
		a.llm, err = llm.NewClient(ctx, llm.ConfigFromEnv(), cfg.APIKey)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		svcOpts.Refiner = parsing.NewRefiner(a.llm)
	}
	if cfg.StrictTransitions {
		svcOpts.Policy = types.StrictTransitions
	}

	a.svc = recruitment.New(repos, svcOpts)
	return a, nil
}

// Close releases every backend that was opened.
func (a *app) Close() {
	if a.llm != nil {
		if err := a.llm.Close(); err != nil {
			a.log.Warn("failed to close LLM client", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("failed to close local store", "error", err)
		}
	}
	_ = a.log.Sync()
}
