package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kvgkvg/MEnglish/internal/config"
	"github.com/kvgkvg/MEnglish/internal/database"
	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/review"
	"github.com/kvgkvg/MEnglish/internal/vocab"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// app holds what the commands share once the configuration is loaded.
type app struct {
	cfg     *config.Config
	db      *sqlx.DB
	service *review.Service
	source  *vocab.Source
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}

	wordRepo := learning.NewDBWordRepository(db)
	source, err := vocab.NewSource(wordRepo, cfg.Vocab.SetsDirectory, cfg.User.ID)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("vocab.NewSource() > %w", err)
	}

	return &app{
		cfg: cfg,
		db:  db,
		service: review.NewService(
			learning.NewDBProgressRepository(db),
			wordRepo,
			learning.NewDBSessionRepository(db),
			cfg.Database.MaxRetryAttempts,
		),
		source: source,
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// newRandom returns a source seeded with seed, or with the clock when seed is 0.
func newRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
