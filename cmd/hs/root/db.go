package root

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/Pak209/HoloSync/internal/config"
	"github.com/Pak209/HoloSync/internal/engine"
	"github.com/Pak209/HoloSync/internal/storage"
)

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("HOLOSYNC_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig() (*config.Config, error) {
	if p := os.Getenv("HOLOSYNC_CONFIG"); p != "" {
		return config.Load(p)
	}
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(db, cfg, newLogger()), cleanup, nil
}
