package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codeboxhq/codebox/internal/config"
	"github.com/codeboxhq/codebox/internal/engine"
	"github.com/codeboxhq/codebox/internal/llm"
	"github.com/codeboxhq/codebox/internal/model"
	"github.com/codeboxhq/codebox/internal/pattern"
	"github.com/codeboxhq/codebox/internal/storage"
	"github.com/spf13/viper"
)

// openStorage opens the record database and runs migrations.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/codebox/codebox.db"
	}
	dbPath = config.ExpandPath(dbPath)

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// closeStorage closes the database, logging any error.
func closeStorage(db *storage.SQLiteStorage) {
	if err := db.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}

// newEngine wires the recognition service with the configured courier list.
func newEngine() (*engine.Service, error) {
	couriers := config.Couriers(pattern.DefaultCouriers)
	patterns, err := pattern.NewClassifierWithCouriers(couriers)
	if err != nil {
		return nil, fmt.Errorf("invalid courier configuration: %w", err)
	}
	return engine.New(llm.NewClient(slog.Default()), patterns, slog.Default()), nil
}

// resolveBackend picks the backend for a command: an explicit --backend name,
// the active backend when aiRequested, or none.
func resolveBackend(backendName string, aiRequested bool) (*model.Backend, error) {
	if backendName != "" {
		return config.FindBackend(backendName)
	}
	if aiRequested {
		backend, err := config.ActiveBackend()
		if err != nil {
			return nil, err
		}
		if backend == nil {
			return nil, fmt.Errorf("no active backend configured: set recognition.active_backend or pass --backend")
		}
		return backend, nil
	}
	return nil, nil
}
