// Command migrate applies the SQL files under migrations/ in lexical order.
// Each applied file is recorded in schema_migrations so reruns are no-ops.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tokopos/tokopos-api/internal/infrastructure/postgres"
	"github.com/tokopos/tokopos-api/pkg/config"
	"github.com/tokopos/tokopos-api/pkg/logger"
)

const migrationsDir = "migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename   text PRIMARY KEY,
			applied_at timestamptz NOT NULL DEFAULT now()
		)`); err != nil {
		log.Fatal().Err(err).Msg("create schema_migrations")
	}

	files, err := upMigrations(migrationsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("read migrations directory")
	}

	applied := 0
	for _, name := range files {
		var exists bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE filename = $1)`, name,
		).Scan(&exists)
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("check migration state")
		}
		if exists {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("read migration")
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("begin transaction")
		}
		if _, err := tx.Exec(ctx, string(raw)); err != nil {
			tx.Rollback(ctx)
			log.Fatal().Err(err).Str("file", name).Msg("apply migration")
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (filename) VALUES ($1)`, name); err != nil {
			tx.Rollback(ctx)
			log.Fatal().Err(err).Str("file", name).Msg("record migration")
		}
		if err := tx.Commit(ctx); err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("commit migration")
		}

		log.Info().Str("file", name).Msg("migration applied")
		applied++
	}

	log.Info().Int("applied", applied).Int("total", len(files)).Msg("migrations up to date")
}

// upMigrations lists *.up.sql files in lexical order.
func upMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
