package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopforge/storefront/pkg/config"
	"github.com/shopforge/storefront/pkg/logger"
	"github.com/shopforge/storefront/pkg/postgres"
)

func main() {
	configPath := flag.String("config", os.Getenv("STOREFRONT_CONFIG"), "path to yaml config file")
	schemaPath := flag.String("schema", "db/schema.sql", "path to schema file")
	seedPath := flag.String("seed", "db/seed.sql", "path to sample data file, empty to skip")
	flag.Parse()

	log := logger.New(logger.Options{Service: "storefront-seed"})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	db, err := postgres.Open(postgres.Config{
		Host:    cfg.Postgres.Host,
		Port:    cfg.Postgres.Port,
		User:    cfg.Postgres.User,
		Pass:    cfg.Postgres.Password,
		DB:      cfg.Postgres.Database,
		SSLMode: cfg.Postgres.SSLMode,
	})
	if err != nil {
		log.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := applyFile(ctx, db, *schemaPath); err != nil {
		log.Error("apply schema", "path", *schemaPath, "error", err)
		os.Exit(1)
	}
	log.Info("schema applied", "path", *schemaPath)

	if *seedPath != "" {
		if err := applyFile(ctx, db, *seedPath); err != nil {
			log.Error("apply seed data", "path", *seedPath, "error", err)
			os.Exit(1)
		}
		log.Info("seed data applied", "path", *seedPath)
	}
}

func applyFile(ctx context.Context, db *sql.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, string(raw)); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
