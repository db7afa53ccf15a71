// Command reset drops and recreates the configured database, then applies
// the embedded migrations. Intended for local development only.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/aion2-tracker/internal/config"
	"github.com/osse101/aion2-tracker/internal/database"
)

func main() {
	force := flag.Bool("force", false, "allow resetting when ENVIRONMENT=prod")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.Environment == "prod" && !*force {
		log.Fatalf("Refusing to reset a prod database without -force")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	admin := *cfg
	admin.DBName = "postgres"
	serverPool, err := database.NewPool(ctx, admin.GetDBConnString(), 2, time.Minute, 5*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	dbName := pgx.Identifier{cfg.DBName}.Sanitize()

	log.Printf("Terminating existing connections to %s...", cfg.DBName)
	if _, err := serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
		log.Printf("Warning: failed to terminate connections: %v", err)
	}

	if _, err := serverPool.Exec(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}
	if _, err := serverPool.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbName)); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	log.Printf("Database %s recreated", cfg.DBName)

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, time.Minute, 5*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", cfg.DBName, err)
	}
	defer pool.Close()

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Database reset complete, schema version %d", version)
}
