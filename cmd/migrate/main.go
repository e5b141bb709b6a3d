package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ruoomkr/platform/internal/config"
	"github.com/ruoomkr/platform/internal/store/postgres"
)

// Applies the embedded schema, or the SQL files given as arguments in order.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := postgres.New(ctx, postgres.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Database:     cfg.Database.Database,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: 2,
		MaxIdleConns: 1,
	})
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer db.Close()

	fmt.Println("✓ Connected to database")

	if len(os.Args) == 1 {
		if err := db.Migrate(ctx, postgres.InitialSchema); err != nil {
			log.Fatalf("Failed to apply initial schema: %v", err)
		}
		fmt.Println("✓ initial schema applied")
		return
	}

	for _, migFile := range os.Args[1:] {
		fmt.Printf("Running %s...\n", migFile)

		content, err := os.ReadFile(migFile)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", migFile, err)
		}

		if err := db.Migrate(ctx, string(content)); err != nil {
			log.Fatalf("Failed to execute %s: %v", migFile, err)
		}

		fmt.Printf("✓ %s completed\n", migFile)
	}

	fmt.Println("\n✓✓✓ All migrations completed successfully!")
}
