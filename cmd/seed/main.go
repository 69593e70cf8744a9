package main

import (
	"context"
	"log"
	"os"

	"afterschool/internal/config"
	"afterschool/internal/repos"
	"afterschool/internal/seed"
)

// One-shot catalog reset: connect, delete every lesson, insert the fixed
// dataset, report the count. Destructive by design — not safe to run against
// a live catalog with unresolved orders.
func main() {
	config.LoadEnv()
	cfg := config.LoadSeed()

	if err := run(cfg); err != nil {
		log.Printf("[seed] Failed to seed lessons: %v", err)
		os.Exit(1)
	}
}

func run(cfg config.SeedConfig) error {
	db, err := repos.OpenDB(cfg.Target())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	log.Printf("[seed] Connected to %s, seeding lessons...", cfg.DBName)

	n, err := seed.Run(context.Background(), db)
	if err != nil {
		return err
	}

	log.Printf("[seed] Inserted %d lessons.", n)
	return nil
}
