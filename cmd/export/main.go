package main

import (
	"log"
	"os"

	"afterschool/internal/config"
	"afterschool/internal/repos"
	"afterschool/internal/services"
)

// Dumps the lessons and orders collections to timestamped JSON files under
// EXPORT_DIR (default ./auto-exports).
func main() {
	config.LoadEnv()
	cfg := config.Load()

	if err := run(cfg.DBDSN, config.ExportDir()); err != nil {
		log.Printf("[export] failed: %v", err)
		os.Exit(1)
	}
}

func run(dsn, dir string) error {
	db, err := repos.OpenDB(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	svc := services.NewExportService(repos.NewLessonRepo(db), repos.NewOrderRepo(db))
	results, err := svc.Run(dir)
	if err != nil {
		return err
	}
	for _, r := range results {
		log.Printf("[export] wrote %s (%d records)", r.Path, r.Records)
	}
	return nil
}
