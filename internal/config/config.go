package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	MediaDir string
	LogFile  string
}

// LoadEnv pulls a .env file into the process environment if one exists.
// A missing file is fine; real environment variables always win.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads server configuration with defaults suitable for local runs.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "afterschool.db"
	} // sqlite file in project root
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, MediaDir: media, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile)
	return cfg
}

// SeedConfig holds the one-shot seeder's inputs: a required connection
// target and an optional database name.
type SeedConfig struct {
	DSN    string
	DBName string
}

// LoadSeed enforces the seeder's contract: DB_DSN must be set (there is no
// safe default target for a destructive replace), DB_NAME defaults to
// "coursework".
func LoadSeed() SeedConfig {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("[seed] DB_DSN is not set")
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "coursework"
	}
	return SeedConfig{DSN: dsn, DBName: name}
}

// Target resolves the database file to open. When DSN names a directory the
// database lives in <dir>/<DBName>.db; otherwise DSN is used verbatim and
// DBName is display-only.
func (c SeedConfig) Target() string {
	if strings.HasSuffix(c.DSN, string(os.PathSeparator)) {
		return filepath.Join(c.DSN, c.DBName+".db")
	}
	if fi, err := os.Stat(c.DSN); err == nil && fi.IsDir() {
		return filepath.Join(c.DSN, c.DBName+".db")
	}
	return c.DSN
}

// ExportDir is where the export tool writes its JSON dumps.
func ExportDir() string {
	if dir := os.Getenv("EXPORT_DIR"); dir != "" {
		return dir
	}
	return "./auto-exports"
}
