// Package config loads application configuration from the environment, with
// optional .env support. The store paths are explicit configuration handed to
// the store at construction; nothing reads them from ambient globals.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store locates the durable snapshot file and the backup directory.
type Store struct {
	Path      string `envconfig:"PATH" default:"database.json"`
	BackupDir string `envconfig:"BACKUP_DIR" default:"backups"`
}

// Log controls logger verbosity.
type Log struct {
	Level string `envconfig:"LEVEL" default:"info"`
}

// App is the root configuration. Environment variables are prefixed
// PANBANK_, e.g. PANBANK_STORE_PATH, PANBANK_LOG_LEVEL.
type App struct {
	Store Store `envconfig:"STORE"`
	Log   Log   `envconfig:"LOG"`
}

// Load reads .env if present, then the process environment.
func Load(logger *slog.Logger) (*App, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using process environment")
	}
	var cfg App
	if err := envconfig.Process("PANBANK", &cfg); err != nil {
		return nil, err
	}
	logger.Info("config loaded",
		"store_path", cfg.Store.Path,
		"backup_dir", cfg.Store.BackupDir,
		"log_level", cfg.Log.Level,
	)
	return &cfg, nil
}
