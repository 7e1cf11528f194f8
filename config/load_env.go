package config

import (
	"log/slog"
	"path/filepath"

	"github.com/subosito/gotenv"
)

// EnvDir holds one .env.<APP_ENV> file per environment.
var EnvDir = filepath.FromSlash("config/envs")

func LoadEnv(env string) {
	envFile := filepath.Join(EnvDir, ".env."+env)
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment", slog.String("file", envFile))
	}
}
