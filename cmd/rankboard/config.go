package main

import (
	"log/slog"
	"os"

	"github.com/mpetrovic/rankboard/internal/dataset/factory"
	"github.com/mpetrovic/rankboard/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type RankboardConfig struct {
	SourceConfig *factory.SourceConfig
}

func (as *AppConfig) Load() (*RankboardConfig, error) {

	err := env.LoadDotEnv(as.ENV, "cmd/rankboard/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	sourceCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load dataset source configuration from environment", "error", err)
		return nil, err
	}

	return &RankboardConfig{
		SourceConfig: sourceCfg,
	}, nil
}
