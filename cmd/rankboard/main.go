// Package main Rankboard
// @title Rankboard API
// @version 1.0
// @description Interactive dashboard over pre-computed ranking-algorithm accuracy measurements
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/mpetrovic/rankboard/docs"
	"github.com/mpetrovic/rankboard/internal/dataset/factory"
	"github.com/mpetrovic/rankboard/internal/router"
	"github.com/mpetrovic/rankboard/internal/server"
	pkgserver "github.com/mpetrovic/rankboard/pkg/server"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupHealthChecks().
		SetupOpenApi()

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	// Loader failures are terminal: there is nothing to serve without the
	// dataset, and the file will not reappear without user intervention.
	store, err := factory.NewStore(context.Background(), cfg.SourceConfig)
	if err != nil {
		slog.Error("Failed to load dataset", "error", err)
		os.Exit(1)
		return
	}

	slog.Info("Dataset ready",
		"snapshot", store.ID(),
		"source", store.Source(),
		"rows", store.Len(),
		"algorithms", store.Algorithms())

	dashboardRouter := router.NewDashboardRouter(s.Echo, store)
	dashboardRouter.Bind()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
