// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-movie-catalog/internal/adapter"
	"github.com/MKhiriev/go-movie-catalog/internal/client"
	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "build-info" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.New(os.Stderr, "movie-client", "warn").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.New(os.Stderr, "movie-client", cfg.LogLevel)

	catalog, err := adapter.NewHTTPCatalogAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create catalog adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(catalog, cfg.Credentials, os.Stdout, log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
