package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-patient-registry/internal/config"
	"github.com/MKhiriev/go-patient-registry/internal/handler"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/metrics"
	"github.com/MKhiriev/go-patient-registry/internal/server"
	"github.com/MKhiriev/go-patient-registry/internal/service"
	"github.com/MKhiriev/go-patient-registry/internal/store"
	"github.com/MKhiriev/go-patient-registry/internal/workers"
	"github.com/MKhiriev/go-patient-registry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("registry-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	repositories := store.NewRepositories(db, log)

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(repositories, cfg, build, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var reporters []workers.HealthReporter
	if handlers.GRPC != nil {
		reporters = append(reporters, handlers.GRPC)
	}
	background := workers.NewWorkers(
		workers.NewHealthWorker(repositories.PatientRepository, cfg.Workers.HealthCheckInterval, cfg.Storage.DB.QueryTimeout, m, log, reporters...),
	)

	srv, err := server.NewServer(handlers, cfg.Server, background, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
