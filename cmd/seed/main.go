package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/dom/champion-stats/internal/config"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/repository/postgres"
	"github.com/dom/champion-stats/internal/seed"
	"github.com/dom/champion-stats/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	timeout := flag.Duration("timeout", time.Minute, "Maximum time to spend seeding")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.NewZapLogger("seed", cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	dbLogLevel, err := config.ParseDBLogLevel(cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("invalid db log level: %v", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL, dbLogLevel)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	services := service.NewServices(postgres.NewRepositories(db), cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if _, err := seed.NewSeeder(services, logger).Run(ctx, seed.Sample); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}
