package main

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hftecno/treasury/internal/config"
	"github.com/hftecno/treasury/internal/repository"
	"github.com/hftecno/treasury/internal/seed"
	"github.com/hftecno/treasury/pkg/pg"
)

// Operational entrypoint. Usage:
//
//	cli migrate       [--env=.env] [--dir=./migrations]
//	cli seed          [--env=.env]
//	cli seed-rollback [--env=.env]
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: cli <migrate|seed|seed-rollback> [--env=path] [--dir=path]")
	}

	if err := config.Load(getEnvPath()); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	writeConf := pg.Config{
		User:     config.Get().PostgresWriteUser,
		Host:     config.Get().PostgresWriteHost,
		Port:     config.Get().PostgresWritePort,
		Password: config.Get().PostgresWritePassword,
		Database: config.Get().PostgresWriteDatabase,
	}

	switch os.Args[1] {
	case "migrate":
		if err := pg.Migrate(writeConf, getMigrationPath()); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
		log.Info().Msg("migrations applied")

	case "seed":
		repo := catalogRepo(writeConf)
		if err := seed.Apply(context.Background(), repo); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
		log.Info().Msg("seed applied")

	case "seed-rollback":
		repo := catalogRepo(writeConf)
		if err := seed.Rollback(context.Background(), repo); err != nil {
			log.Fatal().Err(err).Msg("seed rollback failed")
		}
		log.Info().Msg("seed rolled back")

	default:
		log.Fatal().Str("command", os.Args[1]).Msg("unknown command")
	}
}

func catalogRepo(writeConf pg.Config) *repository.CatalogRepository {
	db, err := pg.CreateReadWrite(writeConf, writeConf, false)
	if err != nil {
		log.Fatal().Err(err).Msg("failed connecting to pg")
	}
	return repository.NewCatalogRepository(db)
}

func getEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				log.Error().Err(err).Msg("failed to open the passed env file")
				return ""
			}
			return s[1]
		}
	}
	if _, err := os.Open(".env"); err != nil {
		return ""
	}
	return ".env"
}

func getMigrationPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--dir=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				log.Error().Err(err).Msg("failed to open the migrations dir")
				return ""
			}
			return s[1]
		}
	}
	return config.Get().MigrationsDir
}
