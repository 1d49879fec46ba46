package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hftecno/treasury/internal/config"
	"github.com/hftecno/treasury/internal/handlers"
	"github.com/hftecno/treasury/internal/repository"
	"github.com/hftecno/treasury/internal/services"
	"github.com/hftecno/treasury/pkg/logger"
	"github.com/hftecno/treasury/pkg/pg"
	"github.com/hftecno/treasury/pkg/prom"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	readConf := pg.Config{
		User:     config.Get().PostgresReadUser,
		Host:     config.Get().PostgresReadHost,
		Port:     config.Get().PostgresReadPort,
		Password: config.Get().PostgresReadPassword,
		Database: config.Get().PostgresReadDatabase,
	}
	writeConf := pg.Config{
		User:     config.Get().PostgresWriteUser,
		Host:     config.Get().PostgresWriteHost,
		Port:     config.Get().PostgresWritePort,
		Password: config.Get().PostgresWritePassword,
		Database: config.Get().PostgresWriteDatabase,
	}

	pgDebug := false
	if config.Get().AppEnv == "dev" {
		pgDebug = true
	}
	db, err := pg.CreateReadWrite(readConf, writeConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	if err := prom.Create(config.Get().AppEnv, config.Get().PromNamespace); err != nil {
		logger.Error("failed registering metrics", "error", err)
		return
	}
	if config.Get().MetricsEnable {
		go prom.ListenAndServe(config.Get().MetricsAddr, config.Get().MetricsEndpoint)
	}

	catalogRepo := repository.NewCatalogRepository(db)
	cashRepo := repository.NewCashLedgerRepository(db)
	providerRepo := repository.NewPaymentProviderRepository(db)
	dueRepo := repository.NewDueItemRepository(db)
	currencyRepo := repository.NewForeignCurrencyRepository(db)
	envelopeRepo := repository.NewEnvelopeRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	membershipRepo := repository.NewMembershipFeeRepository(db)

	router := handlers.NewRouter(config.Get().AdminBasePath, handlers.Services{
		Catalog:    services.NewCatalogService(catalogRepo),
		Ledger:     services.NewLedgerService(cashRepo, providerRepo),
		Due:        services.NewDueService(dueRepo, catalogRepo),
		Currency:   services.NewCurrencyService(currencyRepo, catalogRepo),
		Envelope:   services.NewEnvelopeService(envelopeRepo),
		Donation:   services.NewDonationService(donationRepo, catalogRepo),
		Membership: services.NewMembershipService(membershipRepo),
	})

	srv := &http.Server{
		Addr:         config.Get().HttpListenAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error shutting down http-server", "error", err)
	}
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
