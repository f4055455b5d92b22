package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/config"
	"github.com/sudhakarm/stonemine/internal/repository/mongodb"
	"github.com/sudhakarm/stonemine/internal/repository/sheets"
	"github.com/sudhakarm/stonemine/internal/scheduler"
	"github.com/sudhakarm/stonemine/internal/server/handlers"
	"github.com/sudhakarm/stonemine/internal/server/router"
	ledgersvc "github.com/sudhakarm/stonemine/internal/service/ledger"
	reportsvc "github.com/sudhakarm/stonemine/internal/service/reports"
	"github.com/sudhakarm/stonemine/pkg/clients/notify"
	"github.com/sudhakarm/stonemine/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := mongodb.NewRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	if err := repo.EnsureIndexes(context.Background()); err != nil {
		baseLogger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	ledgerSvc := ledgersvc.NewService(repo, cfg.Ledger, baseLogger.Named("svc.ledger"))
	reportsSvc := reportsvc.NewService(repo, baseLogger.Named("svc.reports"))

	// Optional integrations for the nightly close.
	var mirror sheets.Mirror
	if cfg.Sheets.SpreadsheetID != "" {
		mirror, err = sheets.NewGoogleSheetMirror(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets mirror", zap.Error(err))
		}
		baseLogger.Info("daily summary sheets mirror enabled")
	}

	var notifier notify.Client
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewClient(cfg.Notify)
		baseLogger.Info("daily close webhook notifications enabled")
	} else {
		baseLogger.Warn("notify webhook url missing, daily close notifications disabled")
	}

	engine := router.New(router.Handlers{
		Labour:  handlers.NewLabourHandler(repo, ledgerSvc, baseLogger.Named("handlers.labour")),
		Sales:   handlers.NewSalesHandler(repo, ledgerSvc, baseLogger.Named("handlers.sales")),
		Vendor:  handlers.NewVendorHandler(repo, ledgerSvc, baseLogger.Named("handlers.vendor")),
		Trip:    handlers.NewTripHandler(repo, ledgerSvc, baseLogger.Named("handlers.trip")),
		Finance: handlers.NewFinanceHandler(repo, baseLogger.Named("handlers.finance")),
		Report:  handlers.NewReportHandler(reportsSvc, baseLogger.Named("handlers.report")),
		Master:  handlers.NewMasterHandler(repo, baseLogger.Named("handlers.master")),
	}, baseLogger.Named("router"))

	sched, err := scheduler.NewScheduler(cfg.Close, reportsSvc, repo, mirror, notifier, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
