package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/veewell/veewell-erp/internal/advisory"
	"github.com/veewell/veewell-erp/internal/app"
	"github.com/veewell/veewell-erp/internal/auth"
	"github.com/veewell/veewell-erp/internal/ledger"
	"github.com/veewell/veewell-erp/internal/reports"
	"github.com/veewell/veewell-erp/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	gateway, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.Error("open data dir", slog.Any("error", err))
		os.Exit(1)
	}

	store := ledger.NewStore(gateway)
	if err := store.Hydrate(ctx); err != nil {
		logger.Error("hydrate ledger", slog.Any("error", err))
		os.Exit(1)
	}

	var advisoryService advisory.Service = advisory.Noop{}
	if cfg.OpenAIAPIKey != "" {
		advisoryService = advisory.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	resilient := advisory.NewResilient(advisoryService, logger, cfg.AdvisoryTimeout)

	authService := auth.NewService(cfg.AuthEmail, cfg.AuthPasswordHash)
	if !authService.Enabled() {
		logger.Warn("no AUTH_PASSWORD_HASH configured, credential gate disabled")
	}

	authHandler := auth.NewHandler(logger, authService)
	ledgerHandler := ledger.NewHandler(logger, store)
	reportsHandler := reports.NewHandler(logger, store, resilient)
	advisoryHandler := advisory.NewHandler(logger, resilient)

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		AuthHandler:     authHandler,
		LedgerHandler:   ledgerHandler,
		ReportsHandler:  reportsHandler,
		AdvisoryHandler: advisoryHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
