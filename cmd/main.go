/**
 * @description
 * This is the main entry point for the banking service. It wires together
 * configuration, the structured logger, the in-memory bank, the optional
 * interest accrual scheduler, and the HTTP router, then runs the server
 * until a shutdown signal arrives.
 *
 * All state lives in the Bank instance constructed here and is lost when
 * the process exits; there is no persistence layer by design.
 */
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Moxjohn2099/banking-app/internal/api"
	"github.com/Moxjohn2099/banking-app/internal/app"
	"github.com/Moxjohn2099/banking-app/internal/config"
)

func main() {
	// Load .env file for local development.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	bank := app.NewBank(cfg.BankName, cfg.RoutingNumber, logger)

	if cfg.InterestAccrualEnabled {
		scheduler := app.NewInterestScheduler(bank, logger, cfg.InterestAccrualSchedule)
		if err := scheduler.Start(); err != nil {
			logger.Error("failed to start interest scheduler", "error", err)
			os.Exit(1)
		}
		defer func() { <-scheduler.Stop().Done() }()
	}

	handler := api.NewHandler(bank, logger, cfg.FrontendFile)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "port", cfg.Port, "bank", cfg.BankName)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-sigCh
	logger.Info("shutdown signal received, gracefully shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}

	logger.Info("server stopped")
}
