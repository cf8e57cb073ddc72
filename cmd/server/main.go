package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raygaledev/gold-starz/internal/app"
	"github.com/raygaledev/gold-starz/internal/config"
	"github.com/raygaledev/gold-starz/internal/logx"
	"github.com/raygaledev/gold-starz/internal/serverapp"
	"github.com/raygaledev/gold-starz/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "goldstarz.yml", "path to YAML config")
	flag.Parse()

	logger := log.New(os.Stdout, "", 0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	a, err := app.New(app.Options{Seed: cfg.Seed, Logger: logger})
	if err != nil {
		log.Fatalf("build app: %v", err)
	}
	defer a.Close()

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		App:    a,
		Events: telemetry.NewMemoryRepository(),
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logx.Info(logger, "listening", logx.Fields{"addr": cfg.Server.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logx.Error(logger, "server_failed", logx.Fields{"error": err.Error()})
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logx.Error(logger, "shutdown_failed", logx.Fields{"error": err.Error()})
		}
	}
}
