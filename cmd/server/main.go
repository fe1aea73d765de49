package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goaoxor/workbench/internal/config"
	"github.com/goaoxor/workbench/internal/domain/admin"
	"github.com/goaoxor/workbench/internal/domain/contract"
	"github.com/goaoxor/workbench/internal/domain/order"
	"github.com/goaoxor/workbench/internal/session"
	"github.com/goaoxor/workbench/internal/store"
	"github.com/goaoxor/workbench/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	st := store.New()
	adminSvc := admin.NewService(st, logger)
	orderSvc := order.NewService(st, logger)
	contractSvc := contract.NewService(st, st, logger)
	sessions := session.NewManager(adminSvc, logger)

	if err := adminSvc.EnsureDefault(context.Background(), cfg.Admin.DefaultUsername, cfg.Admin.DefaultPassword); err != nil {
		logger.Error("failed to seed default administrator", "error", err)
		os.Exit(1)
	}

	router := transport.NewRouter(transport.Options{
		Admins:      adminSvc,
		Orders:      orderSvc,
		Contracts:   contractSvc,
		Sessions:    sessions,
		Store:       st,
		SnapshotDir: cfg.Snapshot.Dir,
		EnableCORS:  cfg.Server.EnableCORS,
		Logger:      logger,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
