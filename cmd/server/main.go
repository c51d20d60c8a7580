package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbeisheim/hotseat-chess/internal/config"
	"github.com/benbeisheim/hotseat-chess/internal/controller"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogDev)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Initialize services
	gameManager := service.NewGameManager(logger)
	gameService := service.NewGameService(gameManager)

	app := controller.NewApp(gameService, cfg.AllowedOrigins, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		if err := app.Listen(cfg.Addr); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
