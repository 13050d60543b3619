package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consentadmin/internal/consent/registry"
	"consentadmin/internal/consent/router"
	"consentadmin/internal/consent/secret"
	"consentadmin/internal/consent/util"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	// 1. Load Config
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := util.GetLogger()

	reg, err := registry.Load()
	if err != nil {
		return err
	}

	key, ephemeral, err := cfg.CipherKey()
	if err != nil {
		return err
	}
	if ephemeral {
		logger.Warn("CREDENTIALS_KEY not set, memory store uses an ephemeral key")
	}

	// 2. Init Store
	store, err := openStore(cfg)
	if err != nil {
		logger.Error("Failed to connect to store", "driver", cfg.StoreDriver, "error", err)
		return err
	}

	// Ensure Indexes
	if err := store.EnsureIndexes(context.Background(), reg.All()); err != nil {
		logger.Warn("Failed to ensure indexes", "error", err)
	}

	// 3. Init Echo & Routes
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogRequestID: true,
		LogLatency:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"request_id", v.RequestID,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, router.Deps{
		Registry:  reg,
		Store:     store,
		Cipher:    secret.NewSecretBox(key),
		ListLimit: cfg.ListLimit,
	})

	// 4. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "driver", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if err := store.Close(ctx); err != nil {
		logger.Error("Failed to disconnect store", "error", err)
	}

	logger.Info("Server exited properly")
	return nil
}
