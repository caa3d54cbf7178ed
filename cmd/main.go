/*
Package main is the entry point for the portchat relay.

It loads configuration, initializes the global logging system, opens the
persisted user and ban documents, starts the HTTP server carrying the
WebSocket endpoint, and handles operating system interrupt signals (SIGINT,
SIGTERM) for a graceful shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"portchat/internal/app/chat"
	"portchat/internal/app/store"
	"portchat/internal/configs"
	"portchat/internal/handler"
	"portchat/internal/pkg/logx"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("data_dir", cfg.DataDir).
		Msg("Configuration loaded successfully")

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		logx.Fatal(err, "Failed to create data directory")
	}

	users, err := store.NewUserStore(filepath.Join(cfg.DataDir, "users.json"))
	if err != nil {
		logx.Fatal(err, "Failed to load user store")
	}

	bans, err := store.NewBanStore(filepath.Join(cfg.DataDir, "bans.json"))
	if err != nil {
		logx.Fatal(err, "Failed to load ban store")
	}

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := chat.NewHub(users)

	router := handler.Router(&handler.AppDeps{
		Hub:    hub,
		Bans:   bans,
		Config: cfg,
	})

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("portchat relay starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for an interrupt, then shut down with a timeout.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	hub.Shutdown()

	logx.Info("Server gracefully stopped.")
}
