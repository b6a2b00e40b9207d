package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tailscale.com/tsnet"

	"github.com/claude/planfit/internal/catalog"
	"github.com/claude/planfit/internal/config"
	"github.com/claude/planfit/internal/generator"
	"github.com/claude/planfit/internal/llm"
	"github.com/claude/planfit/internal/server"
	"github.com/claude/planfit/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("Planfit starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Run migrations
	if err := storage.RunMigrations(cfg.Storage.Path, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	// Open database
	ctx := context.Background()
	db, err := storage.New(ctx, cfg.Storage.Path)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database opened", "path", cfg.Storage.Path)

	// Exercise catalog (falls back to the built-in table without a key)
	cat := catalog.New(cfg.Catalog.URL, cfg.Catalog.APIKey,
		time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
		time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second, log)
	if cfg.Catalog.APIKey == "" {
		log.Info("no catalog API key configured, serving built-in exercises")
	}

	// Plan generator (deterministic fallback without an LLM key)
	var chat generator.ChatClient
	if cfg.LLM.APIKey != "" {
		chat = llm.New(cfg.LLM.URL, cfg.LLM.APIKey, cfg.LLM.Model,
			time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
	} else {
		log.Info("no LLM API key configured, plans will use the deterministic planner")
	}
	gen := generator.New(chat, log)

	// Create server
	srv := server.New(db, cat, gen, cfg.Auth.APIKey, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
