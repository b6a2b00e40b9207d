package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/claude/planfit/internal/catalog"
	"github.com/claude/planfit/internal/config"
	"github.com/claude/planfit/internal/generator"
	"github.com/claude/planfit/internal/llm"
	"github.com/claude/planfit/internal/mcp"
	"github.com/claude/planfit/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	serverURL := flag.String("server", "", "Planfit server URL for remote mode (e.g. https://planfit.tail1234.ts.net)")
	apiKey := flag.String("api-key", "", "API key for the remote server (remote mode)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("planfit-mcp", Version)
		return
	}

	// stdout is the MCP transport; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	if *serverURL != "" {
		ds = mcp.NewHTTPClient(*serverURL, *apiKey)
		log.Info("remote mode", "server", *serverURL)
	} else {
		local, closeFn, err := buildLocalSource(*configPath, log)
		if err != nil {
			log.Error("local mode setup failed", "error", err)
			os.Exit(1)
		}
		defer closeFn()
		ds = local
		log.Info("local mode", "config", *configPath)
	}

	s := mcp.New(ds, Version, log)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

// buildLocalSource wires the full in-process pipeline from config: catalog,
// generator, and the sqlite plan store.
func buildLocalSource(configPath string, log *slog.Logger) (*mcp.LocalSource, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if err := storage.RunMigrations(cfg.Storage.Path, "migrations"); err != nil {
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	db, err := storage.New(context.Background(), cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	cat := catalog.New(cfg.Catalog.URL, cfg.Catalog.APIKey,
		time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
		time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second, log)

	var chat generator.ChatClient
	if cfg.LLM.APIKey != "" {
		chat = llm.New(cfg.LLM.URL, cfg.LLM.APIKey, cfg.LLM.Model,
			time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
	}
	gen := generator.New(chat, log)

	closeFn := func() { _ = db.Close() }
	return mcp.NewLocalSource(cat, gen, db, log), closeFn, nil
}
