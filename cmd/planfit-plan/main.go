package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/claude/planfit/internal/catalog"
	"github.com/claude/planfit/internal/config"
	"github.com/claude/planfit/internal/generator"
	"github.com/claude/planfit/internal/llm"
	"github.com/claude/planfit/internal/models"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	goal := flag.String("goal", "general_fitness", "primary goal (general_fitness, weight_loss, muscle_gain, strength, endurance, flexibility)")
	experience := flag.String("experience", "beginner", "experience level (beginner, intermediate, advanced)")
	days := flag.Int("days", 3, "workout days per week (2-7)")
	duration := flag.Int("duration", 45, "session duration in minutes (15-120)")
	equipment := flag.String("equipment", "body_only", "comma-separated available equipment")
	focus := flag.String("focus", "full_body", "comma-separated focus areas")
	outDir := flag.String("out", ".", "directory to write the exported plan into")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("planfit-plan", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Config is optional here: without one the catalog serves the built-in
	// table and plans come from the deterministic planner.
	var catCfg config.CatalogConfig
	var llmCfg config.LLMConfig
	if cfg, err := config.Load(*configPath); err == nil {
		catCfg = cfg.Catalog
		llmCfg = cfg.LLM
	} else {
		log.Warn("config not loaded, running fully offline", "error", err)
	}

	profile := models.UserProfile{
		Goal:            *goal,
		Experience:      *experience,
		DaysPerWeek:     *days,
		DurationMinutes: *duration,
		Equipment:       splitList(*equipment),
		FocusAreas:      splitList(*focus),
	}
	profile.Normalize()

	cat := catalog.New(catCfg.URL, catCfg.APIKey,
		time.Duration(catCfg.TimeoutSeconds)*time.Second,
		time.Duration(catCfg.CacheTTLSeconds)*time.Second, log)

	var chat generator.ChatClient
	if llmCfg.APIKey != "" {
		chat = llm.New(llmCfg.URL, llmCfg.APIKey, llmCfg.Model,
			time.Duration(llmCfg.TimeoutSeconds)*time.Second)
	}
	gen := generator.New(chat, log)

	ctx := context.Background()
	exercises := cat.FetchFocusAreas(ctx, profile.FocusAreas)
	log.Info("exercise pool assembled", "count", len(exercises))

	plan, source := gen.Generate(ctx, profile, exercises)
	log.Info("plan generated", "source", source, "days", len(plan.WeeklySchedule))

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		log.Error("failed to encode plan", "error", err)
		os.Exit(1)
	}

	outPath := filepath.Join(*outDir, models.ExportFilename(time.Now()))
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Error("failed to write plan file", "path", outPath, "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n\n%s\n\nWritten to %s\n", plan.PlanName, plan.Overview, outPath)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
