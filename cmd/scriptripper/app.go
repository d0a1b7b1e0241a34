package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"scriptripper/internal/activity"
	"scriptripper/internal/config"
	"scriptripper/internal/llm"
	"scriptripper/internal/logger"
	"scriptripper/internal/output"
	"scriptripper/internal/pipeline"
	"scriptripper/internal/profile"
	"scriptripper/internal/runner"
	"scriptripper/pkg/executor"
)

// app wires the pipeline's components from config and environment. It is
// built once per command invocation.
type app struct {
	cfg      *config.Config
	log      logger.Logger
	store    profile.Store
	pipeline pipeline.Pipeline
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level)

	if err := ensureDirectories(cfg); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}

	masterGuide, err := profile.LoadMasterGuide(cfg.Paths.Prompts)
	if err != nil {
		return nil, err
	}

	store := profile.New(cfg.Paths.Scripts, cfg.Paths.Prompts)

	invoker := llm.New(
		creds.APIKeys,
		cfg.Gemini.Model,
		time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second,
		log,
	)

	run := runner.New(invoker, masterGuide, log, runner.Options{
		ChunkSize:    cfg.Gemini.ChunkSize,
		ChunkOverlap: cfg.Gemini.ChunkOverlap,
	})

	mat := output.New(cfg.Paths.Outputs, cfg.Paths.Archive, cfg.Output.Docx, log)
	journal := activity.New(filepath.Join(cfg.Paths.Outputs, cfg.Output.ActivityLog))

	return &app{
		cfg:      cfg,
		log:      log,
		store:    store,
		pipeline: pipeline.New(store, run, mat, journal, executor.New(), cfg.Hooks.PostRun, log),
	}, nil
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Scripts,
		cfg.Paths.Outputs,
		cfg.Paths.Archive,
		cfg.Paths.Prompts,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
