package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/articlegpt/internal/config"
	"github.com/nguyentantai21042004/articlegpt/internal/logger"
	"github.com/nguyentantai21042004/articlegpt/internal/processor"
	"github.com/nguyentantai21042004/articlegpt/internal/registry"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "articlegpt",
	Short:        "Summarize Markdown files with an LLM and prepend the summary as front-matter",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the config document")
	rootCmd.AddCommand(runCmd, fileCmd, watchCmd, modelsCmd)
}

// app bundles everything a command needs after setup.
type app struct {
	cfg      *config.Config
	logger   logger.Logger
	registry *registry.Registry
	proc     processor.Processor
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	log, logErr := logger.NewWithFile(cfg.LogLevel, cfg.LogFile)
	if logErr != nil {
		log = logger.New(cfg.LogLevel)
		log.Warn(ctx, "Falling back to stdout logging: %v", logErr)
	}
	if err != nil {
		log.Warn(ctx, "%v", err)
	}

	reg := registry.NewFromConfig(cfg)
	return &app{
		cfg:      cfg,
		logger:   log,
		registry: reg,
		proc:     processor.New(cfg, reg, log),
	}, nil
}

// saveConfig writes the registry state and the rest of the document back.
func (a *app) saveConfig() error {
	a.registry.Apply(a.cfg)
	return config.Save(configPath, a.cfg)
}

func (a *app) close() {
	logger.Close(a.logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
