package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/articlegpt/internal/batch"
	"github.com/nguyentantai21042004/articlegpt/internal/watcher"
)

var (
	flagWorkers  int
	flagInterval int
	flagLength   int
	flagRetries  int
)

var runCmd = &cobra.Command{
	Use:   "run [directory]",
	Short: "Summarize every Markdown file under a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		applyOverrides(a)

		dir := a.cfg.Directory
		if len(args) > 0 {
			dir = args[0]
			a.cfg.Directory = dir
		}
		if dir == "" {
			return fmt.Errorf("no directory given and none configured")
		}
		if err := a.saveConfig(); err != nil {
			a.logger.Warn(ctx, "Failed to save config: %v", err)
		}

		runner := batch.New(a.proc, a.logger, a.cfg.MaxWorkers, time.Duration(a.cfg.RequestInterval)*time.Second)

		result, err := runner.Run(ctx, dir)
		if err != nil {
			return err
		}

		for attempt := 0; attempt < flagRetries && result.CanRetry(); attempt++ {
			a.logger.Info(ctx, "Retry pass %d/%d", attempt+1, flagRetries)
			result = runner.RetryFailed(ctx)
		}

		fmt.Printf("Completed: %d succeeded, %d failed\n", result.Completed, result.Failed)
		if result.CanRetry() {
			for _, path := range runner.FailedFiles() {
				fmt.Printf("  failed: %s\n", path)
			}
			return fmt.Errorf("%d files failed", result.Failed)
		}
		return nil
	},
}

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Summarize a single Markdown file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		applyOverrides(a)

		if !a.proc.Process(ctx, args[0]) {
			return fmt.Errorf("failed to process %s", args[0])
		}
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and summarize new Markdown files as they appear",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		applyOverrides(a)

		dir := a.cfg.Directory
		if len(args) > 0 {
			dir = args[0]
		}
		if dir == "" {
			return fmt.Errorf("no directory given and none configured")
		}

		w, err := watcher.New(dir, a.proc.Process, a.logger, a.cfg.MaxWorkers)
		if err != nil {
			return err
		}
		defer w.Stop()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			a.logger.Info(ctx, "Shutdown signal received")
			cancel()
		}()

		if err := w.Start(ctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{runCmd, fileCmd, watchCmd} {
		cmd.Flags().IntVar(&flagWorkers, "workers", 0, "max concurrent requests (overrides config)")
		cmd.Flags().IntVar(&flagInterval, "interval", 0, "seconds between request dispatches (overrides config)")
		cmd.Flags().IntVar(&flagLength, "length", 0, "summary length in characters (overrides config)")
	}
	runCmd.Flags().IntVar(&flagRetries, "retries", 0, "extra passes over the failed subset")
}

func applyOverrides(a *app) {
	if flagWorkers > 0 {
		a.cfg.MaxWorkers = flagWorkers
	}
	if flagInterval > 0 {
		a.cfg.RequestInterval = flagInterval
	}
	if flagLength > 0 {
		a.cfg.SummaryLength = flagLength
	}
}
