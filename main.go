package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dockicon/config"
	"dockicon/icon"
	"dockicon/watcher"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the single error boundary: every failure in config loading or the
// icon pipeline is returned here and reported once by main.
func run(args []string) error {
	fs := flag.NewFlagSet("dockicon", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigPath, "path to YAML config")
	envPath := fs.String("env", config.DefaultEnvPath, "path to .env file")
	input := fs.String("input", "", "source image")
	output := fs.String("output", "", "destination PNG")
	watch := fs.Bool("watch", false, "regenerate the icon whenever the source changes")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loadConfig(*configPath, *envPath)
	if err != nil {
		return err
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *watch {
		cfg.Watch.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	resampler, err := icon.ResamplerByName(cfg.Resampler)
	if err != nil {
		return err
	}
	compositor := icon.NewCompositor(icon.Options{Resampler: resampler})

	result, err := compositor.CreateIcon(cfg.Input, cfg.Output)
	if err != nil {
		return err
	}
	for _, line := range result.Summary() {
		fmt.Println(line)
	}

	if !cfg.Watch.Enabled {
		return nil
	}
	return watchSource(cfg, compositor)
}

func loadConfig(configPath, envPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.LoadEnv(envPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// watchSource keeps regenerating the icon until interrupted
func watchSource(cfg *config.Config, compositor *icon.Compositor) error {
	w, err := watcher.NewWatcher(cfg, compositor)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	log.Println("Press Ctrl+C to stop")

	go func() {
		for event := range w.Events() {
			if event.Err != nil {
				continue
			}
			for _, line := range event.Result.Summary() {
				fmt.Println(line)
			}
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	return w.Stop()
}
