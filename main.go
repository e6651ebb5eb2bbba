package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"scriptpick/internal/config"
	"scriptpick/internal/logic"
	"scriptpick/internal/manifest"
	"scriptpick/internal/runner"
	"scriptpick/internal/ui"
)

// errNotTerminal is returned when the picker cannot take over the terminal
var errNotTerminal = errors.New("stdin and stdout must be a terminal")

func main() {
	os.Exit(run())
}

func run() int {
	workDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Error getting current directory: %v\n", err)
		return 1
	}

	// Load configuration
	configSvc := config.NewConfigService(workDir)
	cfg, cfgErr := configSvc.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	// Set up logging; the TUI owns the terminal so logs never go to stdout
	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}
	if cfgErr != nil {
		log.Printf("Error loading config, using defaults: %v", cfgErr)
	}

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", errNotTerminal)
		return 1
	}

	result := manifest.Load(workDir, cfg.Manifest)
	if result.Err != nil {
		log.Printf("Manifest %s: %s: %v", result.FileName, result.Kind, result.Err)
	} else {
		log.Printf("Manifest %s loaded", result.FileName)
	}
	store := logic.NewMemoryScriptStore(result.Scripts())

	ctx := context.Background()

	log.Printf("Starting UI with %d scripts...", store.Len())
	selection, err := ui.Run(ctx, store, cfg)
	if err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}

	if !selection.Confirmed() {
		log.Printf("No script selected")
		return 0
	}

	if command, ok := store.Command(selection.Name); ok {
		log.Printf("Running %s %s (%s)", cfg.Runner, selection.Name, command)
	}
	r := runner.NewExec(cfg.Runner)
	r.Dir = workDir
	if err := r.Run(ctx, selection.Name); err != nil {
		log.Printf("Runner failed: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return runner.ExitCode(err)
	}

	log.Printf("Script %s finished", selection.Name)
	return 0
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
