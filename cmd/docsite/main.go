package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/internal/build"
	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/serve"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"docsite.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output     string `short:"o" help:"Output directory for the generated site (overrides site_dir)"`
		Clean      bool   `help:"Remove the output directory before building" default:"true" negatable:""`
		CheckLinks bool   `help:"Validate internal markdown references after rendering"`
	} `cmd:"" help:"Build the documentation site"`

	Serve struct {
		Addr string `short:"a" help:"Address to serve on (overrides dev_addr)"`
	} `cmd:"" help:"Serve the site locally and rebuild on change"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		opts := build.Options{
			OutputDir:  CLI.Build.Output,
			Clean:      CLI.Build.Clean,
			CheckLinks: CLI.Build.CheckLinks,
		}
		if _, err := build.Run(cfg, opts); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "serve":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		server := serve.New(CLI.Config, cfg, build.Options{Clean: true}, CLI.Serve.Addr)
		if err := server.Run(runCtx); err != nil {
			slog.Error("Serve failed", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Configuration file created", "path", CLI.Config)
	default:
		_ = ctx.PrintUsage(false)
		os.Exit(1)
	}
}
