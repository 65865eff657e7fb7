package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/soocke/svmdeck/app"
	"github.com/soocke/svmdeck/config"
	"github.com/soocke/svmdeck/domain/presentation"
	"github.com/soocke/svmdeck/export"
	"github.com/soocke/svmdeck/ui/chart"
)

func main() {
	cfgPath := flag.String("config", "svmdeck.json", "path to the JSON configuration file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime stats")
	exportDir := flag.String("export", "", "render the deck into this directory and exit")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	level := slog.LevelInfo
	if *debugFlag {
		cfg.Debug = true
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}

	// Set up logger
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	if *exportDir != "" {
		if err := runExport(cfg, *exportDir, logger); err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
		return
	}

	application := app.NewApp("Support Vector Machines", cfg, *cfgPath, logger)
	application.Start()
}

func runExport(cfg *config.Config, dir string, logger *slog.Logger) error {
	deck, err := presentation.Build(cfg, presentation.Options{
		ShowCandidates: cfg.ShowCandidates,
		Elev:           cfg.Elev,
		Azim:           cfg.Azim,
	})
	if err != nil {
		return err
	}
	_, err = export.Export(context.Background(), deck, dir, chart.New(cfg.PlotWidth, cfg.PlotHeight), logger)
	return err
}
