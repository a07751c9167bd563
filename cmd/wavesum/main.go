package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/RMahshie/wavesum/internal/config"
	"github.com/RMahshie/wavesum/internal/input"
	"github.com/RMahshie/wavesum/internal/processing"
	"github.com/RMahshie/wavesum/internal/render"
	"github.com/RMahshie/wavesum/internal/sampler"
)

func main() {
	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.Log.Level).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	s, err := sampler.NewSampler(cfg.Sampling.SpeedOfLight)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sampler")
	}

	plotRenderer := render.NewPlotRenderer(render.PlotConfig{
		Path:   cfg.Chart.Output,
		Width:  cfg.Chart.WidthInches,
		Height: cfg.Chart.HeightInches,
	})
	renderers := []render.Renderer{plotRenderer}
	if cfg.Preview.Enabled && term.IsTerminal(int(os.Stdout.Fd())) {
		renderers = append(renderers, render.NewTerminalRenderer(os.Stdout, cfg.Preview.Width, cfg.Preview.Height))
	}

	req, err := input.NewPrompter(os.Stdin, os.Stdout).Acquire(cfg.Sampling.PointCount)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid input")
	}

	run, err := processing.NewProcessingService(s, render.NewMultiRenderer(renderers...)).Process(req)
	if err != nil {
		log.Fatal().Err(err).Msg("Run failed")
	}

	log.Info().
		Str("runID", run.ID).
		Str("chart", plotRenderer.Path()).
		Msg("Chart written")
}
