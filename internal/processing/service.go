package processing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/wavesum/internal/render"
	"github.com/RMahshie/wavesum/internal/sampler"
	"github.com/RMahshie/wavesum/pkg/models"
)

type ProcessingService interface {
	Process(req *models.WaveRequest) (*models.WaveRun, error)
}

type processingService struct {
	sampler  sampler.Sampler
	renderer render.Renderer
	now      func() time.Time
}

func NewProcessingService(s sampler.Sampler, r render.Renderer) ProcessingService {
	return &processingService{
		sampler:  s,
		renderer: r,
		now:      time.Now,
	}
}

// Process samples both signals, sums them and renders the chart.
// Nothing is rendered unless every earlier step succeeds.
func (s *processingService) Process(req *models.WaveRequest) (*models.WaveRun, error) {
	runID := uuid.New()
	logger := log.With().
		Str("runID", runID.String()).
		Str("mode", req.Context.Mode.String()).
		Int("points", req.Context.PointCount).
		Logger()

	// Step 1: Sample signal 1
	logger.Debug().
		Float64("amplitude", req.Signal1.Amplitude).
		Float64("frequency", req.Signal1.Frequency).
		Float64("phase", req.Signal1.Phase).
		Msg("Sampling signal 1")
	signal1, err := s.sampler.Sample(req.Signal1, req.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to sample signal 1: %w", err)
	}

	// Step 2: Sample signal 2
	logger.Debug().
		Float64("amplitude", req.Signal2.Amplitude).
		Float64("frequency", req.Signal2.Frequency).
		Float64("phase", req.Signal2.Phase).
		Msg("Sampling signal 2")
	signal2, err := s.sampler.Sample(req.Signal2, req.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to sample signal 2: %w", err)
	}

	// Step 3: Sum
	sum, err := sampler.Sum(signal1, signal2)
	if err != nil {
		return nil, fmt.Errorf("failed to sum signals: %w", err)
	}

	run := &models.WaveRun{
		ID:        runID.String(),
		Title:     req.Context.Mode.Title(),
		Mode:      req.Context.Mode,
		Signal1:   signal1,
		Signal2:   signal2,
		Sum:       sum,
		CreatedAt: s.now(),
	}

	// Step 4: Render
	if err := s.renderer.Render(models.NewRunChart(run)); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	logger.Info().Str("title", run.Title).Msg("Run complete")
	return run, nil
}
