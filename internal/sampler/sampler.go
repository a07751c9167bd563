package sampler

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/RMahshie/wavesum/pkg/models"
)

// SpeedOfLight is the propagation speed used for distance sampling, in m/s
const SpeedOfLight = 3e8

const tau = 2 * math.Pi

var (
	ErrZeroFrequency       = errors.New("division by zero: frequency must be nonzero")
	ErrInvalidPointCount   = errors.New("point count must be positive")
	ErrInvalidSpeedOfLight = errors.New("speed of light must be positive")
	ErrLengthMismatch      = errors.New("sample sequences differ in length")
)

// Sampler turns a signal description into an ordered sequence of samples
type Sampler interface {
	Sample(spec models.SignalSpec, sc models.SamplingContext) ([]float64, error)
}

type sinusoidSampler struct {
	speedOfLight float64
}

// NewSampler creates a sampler bound to a fixed propagation speed
func NewSampler(speedOfLight float64) (Sampler, error) {
	if speedOfLight <= 0 || math.IsNaN(speedOfLight) || math.IsInf(speedOfLight, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpeedOfLight, speedOfLight)
	}
	return &sinusoidSampler{speedOfLight: speedOfLight}, nil
}

// Sample evaluates A*sin(w*(x0+i*d)+phi) over one period (TimeFixed) or
// A*sin(k*(x0+i*d)+phi) over one wavelength (DistanceFixed).
func (s *sinusoidSampler) Sample(spec models.SignalSpec, sc models.SamplingContext) ([]float64, error) {
	if spec.Frequency == 0 {
		return nil, ErrZeroFrequency
	}
	if sc.PointCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPointCount, sc.PointCount)
	}
	if !sc.Mode.Valid() {
		return nil, fmt.Errorf("%w: %d", models.ErrInvalidDomainMode, int(sc.Mode))
	}

	omega := tau * spec.Frequency
	k := tau * spec.Frequency / s.speedOfLight

	var rate, delta float64
	if sc.Mode == models.TimeFixed {
		rate = omega
		delta = (1 / spec.Frequency) / float64(sc.PointCount)
	} else {
		rate = k
		delta = (s.speedOfLight / spec.Frequency) / float64(sc.PointCount)
	}

	samples := make([]float64, sc.PointCount)
	for i := range samples {
		variable := float64(i) * delta
		samples[i] = spec.Amplitude * math.Sin(rate*(sc.FixedValue+variable)+spec.Phase)
	}

	return samples, nil
}

// Sum adds two sample sequences pointwise into a new slice
func Sum(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return floats.AddTo(make([]float64, len(a)), a, b), nil
}
