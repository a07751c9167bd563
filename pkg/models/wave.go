package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDomainMode is returned for any domain mode flag other than 0 or 1
var ErrInvalidDomainMode = errors.New("invalid domain mode")

// DomainMode selects which axis a signal is sampled over
type DomainMode int

const (
	// DistanceFixed samples across one wavelength at a fixed time instant
	DistanceFixed DomainMode = iota
	// TimeFixed samples across one period at a fixed spatial position
	TimeFixed
)

// ParseDomainMode maps the interactive 0/1 flag onto a DomainMode.
// 1 is TimeFixed, 0 is DistanceFixed; nothing else is accepted.
func ParseDomainMode(flag int) (DomainMode, error) {
	switch flag {
	case 1:
		return TimeFixed, nil
	case 0:
		return DistanceFixed, nil
	default:
		return 0, fmt.Errorf("%w: %d (expected 1 for fixed time or 0 for fixed distance)", ErrInvalidDomainMode, flag)
	}
}

// Valid reports whether m is one of the two known modes
func (m DomainMode) Valid() bool {
	return m == TimeFixed || m == DistanceFixed
}

func (m DomainMode) String() string {
	switch m {
	case TimeFixed:
		return "time"
	case DistanceFixed:
		return "distance"
	default:
		return fmt.Sprintf("DomainMode(%d)", int(m))
	}
}

// Title returns the chart title used for runs in this mode
func (m DomainMode) Title() string {
	if m == TimeFixed {
		return "Sum of Signals over Time"
	}
	return "Sum of Signals over Distance"
}

// SignalSpec describes one sinusoid
type SignalSpec struct {
	Amplitude float64 `json:"amplitude"`
	Frequency float64 `json:"frequency"` // Hz, must be nonzero
	Phase     float64 `json:"phase"`     // radians
}

// SamplingContext is shared by both signals of a run
type SamplingContext struct {
	FixedValue float64    `json:"fixed_value"` // seconds or meters depending on Mode
	Mode       DomainMode `json:"mode"`
	PointCount int        `json:"point_count"`
}

// WaveRequest carries everything collected from the user for one run
type WaveRequest struct {
	Signal1 SignalSpec      `json:"signal_1"`
	Signal2 SignalSpec      `json:"signal_2"`
	Context SamplingContext `json:"context"`
}

// WaveRun is the result of one pass through the pipeline
type WaveRun struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Mode      DomainMode `json:"mode"`
	Signal1   []float64  `json:"signal_1"`
	Signal2   []float64  `json:"signal_2"`
	Sum       []float64  `json:"sum"`
	CreatedAt time.Time  `json:"created_at"`
}
