package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RMahshie/wavesum/pkg/models"
)

var (
	ErrNoInput    = errors.New("no input")
	ErrTokenCount = errors.New("wrong number of values")
	ErrNotNumeric = errors.New("value is not a number")
)

const (
	promptSignal1 = "Enter amplitude, frequency, and phase for Signal 1 (A1, f1, phi1): "
	promptSignal2 = "Enter amplitude, frequency, and phase for Signal 2 (A2, f2, phi2): "
	promptFixed   = "Enter the fixed value (time or distance): "
	promptMode    = "Is this a fixed time (1) or fixed distance (0)? "
)

// Prompter asks for run parameters one line at a time
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter reads answers from in and writes prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Acquire runs the four prompts in order and assembles a request.
// pointCount is not asked for; it comes from configuration.
func (p *Prompter) Acquire(pointCount int) (*models.WaveRequest, error) {
	s1, err := p.ReadSignalSpec(promptSignal1)
	if err != nil {
		return nil, fmt.Errorf("signal 1: %w", err)
	}

	s2, err := p.ReadSignalSpec(promptSignal2)
	if err != nil {
		return nil, fmt.Errorf("signal 2: %w", err)
	}

	fixed, err := p.ReadFixedValue()
	if err != nil {
		return nil, fmt.Errorf("fixed value: %w", err)
	}

	mode, err := p.ReadDomainMode()
	if err != nil {
		return nil, fmt.Errorf("domain mode: %w", err)
	}

	return &models.WaveRequest{
		Signal1: s1,
		Signal2: s2,
		Context: models.SamplingContext{
			FixedValue: fixed,
			Mode:       mode,
			PointCount: pointCount,
		},
	}, nil
}

// ReadSignalSpec expects three whitespace-separated numbers: amplitude, frequency, phase
func (p *Prompter) ReadSignalSpec(prompt string) (models.SignalSpec, error) {
	vals, err := p.readFloats(prompt, 3)
	if err != nil {
		return models.SignalSpec{}, err
	}
	return models.SignalSpec{Amplitude: vals[0], Frequency: vals[1], Phase: vals[2]}, nil
}

func (p *Prompter) ReadFixedValue() (float64, error) {
	vals, err := p.readFloats(promptFixed, 1)
	if err != nil {
		return 0, err
	}
	return vals[0], nil
}

func (p *Prompter) ReadDomainMode() (models.DomainMode, error) {
	fields, err := p.ask(promptMode)
	if err != nil {
		return 0, err
	}
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: want 1, got %d", ErrTokenCount, len(fields))
	}

	flag, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrNotNumeric, fields[0], err)
	}

	return models.ParseDomainMode(flag)
}

func (p *Prompter) readFloats(prompt string, want int) ([]float64, error) {
	fields, err := p.ask(prompt)
	if err != nil {
		return nil, err
	}
	if len(fields) != want {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrTokenCount, want, len(fields))
	}

	vals := make([]float64, want)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrNotNumeric, f, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// ask writes the prompt and returns the fields of the next input line
func (p *Prompter) ask(prompt string) ([]string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return nil, fmt.Errorf("failed to write prompt: %w", err)
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return nil, ErrNoInput
	}

	return strings.Fields(p.scanner.Text()), nil
}
