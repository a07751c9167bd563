package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDomainMode(t *testing.T) {
	tests := []struct {
		name    string
		flag    int
		want    DomainMode
		wantErr bool
	}{
		{name: "fixed time", flag: 1, want: TimeFixed},
		{name: "fixed distance", flag: 0, want: DistanceFixed},
		{name: "two is rejected", flag: 2, wantErr: true},
		{name: "negative is rejected", flag: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDomainMode(tt.flag)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDomainMode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDomainModeTitle(t *testing.T) {
	assert.Equal(t, "Sum of Signals over Time", TimeFixed.Title())
	assert.Equal(t, "Sum of Signals over Distance", DistanceFixed.Title())
	assert.Equal(t, "time", TimeFixed.String())
	assert.Equal(t, "distance", DistanceFixed.String())
	assert.False(t, DomainMode(7).Valid())
}

func TestNewRunChart(t *testing.T) {
	run := &WaveRun{
		Title:   TimeFixed.Title(),
		Signal1: []float64{0, 1},
		Signal2: []float64{1, 0},
		Sum:     []float64{1, 1, 2},
	}

	chart := NewRunChart(run)

	assert.Equal(t, "Sum of Signals over Time", chart.Title)
	assert.Equal(t, "Index", chart.XLabel)
	assert.Equal(t, "Amplitude", chart.YLabel)
	require.Len(t, chart.Series, 3)
	assert.Equal(t, "Signal 1", chart.Series[0].Label)
	assert.Equal(t, Red, chart.Series[0].Color)
	assert.Equal(t, "Signal 2", chart.Series[1].Label)
	assert.Equal(t, "Sum of Signals", chart.Series[2].Label)
	assert.Equal(t, 3, chart.Len())
}
