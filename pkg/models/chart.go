package models

import "image/color"

// Series is one labelled curve indexed by sample position
type Series struct {
	Label  string
	Color  color.RGBA
	Values []float64
}

// Chart is everything a renderer needs to draw a run
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

var (
	Red   = color.RGBA{R: 255, A: 255}
	Blue  = color.RGBA{B: 255, A: 255}
	Green = color.RGBA{G: 128, A: 255}
)

// NewRunChart builds the three-curve chart for a completed run
func NewRunChart(run *WaveRun) Chart {
	return Chart{
		Title:  run.Title,
		XLabel: "Index",
		YLabel: "Amplitude",
		Series: []Series{
			{Label: "Signal 1", Color: Red, Values: run.Signal1},
			{Label: "Signal 2", Color: Blue, Values: run.Signal2},
			{Label: "Sum of Signals", Color: Green, Values: run.Sum},
		},
	}
}

// Len returns the length of the longest series
func (c Chart) Len() int {
	n := 0
	for _, s := range c.Series {
		if len(s.Values) > n {
			n = len(s.Values)
		}
	}
	return n
}
