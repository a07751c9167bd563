package render

import (
	"fmt"
	"io"

	tm "github.com/buger/goterm"

	"github.com/RMahshie/wavesum/pkg/models"
)

// TerminalRenderer draws an ASCII line chart of every series
type TerminalRenderer struct {
	out    io.Writer
	width  int
	height int
}

func NewTerminalRenderer(out io.Writer, width, height int) *TerminalRenderer {
	return &TerminalRenderer{out: out, width: width, height: height}
}

func (r *TerminalRenderer) Render(chart models.Chart) error {
	n := chart.Len()
	if n == 0 {
		return ErrEmptyChart
	}
	// goterm needs a non-degenerate x range
	if n < 2 {
		return nil
	}

	data := BuildDataTable(chart)
	lc := tm.NewLineChart(r.width, r.height)

	if _, err := fmt.Fprintln(r.out, chart.Title); err != nil {
		return fmt.Errorf("failed to write chart preview: %w", err)
	}
	if _, err := fmt.Fprintln(r.out, lc.Draw(data)); err != nil {
		return fmt.Errorf("failed to write chart preview: %w", err)
	}
	return nil
}

// BuildDataTable lays the chart out as rows of (index, series...)
func BuildDataTable(chart models.Chart) *tm.DataTable {
	data := new(tm.DataTable)
	data.AddColumn(chart.XLabel)
	for _, s := range chart.Series {
		data.AddColumn(s.Label)
	}

	for i := 0; i < chart.Len(); i++ {
		row := make([]float64, 0, len(chart.Series)+1)
		row = append(row, float64(i))
		for _, s := range chart.Series {
			var v float64
			if i < len(s.Values) {
				v = s.Values[i]
			}
			row = append(row, v)
		}
		data.AddRow(row...)
	}
	return data
}
