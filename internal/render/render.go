package render

import (
	"errors"

	"github.com/RMahshie/wavesum/pkg/models"
)

var ErrEmptyChart = errors.New("chart has no samples")

// Renderer displays a chart somewhere the user can see it
type Renderer interface {
	Render(chart models.Chart) error
}

type multiRenderer struct {
	renderers []Renderer
}

// NewMultiRenderer renders to each renderer in order and stops at the first error
func NewMultiRenderer(renderers ...Renderer) Renderer {
	return &multiRenderer{renderers: renderers}
}

func (m *multiRenderer) Render(chart models.Chart) error {
	for _, r := range m.renderers {
		if err := r.Render(chart); err != nil {
			return err
		}
	}
	return nil
}
