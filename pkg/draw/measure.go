package draw

import (
	"github.com/philipparndt/goplot3d/pkg/style"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextMeasurer reports the pixel size of a string rendered in a font
type TextMeasurer interface {
	Measure(text string, f style.Font) (width, height float64)
}

// FaceMeasurer measures text with a fixed font.Face, scaling by the requested size
type FaceMeasurer struct {
	Face font.Face
	// Size is the pixel size Face was created for; zero disables scaling
	Size float64
}

// NewBasicMeasurer measures with the 7x13 bitmap face from x/image
func NewBasicMeasurer() *FaceMeasurer {
	return &FaceMeasurer{Face: basicfont.Face7x13, Size: 13}
}

// Measure implements TextMeasurer
func (m *FaceMeasurer) Measure(text string, f style.Font) (float64, float64) {
	advance := font.MeasureString(m.Face, text)
	metrics := m.Face.Metrics()
	w := float64(advance) / 64
	h := float64(metrics.Height) / 64

	if m.Size > 0 && f.Size > 0 {
		k := f.Size / m.Size
		w *= k
		h *= k
	}
	return w, h
}
