package layout

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ellipsisRune is the glyph inserted at an elided span.
const ellipsisRune = '…'

// Paint supplies font metrics and character advances to the layout
// engine. Implementations must be cheap to query repeatedly; the engine
// asks for the advance of every character of every paragraph once per
// generation pass.
type Paint interface {
	// Metrics returns the font metrics used for unstyled text.
	Metrics() FontMetrics

	// Widths fills w with the advance of each rune in text.
	// len(w) == len(text). Control characters (newline, tab) should
	// report a zero advance; tab expansion is handled by the breaker.
	Widths(text []rune, w []float64)

	// EllipsisWidth returns the rendered advance of the ellipsis glyph.
	EllipsisWidth() float64
}

// FacePaint adapts a golang.org/x/image/font.Face to the Paint
// interface.
//
// FacePaint is not safe for concurrent use: font.Face implementations
// carry internal buffers. Create one FacePaint per generation pass, or
// guard it externally.
type FacePaint struct {
	face font.Face
}

// NewFacePaint returns a Paint backed by face.
func NewFacePaint(face font.Face) (*FacePaint, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	return &FacePaint{face: face}, nil
}

// Metrics implements the Paint interface.
//
// x/image faces expose ascent, descent and the recommended line height
// but no separate top/bottom extremes. The extra leading is split off
// the line height and attributed above the ascent, which is where latin
// fonts typically place it.
func (p *FacePaint) Metrics() FontMetrics {
	m := p.face.Metrics()
	ascent := -m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	gap := (m.Height - m.Ascent - m.Descent).Ceil()
	if gap < 0 {
		gap = 0
	}
	return FontMetrics{
		Ascent:  ascent,
		Descent: descent,
		Top:     ascent - gap,
		Bottom:  descent,
	}
}

// Widths implements the Paint interface.
func (p *FacePaint) Widths(text []rune, w []float64) {
	for i, r := range text {
		if r == '\n' || r == '\t' {
			w[i] = 0
			continue
		}
		adv, ok := p.face.GlyphAdvance(r)
		if !ok {
			// Missing glyph: fall back to the replacement character
			// advance so widths stay monotonic.
			adv, _ = p.face.GlyphAdvance('�')
		}
		w[i] = fixedToFloat(adv)
	}
}

// EllipsisWidth implements the Paint interface.
func (p *FacePaint) EllipsisWidth() float64 {
	adv, ok := p.face.GlyphAdvance(ellipsisRune)
	if !ok {
		// Fall back to three full stops.
		adv, _ = p.face.GlyphAdvance('.')
		adv *= 3
	}
	return fixedToFloat(adv)
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
