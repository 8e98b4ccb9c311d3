package layout

// FontMetrics holds the vertical metrics of a font at a specific size,
// in pixels relative to the baseline.
//
// The sign convention follows the layout coordinate system, where y grows
// downward: Ascent and Top are at or above the baseline and therefore
// zero or negative, Descent and Bottom are at or below the baseline and
// therefore zero or positive. A line's natural height is
// Descent - Ascent.
type FontMetrics struct {
	// Ascent is the recommended distance above the baseline (<= 0).
	Ascent int

	// Descent is the recommended distance below the baseline (>= 0).
	Descent int

	// Top is the maximum distance above the baseline any glyph of the
	// font can reach (<= Ascent).
	Top int

	// Bottom is the maximum distance below the baseline any glyph of
	// the font can reach (>= Descent).
	Bottom int
}

// LineHeight returns the recommended line height, Descent - Ascent.
func (m FontMetrics) LineHeight() int {
	return m.Descent - m.Ascent
}

// Union widens m so that it covers o in every direction and returns the
// result. This is the font-metric union policy: a line's vertical extent
// is governed by the tallest metrics touching it.
func (m FontMetrics) Union(o FontMetrics) FontMetrics {
	if o.Ascent < m.Ascent {
		m.Ascent = o.Ascent
	}
	if o.Descent > m.Descent {
		m.Descent = o.Descent
	}
	if o.Top < m.Top {
		m.Top = o.Top
	}
	if o.Bottom > m.Bottom {
		m.Bottom = o.Bottom
	}
	return m
}
