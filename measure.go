package layout

import (
	"golang.org/x/text/unicode/bidi"
)

// MeasuredParagraph carries one paragraph's characters with their
// measured advances and resolved bidi levels. It is handed to the
// LineBreaker and queried for per-line direction descriptors.
//
// The backing slices are owned by the generation pass and reused across
// paragraphs; implementations of LineBreaker must not retain them.
type MeasuredParagraph struct {
	// Text is the paragraph's characters, including any trailing
	// newline.
	Text []rune

	// Start is the offset of Text[0] within the whole layout buffer.
	Start int

	// Widths is the advance of each rune in Text. Tabs report zero
	// here; the breaker expands them against the tab stops.
	Widths []float64

	// Dir is the paragraph's resolved base direction.
	Dir Direction

	// Metrics is the paint's base font metrics, the per-break
	// ascent/descent contribution when no taller glyphs are measured.
	Metrics FontMetrics

	levels []uint8
}

// Directions returns the bidi run descriptor for the sub-range
// [lineStart, lineEnd) of the layout buffer. Both offsets are absolute;
// the range must lie within the paragraph.
func (mp *MeasuredParagraph) Directions(lineStart, lineEnd int) *Directions {
	return newDirections(mp.levels, lineStart-mp.Start, lineEnd-mp.Start)
}

// measure fills mp for the paragraph [paraStart, paraEnd) of text,
// reusing mp's backing storage from the previous paragraph.
func (mp *MeasuredParagraph) measure(text []rune, paraStart, paraEnd int, paint Paint, h DirectionHeuristic) {
	para := text[paraStart:paraEnd]
	n := len(para)

	mp.Text = para
	mp.Start = paraStart
	mp.Metrics = paint.Metrics()
	mp.Dir = resolveParagraphDirection(h, para)

	mp.Widths = growFloats(mp.Widths, n)
	paint.Widths(para, mp.Widths)

	mp.levels = growLevels(mp.levels, n)
	computeBidiLevels(para, mp.Dir, mp.levels)
}

// resolveParagraphDirection applies the direction heuristic to one
// paragraph, scanning for the first strongly directional character when
// the heuristic asks for it.
func resolveParagraphDirection(h DirectionHeuristic, text []rune) Direction {
	switch h {
	case ForceLTR:
		return DirectionLTR
	case ForceRTL:
		return DirectionRTL
	}
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	if h == FirstStrongRTL {
		return DirectionRTL
	}
	return DirectionLTR
}

// computeBidiLevels resolves a level for every rune of the paragraph.
// Levels are reduced to 0 (LTR) and 1 (RTL) from the run directions the
// bidi algorithm reports, which is all the layout engine needs to carry
// per-line direction runs.
func computeBidiLevels(text []rune, base Direction, levels []uint8) {
	for i := range levels {
		levels[i] = 0
	}
	baseLevel := uint8(0)
	defaultDir := bidi.Neutral
	if base == DirectionRTL {
		baseLevel = 1
		defaultDir = bidi.RightToLeft
	}
	for i := range levels {
		levels[i] = baseLevel
	}
	if len(text) == 0 {
		return
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(string(text), bidi.DefaultDirection(defaultDir)); err != nil {
		return
	}
	ordering, err := p.Order()
	if err != nil {
		return
	}
	// run.Pos() returns rune indices (start, end inclusive)
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		runLevel := uint8(0)
		if run.Direction() == bidi.RightToLeft {
			runLevel = 1
		}
		for j := startRune; j <= endRune && j < len(levels); j++ {
			levels[j] = runLevel
		}
	}
}

// growFloats returns a slice of length n backed by s when it has the
// capacity, growing (and never shrinking) otherwise.
func growFloats(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n, growCap(cap(s), n))
	}
	return s[:n]
}

func growLevels(s []uint8, n int) []uint8 {
	if cap(s) < n {
		return make([]uint8, n, growCap(cap(s), n))
	}
	return s[:n]
}

// growCap doubles the old capacity until it covers need.
func growCap(old, need int) int {
	c := old
	if c < 8 {
		c = 8
	}
	for c < need {
		c *= 2
	}
	return c
}
