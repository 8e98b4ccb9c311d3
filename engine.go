package layout

import (
	"fmt"
	"math"
)

// generator drives one layout generation pass. It owns the line store
// and every scratch buffer; all of it is single-threaded and reused
// across paragraphs within the pass, never across passes.
type generator struct {
	p       Params
	spans   spanSet
	breaker LineBreaker

	maxLines        int
	endsWithNewline bool

	store  lineStore
	mp     MeasuredParagraph
	breaks Breaks

	// scratch, reused per paragraph
	tabStops []float64
	chooseHt []lineHeightRun
	insets   []float64
	pads     []float64
	elWidths []float64

	// curTabStops are the current paragraph's sorted tab stops, kept
	// for the ellipsis scans, which expand tabs the same way the
	// breaker does.
	curTabStops []float64

	v          int
	ellipsized bool
	done       bool

	topPad, botPad int
	maxLineHeight  int
}

// generate runs the full pass and returns the immutable result.
func generate(p Params) *Layout {
	checkParams(&p)

	if p.SpacingMult == 0 {
		p.SpacingMult = 1
	}
	if p.EllipsizedWidth == 0 {
		p.EllipsizedWidth = p.Width
	}
	if p.DefaultTabStop == 0 {
		p.DefaultTabStop = defaultTabIncrement
	}

	g := &generator{
		p:             p,
		spans:         spanSet{spans: p.Spans},
		breaker:       p.Breaker,
		maxLines:      p.MaxLines,
		maxLineHeight: -1,
	}
	if g.breaker == nil {
		g.breaker = &BuiltinBreaker{}
	}
	if g.maxLines <= 0 {
		g.maxLines = math.MaxInt
	}
	g.endsWithNewline = p.End > p.Start && p.Text[p.End-1] == '\n'

	for paraStart := p.Start; paraStart < p.End && !g.done; {
		paraEnd := nextParagraph(p.Text, paraStart, p.End)
		g.layoutParagraph(paraStart, paraEnd)
		paraStart = paraEnd
	}

	// A trailing hard break, or an empty range, still contributes one
	// zero-width terminal line unless the visible-line cap already
	// halted generation.
	if !g.done && g.store.count < g.maxLines && (p.Start == p.End || g.endsWithNewline) {
		g.terminalLine()
	}

	return newLayout(g)
}

// checkParams fails fast on programmer errors in the configuration.
func checkParams(p *Params) {
	if p.Paint == nil {
		panic("layout: Params.Paint is nil")
	}
	if p.Start < 0 || p.End < p.Start || p.End > len(p.Text) {
		panic(fmt.Sprintf("layout: invalid text range [%d, %d) of %d", p.Start, p.End, len(p.Text)))
	}
	if p.Width < 0 {
		panic("layout: negative width")
	}
}

// layoutParagraph measures and breaks one paragraph, emitting each
// resulting line. It may set done when the visible-line cap halts
// generation mid-paragraph.
func (g *generator) layoutParagraph(paraStart, paraEnd int) {
	if g.store.count >= g.maxLines {
		g.done = true
		return
	}

	pi := g.segmentParagraph(paraStart, paraEnd)
	g.curTabStops = pi.tabStops
	g.mp.measure(g.p.Text, paraStart, paraEnd, g.p.Paint, g.p.TextDirection)

	c := BreakConstraints{
		FirstWidth:          pi.firstWidth,
		FirstWidthLineCount: pi.firstWidthLineCount,
		RestWidth:           pi.restWidth,
		Indents:             g.lineInsets(),
		Paddings:            g.linePaddings(),
		TabStops:            pi.tabStops,
		TabIncrement:        g.p.DefaultTabStop,
		Strategy:            g.p.BreakStrategy,
		Hyphenation:         g.p.Hyphenation,
		Justification:       g.p.Justification,
	}

	g.breaks.Reset()
	g.breaker.ComputeBreaks(&g.mp, c, &g.breaks)

	// Max-line pre-shrink: when the cap-overflow will be ellipsized,
	// collapse the overflowing breaks into a single final break so one
	// last line absorbs all remaining content instead of dropping it.
	remaining := g.maxLines - g.store.count
	if g.p.Ellipsize != EllipsizeNone && remaining > 0 && remaining < g.breaks.Len() &&
		(g.p.Ellipsize == EllipsizeEnd || (g.maxLines == 1 && g.p.Ellipsize != EllipsizeMarquee)) {
		g.breaks.Collapse(remaining)
	}

	lineStart := paraStart
	for i := 0; i < g.breaks.Len(); i++ {
		if g.store.count >= g.maxLines {
			g.done = true
			return
		}
		lineEnd := paraStart + g.breaks.Offsets[i]
		fm := g.lineMetrics(lineStart, lineEnd, i)
		g.v = g.out(lineStart, lineEnd, fm, g.breaks.Widths[i], g.breaks.Flags[i], pi.chooseHt)

		// Cap reached with an actual ellipsis: permanent halt, no
		// further characters are measured.
		if g.store.count >= g.maxLines && g.ellipsized {
			g.done = true
			return
		}
		lineStart = lineEnd
	}
}

// lineMetrics aggregates the vertical extent of [lineStart, lineEnd):
// the paint's metrics unioned with every metric span touching the line,
// then widened by the break's measured extremes when fallback line
// spacing is enabled.
func (g *generator) lineMetrics(lineStart, lineEnd, breakIndex int) FontMetrics {
	base := g.mp.Metrics
	fm := base
	g.spans.overlapping(lineStart, lineEnd, func(sr SpanRange) {
		if ms, ok := sr.Span.(MetricSpan); ok {
			fm = fm.Union(ms.UpdateMetrics(base))
		}
	})
	if g.p.FallbackLineSpacing {
		if a := g.breaks.Ascents[breakIndex]; a < fm.Ascent {
			fm.Ascent = a
		}
		if d := g.breaks.Descents[breakIndex]; d > fm.Descent {
			fm.Descent = d
		}
	}
	return fm
}

// terminalLine emits the zero-width line that terminates a layout whose
// text is empty or ends with a hard break.
func (g *generator) terminalLine() {
	end := g.p.End
	g.mp.measure(g.p.Text, end, end, g.p.Paint, g.p.TextDirection)
	g.v = g.out(end, end, g.mp.Metrics, 0, 0, nil)
}

// out emits one finished line: it runs the line-height callbacks,
// resolves padding and extra line spacing, appends the record, computes
// the ellipsis span when the truncation rules apply, and returns the
// advanced vertical cursor.
func (g *generator) out(start, end int, fm FontMetrics, width float64, flags BreakFlags, chooseHt []lineHeightRun) int {
	j := g.store.count

	for _, run := range chooseHt {
		fm = run.span.AdjustHeight(fm, run.startV, g.v)
	}
	above, below, top, bottom := fm.Ascent, fm.Descent, fm.Top, fm.Bottom

	firstLine := j == 0
	lastVisible := j+1 == g.maxLines
	moreChars := end < g.p.End
	lastLine := g.ellipsized || start == g.p.End || (end == g.p.End && !g.endsWithNewline)

	if firstLine {
		g.topPad = top - above
		if g.p.IncludePad {
			above = top
		}
	}
	if lastLine {
		g.botPad = bottom - below
		if g.p.IncludePad {
			below = bottom
		}
	}

	extra := 0
	needMultiply := g.p.SpacingMult != 1 || g.p.SpacingAdd != 0
	if needMultiply && (g.p.AddLastLineSpacing || !lastLine) {
		extra = roundHalfAwayFromZero(float64(below-above)*(g.p.SpacingMult-1) + g.p.SpacingAdd)
	}

	rec := lineRec{
		start:   start,
		top:     g.v,
		descent: below + extra,
		extra:   extra,
		width:   width,
		dir:     g.mp.Dir,
		hasTab:  flags.HasTab(),
		hyphen:  flags.HyphenEdit(),
		dirs:    g.mp.Directions(start, end),
	}
	nextV := g.v + (below - above) + extra
	g.store.append(rec, end, nextV)

	if g.p.Ellipsize != EllipsizeNone {
		mode := g.p.Ellipsize
		forceEllipsis := moreChars && j+1 == g.maxLines
		doEllipsis := (((g.maxLines == 1 && moreChars) || (firstLine && !moreChars)) && mode != EllipsizeMarquee) ||
			(!firstLine && (lastVisible || !moreChars) && mode == EllipsizeEnd)
		if doEllipsis {
			g.calculateEllipsis(start, end, g.p.EllipsizedWidth, mode, j, width, forceEllipsis)
		}
	}

	// Cache the as-if-final height of the last permitted line, so
	// callers get a stable capped height even when no truncation
	// occurred. The line is treated as if it were the layout's last:
	// widened to the font bottom under IncludePad and given no extra
	// spacing unless AddLastLineSpacing, so the cached value can be
	// smaller than the emitted line's real extent.
	if lastVisible {
		b := below
		if !lastLine && g.p.IncludePad {
			b = bottom
		}
		capExtra := 0
		if needMultiply && g.p.AddLastLineSpacing {
			capExtra = roundHalfAwayFromZero(float64(b-above)*(g.p.SpacingMult-1) + g.p.SpacingAdd)
		}
		g.maxLineHeight = g.v + (b - above) + capExtra
	}
	return nextV
}

// lineInsets builds the per-line total indent array for the breaker,
// shifted so index 0 is the next line to be laid out. The sparse
// repeat-last semantics of the configuration arrays are preserved.
func (g *generator) lineInsets() []float64 {
	g.insets = buildInsetTail(g.insets[:0], g.p.LeftIndents, g.p.RightIndents, g.store.count)
	return g.insets
}

// linePaddings does the same for the available-padding arrays.
func (g *generator) linePaddings() []float64 {
	g.pads = buildInsetTail(g.pads[:0], g.p.LeftPaddings, g.p.RightPaddings, g.store.count)
	return g.pads
}

// buildInsetTail sums two sparse per-line arrays and returns their tail
// starting at line from.
func buildInsetTail(dst []float64, left, right []int, from int) []float64 {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	if n == 0 {
		return dst
	}
	count := n - from
	if count < 1 {
		count = 1
	}
	for k := 0; k < count; k++ {
		dst = append(dst, float64(sparseIntAt(left, from+k)+sparseIntAt(right, from+k)))
	}
	return dst
}

// sparseIntAt reads a sparse per-line int array (last value repeats).
func sparseIntAt(a []int, i int) int {
	if len(a) == 0 {
		return 0
	}
	if i >= len(a) {
		return a[len(a)-1]
	}
	return a[i]
}

// totalInsets returns the indent both edges take from line's available
// width.
func (g *generator) totalInsets(line int) float64 {
	return float64(sparseIntAt(g.p.LeftIndents, line) + sparseIntAt(g.p.RightIndents, line))
}

// roundHalfAwayFromZero rounds to the nearest integer with half-values
// rounded away from zero. Line height is sensitive to the tie-breaking
// rule: a consistent bias of 1px accumulates visibly over many lines.
func roundHalfAwayFromZero(x float64) int {
	if x >= 0 {
		return int(x + 0.5)
	}
	return -int(-x + 0.5)
}
