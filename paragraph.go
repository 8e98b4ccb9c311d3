package layout

import "sort"

// paragraphInfo is the per-paragraph metadata the segmenter gathers
// from the spans overlapping [start, end): width budgets after leading
// margins, variable tab stops, and line-height callbacks with their
// activation offsets.
type paragraphInfo struct {
	start, end int

	firstWidth          float64
	firstWidthLineCount int
	restWidth           float64

	tabStops []float64
	chooseHt []lineHeightRun
}

// lineHeightRun is one registered line-height callback with the
// vertical offset at which it starts applying: the top of the line
// containing the span start when the span began before this paragraph,
// or the paragraph's running vertical cursor otherwise.
type lineHeightRun struct {
	span   LineHeightSpan
	startV int
}

// nextParagraph returns the end of the paragraph starting at start: one
// past the next hard line break, or end of the laid-out range.
func nextParagraph(text []rune, start, end int) int {
	for i := start; i < end; i++ {
		if text[i] == '\n' {
			return i + 1
		}
	}
	return end
}

// segmentParagraph computes the paragraph's metadata, reusing the
// generator's scratch slices.
func (g *generator) segmentParagraph(paraStart, paraEnd int) paragraphInfo {
	pi := paragraphInfo{
		start:               paraStart,
		end:                 paraEnd,
		firstWidth:          g.p.Width,
		restWidth:           g.p.Width,
		firstWidthLineCount: 1,
		tabStops:            g.tabStops[:0],
		chooseHt:            g.chooseHt[:0],
	}

	g.spans.overlapping(paraStart, paraEnd, func(sr SpanRange) {
		if ms, ok := sr.Span.(LeadingMarginSpan); ok {
			pi.firstWidth -= float64(ms.LeadingMargin(true))
			pi.restWidth -= float64(ms.LeadingMargin(false))
			if lc, ok := sr.Span.(LeadingMarginLineCount); ok {
				if n := lc.LeadingMarginLineCount(); n > pi.firstWidthLineCount {
					pi.firstWidthLineCount = n
				}
			}
		}
		if ts, ok := sr.Span.(TabStopSpan); ok {
			pi.tabStops = append(pi.tabStops, ts.TabStop())
		}
		if hs, ok := sr.Span.(LineHeightSpan); ok {
			startV := g.v
			if sr.Start < paraStart && g.store.count > 0 {
				startV = g.store.line(g.store.lineForOffset(sr.Start)).top
			}
			pi.chooseHt = append(pi.chooseHt, lineHeightRun{span: hs, startV: startV})
		}
	})

	sort.Float64s(pi.tabStops)

	g.tabStops = pi.tabStops[:0]
	g.chooseHt = pi.chooseHt[:0]
	return pi
}
