package layout

// calculateEllipsis computes the elided span of the line just emitted
// at index line, covering [start, end), and stores it in the line
// record as (ellipsisStart, ellipsisCount) relative to start.
//
// avail is the ellipsis width budget before the line's indents;
// textWidth is the line's measured advance. When forceEllipsis is set
// the line must end up truncated even if it fits, because content after
// it is being cut by the visible-line cap.
func (g *generator) calculateEllipsis(start, end int, avail float64, mode EllipsizeMode, line int, textWidth float64, forceEllipsis bool) {
	avail -= g.totalInsets(line)
	if textWidth <= avail && !forceEllipsis {
		// Fits: no truncation.
		return
	}

	ws := g.expandedLineWidths(start, end)
	ellipsisWidth := g.p.Paint.EllipsisWidth()
	n := end - start
	ellipsisStart, ellipsisCount := 0, 0

	switch mode {
	case EllipsizeStart:
		if g.maxLines != 1 {
			Logger().Warn("layout: Start ellipsis only supported with one line")
			return
		}
		// Scan right to left; keep the tail that fits next to the
		// ellipsis glyph.
		sum := 0.0
		i := n
		for ; i > 0; i-- {
			w := ws[i-1]
			if w+sum+ellipsisWidth > avail {
				// Cover any zero-width characters so the cut never
				// lands inside a combining cluster.
				for i < n && ws[i] == 0 {
					i++
				}
				break
			}
			sum += w
		}
		ellipsisStart = 0
		ellipsisCount = i

	case EllipsizeMiddle:
		if g.maxLines != 1 {
			Logger().Warn("layout: Middle ellipsis only supported with one line")
			return
		}
		// Split the budget roughly in half: right boundary first, then
		// spend the remainder on the left.
		lsum, rsum := 0.0, 0.0
		right := n
		ravail := (avail - ellipsisWidth) / 2
		for ; right > 0; right-- {
			w := ws[right-1]
			if w+rsum > ravail {
				for right < n && ws[right] == 0 {
					right++
				}
				break
			}
			rsum += w
		}
		lavail := avail - ellipsisWidth - rsum
		left := 0
		for ; left < right; left++ {
			w := ws[left]
			if w+lsum > lavail {
				break
			}
			lsum += w
		}
		ellipsisStart = left
		ellipsisCount = right - left

	default: // EllipsizeEnd, EllipsizeMarquee
		// Scan left to right; truncate from the first character that
		// would push the line plus the ellipsis glyph past the budget.
		sum := 0.0
		i := 0
		for ; i < n; i++ {
			w := ws[i]
			if w+sum+ellipsisWidth > avail {
				break
			}
			sum += w
		}
		ellipsisStart = i
		ellipsisCount = n - i
		if forceEllipsis && ellipsisCount == 0 && n > 0 {
			// Forced but the natural scan kept everything: elide
			// exactly the last character.
			ellipsisStart = n - 1
			ellipsisCount = 1
		}
	}

	if ellipsisCount > 0 || forceEllipsis {
		g.ellipsized = true
	}
	rec := g.store.line(line)
	rec.ellipsisStart = ellipsisStart
	rec.ellipsisCount = ellipsisCount
}

// expandedLineWidths returns the advance of each character of
// [start, end), with tabs expanded at their position within the line
// the way the breaker measures them. The generator's scratch buffer is
// reused across calls.
func (g *generator) expandedLineWidths(start, end int) []float64 {
	n := end - start
	g.elWidths = growFloats(g.elWidths, n)
	pos := 0.0
	for i := 0; i < n; i++ {
		w := g.mp.Widths[start-g.mp.Start+i]
		if g.p.Text[start+i] == '\t' {
			w = nextTabStop(g.curTabStops, g.p.DefaultTabStop, pos) - pos
		}
		g.elWidths[i] = w
		pos += w
	}
	return g.elWidths
}
