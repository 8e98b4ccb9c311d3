package layout

import (
	"math"
	"unicode"
)

// softHyphen marks an optional hyphenation point.
const softHyphen = '­'

// BreakFlags carries per-break metadata: the low eight bits are the
// HyphenEdit and bit eight records the presence of a tab.
type BreakFlags uint16

// flagTab marks a candidate line containing at least one tab.
const flagTab BreakFlags = 1 << 8

// HasTab reports whether the candidate line contains a tab.
func (f BreakFlags) HasTab() bool { return f&flagTab != 0 }

// HyphenEdit extracts the hyphen edit bits.
func (f BreakFlags) HyphenEdit() HyphenEdit { return HyphenEdit(f) }

// BreakConstraints is the per-paragraph width budget handed to a
// LineBreaker.
type BreakConstraints struct {
	// FirstWidth is the budget of the paragraph's leading lines, after
	// first-line leading margins.
	FirstWidth float64

	// FirstWidthLineCount is how many leading lines FirstWidth covers.
	// At least 1.
	FirstWidthLineCount int

	// RestWidth is the budget of the remaining lines.
	RestWidth float64

	// Indents holds each candidate line's total horizontal inset
	// (left + right), indexed from the paragraph's first line. The last
	// value repeats past the array end; empty means no insets.
	Indents []float64

	// Paddings holds available padding the breaker may let glyphs
	// extend into, with the same indexing as Indents.
	Paddings []float64

	// TabStops are the paragraph's variable tab stops, sorted
	// ascending. Empty means the fixed TabIncrement applies.
	TabStops []float64

	// TabIncrement is the default fixed tab advance.
	TabIncrement float64

	// Strategy, Hyphenation and Justification are forwarded from the
	// layout configuration.
	Strategy      BreakStrategy
	Hyphenation   HyphenationFrequency
	Justification Justification
}

// avail returns the width budget of candidate line i of the paragraph.
func (c *BreakConstraints) avail(i int) float64 {
	w := c.RestWidth
	if i < c.FirstWidthLineCount {
		w = c.FirstWidth
	}
	return w - sparseAt(c.Indents, i) + sparseAt(c.Paddings, i)
}

// sparseAt reads a sparse per-line array: the last value repeats for
// every index past the end, and an empty array reads as zero.
func sparseAt(a []float64, i int) float64 {
	if len(a) == 0 {
		return 0
	}
	if i >= len(a) {
		return a[len(a)-1]
	}
	return a[i]
}

// nextTab returns the position of the first tab stop past pos.
func nextTab(c *BreakConstraints, pos float64) float64 {
	return nextTabStop(c.TabStops, c.TabIncrement, pos)
}

// nextTabStop returns the first variable stop past pos, falling back to
// the fixed increment when the stops are exhausted.
func nextTabStop(stops []float64, inc, pos float64) float64 {
	for _, stop := range stops {
		if stop > pos {
			return stop
		}
	}
	if inc <= 0 {
		inc = defaultTabIncrement
	}
	return (math.Floor(pos/inc) + 1) * inc
}

// Breaks is the columnar result of line-break measurement: candidate
// break i ends at Offsets[i] (relative to the paragraph start) with the
// given advance width, vertical contribution and flags.
//
// The backing storage grows on demand and never shrinks, so one Breaks
// value can be reused across every paragraph of a generation pass.
type Breaks struct {
	Offsets  []int
	Widths   []float64
	Ascents  []int
	Descents []int
	Flags    []BreakFlags
}

// Len returns the number of candidate breaks.
func (b *Breaks) Len() int { return len(b.Offsets) }

// Reset empties b, keeping the backing storage.
func (b *Breaks) Reset() {
	b.Offsets = b.Offsets[:0]
	b.Widths = b.Widths[:0]
	b.Ascents = b.Ascents[:0]
	b.Descents = b.Descents[:0]
	b.Flags = b.Flags[:0]
}

// Append adds one candidate break.
func (b *Breaks) Append(offset int, width float64, ascent, descent int, flags BreakFlags) {
	b.Offsets = append(b.Offsets, offset)
	b.Widths = append(b.Widths, width)
	b.Ascents = append(b.Ascents, ascent)
	b.Descents = append(b.Descents, descent)
	b.Flags = append(b.Flags, flags)
}

// Collapse merges every break from index keep-1 through the last into a
// single final break: its width is the sum of the collapsed widths, its
// tab flags are OR-ed, its vertical contribution is the union of the
// collapsed contributions, and its offset is the last break's offset.
// The hyphen edit of the final collapsed break is kept, since only that
// break's end survives as a line end.
func (b *Breaks) Collapse(keep int) {
	n := b.Len()
	if keep <= 0 || keep >= n {
		return
	}
	j := keep - 1
	width := 0.0
	flags := b.Flags[n-1] &^ flagTab
	ascent, descent := b.Ascents[j], b.Descents[j]
	for i := j; i < n; i++ {
		width += b.Widths[i]
		flags |= b.Flags[i] & flagTab
		if b.Ascents[i] < ascent {
			ascent = b.Ascents[i]
		}
		if b.Descents[i] > descent {
			descent = b.Descents[i]
		}
	}
	b.Offsets[j] = b.Offsets[n-1]
	b.Widths[j] = width
	b.Ascents[j] = ascent
	b.Descents[j] = descent
	b.Flags[j] = flags
	b.Offsets = b.Offsets[:keep]
	b.Widths = b.Widths[:keep]
	b.Ascents = b.Ascents[:keep]
	b.Descents = b.Descents[:keep]
	b.Flags = b.Flags[:keep]
}

// LineBreaker computes the candidate line breaks of one paragraph
// against a width budget. Implementations append their result to out,
// which the engine resets and reuses across paragraphs.
//
// Implementations are called sequentially within one generation pass
// and need not be safe for concurrent use.
type LineBreaker interface {
	ComputeBreaks(mp *MeasuredParagraph, c BreakConstraints, out *Breaks)
}

// BuiltinBreaker is the default greedy line breaker. Break
// opportunities come from a simplified UAX #14 classification covering
// spaces, hyphens, bracket pairs, soft hyphens and CJK ideographs.
//
// The zero value is ready for use.
type BuiltinBreaker struct {
	scratch []bool
}

// ComputeBreaks implements the LineBreaker interface.
func (bb *BuiltinBreaker) ComputeBreaks(mp *MeasuredParagraph, c BreakConstraints, out *Breaks) {
	bb.scratch = markBreakOpportunities(mp.Text, c.Hyphenation, bb.scratch)
	greedyBreak(mp, &c, bb.scratch, out)
}

// greedyBreak walks the paragraph line by line, breaking at the last
// opportunity that fits the budget and falling back to a character
// break when a single word overflows the line.
func greedyBreak(mp *MeasuredParagraph, c *BreakConstraints, canBreak []bool, out *Breaks) {
	n := len(mp.Text)
	if n == 0 {
		return
	}
	lineStart := 0
	for line := 0; lineStart < n; line++ {
		end := findLineEnd(mp, c, canBreak, lineStart, c.avail(line))
		width, flags := measureLine(mp, c, lineStart, end)
		if end > lineStart && mp.Text[end-1] == softHyphen && c.Hyphenation != HyphenationNone {
			flags |= BreakFlags(HyphenInsertAtEnd)
		}
		out.Append(end, width, mp.Metrics.Ascent, mp.Metrics.Descent, flags)
		lineStart = end
	}
}

// findLineEnd returns the end offset of the line starting at start,
// given the line's width budget.
func findLineEnd(mp *MeasuredParagraph, c *BreakConstraints, canBreak []bool, start int, avail float64) int {
	n := len(mp.Text)
	sum := 0.0
	lastBreak := -1
	for i := start; i < n; i++ {
		r := mp.Text[i]
		if r == '\n' {
			return i + 1
		}
		w := mp.Widths[i]
		if r == '\t' {
			w = nextTab(c, sum) - sum
		}
		if i > start && canBreak[i] {
			lastBreak = i
		}
		// Trailing whitespace may hang past the budget; it is trimmed
		// from the measured width anyway.
		hangs := r != '\t' && unicode.IsSpace(r)
		if sum+w > avail && i > start && !hangs {
			if lastBreak > start {
				return lastBreak
			}
			return i
		}
		sum += w
	}
	return n
}

// measureLine returns the advance width of [start, end) with tabs
// expanded and trailing whitespace excluded, plus the line's tab flag.
func measureLine(mp *MeasuredParagraph, c *BreakConstraints, start, end int) (float64, BreakFlags) {
	trimmed := end
	for trimmed > start && unicode.IsSpace(mp.Text[trimmed-1]) {
		trimmed--
	}
	sum := 0.0
	var flags BreakFlags
	for i := start; i < end; i++ {
		w := mp.Widths[i]
		if mp.Text[i] == '\t' {
			w = nextTab(c, sum) - sum
			flags |= flagTab
		}
		if i < trimmed {
			sum += w
		}
	}
	return sum, flags
}

// markBreakOpportunities fills scratch (growing it as needed) so that
// scratch[i] reports whether a line may break before rune i.
func markBreakOpportunities(text []rune, hy HyphenationFrequency, scratch []bool) []bool {
	n := len(text)
	if cap(scratch) < n {
		scratch = make([]bool, n, growCap(cap(scratch), n))
	}
	scratch = scratch[:n]
	if n == 0 {
		return scratch
	}
	scratch[0] = false
	for i := 1; i < n; i++ {
		scratch[i] = canBreakBefore(text[i-1], text[i], hy)
	}
	return scratch
}

// canBreakBefore applies the simplified UAX #14 rules between a pair of
// adjacent runes.
func canBreakBefore(prev, curr rune, hy HyphenationFrequency) bool {
	prevClass := classifyRune(prev)
	currClass := classifyRune(curr)

	// No break before closing punctuation, none after opening.
	if currClass == breakClose || prevClass == breakOpen {
		return false
	}
	// Break after zero-width space.
	if prevClass == breakZero {
		return true
	}
	// Soft hyphens break when hyphenation is enabled.
	if prev == softHyphen {
		return hy != HyphenationNone
	}
	// Break after space.
	if prevClass == breakSpace {
		return true
	}
	// Break after hyphens (but not before another hyphen).
	if prevClass == breakHyphen && currClass != breakHyphen {
		return true
	}
	// CJK: break before and after ideographs.
	if currClass == breakIdeographic {
		return true
	}
	if prevClass == breakIdeographic && currClass != breakClose {
		return true
	}
	return false
}

// breakClass represents Unicode line breaking classes (UAX #14
// simplified).
type breakClass uint8

const (
	// breakOther is the default class for most characters.
	breakOther breakClass = iota
	// breakSpace is for space characters (break after).
	breakSpace
	// breakZero is for zero-width space (break opportunity).
	breakZero
	// breakOpen is for opening punctuation (no break after).
	breakOpen
	// breakClose is for closing punctuation (no break before).
	breakClose
	// breakHyphen is for hyphens (break after).
	breakHyphen
	// breakIdeographic is for CJK ideographs (break before/after).
	breakIdeographic
)

// classifyRune returns the break class of a rune.
func classifyRune(r rune) breakClass {
	switch r {
	case ' ', '\t':
		return breakSpace
	case '​': // Zero-width space
		return breakZero
	case '(', '[', '{', '“', '‘':
		return breakOpen
	case ')', ']', '}', '”', '’':
		return breakClose
	case '-', '‐', '‑', '–', '—':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

// isCJKRune returns true if the rune is a CJK character that allows
// breaking.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}
