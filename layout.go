package layout

import "fmt"

// Layout is the immutable result of a generation pass: a contiguous
// sequence of laid-out lines with their vertical extents, directions,
// flags and optional ellipsis spans.
//
// All query methods are read-only and safe for concurrent use. Methods
// taking a line index panic when the index is out of [0, LineCount()),
// which is a programmer error rather than a runtime condition.
type Layout struct {
	text        []rune
	start, end  int
	width       float64
	ellipsWidth float64

	store lineStore

	topPad, botPad int
	ellipsized     bool
	maxLineHeight  int
}

// New generates a layout for the given configuration. Generation runs
// to completion on the calling goroutine; see Params for the recognized
// options. It panics on invalid configuration (nil paint, out-of-range
// text bounds, negative width).
func New(p Params) *Layout {
	return generate(p)
}

// newLayout freezes the generator's state into the public result.
func newLayout(g *generator) *Layout {
	return &Layout{
		text:          g.p.Text,
		start:         g.p.Start,
		end:           g.p.End,
		width:         g.p.Width,
		ellipsWidth:   g.p.EllipsizedWidth,
		store:         g.store,
		topPad:        g.topPad,
		botPad:        g.botPad,
		ellipsized:    g.ellipsized,
		maxLineHeight: g.maxLineHeight,
	}
}

// checkLine panics when i is not a valid line index.
func (l *Layout) checkLine(i int) {
	if i < 0 || i >= l.store.count {
		panic(fmt.Sprintf("layout: line index %d out of range [0, %d)", i, l.store.count))
	}
}

// LineCount returns the number of laid-out lines.
func (l *Layout) LineCount() int { return l.store.count }

// LineTop returns the vertical top of line i, in pixels from the layout
// origin.
func (l *Layout) LineTop(i int) int {
	l.checkLine(i)
	return l.store.line(i).top
}

// LineBottom returns the vertical bottom of line i, which equals the
// top of line i+1.
func (l *Layout) LineBottom(i int) int {
	l.checkLine(i)
	return l.store.line(i + 1).top
}

// LineDescent returns line i's descent plus its extra spacing.
func (l *Layout) LineDescent(i int) int {
	l.checkLine(i)
	return l.store.line(i).descent
}

// LineBaseline returns the baseline of line i, in pixels from the
// layout origin.
func (l *Layout) LineBaseline(i int) int {
	l.checkLine(i)
	return l.store.line(i+1).top - l.store.line(i).descent
}

// LineExtra returns the rounded line-spacing remainder added to line
// i's natural height.
func (l *Layout) LineExtra(i int) int {
	l.checkLine(i)
	return l.store.line(i).extra
}

// LineStart returns the offset of line i's first character.
func (l *Layout) LineStart(i int) int {
	l.checkLine(i)
	return l.store.line(i).start
}

// LineEnd returns the offset one past line i's last character. For
// every i below LineCount()-1 this equals LineStart(i+1).
func (l *Layout) LineEnd(i int) int {
	l.checkLine(i)
	return l.store.line(i + 1).start
}

// LineWidth returns line i's measured advance width.
func (l *Layout) LineWidth(i int) float64 {
	l.checkLine(i)
	return l.store.line(i).width
}

// ParagraphDirection returns the base direction of the paragraph
// containing line i.
func (l *Layout) ParagraphDirection(i int) Direction {
	l.checkLine(i)
	return l.store.line(i).dir
}

// LineContainsTab reports whether line i contains a tab character.
func (l *Layout) LineContainsTab(i int) bool {
	l.checkLine(i)
	return l.store.line(i).hasTab
}

// LineDirections returns the bidi run descriptor of line i.
func (l *Layout) LineDirections(i int) *Directions {
	l.checkLine(i)
	return l.store.line(i).dirs
}

// Hyphen returns the hyphen edit of line i.
func (l *Layout) Hyphen(i int) HyphenEdit {
	l.checkLine(i)
	return l.store.line(i).hyphen
}

// EllipsisStart returns the offset, relative to LineStart(i), of line
// i's elided span. Zero when the layout has no ellipsis.
func (l *Layout) EllipsisStart(i int) int {
	l.checkLine(i)
	return l.store.line(i).ellipsisStart
}

// EllipsisCount returns the number of elided characters of line i.
// Zero when the line was not truncated.
func (l *Layout) EllipsisCount(i int) int {
	l.checkLine(i)
	return l.store.line(i).ellipsisCount
}

// Ellipsized reports whether any line of the layout was truncated.
func (l *Layout) Ellipsized() bool { return l.ellipsized }

// TopPadding returns the distance between the first line's top and its
// ascent; negative when the font's top extends above the ascent.
func (l *Layout) TopPadding() int { return l.topPad }

// BottomPadding returns the distance between the last line's bottom and
// its descent.
func (l *Layout) BottomPadding() int { return l.botPad }

// Height returns the vertical extent of the whole layout: the bottom of
// the last line. An empty layout has zero height.
func (l *Layout) Height() int {
	if l.store.count == 0 {
		return 0
	}
	return l.store.line(l.store.count).top
}

// EllipsizedHeight returns the height the layout would have when capped
// at the maximum visible line count, whether or not truncation actually
// occurred. Without a line cap it equals Height().
func (l *Layout) EllipsizedHeight() int {
	if l.maxLineHeight >= 0 {
		return l.maxLineHeight
	}
	return l.Height()
}

// LineForVertical returns the line whose vertical span contains the
// pixel offset vertical: the greatest line whose top is at or above it,
// clamped to the first and last line.
func (l *Layout) LineForVertical(vertical int) int {
	if l.store.count == 0 {
		return 0
	}
	return l.store.lineForVertical(vertical)
}

// LineForOffset returns the line containing the character offset,
// clamped to the first and last line.
func (l *Layout) LineForOffset(offset int) int {
	if l.store.count == 0 {
		return 0
	}
	return l.store.lineForOffset(offset)
}

// Text returns the character buffer the layout was generated from.
// Callers must treat it as read-only.
func (l *Layout) Text() []rune { return l.text }

// Width returns the base line width the layout was generated with.
func (l *Layout) Width() float64 { return l.width }
