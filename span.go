package layout

// Span is a marker for a style object attached to a text range. The
// layout engine only inspects spans through the capability interfaces
// below; any other span is carried along untouched.
type Span interface{}

// SpanRange attaches a span to the half-open character range
// [Start, End) of the layout text.
type SpanRange struct {
	Start, End int
	Span       Span
}

// LeadingMarginSpan insets the lines of every paragraph it overlaps,
// commonly for list bullets or block quotes. The inset may differ
// between the first line of a paragraph and the subsequent ones.
type LeadingMarginSpan interface {
	// LeadingMargin returns the horizontal inset in pixels. first is
	// true for the leading lines of the paragraph (see
	// LeadingMarginLineCount).
	LeadingMargin(first bool) int
}

// LeadingMarginLineCount extends LeadingMarginSpan with the number of
// paragraph lines the first-line margin applies to. Spans without this
// interface affect one line.
type LeadingMarginLineCount interface {
	LeadingMarginLineCount() int
}

// TabStopSpan contributes one variable tab-stop position to the
// paragraphs it overlaps. Paragraphs without tab-stop spans use the
// default fixed tab increment.
type TabStopSpan interface {
	// TabStop returns the stop position in pixels from the leading edge.
	TabStop() float64
}

// LineHeightSpan adjusts the vertical extent of the lines it overlaps.
// Each callback receives the metrics computed so far and returns the
// adjusted value; callbacks run in registration order and the final
// value wins.
type LineHeightSpan interface {
	// AdjustHeight returns the adjusted metrics for a line. spanStartV
	// is the vertical offset at which this span started applying and v
	// is the top of the line being laid out.
	AdjustHeight(fm FontMetrics, spanStartV, v int) FontMetrics
}

// MetricSpan overrides the font metrics of the text it covers. The
// engine unions the metrics of every metric span intersecting a line
// with the paint's base metrics.
type MetricSpan interface {
	UpdateMetrics(fm FontMetrics) FontMetrics
}

// spanSet answers overlap queries over a slice of span ranges.
// The zero value is an empty set.
type spanSet struct {
	spans []SpanRange
}

// overlapping calls fn for each span whose range intersects [start, end).
// A zero-length span at exactly start is reported as well, so empty
// paragraphs still see their spans.
func (s spanSet) overlapping(start, end int, fn func(SpanRange)) {
	for _, sr := range s.spans {
		if sr.Start < end && start < sr.End || sr.Start == start && sr.End == start {
			fn(sr)
		}
	}
}
