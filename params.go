package layout

// Params configures one layout generation pass. Construct with
// DefaultParams and adjust fields as needed; the value is copied by New
// and never mutated afterwards.
//
// Invariants: Width >= 0, 0 <= Start <= End <= len(Text), and the indent
// and padding arrays, if present, hold non-negative values. Negative
// values in span data produce an undefined result.
type Params struct {
	// Text is the full character buffer. The layout borrows it; callers
	// must not mutate it while the layout is in use.
	Text []rune

	// Start and End bound the laid-out range [Start, End) within Text.
	Start, End int

	// Paint provides font metrics and character advances.
	Paint Paint

	// Width is the base line width in pixels, before per-paragraph
	// leading margins and per-line indents.
	Width float64

	// EllipsizedWidth is the width budget used when computing ellipsis
	// spans. Zero means Width.
	EllipsizedWidth float64

	// TextDirection decides each paragraph's base direction.
	TextDirection DirectionHeuristic

	// SpacingMult scales every line's natural height. Zero means 1.
	SpacingMult float64

	// SpacingAdd is added to every line's height after scaling.
	SpacingAdd float64

	// AddLastLineSpacing applies SpacingMult/SpacingAdd to the last
	// line as well. Normally the last line keeps its natural height.
	AddLastLineSpacing bool

	// IncludePad widens the first line up to the font's top and the
	// last line down to the font's bottom.
	IncludePad bool

	// FallbackLineSpacing lets per-break measured extents grow a line
	// beyond the primary font's metrics, accommodating fallback-font
	// glyphs taller than the primary font.
	FallbackLineSpacing bool

	// Ellipsize selects the truncation mode for overflowing lines.
	Ellipsize EllipsizeMode

	// MaxLines caps the number of visible lines. Zero or negative
	// means unlimited.
	MaxLines int

	// BreakStrategy and Hyphenation are forwarded to the line breaker.
	BreakStrategy BreakStrategy
	Hyphenation   HyphenationFrequency

	// Justification is recorded for renderers and forwarded to the
	// line breaker.
	Justification Justification

	// LeftIndents and RightIndents give per-line horizontal insets in
	// pixels. The arrays are sparse: the last value repeats for every
	// line past the array end.
	LeftIndents, RightIndents []int

	// LeftPaddings and RightPaddings give per-line available padding
	// the breaker may let glyphs extend into.
	LeftPaddings, RightPaddings []int

	// DefaultTabStop is the fixed tab increment used by paragraphs
	// without tab-stop spans. Zero means 20 pixels.
	DefaultTabStop float64

	// Spans attaches style ranges to the text. Only the capability
	// interfaces declared in this package are inspected.
	Spans []SpanRange

	// Breaker computes candidate line breaks per paragraph. Nil means
	// BuiltinBreaker.
	Breaker LineBreaker
}

// defaultTabIncrement is the fixed tab advance used when Params and the
// paragraph's spans provide no tab stops.
const defaultTabIncrement = 20.0

// DefaultParams returns Params laying out all of text at the given
// width with no wrapping constraints beyond the width itself: natural
// spacing, font padding included, no truncation, unlimited lines.
func DefaultParams(text []rune, paint Paint, width float64) Params {
	return Params{
		Text:            text,
		Start:           0,
		End:             len(text),
		Paint:           paint,
		Width:           width,
		EllipsizedWidth: width,
		SpacingMult:     1,
		IncludePad:      true,
		DefaultTabStop:  defaultTabIncrement,
	}
}
