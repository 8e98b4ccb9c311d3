package layout

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies the base direction of a paragraph or run of text.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// DirectionHeuristic decides the base direction of each paragraph.
type DirectionHeuristic int

const (
	// FirstStrongLTR uses the first strongly directional character,
	// defaulting to left-to-right when there is none.
	FirstStrongLTR DirectionHeuristic = iota
	// FirstStrongRTL uses the first strongly directional character,
	// defaulting to right-to-left when there is none.
	FirstStrongRTL
	// ForceLTR lays out every paragraph left-to-right.
	ForceLTR
	// ForceRTL lays out every paragraph right-to-left.
	ForceRTL
)

// String returns the string representation of the heuristic.
func (h DirectionHeuristic) String() string {
	switch h {
	case FirstStrongLTR:
		return "FirstStrongLTR"
	case FirstStrongRTL:
		return "FirstStrongRTL"
	case ForceLTR:
		return "ForceLTR"
	case ForceRTL:
		return "ForceRTL"
	default:
		return unknownStr
	}
}

// EllipsizeMode is the truncation policy applied to lines that overflow
// their available width.
type EllipsizeMode int

const (
	// EllipsizeNone disables truncation; overflowing text is kept.
	EllipsizeNone EllipsizeMode = iota
	// EllipsizeStart elides characters from the start of the line.
	// Only supported on single-line layouts.
	EllipsizeStart
	// EllipsizeMiddle elides characters from the middle of the line,
	// keeping a left and a right remainder.
	// Only supported on single-line layouts.
	EllipsizeMiddle
	// EllipsizeEnd elides characters from the end of the line.
	EllipsizeEnd
	// EllipsizeMarquee reports the full line and leaves horizontal
	// scrolling to the caller; no characters are elided.
	EllipsizeMarquee
)

// String returns the string representation of the ellipsize mode.
func (m EllipsizeMode) String() string {
	switch m {
	case EllipsizeNone:
		return "None"
	case EllipsizeStart:
		return "Start"
	case EllipsizeMiddle:
		return "Middle"
	case EllipsizeEnd:
		return "End"
	case EllipsizeMarquee:
		return "Marquee"
	default:
		return unknownStr
	}
}

// BreakStrategy selects the line-breaking algorithm family.
type BreakStrategy int

const (
	// BreakSimple breaks greedily at the last opportunity that fits.
	BreakSimple BreakStrategy = iota
	// BreakHighQuality allows a breaker to optimize over the whole
	// paragraph. The bundled breakers treat it as BreakSimple.
	BreakHighQuality
	// BreakBalanced asks for lines of similar length. The bundled
	// breakers treat it as BreakSimple.
	BreakBalanced
)

// String returns the string representation of the break strategy.
func (s BreakStrategy) String() string {
	switch s {
	case BreakSimple:
		return "Simple"
	case BreakHighQuality:
		return "HighQuality"
	case BreakBalanced:
		return "Balanced"
	default:
		return unknownStr
	}
}

// HyphenationFrequency controls how aggressively soft-hyphen break
// opportunities are used.
type HyphenationFrequency int

const (
	// HyphenationNone ignores soft hyphens entirely.
	HyphenationNone HyphenationFrequency = iota
	// HyphenationNormal breaks at soft hyphens when a line would
	// otherwise overflow.
	HyphenationNormal
	// HyphenationFull treats every soft hyphen as a normal break
	// opportunity.
	HyphenationFull
)

// String returns the string representation of the hyphenation frequency.
func (f HyphenationFrequency) String() string {
	switch f {
	case HyphenationNone:
		return "None"
	case HyphenationNormal:
		return "Normal"
	case HyphenationFull:
		return "Full"
	default:
		return unknownStr
	}
}

// Justification selects how lines are stretched to the layout width.
type Justification int

const (
	// JustificationNone leaves lines at their natural width.
	JustificationNone Justification = iota
	// JustificationInterWord stretches inter-word spaces. The bundled
	// breakers record it for renderers but do not reflow.
	JustificationInterWord
)

// String returns the string representation of the justification mode.
func (j Justification) String() string {
	switch j {
	case JustificationNone:
		return "None"
	case JustificationInterWord:
		return "InterWord"
	default:
		return unknownStr
	}
}

// HyphenEdit is a set of flags describing the hyphen glyphs a renderer
// must insert at the edges of a line that was broken at a soft hyphen.
type HyphenEdit uint8

const (
	// HyphenInsertAtEnd asks for a hyphen glyph at the end of the line.
	HyphenInsertAtEnd HyphenEdit = 1 << iota
	// HyphenInsertAtStart asks for a hyphen glyph at the start of the
	// line (used by some scripts that repeat the hyphen).
	HyphenInsertAtStart
)

// HasEnd reports whether the edit inserts a hyphen at the line end.
func (h HyphenEdit) HasEnd() bool { return h&HyphenInsertAtEnd != 0 }

// HasStart reports whether the edit inserts a hyphen at the line start.
func (h HyphenEdit) HasStart() bool { return h&HyphenInsertAtStart != 0 }
