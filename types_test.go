package layout

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirectionLTR, "LTR"},
		{DirectionRTL, "RTL"},
		{Direction(99), unknownStr},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("Direction(%d).String() = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestDirectionHeuristicString(t *testing.T) {
	tests := []struct {
		h    DirectionHeuristic
		want string
	}{
		{FirstStrongLTR, "FirstStrongLTR"},
		{FirstStrongRTL, "FirstStrongRTL"},
		{ForceLTR, "ForceLTR"},
		{ForceRTL, "ForceRTL"},
		{DirectionHeuristic(99), unknownStr},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.h.String(); got != tt.want {
				t.Errorf("DirectionHeuristic(%d).String() = %q, want %q", tt.h, got, tt.want)
			}
		})
	}
}

func TestEllipsizeModeString(t *testing.T) {
	tests := []struct {
		m    EllipsizeMode
		want string
	}{
		{EllipsizeNone, "None"},
		{EllipsizeStart, "Start"},
		{EllipsizeMiddle, "Middle"},
		{EllipsizeEnd, "End"},
		{EllipsizeMarquee, "Marquee"},
		{EllipsizeMode(99), unknownStr},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("EllipsizeMode(%d).String() = %q, want %q", tt.m, got, tt.want)
			}
		})
	}
}

func TestBreakStrategyString(t *testing.T) {
	tests := []struct {
		s    BreakStrategy
		want string
	}{
		{BreakSimple, "Simple"},
		{BreakHighQuality, "HighQuality"},
		{BreakBalanced, "Balanced"},
		{BreakStrategy(99), unknownStr},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("BreakStrategy(%d).String() = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestHyphenationFrequencyString(t *testing.T) {
	tests := []struct {
		f    HyphenationFrequency
		want string
	}{
		{HyphenationNone, "None"},
		{HyphenationNormal, "Normal"},
		{HyphenationFull, "Full"},
		{HyphenationFrequency(99), unknownStr},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.f.String(); got != tt.want {
				t.Errorf("HyphenationFrequency(%d).String() = %q, want %q", tt.f, got, tt.want)
			}
		})
	}
}

func TestJustificationString(t *testing.T) {
	tests := []struct {
		j    Justification
		want string
	}{
		{JustificationNone, "None"},
		{JustificationInterWord, "InterWord"},
		{Justification(99), unknownStr},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.j.String(); got != tt.want {
				t.Errorf("Justification(%d).String() = %q, want %q", tt.j, got, tt.want)
			}
		})
	}
}

func TestHyphenEdit(t *testing.T) {
	var h HyphenEdit
	if h.HasEnd() || h.HasStart() {
		t.Error("zero HyphenEdit reports an insertion")
	}
	h = HyphenInsertAtEnd
	if !h.HasEnd() || h.HasStart() {
		t.Errorf("HyphenInsertAtEnd: HasEnd() = %v, HasStart() = %v", h.HasEnd(), h.HasStart())
	}
	h = HyphenInsertAtEnd | HyphenInsertAtStart
	if !h.HasEnd() || !h.HasStart() {
		t.Errorf("combined: HasEnd() = %v, HasStart() = %v", h.HasEnd(), h.HasStart())
	}
}

func TestBreakFlags(t *testing.T) {
	var f BreakFlags
	if f.HasTab() {
		t.Error("zero BreakFlags reports a tab")
	}
	f = flagTab | BreakFlags(HyphenInsertAtEnd)
	if !f.HasTab() {
		t.Error("HasTab() = false, want true")
	}
	if !f.HyphenEdit().HasEnd() {
		t.Error("HyphenEdit().HasEnd() = false, want true")
	}
}
