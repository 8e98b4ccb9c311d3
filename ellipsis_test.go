package layout

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

func TestEllipsizeEndLastLine(t *testing.T) {
	// Three natural lines capped at two with END truncation: the
	// overflow collapses into the second line and is elided there.
	text := []rune("aaaa bbbb cccc")
	p := DefaultParams(text, testPaint(), 50)
	p.MaxLines = 2
	p.Ellipsize = EllipsizeEnd
	l := New(p)

	if got, want := l.LineCount(), 2; got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}
	if !l.Ellipsized() {
		t.Fatal("Ellipsized() = false, want true")
	}
	// The collapsed last line covers all remaining characters.
	if got, want := l.LineEnd(1), 14; got != want {
		t.Errorf("LineEnd(1) = %d, want %d", got, want)
	}
	if got, want := l.LineWidth(1), 80.0; got != want {
		t.Errorf("LineWidth(1) = %v, want %v", got, want)
	}
	// Four characters plus the ellipsis glyph fill the 50px budget.
	if got, want := l.EllipsisStart(1), 4; got != want {
		t.Errorf("EllipsisStart(1) = %d, want %d", got, want)
	}
	if got, want := l.EllipsisCount(1), 5; got != want {
		t.Errorf("EllipsisCount(1) = %d, want %d", got, want)
	}
	// The first line is untouched.
	if got, want := l.EllipsisCount(0), 0; got != want {
		t.Errorf("EllipsisCount(0) = %d, want %d", got, want)
	}
}

func TestEllipsizeEndFits(t *testing.T) {
	text := []rune("abc")
	p := DefaultParams(text, testPaint(), 100)
	p.MaxLines = 1
	p.Ellipsize = EllipsizeEnd
	l := New(p)

	if l.Ellipsized() {
		t.Error("Ellipsized() = true, want false")
	}
	if got, want := l.EllipsisCount(0), 0; got != want {
		t.Errorf("EllipsisCount(0) = %d, want %d", got, want)
	}
}

func TestEllipsizeEndForced(t *testing.T) {
	// The first paragraph fits its line, but a second paragraph is cut
	// by the cap, so the line is force-ellipsized on its last character.
	text := []rune("aaaa\nbbbb")
	p := DefaultParams(text, testPaint(), 50)
	p.MaxLines = 1
	p.Ellipsize = EllipsizeEnd
	l := New(p)

	if got, want := l.LineCount(), 1; got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}
	if !l.Ellipsized() {
		t.Fatal("Ellipsized() = false, want true")
	}
	if got, want := l.EllipsisStart(0), 4; got != want {
		t.Errorf("EllipsisStart(0) = %d, want %d", got, want)
	}
	if got, want := l.EllipsisCount(0), 1; got != want {
		t.Errorf("EllipsisCount(0) = %d, want %d", got, want)
	}
}

func TestEllipsizeMiddle(t *testing.T) {
	text := []rune("abcdefghij")
	p := DefaultParams(text, testPaint(), 50)
	p.MaxLines = 1
	p.Ellipsize = EllipsizeMiddle
	l := New(p)

	if got, want := l.LineCount(), 1; got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}
	if !l.Ellipsized() {
		t.Fatal("Ellipsized() = false, want true")
	}
	// 40px of budget after the ellipsis glyph, split between the two
	// remainders: "ab" kept left, "ij" kept right.
	if got, want := l.EllipsisStart(0), 2; got != want {
		t.Errorf("EllipsisStart(0) = %d, want %d", got, want)
	}
	if got, want := l.EllipsisCount(0), 6; got != want {
		t.Errorf("EllipsisCount(0) = %d, want %d", got, want)
	}
}

func TestEllipsizeStart(t *testing.T) {
	text := []rune("abcdefghij")
	p := DefaultParams(text, testPaint(), 50)
	p.MaxLines = 1
	p.Ellipsize = EllipsizeStart
	l := New(p)

	if !l.Ellipsized() {
		t.Fatal("Ellipsized() = false, want true")
	}
	// The tail that fits next to the ellipsis glyph is kept.
	if got, want := l.EllipsisStart(0), 0; got != want {
		t.Errorf("EllipsisStart(0) = %d, want %d", got, want)
	}
	if got, want := l.EllipsisCount(0), 6; got != want {
		t.Errorf("EllipsisCount(0) = %d, want %d", got, want)
	}
}

func TestEllipsizeStartZeroWidthCluster(t *testing.T) {
	// The combining acute (zero advance) must stay attached to its
	// base: the cut point extends past it.
	text := []rune{'x', 'y', '́', 'z', 'a', 'b', 'c'}
	paint := testPaint()
	paint.widths = map[rune]float64{'́': 0}
	p := DefaultParams(text, paint, 50)
	p.MaxLines = 1
	p.Ellipsize = EllipsizeStart
	l := New(p)

	if !l.Ellipsized() {
		t.Fatal("Ellipsized() = false, want true")
	}
	if got, want := l.EllipsisCount(0), 3; got != want {
		t.Errorf("EllipsisCount(0) = %d, want %d", got, want)
	}
}

func TestEllipsizeMiddleZeroWidthCluster(t *testing.T) {
	// The combining acute (zero advance) sits where the right-hand
	// scan would cut; the cut extends past it so the g+mark cluster is
	// elided whole.
	text := []rune{'a', 'b', 'c', 'd', 'e', 'f', 'g', '́', 'i', 'j'}
	paint := testPaint()
	paint.widths = map[rune]float64{'́': 0}
	p := DefaultParams(text, paint, 50)
	p.MaxLines = 1
	p.Ellipsize = EllipsizeMiddle
	l := New(p)

	if !l.Ellipsized() {
		t.Fatal("Ellipsized() = false, want true")
	}
	// "ab" kept left, "ij" kept right, [2,8) elided.
	if got, want := l.EllipsisStart(0), 2; got != want {
		t.Errorf("EllipsisStart(0) = %d, want %d", got, want)
	}
	if got, want := l.EllipsisCount(0), 6; got != want {
		t.Errorf("EllipsisCount(0) = %d, want %d", got, want)
	}
}

func TestEllipsizeEndTab(t *testing.T) {
	// A tab inside a truncated line consumes its expanded advance, not
	// the zero the paint reports for it.
	text := []rune("ab\tcdefgh")
	p := DefaultParams(text, testPaint(), 50)
	p.MaxLines = 1
	p.Ellipsize = EllipsizeEnd
	l := New(p)

	if got, want := l.LineCount(), 1; got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}
	if !l.Ellipsized() {
		t.Fatal("Ellipsized() = false, want true")
	}
	if !l.LineContainsTab(0) {
		t.Error("LineContainsTab(0) = false, want true")
	}
	// "ab" is 20px and the tab expands to the 40px stop: the tab no
	// longer fits next to the 10px ellipsis glyph within 50px.
	if got, want := l.EllipsisStart(0), 2; got != want {
		t.Errorf("EllipsisStart(0) = %d, want %d", got, want)
	}
	if got, want := l.EllipsisCount(0), 7; got != want {
		t.Errorf("EllipsisCount(0) = %d, want %d", got, want)
	}
}

func TestEllipsizeStartMultiLineWarns(t *testing.T) {
	// START on a multi-line layout degrades to a no-op with a warning.
	rec := &recordingHandler{}
	orig := Logger()
	SetLogger(slog.New(rec))
	t.Cleanup(func() { SetLogger(orig) })

	text := []rune("aaaaaaa")
	p := DefaultParams(text, testPaint(), 100)
	p.EllipsizedWidth = 50
	p.Ellipsize = EllipsizeStart
	l := New(p)

	if l.Ellipsized() {
		t.Error("Ellipsized() = true, want false")
	}
	if got, want := l.EllipsisCount(0), 0; got != want {
		t.Errorf("EllipsisCount(0) = %d, want %d", got, want)
	}
	if rec.count(slog.LevelWarn) == 0 {
		t.Error("expected a warning, got none")
	}
}

func TestEllipsizeMarqueeNeverElides(t *testing.T) {
	text := []rune("aaaa bbbb cccc")
	p := DefaultParams(text, testPaint(), 50)
	p.MaxLines = 1
	p.Ellipsize = EllipsizeMarquee
	l := New(p)

	if got, want := l.LineCount(), 1; got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}
	if l.Ellipsized() {
		t.Error("Ellipsized() = true, want false")
	}
	if got, want := l.EllipsisCount(0), 0; got != want {
		t.Errorf("EllipsisCount(0) = %d, want %d", got, want)
	}
}

func TestEllipsizeEndIndents(t *testing.T) {
	// Indents shrink the ellipsis budget too: 50 - 20 leaves 30px, so
	// only two characters survive next to the glyph.
	text := []rune("abcdefghij")
	p := DefaultParams(text, testPaint(), 50)
	p.MaxLines = 1
	p.Ellipsize = EllipsizeEnd
	p.LeftIndents = []int{20}
	l := New(p)

	if !l.Ellipsized() {
		t.Fatal("Ellipsized() = false, want true")
	}
	if got, want := l.EllipsisStart(0), 2; got != want {
		t.Errorf("EllipsisStart(0) = %d, want %d", got, want)
	}
	if got, want := l.EllipsisCount(0), 8; got != want {
		t.Errorf("EllipsisCount(0) = %d, want %d", got, want)
	}
}

func TestEllipsizeEllipsizedWidth(t *testing.T) {
	// The layout wraps against Width but ellipsizes against
	// EllipsizedWidth when the two differ.
	text := []rune("abcdefgh")
	p := DefaultParams(text, testPaint(), 100)
	p.EllipsizedWidth = 50
	p.Ellipsize = EllipsizeEnd
	l := New(p)

	if got, want := l.LineCount(), 1; got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}
	if !l.Ellipsized() {
		t.Fatal("Ellipsized() = false, want true")
	}
	if got, want := l.EllipsisStart(0), 4; got != want {
		t.Errorf("EllipsisStart(0) = %d, want %d", got, want)
	}
	if got, want := l.EllipsisCount(0), 4; got != want {
		t.Errorf("EllipsisCount(0) = %d, want %d", got, want)
	}
}

// recordingHandler is a slog.Handler that counts records per level.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) count(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == level {
			n++
		}
	}
	return n
}
