package layout

import (
	"errors"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func regularFace(t *testing.T, size float64) font.Face {
	t.Helper()
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("opentype.Parse() error: %v", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		t.Fatalf("opentype.NewFace() error: %v", err)
	}
	return face
}

func TestNewFacePaintNil(t *testing.T) {
	_, err := NewFacePaint(nil)
	if !errors.Is(err, ErrNilFace) {
		t.Errorf("NewFacePaint(nil) error = %v, want ErrNilFace", err)
	}
}

func TestFacePaintMetrics(t *testing.T) {
	p, err := NewFacePaint(regularFace(t, 16))
	if err != nil {
		t.Fatalf("NewFacePaint() error: %v", err)
	}
	m := p.Metrics()

	if m.Ascent >= 0 {
		t.Errorf("Ascent = %d, want negative", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Descent = %d, want positive", m.Descent)
	}
	if m.Top > m.Ascent {
		t.Errorf("Top = %d above Ascent = %d", m.Top, m.Ascent)
	}
	if m.Bottom < m.Descent {
		t.Errorf("Bottom = %d below Descent = %d", m.Bottom, m.Descent)
	}
	if m.LineHeight() <= 0 {
		t.Errorf("LineHeight() = %d, want positive", m.LineHeight())
	}
}

func TestFacePaintWidths(t *testing.T) {
	p, err := NewFacePaint(regularFace(t, 16))
	if err != nil {
		t.Fatalf("NewFacePaint() error: %v", err)
	}

	text := []rune("Hello\n\tx")
	w := make([]float64, len(text))
	p.Widths(text, w)

	for i, r := range text {
		switch r {
		case '\n', '\t':
			if w[i] != 0 {
				t.Errorf("Widths()[%d] = %v for %q, want 0", i, w[i], r)
			}
		default:
			if w[i] <= 0 {
				t.Errorf("Widths()[%d] = %v for %q, want positive", i, w[i], r)
			}
		}
	}
}

func TestFacePaintEllipsisWidth(t *testing.T) {
	p, err := NewFacePaint(regularFace(t, 16))
	if err != nil {
		t.Fatalf("NewFacePaint() error: %v", err)
	}
	if got := p.EllipsisWidth(); got <= 0 {
		t.Errorf("EllipsisWidth() = %v, want positive", got)
	}
}

func TestLayoutWithRealFont(t *testing.T) {
	// End to end with a real face: the layout must wrap and stay
	// internally consistent.
	p, err := NewFacePaint(regularFace(t, 16))
	if err != nil {
		t.Fatalf("NewFacePaint() error: %v", err)
	}
	text := []rune("The quick brown fox jumps over the lazy dog.")
	l := New(DefaultParams(text, p, 120))

	if l.LineCount() < 2 {
		t.Fatalf("LineCount() = %d, want at least 2", l.LineCount())
	}
	for i := 0; i < l.LineCount(); i++ {
		if l.LineWidth(i) > 120 {
			t.Errorf("LineWidth(%d) = %v exceeds the layout width", i, l.LineWidth(i))
		}
		if l.LineTop(i) >= l.LineBottom(i) {
			t.Errorf("line %d has non-positive height", i)
		}
	}
	if got, want := l.LineEnd(l.LineCount()-1), len(text); got != want {
		t.Errorf("LineEnd(last) = %d, want %d", got, want)
	}
}
