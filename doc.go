// Package layout breaks paragraphs of styled text into lines and measures
// their vertical extents, producing an immutable layout ready for rendering.
//
// The layout pipeline follows a separation of concerns:
//
//   - Paint: font-metrics and character-advance provider (pluggable backend)
//   - LineBreaker: computes candidate break offsets for one paragraph
//   - Layout: the immutable result with a read-only per-line query surface
//
// A layout is generated in a single synchronous pass: the text is split
// into paragraphs at hard line breaks, each paragraph is measured and
// broken against its width budget, and every finished line is appended to
// a growable line store together with its direction, tab and hyphen
// flags, and (when a truncation mode is active) its ellipsis span.
//
// # Example usage
//
//	paint, err := layout.NewFacePaint(face)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	params := layout.DefaultParams([]rune("Hello, World!"), paint, 200)
//	params.MaxLines = 2
//	params.Ellipsize = layout.EllipsizeEnd
//
//	l := layout.New(params)
//	for i := 0; i < l.LineCount(); i++ {
//	    fmt.Println(l.LineStart(i), l.LineTop(i))
//	}
//
// # Pluggable Line Breaker
//
// Line breaking is abstracted through the LineBreaker interface. The
// default BuiltinBreaker uses a simplified UAX #14 classification with no
// extra dependencies. GoTextBreaker is an opt-in replacement backed by
// go-text/typesetting's segmenter for fully conformant break
// opportunities:
//
//	params.Breaker = layout.NewGoTextBreaker()
//
// Generated layouts are read-only and safe for concurrent use; generation
// itself runs on the calling goroutine with no internal parallelism.
package layout
