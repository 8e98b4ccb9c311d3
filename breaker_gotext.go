package layout

import (
	"sync"

	"github.com/go-text/typesetting/segmenter"
)

// GoTextBreaker is an opt-in replacement for BuiltinBreaker backed by
// go-text/typesetting's segmenter, which implements the full UAX #14
// line breaking algorithm. Use it when text mixes scripts the builtin
// classification does not cover:
//
//	params.Breaker = layout.NewGoTextBreaker()
//
// GoTextBreaker is safe for concurrent use across generation passes:
// segmenter instances carry internal state and are pooled via sync.Pool,
// acquired per paragraph and released on every exit path.
type GoTextBreaker struct {
	pool sync.Pool
}

// NewGoTextBreaker creates a GoTextBreaker.
func NewGoTextBreaker() *GoTextBreaker {
	return &GoTextBreaker{
		pool: sync.Pool{
			New: func() any {
				return &segmenter.Segmenter{}
			},
		},
	}
}

// ComputeBreaks implements the LineBreaker interface.
func (gb *GoTextBreaker) ComputeBreaks(mp *MeasuredParagraph, c BreakConstraints, out *Breaks) {
	canBreak := gb.opportunities(mp.Text, c.Hyphenation)
	greedyBreak(mp, &c, canBreak, out)
}

// opportunities runs the UAX #14 segmenter over the paragraph and
// returns the break-before table for the greedy walk.
func (gb *GoTextBreaker) opportunities(text []rune, hy HyphenationFrequency) []bool {
	canBreak := make([]bool, len(text))
	if len(text) == 0 {
		return canBreak
	}

	seg := gb.pool.Get().(*segmenter.Segmenter)
	defer gb.pool.Put(seg)

	seg.Init(text)
	iter := seg.LineIterator()
	for iter.Next() {
		line := iter.Line()
		if line.Offset > 0 && line.Offset < len(text) {
			canBreak[line.Offset] = true
		}
	}

	if hy == HyphenationNone {
		// The segmenter reports soft hyphens as opportunities; mask
		// them out when hyphenation is disabled.
		for i := 1; i < len(text); i++ {
			if text[i-1] == softHyphen {
				canBreak[i] = false
			}
		}
	}
	return canBreak
}
