package layout

// lineRec is one laid-out line. The record is written once during
// generation; only the ellipsis fields may be filled in afterwards, by
// the ellipsis calculator running on the line just emitted.
type lineRec struct {
	start   int     // first character, absolute offset
	top     int     // vertical top, pixels from the layout origin
	descent int     // descent plus extra spacing (signed)
	extra   int     // rounded line-spacing remainder (signed)
	width   float64 // measured advance width

	dir    Direction
	hasTab bool
	hyphen HyphenEdit

	ellipsisStart int // relative to start
	ellipsisCount int

	dirs *Directions
}

// lineStore is the growable store of line records. It always keeps one
// phantom row past the last line, so line i's end offset can be read as
// row i+1's start and the layout height as row count's top.
//
// Growth doubles the backing array; the store never shrinks. It is
// exclusively owned by the generation pass and exposed read-only
// through Layout afterwards.
type lineStore struct {
	recs  []lineRec
	count int
}

// grow ensures capacity for n rows (lines plus the phantom row).
func (s *lineStore) grow(n int) {
	if cap(s.recs) >= n {
		return
	}
	grown := make([]lineRec, len(s.recs), growCap(cap(s.recs), n))
	copy(grown, s.recs)
	s.recs = grown
}

// append adds one line record and refreshes the phantom terminal row
// with the line's end offset and the advanced vertical cursor.
func (s *lineStore) append(rec lineRec, end, nextTop int) {
	s.grow(s.count + 2)
	s.recs = s.recs[:s.count+2]
	s.recs[s.count] = rec
	s.recs[s.count+1] = lineRec{start: end, top: nextTop}
	s.count++
}

// line returns row i, which must be in [0, count].
func (s *lineStore) line(i int) *lineRec {
	return &s.recs[i]
}

// lineForVertical returns the greatest line whose top is at or above
// vertical, clamped to 0.
func (s *lineStore) lineForVertical(vertical int) int {
	high, low := s.count, -1
	for high-low > 1 {
		guess := (high + low) / 2
		if s.recs[guess].top > vertical {
			high = guess
		} else {
			low = guess
		}
	}
	if low < 0 {
		return 0
	}
	return low
}

// lineForOffset returns the line containing the character offset,
// clamped to the first and last line.
func (s *lineStore) lineForOffset(offset int) int {
	high, low := s.count, -1
	for high-low > 1 {
		guess := (high + low) / 2
		if s.recs[guess].start > offset {
			high = guess
		} else {
			low = guess
		}
	}
	if low < 0 {
		return 0
	}
	if low >= s.count {
		return s.count - 1
	}
	return low
}
