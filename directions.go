package layout

// DirectionRun is one maximal run of characters sharing a bidi
// embedding level within a line.
type DirectionRun struct {
	// Start is the run's first character, relative to the line start.
	Start int
	// Len is the number of characters in the run.
	Len int
	// Level is the resolved bidi embedding level; odd levels are
	// right-to-left.
	Level int
}

// IsRTL reports whether the run is right-to-left.
func (r DirectionRun) IsRTL() bool { return r.Level%2 == 1 }

// Directions describes the bidi run ordering of one laid-out line. It
// is computed for the exact character sub-range of the line and replaced
// wholesale whenever the line is recomputed; readers must treat it as
// immutable.
type Directions struct {
	runs []DirectionRun
}

// RunCount returns the number of direction runs in the line.
func (d *Directions) RunCount() int { return len(d.runs) }

// Run returns run i in logical order.
func (d *Directions) Run(i int) DirectionRun { return d.runs[i] }

// newDirections builds a Directions descriptor from per-character
// embedding levels for the half-open range [start, end).
// Offsets in the result are relative to start.
func newDirections(levels []uint8, start, end int) *Directions {
	if start >= end {
		return &Directions{runs: []DirectionRun{{Start: 0, Len: 0, Level: 0}}}
	}
	d := &Directions{}
	runStart := start
	cur := levels[start]
	for i := start + 1; i < end; i++ {
		if levels[i] == cur {
			continue
		}
		d.runs = append(d.runs, DirectionRun{Start: runStart - start, Len: i - runStart, Level: int(cur)})
		runStart, cur = i, levels[i]
	}
	d.runs = append(d.runs, DirectionRun{Start: runStart - start, Len: end - runStart, Level: int(cur)})
	return d
}
