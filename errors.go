package layout

import "errors"

// Sentinel errors for the layout package.
var (
	// ErrNilFace is returned when a nil font face is passed to
	// NewFacePaint.
	ErrNilFace = errors.New("layout: nil font face")
)
