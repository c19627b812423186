package slicer

import "github.com/pkg/errors"

var (
	// ErrDegeneratePolygon is returned when a loop has (near) zero signed area.
	ErrDegeneratePolygon = errors.New("degenerate polygon")
	// ErrInsufficientVertices is returned when fewer than 3 distinct points remain.
	ErrInsufficientVertices = errors.New("insufficient vertices")
	// ErrMalformedCut is returned by EndCut for zero-length segments.
	ErrMalformedCut = errors.New("malformed cut segment")
	// ErrTooManyHits marks a shape that reported more than two boundary hits.
	// Only the first two are used.
	ErrTooManyHits = errors.New("shape hit more than twice")
	// ErrNoCut is returned by EndCut when no cut was begun.
	ErrNoCut = errors.New("no cut in progress")
)
