package slicer

import "log"

// DefaultMaxVertices is the polygon vertex cap of Box2D style engines.
const DefaultMaxVertices = 8

type Options struct {
	// Fixed timestep used by StepAndSlice.
	Timestep float64
	// MaxVertices caps the vertex count of replacement shapes. Zero disables the cap.
	MaxVertices int
	// Epsilon is the relative tolerance used to merge points and reject
	// slivers, scaled by the extent of the polygon being cut.
	Epsilon float64
	// InheritVelocity starts replacement bodies with the velocity of the
	// original at their centroid.
	InheritVelocity bool
	// Logger receives diagnostics about discarded slices. May be nil.
	Logger *log.Logger
}

func DefaultOptions() Options {
	return Options{
		Timestep:        1.0 / 60.0,
		MaxVertices:     DefaultMaxVertices,
		Epsilon:         1e-9,
		InheritVelocity: true,
	}
}

func (o Options) logf(format string, v ...interface{}) {
	if o.Logger != nil {
		o.Logger.Printf(format, v...)
	}
}

// tolerance returns the absolute distance below which two points of a
// polygon with the given extent are considered equal.
func (o Options) tolerance(extent float64) float64 {
	eps := o.Epsilon
	if eps <= 0 {
		eps = DefaultOptions().Epsilon
	}
	if extent < 1 {
		return eps
	}
	return eps * extent
}
