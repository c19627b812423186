package slicer

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Piece is a replacement body created by a slice.
type Piece struct {
	ID       uuid.UUID
	Body     BodyRef
	Centroid Vector
	// Vertices relative to Centroid, as handed to the engine.
	Vertices []Vector
}

// Discard records a partition that did not become a body.
type Discard struct {
	Side int
	Loop []Vector
	Err  error
}

// Outcome is the result of slicing one struck body.
type Outcome struct {
	Event     SliceEvent
	Pieces    []Piece
	Discarded []Discard
}

// Rebuild creates a dynamic body for one world-space loop. The body sits at
// the loop's centroid and its shape is the loop re-based around it.
func Rebuild(world World, event SliceEvent, loop []Vector, opts Options) (Piece, error) {
	center, err := centroid(loop, opts)
	if err != nil {
		return Piece{}, err
	}

	spec := BodySpec{
		Position: center,
		Vertices: Rebase(loop, center),
		Material: event.Material,
	}
	if opts.InheritVelocity {
		spec.Parent = event.Body
	}

	body, err := world.CreateBody(spec)
	if err != nil {
		return Piece{}, errors.Wrapf(err, "create body at %v", center)
	}
	return Piece{ID: uuid.New(), Body: body, Centroid: center, Vertices: spec.Vertices}, nil
}

// SliceBody partitions the struck polygon, creates a body per valid loop and
// then destroys the original. The original is destroyed even when neither
// loop survives, in which case the body is lost.
func SliceBody(world World, event SliceEvent, opts Options) Outcome {
	outcome := Outcome{Event: event}
	cut := Partition(event.Vertices, event.Entry, event.Exit)

	for side, raw := range cut.Loops {
		loop, err := Clean(raw, opts)
		if err == nil {
			var piece Piece
			piece, err = Rebuild(world, event, loop, opts)
			if err == nil {
				outcome.Pieces = append(outcome.Pieces, piece)
				continue
			}
		}
		opts.logf("slicer: side %d of %p discarded: %v", side, event.Body, err)
		outcome.Discarded = append(outcome.Discarded, Discard{Side: side, Loop: raw, Err: err})
	}

	if len(outcome.Pieces) == 0 {
		opts.logf("slicer: %p destroyed without replacement", event.Body)
	}
	world.DestroyBody(event.Body)
	return outcome
}
