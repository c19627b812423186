package slicer

import (
	"math"

	"github.com/pkg/errors"
)

// CutResult holds the two world-space loops produced by a cut, before
// cleanup. Loops[0] lies left of the directed line exit->entry.
type CutResult struct {
	Loops [2][]Vector
}

// Count is the total number of points over both loops.
func (r CutResult) Count() int {
	return len(r.Loops[0]) + len(r.Loops[1])
}

// Partition splits the convex loop verts along the line through entry and
// exit. Both points are inserted into both loops, so a proper crossing of an
// N-gon yields N+4 points in total. Each loop keeps the winding of verts.
func Partition(verts []Vector, entry, exit Vector) CutResult {
	center := Midpoint(entry, exit)
	reference := entry.Sub(exit).ToAngle()

	// The boundary chain left of exit->entry runs from entry to exit when
	// verts winds counter-clockwise, so that side is closed by exit, entry.
	// The other side is closed the opposite way, and clockwise loops swap both.
	pairs := [2][2]Vector{{exit, entry}, {entry, exit}}
	if SignedArea(verts) < 0 {
		pairs[0], pairs[1] = pairs[1], pairs[0]
	}

	var result CutResult
	var placed [2]bool
	current := -1
	for _, v := range verts {
		side := sideOf(v, center, reference)
		if current != -1 && current != side {
			result.Loops[side] = append(result.Loops[side], pairs[side][0], pairs[side][1])
			placed[side] = true
		}
		result.Loops[side] = append(result.Loops[side], v)
		current = side
	}

	for side := range result.Loops {
		if !placed[side] {
			result.Loops[side] = append(result.Loops[side], pairs[side][0], pairs[side][1])
		}
	}

	assert(result.Count() == len(verts)+4, "partition lost vertices")
	return result
}

func sideOf(v, center Vector, reference float64) int {
	theta := RelativeAngle(v, center, reference)
	if theta > 0 && theta <= math.Pi {
		return 0
	}
	return 1
}

// Clean prepares a partitioned loop for the engine: coincident and collinear
// points are merged, and when the loop exceeds opts.MaxVertices the vertices
// that contribute the least area are dropped until it fits.
func Clean(loop []Vector, opts Options) ([]Vector, error) {
	extent := math.Max(Extent(loop), 1)
	tol := opts.tolerance(extent)

	out := make([]Vector, 0, len(loop))
	for _, v := range loop {
		if len(out) > 0 && out[len(out)-1].Near(v, tol) {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[0].Near(out[len(out)-1], tol) {
		out = out[:len(out)-1]
	}
	out = dropCollinear(out, tol*extent)

	if len(out) < 3 {
		return nil, errors.Wrapf(ErrInsufficientVertices, "%d of %d points left", len(out), len(loop))
	}
	if opts.MaxVertices >= 3 && len(out) > opts.MaxVertices {
		before, area := len(out), Area(out)
		for len(out) > opts.MaxVertices {
			out = removeAt(out, smallestCorner(out))
		}
		opts.logf("slicer: capped loop at %d vertices, dropped %d, lost area %g", opts.MaxVertices, before-len(out), area-Area(out))
	}
	if !IsSimple(out) {
		return nil, errors.Wrap(ErrDegeneratePolygon, "self-intersecting loop")
	}
	return out, nil
}

func dropCollinear(verts []Vector, tol float64) []Vector {
	for changed := true; changed && len(verts) >= 3; {
		changed = false
		for i := range verts {
			if cornerArea(verts, i) <= tol {
				verts = removeAt(verts, i)
				changed = true
				break
			}
		}
	}
	return verts
}

// cornerArea is twice the area of the triangle vertex i forms with its
// neighbours, which is the area lost by removing it from a convex loop.
func cornerArea(verts []Vector, i int) float64 {
	n := len(verts)
	prev, next := verts[(i+n-1)%n], verts[(i+1)%n]
	return math.Abs(verts[i].Sub(prev).Cross(next.Sub(verts[i])))
}

func smallestCorner(verts []Vector) int {
	best, bestArea := 0, math.Inf(1)
	for i := range verts {
		if a := cornerArea(verts, i); a < bestArea {
			best, bestArea = i, a
		}
	}
	return best
}

func removeAt(verts []Vector, i int) []Vector {
	out := make([]Vector, 0, len(verts)-1)
	out = append(out, verts[:i]...)
	return append(out, verts[i+1:]...)
}
