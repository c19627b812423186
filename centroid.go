package slicer

import (
	"math"

	"github.com/pkg/errors"
)

// Centroid returns the area centroid of a closed loop. The triangle fan is
// anchored at the first vertex, which keeps the cross products small for
// polygons far from the origin.
func Centroid(verts []Vector) (Vector, error) {
	return centroid(verts, DefaultOptions())
}

func centroid(verts []Vector, opts Options) (Vector, error) {
	count := len(verts)
	if count < 3 {
		return Vector{}, errors.Wrapf(ErrInsufficientVertices, "centroid of %d points", count)
	}

	pivot := verts[0]
	var area float64
	var c Vector
	for i := 1; i < count-1; i++ {
		e1 := verts[i].Sub(pivot)
		e2 := verts[i+1].Sub(pivot)
		triangleArea := 0.5 * e1.Cross(e2)
		area += triangleArea
		c = c.Add(e1.Add(e2).Mult(triangleArea / 3.0))
	}

	extent := math.Max(Extent(verts), 1)
	if math.Abs(area) <= opts.tolerance(extent)*extent || math.IsNaN(area) {
		return Vector{}, errors.Wrapf(ErrDegeneratePolygon, "area %g over %d points", area, count)
	}
	return pivot.Add(c.Mult(1.0 / area)), nil
}

// Rebase returns a copy of verts translated so origin becomes (0, 0).
func Rebase(verts []Vector, origin Vector) []Vector {
	local := make([]Vector, len(verts))
	for i, v := range verts {
		local[i] = v.Sub(origin)
	}
	return local
}
