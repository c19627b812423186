package slicer

import (
	"github.com/deadsy/sdfx/sdf"
)

// RegularPolygon returns the counter-clockwise vertices of a regular polygon
// centered on the origin, the first vertex on the positive X axis.
func RegularPolygon(sides int, radius float64) []Vector {
	if sides < 3 {
		return nil
	}
	points := sdf.Nagon(sides, radius)
	verts := make([]Vector, 0, len(points))
	for _, p := range points {
		verts = append(verts, Vector{X: p.X, Y: p.Y})
	}
	return verts
}

// Box returns the counter-clockwise corners of a w by h rectangle centered on
// the origin.
func Box(w, h float64) []Vector {
	hw, hh := w/2, h/2
	return []Vector{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
}
