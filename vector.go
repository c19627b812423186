package slicer

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp/v2"
)

// Vector is a point or direction in world units. It is the physics engine's
// vector type so vertex data crosses the adapter boundary without copying.
type Vector = cp.Vector

type Segment struct {
	A, B Vector
}

func (s Segment) String() string {
	return fmt.Sprintf("%v -> %v", s.A, s.B)
}

func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Degenerate reports whether both endpoints are within eps of each other.
func (s Segment) Degenerate(eps float64) bool {
	return s.A.Near(s.B, eps)
}

func Midpoint(a, b Vector) Vector {
	return a.Lerp(b, 0.5)
}

// NormalizeAngle folds angles below -Pi back by one turn. Differences of two
// atan2 results land in (-2Pi, 2Pi), so the result is in (-Pi, 2Pi); values
// above Pi and their wrapped counterparts fall on the same side of the cut.
func NormalizeAngle(a float64) float64 {
	if a < -math.Pi {
		return a + 2*math.Pi
	}
	return a
}

// RelativeAngle is the angle of v as seen from center, measured from the
// reference direction.
func RelativeAngle(v, center Vector, reference float64) float64 {
	return NormalizeAngle(v.Sub(center).ToAngle() - reference)
}

// SegmentIntersection returns the point where segments a1a2 and b1b2 cross.
// Parallel and collinear segments never intersect.
func SegmentIntersection(a1, a2, b1, b2 Vector) (Vector, bool) {
	r := a2.Sub(a1)
	s := b2.Sub(b1)
	denom := r.Cross(s)
	if denom == 0 {
		return Vector{}, false
	}

	d := b1.Sub(a1)
	t := d.Cross(s) / denom
	u := d.Cross(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vector{}, false
	}
	return a1.Lerp(a2, t), true
}

// SignedArea is the shoelace area of the closed loop, positive when the loop
// winds counter-clockwise.
func SignedArea(verts []Vector) float64 {
	var area float64
	for i, a := range verts {
		b := verts[(i+1)%len(verts)]
		area += a.Cross(b)
	}
	return 0.5 * area
}

func Area(verts []Vector) float64 {
	return math.Abs(SignedArea(verts))
}

// IsSimple reports whether no two non-adjacent edges of the closed loop touch.
func IsSimple(verts []Vector) bool {
	n := len(verts)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := verts[i], verts[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			b1, b2 := verts[j], verts[(j+1)%n]
			if _, ok := SegmentIntersection(a1, a2, b1, b2); ok {
				return false
			}
		}
	}
	return true
}

// Extent is the largest side of the loop's bounding box, used to scale
// tolerances to the size of the polygon.
func Extent(verts []Vector) float64 {
	if len(verts) == 0 {
		return 0
	}
	l, b := verts[0].X, verts[0].Y
	r, t := l, b
	for _, v := range verts[1:] {
		l, r = math.Min(l, v.X), math.Max(r, v.X)
		b, t = math.Min(b, v.Y), math.Max(t, v.Y)
	}
	return math.Max(r-l, t-b)
}
