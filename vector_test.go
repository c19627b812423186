package slicer

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	for _, tc := range []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, -math.Pi},
		{-1.5 * math.Pi, 0.5 * math.Pi},
		{1.5 * math.Pi, 1.5 * math.Pi},
		{-1.75 * math.Pi, 0.25 * math.Pi},
	} {
		if got := NormalizeAngle(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRelativeAngle(t *testing.T) {
	center := Vector{}
	// reference points along -X, so +Y is clockwise of it and -Y counter-clockwise
	reference := math.Pi

	below := RelativeAngle(Vector{X: 0, Y: -1}, center, reference)
	if below <= 0 || below > math.Pi {
		t.Errorf("Expected point below to be in (0, Pi], got %v", below)
	}
	above := RelativeAngle(Vector{X: 0, Y: 1}, center, reference)
	if above > 0 && above <= math.Pi {
		t.Errorf("Expected point above to be outside (0, Pi], got %v", above)
	}
}

func TestSegmentIntersection(t *testing.T) {
	p, ok := SegmentIntersection(Vector{X: -1, Y: 0}, Vector{X: 1, Y: 0}, Vector{X: 0, Y: -1}, Vector{X: 0, Y: 1})
	if !ok || !p.Near(Vector{}, 1e-12) {
		t.Errorf("Expected crossing at origin, got %v %v", p, ok)
	}
	if _, ok := SegmentIntersection(Vector{X: -1, Y: 0}, Vector{X: 1, Y: 0}, Vector{X: -1, Y: 1}, Vector{X: 1, Y: 1}); ok {
		t.Error("Parallel segments should not intersect")
	}
	if _, ok := SegmentIntersection(Vector{X: -1, Y: 0}, Vector{X: 1, Y: 0}, Vector{X: 2, Y: -1}, Vector{X: 2, Y: 1}); ok {
		t.Error("Segments that would cross past an endpoint should not intersect")
	}
}

func TestSignedArea(t *testing.T) {
	square := Box(2, 2)
	if a := SignedArea(square); a != 4 {
		t.Errorf("Expected 4, got %v", a)
	}
	reversed := []Vector{square[3], square[2], square[1], square[0]}
	if a := SignedArea(reversed); a != -4 {
		t.Errorf("Expected -4, got %v", a)
	}
}

func TestIsSimple(t *testing.T) {
	if !IsSimple(Box(1, 1)) {
		t.Error("Box should be simple")
	}
	bowtie := []Vector{{X: -1, Y: -1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}}
	if IsSimple(bowtie) {
		t.Error("Bowtie should not be simple")
	}
	if IsSimple([]Vector{{X: 0, Y: 0}, {X: 1, Y: 1}}) {
		t.Error("Two points are not a polygon")
	}
}

func TestSegment_Degenerate(t *testing.T) {
	if !(Segment{Vector{X: 1, Y: 1}, Vector{X: 1, Y: 1}}).Degenerate(1e-9) {
		t.Error("Expected zero length segment to be degenerate")
	}
	s := Segment{Vector{X: 0, Y: 0}, Vector{X: 3, Y: 4}}
	if s.Degenerate(1e-9) {
		t.Error("Expected segment to be valid")
	}
	if s.Length() != 5 {
		t.Errorf("Expected length 5, got %v", s.Length())
	}
}

func TestRegularPolygon(t *testing.T) {
	for sides := 3; sides <= 16; sides++ {
		verts := RegularPolygon(sides, 2)
		if len(verts) != sides {
			t.Fatalf("Expected %d vertices, got %d", sides, len(verts))
		}
		if SignedArea(verts) <= 0 {
			t.Errorf("Expected counter-clockwise %d-gon", sides)
		}
		for _, v := range verts {
			if math.Abs(v.Length()-2) > 1e-9 {
				t.Errorf("Vertex %v is not on the circumcircle", v)
			}
		}
	}
	if RegularPolygon(2, 1) != nil {
		t.Error("Expected nil for fewer than 3 sides")
	}
}
