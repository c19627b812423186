// Package cpworld lets the slicer drive a Chipmunk space.
package cpworld

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/jakecoffman/slicer"
	"github.com/pkg/errors"
)

type World struct {
	Space *cp.Space
	// Radius is the rounding radius given to the polygons this world creates.
	Radius float64
}

var _ slicer.World = (*World)(nil)

func New(space *cp.Space) *World {
	return &World{Space: space}
}

// RayCast reports every polygon crossed by the segment. Shapes containing the
// start point are skipped since the cast cannot enter them.
func (w *World) RayCast(from, to cp.Vector, f slicer.RayCastFunc) {
	stopped := false
	w.Space.SegmentQuery(from, to, 0, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
		if stopped {
			return
		}
		if _, ok := shape.Class.(*cp.PolyShape); !ok {
			return
		}
		if shape.PointQuery(from).Distance < 0 {
			return
		}
		stopped = !f(slicer.RayHit{Shape: shape, Point: point, Normal: normal, Fraction: alpha})
	}, nil)
}

func (w *World) WorldVertices(ref slicer.ShapeRef) []cp.Vector {
	shape, ok := ref.(*cp.Shape)
	if !ok {
		return nil
	}
	poly, ok := shape.Class.(*cp.PolyShape)
	if !ok {
		return nil
	}

	body := shape.Body()
	verts := make([]cp.Vector, poly.Count())
	for i := range verts {
		verts[i] = body.LocalToWorld(poly.Vert(i))
	}
	return verts
}

func (w *World) OwningBody(ref slicer.ShapeRef) slicer.BodyRef {
	shape, ok := ref.(*cp.Shape)
	if !ok || shape.Body() == nil {
		return nil
	}
	return shape.Body()
}

func (w *World) IsDynamic(ref slicer.BodyRef) bool {
	body, ok := ref.(*cp.Body)
	return ok && body.GetType() == cp.BODY_DYNAMIC
}

// Material reads the shape's surface properties. Shapes whose mass was set on
// the body rather than the shape report the body's mass spread over the
// shape's area.
func (w *World) Material(ref slicer.ShapeRef) slicer.Material {
	shape, ok := ref.(*cp.Shape)
	if !ok {
		return slicer.Material{}
	}

	density := shape.Density()
	if area := shape.Area(); (density <= 0 || math.IsNaN(density)) && area > 0 {
		density = shape.Body().Mass() / area
	}
	return slicer.Material{
		Density:     density,
		Friction:    shape.Friction(),
		Restitution: shape.Elasticity(),
	}
}

func (w *World) CreateBody(spec slicer.BodySpec) (slicer.BodyRef, error) {
	count := len(spec.Vertices)
	if count < 3 {
		return nil, errors.Wrapf(slicer.ErrInsufficientVertices, "polygon of %d vertices", count)
	}

	mass := math.Abs(cp.AreaForPoly(count, spec.Vertices, w.Radius)) * spec.Material.Density
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, errors.Errorf("invalid mass %g", mass)
	}
	moment := cp.MomentForPoly(mass, count, spec.Vertices, cp.Vector{}, w.Radius)

	body := w.Space.AddBody(cp.NewBody(mass, moment))
	body.SetPosition(spec.Position)
	if parent, ok := spec.Parent.(*cp.Body); ok {
		body.SetVelocityVector(parent.VelocityAtWorldPoint(spec.Position))
		body.SetAngularVelocity(parent.AngularVelocity())
	}

	shape := w.Space.AddShape(cp.NewPolyShape(body, count, spec.Vertices, cp.NewTransformIdentity(), w.Radius))
	shape.SetFriction(spec.Material.Friction)
	shape.SetElasticity(spec.Material.Restitution)
	return body, nil
}

func (w *World) DestroyBody(ref slicer.BodyRef) {
	body, ok := ref.(*cp.Body)
	if !ok {
		return
	}

	var shapes []*cp.Shape
	body.EachShape(func(shape *cp.Shape) {
		shapes = append(shapes, shape)
	})
	for _, shape := range shapes {
		w.Space.RemoveShape(shape)
	}
	w.Space.RemoveBody(body)
}

func (w *World) Step(dt float64) {
	w.Space.Step(dt)
}

// AddStaticPolygon adds an unsliceable polygon at position.
func (w *World) AddStaticPolygon(position cp.Vector, verts []cp.Vector, mat slicer.Material) *cp.Body {
	body := w.Space.AddBody(cp.NewStaticBody())
	body.SetPosition(position)

	shape := w.Space.AddShape(cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), w.Radius))
	shape.SetFriction(mat.Friction)
	shape.SetElasticity(mat.Restitution)
	return body
}

// AddFloor adds a static segment to the space's static body.
func (w *World) AddFloor(a, b cp.Vector, radius float64, mat slicer.Material) *cp.Shape {
	shape := w.Space.AddShape(cp.NewSegment(w.Space.StaticBody, a, b, radius))
	shape.SetFriction(mat.Friction)
	shape.SetElasticity(mat.Restitution)
	return shape
}

// AddPolygon adds a sliceable dynamic polygon at position.
func (w *World) AddPolygon(position cp.Vector, verts []cp.Vector, mat slicer.Material) (*cp.Body, error) {
	ref, err := w.CreateBody(slicer.BodySpec{Position: position, Vertices: verts, Material: mat})
	if err != nil {
		return nil, err
	}
	return ref.(*cp.Body), nil
}
