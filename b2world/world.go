// Package b2world lets the slicer drive a Box2D world.
package b2world

import (
	"github.com/ByteArena/box2d"
	"github.com/jakecoffman/slicer"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// MaxVertices is the polygon vertex cap imposed by Box2D. Sessions driving a
// Box2D world must not use a larger slicer.Options.MaxVertices.
const MaxVertices = box2d.B2_maxPolygonVertices

type World struct {
	World *box2d.B2World

	VelocityIterations int
	PositionIterations int
}

var _ slicer.World = (*World)(nil)

func New(world *box2d.B2World) *World {
	return &World{
		World:              world,
		VelocityIterations: 8,
		PositionIterations: 3,
	}
}

// NewWithGravity creates a world around a fresh Box2D world.
func NewWithGravity(gravity slicer.Vector) *World {
	world := box2d.MakeB2World(toB2(gravity))
	return New(&world)
}

func toB2(v slicer.Vector) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}

func fromB2(v box2d.B2Vec2) slicer.Vector {
	return slicer.Vector{X: v.X, Y: v.Y}
}

func polygonOf(ref slicer.ShapeRef) (*box2d.B2Fixture, *box2d.B2PolygonShape, bool) {
	fixture, ok := ref.(*box2d.B2Fixture)
	if !ok || fixture == nil {
		return nil, nil, false
	}
	poly, ok := fixture.GetShape().(*box2d.B2PolygonShape)
	return fixture, poly, ok
}

// RayCast reports the polygon fixtures crossed by the segment. Returning 1
// from the Box2D callback keeps the sweep going over every fixture; -1 skips
// fixtures that are not polygons.
func (w *World) RayCast(from, to slicer.Vector, f slicer.RayCastFunc) {
	// Box2D asserts on zero-length rays.
	if from == to {
		return
	}
	w.World.RayCast(func(fixture *box2d.B2Fixture, point, normal box2d.B2Vec2, fraction float64) float64 {
		if _, _, ok := polygonOf(fixture); !ok {
			return -1
		}
		hit := slicer.RayHit{Shape: fixture, Point: fromB2(point), Normal: fromB2(normal), Fraction: fraction}
		if !f(hit) {
			return 0
		}
		return 1
	}, toB2(from), toB2(to))
}

func (w *World) WorldVertices(ref slicer.ShapeRef) []slicer.Vector {
	fixture, poly, ok := polygonOf(ref)
	if !ok {
		return nil
	}
	body := fixture.GetBody()
	return lo.Map(poly.M_vertices[:poly.M_count], func(v box2d.B2Vec2, _ int) slicer.Vector {
		return fromB2(body.GetWorldPoint(v))
	})
}

func (w *World) OwningBody(ref slicer.ShapeRef) slicer.BodyRef {
	fixture, ok := ref.(*box2d.B2Fixture)
	if !ok || fixture == nil || fixture.GetBody() == nil {
		return nil
	}
	return fixture.GetBody()
}

func (w *World) IsDynamic(ref slicer.BodyRef) bool {
	body, ok := ref.(*box2d.B2Body)
	return ok && body.GetType() == box2d.B2BodyType.B2_dynamicBody
}

func (w *World) Material(ref slicer.ShapeRef) slicer.Material {
	fixture, ok := ref.(*box2d.B2Fixture)
	if !ok {
		return slicer.Material{}
	}
	return slicer.Material{
		Density:     fixture.GetDensity(),
		Friction:    fixture.GetFriction(),
		Restitution: fixture.GetRestitution(),
	}
}

// CreateBody adds a dynamic polygon body. Box2D asserts on invalid polygons
// and on locked worlds; those panics are returned as errors.
func (w *World) CreateBody(spec slicer.BodySpec) (ref slicer.BodyRef, err error) {
	count := len(spec.Vertices)
	if count < 3 || count > MaxVertices {
		return nil, errors.Wrapf(slicer.ErrInsufficientVertices, "box2d polygon of %d vertices", count)
	}
	if w.World.IsLocked() {
		return nil, errors.New("box2d world is locked")
	}

	var body *box2d.B2Body
	defer func() {
		if r := recover(); r != nil {
			if body != nil {
				w.World.DestroyBody(body)
			}
			ref, err = nil, errors.Errorf("box2d: %v", r)
		}
	}()

	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_dynamicBody
	def.Position = toB2(spec.Position)
	if parent, ok := spec.Parent.(*box2d.B2Body); ok {
		def.LinearVelocity = parent.GetLinearVelocityFromWorldPoint(def.Position)
		def.AngularVelocity = parent.GetAngularVelocity()
	}
	body = w.World.CreateBody(&def)

	shape := box2d.MakeB2PolygonShape()
	shape.Set(lo.Map(spec.Vertices, func(v slicer.Vector, _ int) box2d.B2Vec2 {
		return toB2(v)
	}), count)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = spec.Material.Density
	fd.Friction = spec.Material.Friction
	fd.Restitution = spec.Material.Restitution
	body.CreateFixtureFromDef(&fd)
	return body, nil
}

func (w *World) DestroyBody(ref slicer.BodyRef) {
	if body, ok := ref.(*box2d.B2Body); ok && body != nil {
		w.World.DestroyBody(body)
	}
}

func (w *World) Step(dt float64) {
	w.World.Step(dt, w.VelocityIterations, w.PositionIterations)
	w.World.ClearForces()
}

// AddPolygon adds a polygon body of the given type at position. verts are
// relative to position and must wind counter-clockwise.
func (w *World) AddPolygon(position slicer.Vector, verts []slicer.Vector, mat slicer.Material, dynamic bool) (*box2d.B2Body, error) {
	if dynamic {
		ref, err := w.CreateBody(slicer.BodySpec{Position: position, Vertices: verts, Material: mat})
		if err != nil {
			return nil, err
		}
		return ref.(*box2d.B2Body), nil
	}

	def := box2d.MakeB2BodyDef()
	def.Position = toB2(position)
	body := w.World.CreateBody(&def)

	shape := box2d.MakeB2PolygonShape()
	shape.Set(lo.Map(verts, func(v slicer.Vector, _ int) box2d.B2Vec2 {
		return toB2(v)
	}), len(verts))

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = mat.Density
	fd.Friction = mat.Friction
	fd.Restitution = mat.Restitution
	body.CreateFixtureFromDef(&fd)
	return body, nil
}

// AddFloor adds a static box of half extents hx, hy centered at position.
func (w *World) AddFloor(position slicer.Vector, hx, hy float64, mat slicer.Material) *box2d.B2Body {
	def := box2d.MakeB2BodyDef()
	def.Position = toB2(position)
	body := w.World.CreateBody(&def)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(hx, hy)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = mat.Density
	fd.Friction = mat.Friction
	fd.Restitution = mat.Restitution
	body.CreateFixtureFromDef(&fd)
	return body
}
