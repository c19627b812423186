package slicer

// ShapeRef and BodyRef are opaque engine handles. They must be comparable
// since the ray query keys its hit table by shape.
type ShapeRef interface{}
type BodyRef interface{}

// Material holds the fixture properties a replacement shape inherits.
type Material struct {
	Density     float64
	Friction    float64
	Restitution float64
}

type RayHit struct {
	Shape    ShapeRef
	Point    Vector
	Normal   Vector
	Fraction float64
}

// RayCastFunc is called once per shape crossed by a ray. Returning false asks
// the engine to stop the sweep.
type RayCastFunc func(hit RayHit) bool

// BodySpec describes a dynamic body to create. Vertices are relative to
// Position.
type BodySpec struct {
	Position Vector
	Vertices []Vector
	Material Material
	// Parent, when not nil, is the body whose velocity is inherited.
	Parent BodyRef
}

// World is the part of a rigid-body simulation the slicer drives. RayCast must
// report every shape the ray crosses, not only the nearest one.
type World interface {
	RayCast(from, to Vector, f RayCastFunc)
	// WorldVertices returns the polygon of shape in world space, in the
	// engine's winding order. Non-polygon shapes return nil.
	WorldVertices(shape ShapeRef) []Vector
	OwningBody(shape ShapeRef) BodyRef
	IsDynamic(body BodyRef) bool
	Material(shape ShapeRef) Material
	CreateBody(spec BodySpec) (BodyRef, error)
	DestroyBody(body BodyRef)
	Step(dt float64)
}
