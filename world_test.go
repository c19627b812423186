package slicer

import (
	"sort"

	"github.com/pkg/errors"
)

// fakeWorld is a minimal world of unrotated convex polygons. Its ray cast
// reports the first boundary crossing of every polygon, like Box2D does.
type fakeWorld struct {
	bodies []*fakeBody
	steps  int

	created   []*fakeBody
	destroyed []*fakeBody

	failCreate bool
	// extra hits reported at the end of every reverse cast
	extra map[*fakeShape]Vector
	casts int
}

type fakeBody struct {
	shape    *fakeShape
	dynamic  bool
	position Vector
	local    []Vector
	material Material
	velocity Vector
}

type fakeShape struct {
	body *fakeBody
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{extra: map[*fakeShape]Vector{}}
}

func (w *fakeWorld) add(position Vector, local []Vector, dynamic bool) *fakeBody {
	body := &fakeBody{
		dynamic:  dynamic,
		position: position,
		local:    local,
		material: Material{Density: 1, Friction: 0.5, Restitution: 0.25},
	}
	body.shape = &fakeShape{body: body}
	w.bodies = append(w.bodies, body)
	return body
}

func (b *fakeBody) world() []Vector {
	verts := make([]Vector, len(b.local))
	for i, v := range b.local {
		verts[i] = v.Add(b.position)
	}
	return verts
}

func (w *fakeWorld) has(body *fakeBody) bool {
	for _, b := range w.bodies {
		if b == body {
			return true
		}
	}
	return false
}

// clipRay returns the fraction along from->to where the ray enters the
// convex polygon verts, or false when it misses or starts inside.
func clipRay(verts []Vector, from, to Vector) (float64, Vector, bool) {
	d := to.Sub(from)
	lower, upper := 0.0, 1.0
	index := -1
	ccw := SignedArea(verts) > 0

	var normal Vector
	for i, a := range verts {
		b := verts[(i+1)%len(verts)]
		n := b.Sub(a).ReversePerp()
		if !ccw {
			n = n.Neg()
		}
		numerator := n.Dot(a.Sub(from))
		denominator := n.Dot(d)

		if denominator == 0 {
			if numerator < 0 {
				return 0, Vector{}, false
			}
		} else if denominator < 0 && numerator < lower*denominator {
			lower = numerator / denominator
			index = i
			normal = n.Normalize()
		} else if denominator > 0 && numerator < upper*denominator {
			upper = numerator / denominator
		}
		if upper < lower {
			return 0, Vector{}, false
		}
	}
	return lower, normal, index >= 0
}

func (w *fakeWorld) RayCast(from, to Vector, f RayCastFunc) {
	w.casts++
	var hits []RayHit
	for _, body := range w.bodies {
		if t, n, ok := clipRay(body.world(), from, to); ok {
			hits = append(hits, RayHit{Shape: body.shape, Point: from.Lerp(to, t), Normal: n, Fraction: t})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Fraction < hits[j].Fraction
	})
	if w.casts%2 == 0 {
		for shape, p := range w.extra {
			hits = append(hits, RayHit{Shape: shape, Point: p, Fraction: 1})
		}
	}
	for _, hit := range hits {
		if !f(hit) {
			return
		}
	}
}

func (w *fakeWorld) WorldVertices(ref ShapeRef) []Vector {
	if shape, ok := ref.(*fakeShape); ok {
		return shape.body.world()
	}
	return nil
}

func (w *fakeWorld) OwningBody(ref ShapeRef) BodyRef {
	if shape, ok := ref.(*fakeShape); ok {
		return shape.body
	}
	return nil
}

func (w *fakeWorld) IsDynamic(ref BodyRef) bool {
	body, ok := ref.(*fakeBody)
	return ok && body.dynamic
}

func (w *fakeWorld) Material(ref ShapeRef) Material {
	if shape, ok := ref.(*fakeShape); ok {
		return shape.body.material
	}
	return Material{}
}

func (w *fakeWorld) CreateBody(spec BodySpec) (BodyRef, error) {
	if w.failCreate {
		return nil, errors.New("create refused")
	}
	body := w.add(spec.Position, spec.Vertices, true)
	body.material = spec.Material
	if parent, ok := spec.Parent.(*fakeBody); ok {
		body.velocity = parent.velocity
	}
	w.created = append(w.created, body)
	return body, nil
}

func (w *fakeWorld) DestroyBody(ref BodyRef) {
	body, ok := ref.(*fakeBody)
	if !ok {
		return
	}
	for i, b := range w.bodies {
		if b == body {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			w.destroyed = append(w.destroyed, body)
			return
		}
	}
}

func (w *fakeWorld) Step(dt float64) {
	w.steps++
	for _, body := range w.bodies {
		if body.dynamic {
			body.position = body.position.Add(body.velocity.Mult(dt))
		}
	}
}
