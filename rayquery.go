package slicer

// SliceEvent is one body crossed by a cut: the two boundary points and the
// world-space polygon at the moment of the cut.
type SliceEvent struct {
	Shape    ShapeRef
	Body     BodyRef
	Entry    Vector
	Exit     Vector
	Vertices []Vector
	Material Material
}

type shapeHits struct {
	body  BodyRef
	entry Vector
	verts []Vector
	hits  int
}

// rayQuery accumulates hits per shape over the two casts of one pass.
type rayQuery struct {
	world  World
	opts   Options
	shapes map[ShapeRef]*shapeHits
	events []SliceEvent
	// shapes that reported more than two hits, in first-excess order
	overHit []ShapeRef
}

// QueryCut casts the cut in both directions and returns one event per dynamic
// polygon crossed twice, in the order the second hits arrived. Shapes hit
// more than twice are returned separately; their first two hits still count.
// The world is not modified. A zero-length cut crosses nothing.
func QueryCut(world World, cut Segment, opts Options) ([]SliceEvent, []ShapeRef) {
	if cut.Degenerate(opts.tolerance(1)) {
		opts.logf("slicer: %v: %v", ErrMalformedCut, cut)
		return nil, nil
	}
	q := &rayQuery{
		world:  world,
		opts:   opts,
		shapes: map[ShapeRef]*shapeHits{},
	}
	world.RayCast(cut.A, cut.B, q.hit)
	world.RayCast(cut.B, cut.A, q.hit)
	return q.events, q.overHit
}

func (q *rayQuery) hit(hit RayHit) bool {
	if hit.Shape == nil {
		return true
	}

	record, ok := q.shapes[hit.Shape]
	if !ok {
		body := q.world.OwningBody(hit.Shape)
		if body == nil || !q.world.IsDynamic(body) {
			return true
		}
		verts := q.world.WorldVertices(hit.Shape)
		if len(verts) < 3 {
			return true
		}
		q.shapes[hit.Shape] = &shapeHits{body: body, entry: hit.Point, verts: verts, hits: 1}
		return true
	}

	record.hits++
	switch {
	case record.hits == 2:
		tol := q.opts.tolerance(Extent(record.verts))
		if record.entry.Near(hit.Point, tol) {
			q.opts.logf("slicer: cut grazes %p at %v, ignored", hit.Shape, hit.Point)
			return true
		}
		q.events = append(q.events, SliceEvent{
			Shape:    hit.Shape,
			Body:     record.body,
			Entry:    record.entry,
			Exit:     hit.Point,
			Vertices: record.verts,
			Material: q.world.Material(hit.Shape),
		})
	case record.hits == 3:
		q.overHit = append(q.overHit, hit.Shape)
		q.opts.logf("slicer: %p: %v", hit.Shape, ErrTooManyHits)
	}
	return true
}
