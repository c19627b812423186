package slicer

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Report describes one slicing pass.
type Report struct {
	Cut      Segment
	Outcomes []Outcome
	// OverHit lists shapes that reported more than two boundary hits.
	OverHit []ShapeRef
}

// Created returns every replacement body of the pass.
func (r *Report) Created() []Piece {
	return lo.FlatMap(r.Outcomes, func(o Outcome, _ int) []Piece {
		return o.Pieces
	})
}

// Destroyed returns the struck bodies removed by the pass.
func (r *Report) Destroyed() []BodyRef {
	return lo.Map(r.Outcomes, func(o Outcome, _ int) BodyRef {
		return o.Event.Body
	})
}

// Session owns the cut being drawn and the bodies the slicer manages for one
// world. All methods are serialized so a slicing pass never overlaps a step.
type Session struct {
	world World
	opts  Options

	mu      sync.Mutex
	drawing bool
	live    Segment
	pending *Segment

	tracked map[uuid.UUID]BodyRef
	ids     map[BodyRef]uuid.UUID
}

func NewSession(world World, opts Options) *Session {
	return &Session{
		world:   world,
		opts:    opts,
		tracked: map[uuid.UUID]BodyRef{},
		ids:     map[BodyRef]uuid.UUID{},
	}
}

// BeginCut starts a new cut at p. An unfinished or not yet sliced cut is
// dropped without touching the world.
func (s *Session) BeginCut(p Vector) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drawing || s.pending != nil {
		s.opts.logf("slicer: cut %v discarded", s.live)
	}
	s.drawing = true
	s.live = Segment{p, p}
	s.pending = nil
}

// ExtendCut moves the free end of the cut being drawn. It has no effect on the
// world.
func (s *Session) ExtendCut(p Vector) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drawing {
		s.live.B = p
	}
}

// EndCut finalizes the cut at p. The cut is sliced by the next StepAndSlice.
func (s *Session) EndCut(p Vector) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.drawing {
		return ErrNoCut
	}
	s.drawing = false
	s.live.B = p

	if s.live.Degenerate(s.opts.tolerance(1)) {
		s.opts.logf("slicer: rejected cut %v", s.live)
		return errors.Wrapf(ErrMalformedCut, "%v", s.live)
	}
	cut := s.live
	s.pending = &cut
	return nil
}

// Live returns the cut being drawn, for rendering.
func (s *Session) Live() (Segment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live, s.drawing
}

// Pending reports whether a finalized cut is waiting for the next step.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// StepAndSlice advances the world by one fixed timestep, then runs the slicing
// pass for the pending cut, if any. The report is nil when nothing was cut.
func (s *Session) StepAndSlice() *Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.world.Step(s.opts.Timestep)
	if s.pending == nil {
		return nil
	}
	cut := *s.pending
	s.pending = nil
	return s.slice(cut)
}

// Slice runs one slicing pass for cut immediately. A zero-length cut yields
// an empty report.
func (s *Session) Slice(cut Segment) *Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slice(cut)
}

func (s *Session) slice(cut Segment) *Report {
	events, overHit := QueryCut(s.world, cut, s.opts)
	report := &Report{Cut: cut, OverHit: overHit}

	for _, event := range events {
		outcome := SliceBody(s.world, event, s.opts)
		if id, ok := s.ids[event.Body]; ok {
			delete(s.ids, event.Body)
			delete(s.tracked, id)
		}
		for _, piece := range outcome.Pieces {
			s.tracked[piece.ID] = piece.Body
			s.ids[piece.Body] = piece.ID
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report
}

// Track registers a body created outside the session so Reset removes it.
func (s *Session) Track(body BodyRef) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.ids[body]; ok {
		return id
	}
	id := uuid.New()
	s.tracked[id] = body
	s.ids[body] = id
	return id
}

// Body returns the tracked body with the given id.
func (s *Session) Body(id uuid.UUID) (BodyRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, ok := s.tracked[id]
	return body, ok
}

// Tracked returns the ids of all live tracked bodies.
func (s *Session) Tracked() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Keys(s.tracked)
}

// Reset destroys every tracked body and cancels any cut.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, body := range s.tracked {
		s.world.DestroyBody(body)
	}
	s.tracked = map[uuid.UUID]BodyRef{}
	s.ids = map[BodyRef]uuid.UUID{}
	s.drawing = false
	s.pending = nil
}
