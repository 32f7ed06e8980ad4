package scene

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/shockglobe/internal/logger"
)

// Store publishes scene snapshots to the render loop. Writers build a fresh
// snapshot and swap the pointer; readers load it once per frame. Entries with
// non-finite or out-of-range coordinates are dropped here so the renderer
// never has to validate points per frame.
type Store struct {
	current atomic.Pointer[Snapshot]
	log     *zap.Logger
}

// NewStore creates a store holding an empty scene.
func NewStore() *Store {
	s := &Store{log: logger.Named("scene")}
	s.current.Store(&Snapshot{})
	return s
}

// Snapshot returns the current scene. The result must not be modified.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// SetMarkers replaces the marker list.
func (s *Store) SetMarkers(markers []Marker) {
	clean := s.filterMarkers(markers)
	s.update(func(next *Snapshot) { next.Markers = clean })
}

// SetArcs replaces the arc list.
func (s *Store) SetArcs(arcs []Arc) {
	clean := s.filterArcs(arcs)
	s.update(func(next *Snapshot) { next.Arcs = clean })
}

// SetEpicenter sets or, with nil, clears the epicenter.
func (s *Store) SetEpicenter(e *Epicenter) {
	ep := s.cleanEpicenter(e)
	s.update(func(next *Snapshot) { next.Epicenter = ep })
}

// Replace swaps markers, arcs and epicenter in one step.
func (s *Store) Replace(snap Snapshot) {
	markers := s.filterMarkers(snap.Markers)
	arcs := s.filterArcs(snap.Arcs)
	ep := s.cleanEpicenter(snap.Epicenter)
	s.update(func(next *Snapshot) {
		next.Markers = markers
		next.Arcs = arcs
		next.Epicenter = ep
	})
}

// update publishes a copy of the current snapshot with mutate applied,
// retrying if another writer won the race.
func (s *Store) update(mutate func(next *Snapshot)) {
	for {
		old := s.current.Load()
		next := &Snapshot{
			Markers:   old.Markers,
			Arcs:      old.Arcs,
			Epicenter: old.Epicenter,
			Version:   old.Version + 1,
		}
		mutate(next)
		if s.current.CompareAndSwap(old, next) {
			return
		}
	}
}

func (s *Store) filterMarkers(in []Marker) []Marker {
	out := make([]Marker, 0, len(in))
	for _, m := range in {
		if m.valid() {
			out = append(out, m)
		}
	}
	if dropped := len(in) - len(out); dropped > 0 {
		s.log.Warn("dropped invalid markers", zap.Int("dropped", dropped), zap.Int("kept", len(out)))
	}
	return out
}

func (s *Store) filterArcs(in []Arc) []Arc {
	out := make([]Arc, 0, len(in))
	for _, a := range in {
		if a.valid() {
			out = append(out, a)
		}
	}
	if dropped := len(in) - len(out); dropped > 0 {
		s.log.Warn("dropped invalid arcs", zap.Int("dropped", dropped), zap.Int("kept", len(out)))
	}
	return out
}

func (s *Store) cleanEpicenter(e *Epicenter) *Epicenter {
	if e == nil {
		return nil
	}
	if !e.valid() {
		s.log.Warn("dropped invalid epicenter", zap.Float64("lat", e.Lat), zap.Float64("lng", e.Lng))
		return nil
	}
	ep := *e
	return &ep
}
