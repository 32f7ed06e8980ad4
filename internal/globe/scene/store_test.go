package scene

import (
	"math"
	"sync"
	"testing"
)

func TestNewStoreEmpty(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()
	if snap == nil {
		t.Fatal("expected initial snapshot")
	}
	if len(snap.Markers) != 0 || len(snap.Arcs) != 0 || snap.Epicenter != nil {
		t.Errorf("expected empty scene, got %+v", snap)
	}
}

func TestSettersBumpVersion(t *testing.T) {
	s := NewStore()
	s.SetMarkers([]Marker{{Lat: 1, Lng: 2, Label: "A"}})
	s.SetArcs([]Arc{{DestLat: 10, DestLng: 20, DestLabel: "B"}})
	s.SetEpicenter(&Epicenter{Lat: 10.48, Lng: -66.88, Label: "CARACAS"})

	snap := s.Snapshot()
	if snap.Version != 3 {
		t.Errorf("expected version 3, got %d", snap.Version)
	}
	if len(snap.Markers) != 1 || len(snap.Arcs) != 1 || snap.Epicenter == nil {
		t.Errorf("setters should keep each other's data, got %+v", snap)
	}

	s.SetEpicenter(nil)
	if s.Snapshot().Epicenter != nil {
		t.Error("nil epicenter should clear it")
	}
}

func TestSetMarkersCopiesInput(t *testing.T) {
	s := NewStore()
	in := []Marker{{Lat: 1, Lng: 1, Label: "original"}}
	s.SetMarkers(in)
	in[0].Label = "mutated"

	if got := s.Snapshot().Markers[0].Label; got != "original" {
		t.Errorf("store must not alias caller slice, got %q", got)
	}
}

func TestSetEpicenterCopiesInput(t *testing.T) {
	s := NewStore()
	ep := &Epicenter{Lat: 1, Lng: 1, Label: "original"}
	s.SetEpicenter(ep)
	ep.Label = "mutated"

	if got := s.Snapshot().Epicenter.Label; got != "original" {
		t.Errorf("store must not alias caller epicenter, got %q", got)
	}
}

func TestInvalidEntriesDropped(t *testing.T) {
	s := NewStore()
	s.SetMarkers([]Marker{
		{Lat: 10, Lng: 10, Label: "ok"},
		{Lat: math.NaN(), Lng: 10},
		{Lat: 10, Lng: math.Inf(1)},
		{Lat: 91, Lng: 0},
		{Lat: 0, Lng: -181},
		{Lat: 0, Lng: 0, Intensity: math.NaN()},
	})
	s.SetArcs([]Arc{
		{OriginLat: 10.48, OriginLng: -66.88, DestLat: 38.89, DestLng: -77.03},
		{OriginLat: 10.48, OriginLng: -66.88, DestLat: math.NaN(), DestLng: 0},
		{OriginLat: math.Inf(-1), OriginLng: 0, DestLat: 0, DestLng: 0},
	})
	s.SetEpicenter(&Epicenter{Lat: math.NaN(), Lng: 0})

	snap := s.Snapshot()
	if len(snap.Markers) != 1 || snap.Markers[0].Label != "ok" {
		t.Errorf("expected only the valid marker, got %+v", snap.Markers)
	}
	if len(snap.Arcs) != 1 {
		t.Errorf("expected one valid arc, got %d", len(snap.Arcs))
	}
	if snap.Epicenter != nil {
		t.Error("invalid epicenter should be dropped")
	}
}

func TestReplaceIsAtomic(t *testing.T) {
	s := NewStore()

	sceneFor := func(label string, n int) Snapshot {
		snap := Snapshot{Epicenter: &Epicenter{Label: label}}
		for i := 0; i < n; i++ {
			snap.Markers = append(snap.Markers, Marker{Lat: float64(i), Label: label})
			snap.Arcs = append(snap.Arcs, Arc{DestLat: float64(i), DestLabel: label})
		}
		return snap
	}
	a := sceneFor("A", 5)
	b := sceneFor("B", 9)
	s.Replace(a)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			if i%2 == 0 {
				s.Replace(b)
			} else {
				s.Replace(a)
			}
		}
		close(stop)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := s.Snapshot()
				label := snap.Epicenter.Label
				want := 5
				if label == "B" {
					want = 9
				}
				if len(snap.Markers) != want || len(snap.Arcs) != want {
					t.Errorf("mixed snapshot: %s with %d markers and %d arcs", label, len(snap.Markers), len(snap.Arcs))
					return
				}
				for _, m := range snap.Markers {
					if m.Label != label {
						t.Errorf("marker %q in scene %q", m.Label, label)
						return
					}
				}
				for _, arc := range snap.Arcs {
					if arc.DestLabel != label {
						t.Errorf("arc %q in scene %q", arc.DestLabel, label)
						return
					}
				}
			}
		}()
	}

	wg.Wait()
}

func TestConcurrentSettersKeepEveryUpdate(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	const writers = 8
	const perWriter = 100
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				s.SetMarkers([]Marker{{Lat: 1, Lng: 1}})
			}
		}()
	}
	wg.Wait()

	if got := s.Snapshot().Version; got != writers*perWriter {
		t.Errorf("expected version %d, got %d", writers*perWriter, got)
	}
}
