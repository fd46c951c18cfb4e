package geo

import "sync"

// BoundaryStore keeps the resolved boundary for each region in memory with
// concurrency safety. Boundaries are written by the config and GTFS refresh
// routines and read by the containment handlers.
type BoundaryStore struct {
	mu    sync.RWMutex
	store map[int]Boundary
}

// NewBoundaryStore creates and returns a new BoundaryStore.
func NewBoundaryStore() *BoundaryStore {
	return &BoundaryStore{
		store: make(map[int]Boundary),
	}
}

// Set stores the boundary for a specific region ID.
func (s *BoundaryStore) Set(regionID int, b Boundary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[regionID] = b
}

// Get retrieves the boundary for a specific region ID.
func (s *BoundaryStore) Get(regionID int) (Boundary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.store[regionID]
	return b, ok
}

// Delete removes the boundary for a region that is no longer configured.
func (s *BoundaryStore) Delete(regionID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.store, regionID)
}

// Contains reports whether the lat/lng lies inside the region's boundary.
// The second return value is false when no boundary is stored for the
// region.
func (s *BoundaryStore) Contains(regionID int, lat, lng float64) (bool, bool) {
	b, ok := s.Get(regionID)
	if !ok {
		return false, false
	}
	return InRectBoundary(Point{Lat: lat, Lng: lng}, b), true
}
