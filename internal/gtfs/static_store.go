package gtfs

import (
	"sync"

	"geofence.urbanatlas.org/internal/models"
)

// StaticStore is a thread-safe in-memory store for the stop data extracted
// from GTFS static bundles, indexed by region ID.
type StaticStore struct {
	mu   sync.RWMutex
	data map[int]*models.StaticData
}

// NewStaticStore initializes and returns a new instance of StaticStore.
// The underlying map is lazily initialized on first use in Set.
func NewStaticStore() *StaticStore {
	return &StaticStore{}
}

// Set stores the given static data for the specified region ID.
func (s *StaticStore) Set(regionID int, newData *models.StaticData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		s.data = make(map[int]*models.StaticData)
	}
	s.data[regionID] = newData
}

// Get retrieves the static data for the specified region ID.
func (s *StaticStore) Get(regionID int) (*models.StaticData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, exists := s.data[regionID]
	return data, exists
}

// StopCount returns the number of stops stored for the region, and whether
// any static data is stored for it at all.
func (s *StaticStore) StopCount(regionID int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, exists := s.data[regionID]
	if !exists || data == nil {
		return 0, false
	}
	return len(data.Stops), true
}
