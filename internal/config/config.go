package config

import (
	"sync"

	"geofence.urbanatlas.org/internal/models"
)

// Config holds all the configuration settings for our application.
type Config struct {
	Port          int
	Env           string
	FetchInterval int
	Mu            sync.RWMutex
	Regions       []models.Region
}

// NewConfig creates a new instance of a Config struct.
func NewConfig(port int, env string, regions []models.Region) *Config {
	return &Config{
		Port:    port,
		Env:     env,
		Regions: regions,
	}
}

// UpdateRegions safely replaces the configured regions.
func (cfg *Config) UpdateRegions(newRegions []models.Region) {
	cfg.Mu.Lock()
	defer cfg.Mu.Unlock()
	cfg.Regions = newRegions
}

// GetRegions safely returns a copy of the regions slice to avoid
// concurrent modification issues.
// This method should be used to access the regions from other parts of
// the application.
func (cfg *Config) GetRegions() []models.Region {
	cfg.Mu.RLock()
	defer cfg.Mu.RUnlock()
	return append([]models.Region(nil), cfg.Regions...)
}
