package service

import (
	"github.com/remitfair/corridor-quote-service/internal/catalog"
	"github.com/remitfair/corridor-quote-service/internal/model"
)

// CorridorService exposes the catalog to picker-style UIs: which corridors
// exist, which countries can send, which can receive.
type CorridorService struct {
	catalog *catalog.Catalog
}

func NewCorridorService(cat *catalog.Catalog) *CorridorService {
	return &CorridorService{catalog: cat}
}

// ListCorridors returns corridors, optionally filtered by source country.
func (s *CorridorService) ListCorridors(srcCountry string) []model.Corridor {
	if srcCountry == "" {
		return s.catalog.Corridors()
	}
	var out []model.Corridor
	for _, c := range s.catalog.Corridors() {
		if c.SrcCountry == srcCountry {
			out = append(out, c)
		}
	}
	return out
}

// SourceCountries lists distinct source countries, sorted.
func (s *CorridorService) SourceCountries() []string {
	return s.catalog.SourceCountries()
}

// Destinations lists destination countries served from srcCountry, sorted.
func (s *CorridorService) Destinations(srcCountry string) []string {
	return s.catalog.Destinations(srcCountry)
}
