package store

import (
	"path/filepath"
	"strings"

	"estatehub/server/internal/models"
)

// GetAreaBySlug reads the full area detail record. Unknown slugs return nil.
func (s *Store) GetAreaBySlug(slug string) *models.Area {
	if !slugSafe(slug) {
		return nil
	}

	var a models.Area
	path := filepath.Join(s.dataDir, "areas", slug+".json")
	if err := s.readJSON(path, &a); err != nil {
		s.logger.WithError(err).WithField("slug", slug).Debug("Area detail not found")
		return nil
	}
	return &a
}

// GetAreaSummary returns the index record for a slug, if any.
func (s *Store) GetAreaSummary(slug string) *models.AreaSummary {
	for i := range s.areas {
		if s.areas[i].Slug == slug {
			return &s.areas[i]
		}
	}
	return nil
}

// GetFeaturedAreas returns up to limit featured areas.
func (s *Store) GetFeaturedAreas(limit int) []models.AreaSummary {
	featured := make([]models.AreaSummary, 0, limit)
	for _, a := range s.areas {
		if !a.Featured {
			continue
		}
		featured = append(featured, a)
		if len(featured) == limit {
			break
		}
	}
	return featured
}

// GetAreasByCity returns areas in a city, matched case-insensitively.
func (s *Store) GetAreasByCity(city string) []models.AreaSummary {
	var result []models.AreaSummary
	for _, a := range s.areas {
		if strings.EqualFold(a.City, city) {
			result = append(result, a)
		}
	}
	return result
}
