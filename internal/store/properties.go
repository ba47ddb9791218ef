package store

import (
	"path/filepath"

	"estatehub/server/internal/models"
)

// GetPropertyBySlug reads the full detail record for a slug. Unknown slugs
// return nil without an error.
func (s *Store) GetPropertyBySlug(slug string) *models.Property {
	if !slugSafe(slug) {
		return nil
	}

	var p models.Property
	path := filepath.Join(s.dataDir, "properties", slug+".json")
	if err := s.readJSON(path, &p); err != nil {
		s.logger.WithError(err).WithField("slug", slug).Debug("Property detail not found")
		return nil
	}
	return &p
}

// GetProperty resolves a slug or an opaque id to the detail record. The slug
// file is tried first; ids are resolved through the index.
func (s *Store) GetProperty(slugOrID string) *models.Property {
	if p := s.GetPropertyBySlug(slugOrID); p != nil {
		return p
	}
	for _, summary := range s.properties {
		if summary.ID == slugOrID {
			return s.GetPropertyBySlug(summary.Slug)
		}
	}
	return nil
}

// GetFeaturedProperties returns up to limit featured listings.
func (s *Store) GetFeaturedProperties(limit int) []models.PropertySummary {
	featured := make([]models.PropertySummary, 0, limit)
	for _, p := range s.properties {
		if !p.IsFeatured {
			continue
		}
		featured = append(featured, p)
		if len(featured) == limit {
			break
		}
	}
	return featured
}

// GetPropertiesByArea returns listings in an area, capped at limit when
// limit is positive.
func (s *Store) GetPropertiesByArea(areaSlug string, limit int) []models.PropertySummary {
	var result []models.PropertySummary
	for _, p := range s.properties {
		if p.AreaSlug != areaSlug {
			continue
		}
		result = append(result, p)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}

// GetSimilarProperties returns listings from the same area excluding the
// current one, capped at limit.
func (s *Store) GetSimilarProperties(currentSlug, areaSlug string, limit int) []models.PropertySummary {
	similar := make([]models.PropertySummary, 0, limit)
	for _, p := range s.properties {
		if p.AreaSlug != areaSlug || p.Slug == currentSlug {
			continue
		}
		similar = append(similar, p)
		if len(similar) == limit {
			break
		}
	}
	return similar
}

// GetPropertyCountByArea counts active listings in an area.
func (s *Store) GetPropertyCountByArea(areaSlug string) int {
	count := 0
	for _, p := range s.properties {
		if p.AreaSlug == areaSlug {
			count++
		}
	}
	return count
}
