package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"estatehub/server/internal/models"

	"github.com/sirupsen/logrus"
)

// Store holds the listing snapshot loaded once at startup. The index slices
// are read-only after Load; concurrent readers need no coordination.
type Store struct {
	dataDir    string
	logger     *logrus.Logger
	properties []models.PropertySummary
	areas      []models.AreaSummary
	blogs      []models.BlogPost
}

type propertiesIndex struct {
	Properties  []models.PropertySummary `json:"properties"`
	LastUpdated string                   `json:"lastUpdated"`
}

type areasIndex struct {
	Areas []models.AreaSummary `json:"areas"`
}

type blogIndex struct {
	Posts []models.BlogPost `json:"posts"`
}

// NewStore loads the JSON snapshot from dataDir. Inactive properties are
// dropped here so no query path ever sees them, and each property summary is
// joined with its area's display name and city.
func NewStore(dataDir string, logger *logrus.Logger) (*Store, error) {
	s := &Store{dataDir: dataDir, logger: logger}

	var areas areasIndex
	if err := s.readJSON(filepath.Join(dataDir, "areas", "index.json"), &areas); err != nil {
		return nil, fmt.Errorf("failed to load areas index: %w", err)
	}
	s.areas = areas.Areas

	areasBySlug := make(map[string]models.AreaSummary, len(s.areas))
	for _, a := range s.areas {
		areasBySlug[a.Slug] = a
	}

	var props propertiesIndex
	if err := s.readJSON(filepath.Join(dataDir, "properties", "index.json"), &props); err != nil {
		return nil, fmt.Errorf("failed to load properties index: %w", err)
	}
	for _, p := range props.Properties {
		if !p.IsActive {
			continue
		}
		// Join-at-load keeps areaName on the summary without a live join per
		// query. A dangling areaSlug simply leaves the fields empty.
		if area, ok := areasBySlug[p.AreaSlug]; ok {
			if p.AreaName == "" {
				p.AreaName = area.Name
			}
			if p.City == "" {
				p.City = area.City
			}
		}
		s.properties = append(s.properties, p)
	}

	// Blog content is optional in a snapshot.
	var blogs blogIndex
	blogPath := filepath.Join(dataDir, "blog", "index.json")
	if _, err := os.Stat(blogPath); err == nil {
		if err := s.readJSON(blogPath, &blogs); err != nil {
			return nil, fmt.Errorf("failed to load blog index: %w", err)
		}
		s.blogs = blogs.Posts
		sort.SliceStable(s.blogs, func(i, j int) bool {
			return s.blogs[i].PublishedAt > s.blogs[j].PublishedAt
		})
	}

	logger.WithFields(logrus.Fields{
		"properties": len(s.properties),
		"areas":      len(s.areas),
		"blog_posts": len(s.blogs),
	}).Info("Loaded listing snapshot")

	return s, nil
}

func (s *Store) readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Properties returns all active property summaries in snapshot order.
// Callers must not mutate the returned slice.
func (s *Store) Properties() []models.PropertySummary {
	return s.properties
}

// Areas returns all area summaries in snapshot order.
func (s *Store) Areas() []models.AreaSummary {
	return s.areas
}

// PropertyCount reports the number of active listings.
func (s *Store) PropertyCount() int {
	return len(s.properties)
}

// AreaCount reports the number of areas.
func (s *Store) AreaCount() int {
	return len(s.areas)
}

// slugSafe rejects identifiers that could escape the snapshot directory.
func slugSafe(slug string) bool {
	return slug != "" && !strings.ContainsAny(slug, "/\\") && slug != "." && slug != ".."
}
