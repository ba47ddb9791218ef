package geo

import (
	"testing"

	"estatehub/server/internal/models"

	"github.com/stretchr/testify/assert"
)

func coords(lat, lng float64) *models.Coordinates {
	return &models.Coordinates{Latitude: lat, Longitude: lng}
}

func TestRelatedAreas_OrdersByDistance(t *testing.T) {
	current := models.AreaSummary{Slug: "center", Coordinates: coords(28.5, 77.2)}
	areas := []models.AreaSummary{
		{Slug: "far", Coordinates: coords(28.9, 77.8)},
		{Slug: "near", Coordinates: coords(28.51, 77.21)},
		{Slug: "center", Coordinates: coords(28.5, 77.2)},
		{Slug: "mid", Coordinates: coords(28.6, 77.4)},
	}

	related := RelatedAreas(areas, current, 3)

	assert.Len(t, related, 3)
	assert.Equal(t, "near", related[0].Slug)
	assert.Equal(t, "mid", related[1].Slug)
	assert.Equal(t, "far", related[2].Slug)
}

func TestRelatedAreas_ExcludesSelf(t *testing.T) {
	current := models.AreaSummary{Slug: "a"}
	areas := []models.AreaSummary{{Slug: "a"}, {Slug: "b"}}

	related := RelatedAreas(areas, current, 5)
	assert.Len(t, related, 1)
	assert.Equal(t, "b", related[0].Slug)
}

func TestRelatedAreas_UnlocatedAreasRankLast(t *testing.T) {
	current := models.AreaSummary{Slug: "center", Coordinates: coords(28.5, 77.2)}
	areas := []models.AreaSummary{
		{Slug: "nowhere"},
		{Slug: "near", Coordinates: coords(28.51, 77.21)},
	}

	related := RelatedAreas(areas, current, 2)
	assert.Equal(t, "near", related[0].Slug)
	assert.Equal(t, "nowhere", related[1].Slug)
}

func TestRelatedAreas_SameCityFallback(t *testing.T) {
	current := models.AreaSummary{Slug: "center", City: "Metro City"}
	areas := []models.AreaSummary{
		{Slug: "other-town", City: "Elsewhere"},
		{Slug: "neighbor", City: "Metro City"},
	}

	related := RelatedAreas(areas, current, 2)
	assert.Equal(t, "neighbor", related[0].Slug)
}

func TestRelatedAreas_LimitCaps(t *testing.T) {
	current := models.AreaSummary{Slug: "x", City: "C"}
	areas := []models.AreaSummary{
		{Slug: "a", City: "C"}, {Slug: "b", City: "C"}, {Slug: "c", City: "C"},
	}

	assert.Len(t, RelatedAreas(areas, current, 2), 2)
}
