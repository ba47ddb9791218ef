// Package geo orders areas by proximity for the related-areas feature.
package geo

import (
	"sort"

	"estatehub/server/internal/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// RelatedAreas returns up to limit areas related to current, nearest first.
// Areas with coordinates are ordered by haversine distance from current;
// when either side lacks coordinates the fallback is same-city areas, then
// the remaining snapshot order.
func RelatedAreas(areas []models.AreaSummary, current models.AreaSummary, limit int) []models.AreaSummary {
	candidates := make([]models.AreaSummary, 0, len(areas))
	for _, a := range areas {
		if a.Slug == current.Slug {
			continue
		}
		candidates = append(candidates, a)
	}

	if current.Coordinates != nil {
		origin := point(*current.Coordinates)
		sort.SliceStable(candidates, func(i, j int) bool {
			return distanceFrom(origin, candidates[i]) < distanceFrom(origin, candidates[j])
		})
	} else {
		sort.SliceStable(candidates, func(i, j int) bool {
			return sameCity(candidates[i], current) && !sameCity(candidates[j], current)
		})
	}

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

func point(c models.Coordinates) orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// distanceFrom ranks areas without coordinates after every located one.
func distanceFrom(origin orb.Point, a models.AreaSummary) float64 {
	if a.Coordinates == nil {
		return orb.EarthRadius * 10
	}
	return geo.Distance(origin, point(*a.Coordinates))
}

func sameCity(a, b models.AreaSummary) bool {
	return a.City != "" && a.City == b.City
}
