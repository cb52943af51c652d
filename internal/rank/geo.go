package rank

import (
	"math"
	"sort"

	"yummport-voice/internal/catalog"
)

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371

// SentinelDistanceKm is assigned to items without a coordinate so they rank
// after every real distance.
const SentinelDistanceKm = 9999

// Haversine computes the great-circle distance in kilometers between two
// coordinates.
func Haversine(a, b catalog.Coordinate) float64 {
	toRad := func(v float64) float64 { return v * math.Pi / 180 }
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lng - a.Lng)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)
	sinDLat := math.Sin(dLat / 2)
	sinDLon := math.Sin(dLon / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// Ranked is an item annotated with its distance from the query origin.
type Ranked struct {
	Item       catalog.Item
	DistanceKm float64
}

// DistanceFrom returns the distance from origin to the item, or the sentinel
// when the item has no coordinate.
func DistanceFrom(origin catalog.Coordinate, it catalog.Item) float64 {
	if it.Location == nil {
		return SentinelDistanceKm
	}
	return Haversine(origin, *it.Location)
}

// SortByDistance orders items ascending by distance from origin. Items
// without coordinates sort last. The sort is stable, so equidistant items
// keep their prior order.
func SortByDistance(items []catalog.Item, origin catalog.Coordinate) []Ranked {
	ranked := make([]Ranked, len(items))
	for i, it := range items {
		ranked[i] = Ranked{Item: it, DistanceKm: DistanceFrom(origin, it)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked
}

// Nearby keeps only items within radiusKm of origin, ordered nearest-first.
func Nearby(items []catalog.Item, origin catalog.Coordinate, radiusKm float64) []Ranked {
	var out []Ranked
	for _, r := range SortByDistance(items, origin) {
		if r.DistanceKm <= radiusKm {
			out = append(out, r)
		}
	}
	return out
}
