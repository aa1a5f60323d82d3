// Package geo measures distance between users and stores. Coordinates are
// treated as points on a flat grid, not as geographic degrees.
package geo

import "math"

// Point is a latitude/longitude pair on the planar grid.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dLat := a.Latitude - b.Latitude
	dLon := a.Longitude - b.Longitude
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// Within reports whether b lies inside radius of a. The boundary is inclusive.
func Within(a, b Point, radius float64) bool {
	return Distance(a, b) <= radius
}
