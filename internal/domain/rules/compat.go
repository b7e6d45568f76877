package rules

import (
	"math"

	"github.com/Legal-Mentors-Network/backend/internal/domain/model"
)

// IsCompatible reports whether two users fall inside each other's age and
// distance windows. Age bounds are inclusive on both ends. The check is
// symmetric: swapping a and b never changes the result.
func IsCompatible(a, b model.User) bool {
	if !ageWithin(b.Age, a.Preferences) {
		return false
	}
	if !ageWithin(a.Age, b.Preferences) {
		return false
	}

	distance := HaversineKM(a.Location.Lat, a.Location.Lon, b.Location.Lat, b.Location.Lon)
	if a.Preferences.MaxDistanceKM > 0 && distance > a.Preferences.MaxDistanceKM {
		return false
	}
	if b.Preferences.MaxDistanceKM > 0 && distance > b.Preferences.MaxDistanceKM {
		return false
	}

	return true
}

// FindCandidates filters pool down to users compatible with current,
// preserving input order. It does not deduplicate and does not sort.
func FindCandidates(current model.User, pool []model.User) []model.User {
	candidates := make([]model.User, 0, len(pool))
	for _, candidate := range pool {
		if IsCompatible(current, candidate) {
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}

func ageWithin(age int, prefs model.Preferences) bool {
	return age >= prefs.AgeMin && age <= prefs.AgeMax
}

// HaversineKM is the great-circle distance between two coordinates in
// kilometers, latitude/longitude in degrees.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKM = 6371.0

	toRad := func(v float64) float64 { return v * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}
