package dto

import "github.com/Legal-Mentors-Network/backend/internal/domain/model"

type Profile struct {
	ID          int64    `json:"id"`
	DisplayName string   `json:"display_name"`
	Age         int      `json:"age"`
	Role        string   `json:"role"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	AgeMin      int      `json:"age_min"`
	AgeMax      int      `json:"age_max"`
	MaxDistance *float64 `json:"max_distance_km,omitempty"`
}

func ProfileFromUser(user model.User) Profile {
	p := Profile{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Age:         user.Age,
		Role:        string(user.Role),
		City:        user.Location.City,
		Country:     user.Location.Country,
		Lat:         user.Location.Lat,
		Lon:         user.Location.Lon,
		AgeMin:      user.Preferences.AgeMin,
		AgeMax:      user.Preferences.AgeMax,
	}
	if user.Preferences.MaxDistanceKM > 0 {
		d := user.Preferences.MaxDistanceKM
		p.MaxDistance = &d
	}
	return p
}

func ProfilesFromUsers(users []model.User) []Profile {
	profiles := make([]Profile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, ProfileFromUser(user))
	}
	return profiles
}
