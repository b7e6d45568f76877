package model

import (
	"time"

	"github.com/Legal-Mentors-Network/backend/internal/domain/enums"
)

type Location struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Preferences is a user's matching window. MaxDistanceKM == 0 means the user
// imposes no distance constraint.
type Preferences struct {
	AgeMin        int     `json:"age_min"`
	AgeMax        int     `json:"age_max"`
	MaxDistanceKM float64 `json:"max_distance_km"`
}

type User struct {
	ID          int64       `json:"id"`
	DisplayName string      `json:"display_name"`
	Age         int         `json:"age"`
	Role        enums.Role  `json:"role"`
	Location    Location    `json:"location"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
