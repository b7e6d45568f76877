package model

import "time"

// Connection is the legacy per-user match list. The connections array is
// append-only and may contain duplicates.
type Connection struct {
	InitiatorUserID int64     `json:"initiator_user_id"`
	Connections     []int64   `json:"connections"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
