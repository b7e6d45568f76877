package dto

import "time"

type ConnectionResponse struct {
	InitiatorUserID int64     `json:"initiator_user_id"`
	Connections     []int64   `json:"connections"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
