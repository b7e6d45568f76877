package dto

import "time"

type IncomingLikesResponse struct {
	Likes []IncomingLike `json:"likes"`
	Count int            `json:"count"`
}

type IncomingLike struct {
	FromUserID  int64     `json:"from_user_id"`
	DisplayName string    `json:"display_name"`
	Age         int       `json:"age"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	LikedAt     time.Time `json:"liked_at"`
}
