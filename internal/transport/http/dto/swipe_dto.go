package dto

import "time"

type SwipeRequest struct {
	ActorID  int64  `json:"actor_id"`
	TargetID int64  `json:"target_id"`
	Action   string `json:"action"`
}

type SwipeResponse struct {
	OK      bool           `json:"ok"`
	Swipe   SwipeBody      `json:"swipe"`
	Match   *MatchResponse `json:"match"`
	Message string         `json:"message"`
}

type SwipeBody struct {
	ID        int64     `json:"id"`
	ActorID   int64     `json:"actor_id"`
	TargetID  int64     `json:"target_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

type MatchResponse struct {
	ID                  int64     `json:"id"`
	MatchedAt           time.Time `json:"matched_at"`
	ConversationStarted bool      `json:"conversation_started"`
	Counterpart         Profile   `json:"counterpart"`
}
