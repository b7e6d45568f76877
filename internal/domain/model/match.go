package model

import "time"

// Match is the canonical row for a mutual like. UserLowID < UserHighID by
// int64 comparison, so one unordered pair maps to exactly one row.
type Match struct {
	ID                  int64     `json:"id"`
	UserLowID           int64     `json:"user_low_id"`
	UserHighID          int64     `json:"user_high_id"`
	MatchedAt           time.Time `json:"matched_at"`
	ConversationStarted bool      `json:"conversation_started"`
}

// Counterpart returns the other party of the match from userID's perspective.
func (m Match) Counterpart(userID int64) int64 {
	if m.UserLowID == userID {
		return m.UserHighID
	}
	return m.UserLowID
}
