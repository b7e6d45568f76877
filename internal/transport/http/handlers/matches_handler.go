package handlers

import (
	"errors"
	"net/http"

	matchessvc "github.com/Legal-Mentors-Network/backend/internal/services/matches"
	"github.com/Legal-Mentors-Network/backend/internal/transport/http/dto"
	httperrors "github.com/Legal-Mentors-Network/backend/internal/transport/http/errors"
)

type MatchesHandler struct {
	service *matchessvc.Service
}

func NewMatchesHandler(service *matchessvc.Service) *MatchesHandler {
	return &MatchesHandler{service: service}
}

// Mutual lists confirmed matches, each with the counterpart profile.
func (h *MatchesHandler) Mutual(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "MATCH_SERVICE_UNAVAILABLE", "match service is unavailable")
		return
	}

	userID, ok := userIDFromURL(r)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid user_id")
		return
	}

	mutual, err := h.service.ListMutual(r.Context(), userID)
	if err != nil {
		if errors.Is(err, matchessvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", "invalid user_id")
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to list matches")
		return
	}

	matches := make([]dto.MatchResponse, 0, len(mutual))
	for _, m := range mutual {
		matches = append(matches, dto.MatchResponse{
			ID:                  m.Match.ID,
			MatchedAt:           m.Match.MatchedAt,
			ConversationStarted: m.Match.ConversationStarted,
			Counterpart:         dto.ProfileFromUser(m.Counterpart),
		})
	}

	httperrors.Write(w, http.StatusOK, dto.MutualMatchesResponse{
		Matches: matches,
		Count:   len(matches),
	})
}
