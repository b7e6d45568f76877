package handlers

import (
	"errors"
	"net/http"

	"github.com/Legal-Mentors-Network/backend/internal/pkg/validate"
	swipesvc "github.com/Legal-Mentors-Network/backend/internal/services/swipes"
	"github.com/Legal-Mentors-Network/backend/internal/transport/http/dto"
	httperrors "github.com/Legal-Mentors-Network/backend/internal/transport/http/errors"
)

type SwipeHandler struct {
	service *swipesvc.Service
}

func NewSwipeHandler(service *swipesvc.Service) *SwipeHandler {
	return &SwipeHandler{service: service}
}

func (h *SwipeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "SWIPE_SERVICE_UNAVAILABLE", "swipe service is unavailable")
		return
	}

	var req dto.SwipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if req.ActorID <= 0 || req.TargetID <= 0 || !validate.Required(req.Action) {
		writeBadRequest(w, "VALIDATION_ERROR", "actor_id, target_id and action are required")
		return
	}
	if req.ActorID == req.TargetID {
		writeBadRequest(w, "VALIDATION_ERROR", "cannot swipe on yourself")
		return
	}

	result, err := h.service.Record(r.Context(), req.ActorID, req.TargetID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, swipesvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid swipe request")
		case errors.Is(err, swipesvc.ErrUnsupportedAction):
			writeBadRequest(w, "VALIDATION_ERROR", "unsupported action")
		case errors.Is(err, swipesvc.ErrUserNotFound):
			writeNotFound(w, "USER_NOT_FOUND", err.Error())
		case errors.Is(err, swipesvc.ErrDuplicateSwipe):
			writeConflict(w, "SWIPE_EXISTS", "swipe already recorded for this pair")
		default:
			if tf, ok := swipesvc.IsTooFast(err); ok {
				httperrors.Write(w, http.StatusTooManyRequests, httperrors.RateLimitError{
					Code:          "TOO_FAST",
					Message:       "too many swipes, slow down",
					RetryAfterSec: tf.RetryAfter(),
				})
				return
			}
			writeInternal(w, "INTERNAL_ERROR", "failed to process swipe")
		}
		return
	}

	resp := dto.SwipeResponse{
		OK: true,
		Swipe: dto.SwipeBody{
			ID:        result.Swipe.ID,
			ActorID:   result.Swipe.ActorUserID,
			TargetID:  result.Swipe.TargetUserID,
			Action:    string(result.Swipe.Action),
			CreatedAt: result.Swipe.CreatedAt,
		},
		Message: "Swipe recorded",
	}
	if result.Match != nil {
		resp.Match = &dto.MatchResponse{
			ID:                  result.Match.Match.ID,
			MatchedAt:           result.Match.Match.MatchedAt,
			ConversationStarted: result.Match.Match.ConversationStarted,
			Counterpart:         dto.ProfileFromUser(result.Match.Counterpart),
		}
		resp.Message = "It's a match!"
	}

	httperrors.Write(w, http.StatusCreated, resp)
}
