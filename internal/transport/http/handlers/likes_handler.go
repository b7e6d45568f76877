package handlers

import (
	"errors"
	"net/http"

	likessvc "github.com/Legal-Mentors-Network/backend/internal/services/likes"
	"github.com/Legal-Mentors-Network/backend/internal/transport/http/dto"
	httperrors "github.com/Legal-Mentors-Network/backend/internal/transport/http/errors"
)

type LikesHandler struct {
	service *likessvc.Service
}

func NewLikesHandler(service *likessvc.Service) *LikesHandler {
	return &LikesHandler{service: service}
}

func (h *LikesHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "LIKES_SERVICE_UNAVAILABLE", "likes service is unavailable")
		return
	}

	userID, ok := userIDFromURL(r)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid user_id")
		return
	}

	incoming, err := h.service.ListIncoming(r.Context(), userID)
	if err != nil {
		if errors.Is(err, likessvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", "invalid user_id")
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to list incoming likes")
		return
	}

	likes := make([]dto.IncomingLike, 0, len(incoming))
	for _, like := range incoming {
		likes = append(likes, dto.IncomingLike{
			FromUserID:  like.FromUserID,
			DisplayName: like.DisplayName,
			Age:         like.Age,
			City:        like.City,
			Country:     like.Country,
			LikedAt:     like.LikedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, dto.IncomingLikesResponse{
		Likes: likes,
		Count: len(likes),
	})
}
