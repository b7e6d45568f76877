package handlers

import (
	"errors"
	"net/http"

	discoverysvc "github.com/Legal-Mentors-Network/backend/internal/services/discovery"
	"github.com/Legal-Mentors-Network/backend/internal/transport/http/dto"
	httperrors "github.com/Legal-Mentors-Network/backend/internal/transport/http/errors"
)

type DiscoverHandler struct {
	service      *discoverysvc.Service
	defaultLimit int
}

func NewDiscoverHandler(service *discoverysvc.Service, defaultLimit int) *DiscoverHandler {
	if defaultLimit <= 0 {
		defaultLimit = discoverysvc.DefaultLimit
	}
	return &DiscoverHandler{service: service, defaultLimit: defaultLimit}
}

func (h *DiscoverHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "DISCOVERY_SERVICE_UNAVAILABLE", "discovery service is unavailable")
		return
	}

	userID, ok := userIDFromURL(r)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid user_id")
		return
	}
	limit, ok := queryInt(r, "limit", h.defaultLimit)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid limit")
		return
	}
	offset, ok := queryInt(r, "offset", 0)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid offset")
		return
	}

	page, err := h.service.Discover(r.Context(), userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, discoverysvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "limit must be positive and offset non-negative")
		case errors.Is(err, discoverysvc.ErrNotFound):
			writeNotFound(w, "USER_NOT_FOUND", "user not found")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to build discovery feed")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DiscoverResponse{
		Profiles:   dto.ProfilesFromUsers(page.Profiles),
		Total:      page.Total,
		HasMore:    page.HasMore,
		NextOffset: page.NextOffset,
	})
}
