package handlers

import (
	"errors"
	"net/http"

	"github.com/Legal-Mentors-Network/backend/internal/domain/model"
	connsvc "github.com/Legal-Mentors-Network/backend/internal/services/connections"
	"github.com/Legal-Mentors-Network/backend/internal/transport/http/dto"
	httperrors "github.com/Legal-Mentors-Network/backend/internal/transport/http/errors"
)

// ConnectionsHandler serves the one-shot compatibility scan and the stored
// connection list it can append to.
type ConnectionsHandler struct {
	service *connsvc.Service
}

func NewConnectionsHandler(service *connsvc.Service) *ConnectionsHandler {
	return &ConnectionsHandler{service: service}
}

// Compute runs the scan without persisting anything.
func (h *ConnectionsHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONNECTION_SERVICE_UNAVAILABLE", "connection service is unavailable")
		return
	}

	userID, ok := userIDFromURL(r)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid user_id")
		return
	}

	res, err := h.service.ComputeMatches(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ComputeMatchesResponse{
		Matches: dto.ProfilesFromUsers(res.Profiles),
		Count:   len(res.Profiles),
		Message: res.Message,
	})
}

// Save runs the scan and appends the hits to the stored connection list.
func (h *ConnectionsHandler) Save(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONNECTION_SERVICE_UNAVAILABLE", "connection service is unavailable")
		return
	}

	userID, ok := userIDFromURL(r)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid user_id")
		return
	}

	res, err := h.service.MatchAndSave(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.SaveMatchesResponse{
		Matches:     dto.ProfilesFromUsers(res.Profiles),
		Count:       len(res.Profiles),
		Message:     res.Message,
		Connections: connectionResponse(res.Connection),
	})
}

// Saved returns the stored connection list, empty when nothing was saved.
func (h *ConnectionsHandler) Saved(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONNECTION_SERVICE_UNAVAILABLE", "connection service is unavailable")
		return
	}

	userID, ok := userIDFromURL(r)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid user_id")
		return
	}

	conn, err := h.service.Saved(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, connectionResponse(conn))
}

func (h *ConnectionsHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, connsvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "invalid user_id")
	case errors.Is(err, connsvc.ErrNotFound):
		writeNotFound(w, "USER_NOT_FOUND", "user not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "failed to process connections")
	}
}

func connectionResponse(conn model.Connection) dto.ConnectionResponse {
	return dto.ConnectionResponse{
		InitiatorUserID: conn.InitiatorUserID,
		Connections:     conn.Connections,
		CreatedAt:       conn.CreatedAt,
		UpdatedAt:       conn.UpdatedAt,
	}
}
