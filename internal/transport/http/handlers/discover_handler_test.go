package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Legal-Mentors-Network/backend/internal/domain/enums"
	"github.com/Legal-Mentors-Network/backend/internal/domain/model"
	discoverysvc "github.com/Legal-Mentors-Network/backend/internal/services/discovery"
	userssvc "github.com/Legal-Mentors-Network/backend/internal/services/users"
)

type feedDirectoryStub struct {
	viewer model.User
	pool   []model.User
}

func (d feedDirectoryStub) Get(_ context.Context, userID int64) (model.User, error) {
	if userID != d.viewer.ID {
		return model.User{}, userssvc.ErrNotFound
	}
	return d.viewer, nil
}

func (d feedDirectoryStub) ListByRole(context.Context, enums.Role) ([]model.User, error) {
	return d.pool, nil
}

type feedSwipesStub struct {
	targets []int64
}

func (s feedSwipesStub) ListTargets(context.Context, int64) ([]int64, error) {
	return s.targets, nil
}

func newDiscoverRouter(swiped []int64, pool ...model.User) *chi.Mux {
	prefs := model.Preferences{AgeMin: 20, AgeMax: 60}
	svc := discoverysvc.NewService(discoverysvc.Dependencies{
		Users: feedDirectoryStub{
			viewer: model.User{ID: 1, Age: 30, Role: enums.RoleMentee, Preferences: prefs},
			pool:   pool,
		},
		Swipes: feedSwipesStub{targets: swiped},
	}, discoverysvc.Config{})

	r := chi.NewRouter()
	r.Get("/v1/users/{user_id}/discover", NewDiscoverHandler(svc, 0).Handle)
	return r
}

func mentorProfile(id int64) model.User {
	return model.User{
		ID:          id,
		Age:         40,
		Role:        enums.RoleMentor,
		Preferences: model.Preferences{AgeMin: 20, AgeMax: 60},
	}
}

func TestDiscoverHandlerReturnsPage(t *testing.T) {
	router := newDiscoverRouter([]int64{11}, mentorProfile(10), mentorProfile(11), mentorProfile(12))

	req := httptest.NewRequest(http.MethodGet, "/v1/users/1/discover?limit=1&offset=0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusOK)
	}

	var payload struct {
		Profiles []struct {
			ID int64 `json:"id"`
		} `json:"profiles"`
		Total      int  `json:"total"`
		HasMore    bool `json:"has_more"`
		NextOffset int  `json:"next_offset"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Total != 2 || len(payload.Profiles) != 1 || payload.Profiles[0].ID != 10 {
		t.Fatalf("unexpected page: %+v", payload)
	}
	if !payload.HasMore || payload.NextOffset != 1 {
		t.Fatalf("unexpected pagination: %+v", payload)
	}
}

func TestDiscoverHandlerDefaultsLimit(t *testing.T) {
	router := newDiscoverRouter(nil, mentorProfile(10))

	req := httptest.NewRequest(http.MethodGet, "/v1/users/1/discover", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusOK)
	}
}

func TestDiscoverHandlerRejectsBadParams(t *testing.T) {
	router := newDiscoverRouter(nil)

	for _, target := range []string{
		"/v1/users/1/discover?limit=abc",
		"/v1/users/1/discover?limit=0",
		"/v1/users/1/discover?offset=-5",
		"/v1/users/zero/discover",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: unexpected status: got %d want %d", target, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestDiscoverHandlerUnknownUser(t *testing.T) {
	router := newDiscoverRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/42/discover", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusNotFound)
	}
}
