package connections

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Legal-Mentors-Network/backend/internal/domain/enums"
	"github.com/Legal-Mentors-Network/backend/internal/domain/model"
	pgrepo "github.com/Legal-Mentors-Network/backend/internal/repo/postgres"
	userssvc "github.com/Legal-Mentors-Network/backend/internal/services/users"
)

type connectionStoreStub struct {
	rows map[int64]pgrepo.ConnectionRecord
}

func newConnectionStoreStub() *connectionStoreStub {
	return &connectionStoreStub{rows: map[int64]pgrepo.ConnectionRecord{}}
}

func (s *connectionStoreStub) GetByInitiator(_ context.Context, initiatorUserID int64) (pgrepo.ConnectionRecord, error) {
	rec, ok := s.rows[initiatorUserID]
	if !ok {
		return pgrepo.ConnectionRecord{}, pgrepo.ErrConnectionNotFound
	}
	return rec, nil
}

func (s *connectionStoreStub) CreateOrAppend(_ context.Context, initiatorUserID int64, matchIDs []int64, now time.Time) (pgrepo.ConnectionRecord, error) {
	rec, ok := s.rows[initiatorUserID]
	if !ok {
		rec = pgrepo.ConnectionRecord{
			InitiatorUserID: initiatorUserID,
			Connections:     []int64{},
			CreatedAt:       now,
		}
	}
	rec.Connections = append(rec.Connections, matchIDs...)
	rec.UpdatedAt = now
	s.rows[initiatorUserID] = rec
	return rec, nil
}

type directoryStub struct {
	users map[int64]model.User
	pool  []model.User
}

func (d directoryStub) Get(_ context.Context, userID int64) (model.User, error) {
	user, ok := d.users[userID]
	if !ok {
		return model.User{}, userssvc.ErrNotFound
	}
	return user, nil
}

func (d directoryStub) ListByRole(_ context.Context, role enums.Role) ([]model.User, error) {
	out := make([]model.User, 0, len(d.pool))
	for _, user := range d.pool {
		if user.Role == role {
			out = append(out, user)
		}
	}
	return out, nil
}

func fixtureDirectory() directoryStub {
	prefs := model.Preferences{AgeMin: 20, AgeMax: 60}
	return directoryStub{
		users: map[int64]model.User{
			1: {ID: 1, Age: 30, Role: enums.RoleMentee, Preferences: prefs},
		},
		pool: []model.User{
			{ID: 10, Age: 40, Role: enums.RoleMentor, Preferences: prefs},
			{ID: 11, Age: 70, Role: enums.RoleMentor, Preferences: prefs},
			{ID: 12, Age: 45, Role: enums.RoleMentor, Preferences: prefs},
		},
	}
}

func TestComputeMatchesMessage(t *testing.T) {
	svc := NewService(Dependencies{Connections: newConnectionStoreStub(), Users: fixtureDirectory()})

	res, err := svc.ComputeMatches(context.Background(), 1)
	if err != nil {
		t.Fatalf("compute matches: %v", err)
	}
	if res.Message != "Found 2 matches" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if len(res.Profiles) != 2 || res.Profiles[0].ID != 10 || res.Profiles[1].ID != 12 {
		t.Fatalf("unexpected profiles: %+v", res.Profiles)
	}
}

func TestMatchAndSaveAccumulatesWithoutDedup(t *testing.T) {
	store := newConnectionStoreStub()
	svc := NewService(Dependencies{Connections: store, Users: fixtureDirectory()})
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	first, err := svc.MatchAndSave(ctx, 1)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if len(first.Connection.Connections) != 2 {
		t.Fatalf("unexpected first list: %v", first.Connection.Connections)
	}

	second, err := svc.MatchAndSave(ctx, 1)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	want := []int64{10, 12, 10, 12}
	got := second.Connection.Connections
	if len(got) != len(want) {
		t.Fatalf("repeat save must append duplicates, got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected stored list: got %v want %v", got, want)
		}
	}
}

func TestSavedForUnknownInitiatorIsEmpty(t *testing.T) {
	svc := NewService(Dependencies{Connections: newConnectionStoreStub(), Users: fixtureDirectory()})

	conn, err := svc.Saved(context.Background(), 1)
	if err != nil {
		t.Fatalf("saved: %v", err)
	}
	if conn.InitiatorUserID != 1 || len(conn.Connections) != 0 {
		t.Fatalf("expected an empty list, got %+v", conn)
	}
}

func TestComputeMatchesUnknownUser(t *testing.T) {
	svc := NewService(Dependencies{Connections: newConnectionStoreStub(), Users: fixtureDirectory()})

	if _, err := svc.ComputeMatches(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
