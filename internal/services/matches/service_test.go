package matches

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Legal-Mentors-Network/backend/internal/domain/model"
	pgrepo "github.com/Legal-Mentors-Network/backend/internal/repo/postgres"
	userssvc "github.com/Legal-Mentors-Network/backend/internal/services/users"
)

type matchStoreStub struct {
	records []pgrepo.MatchRecord
}

func (m matchStoreStub) ListForUser(context.Context, int64) ([]pgrepo.MatchRecord, error) {
	return m.records, nil
}

type directoryStub struct {
	users map[int64]model.User
}

func (d directoryStub) Get(_ context.Context, userID int64) (model.User, error) {
	user, ok := d.users[userID]
	if !ok {
		return model.User{}, userssvc.ErrNotFound
	}
	return user, nil
}

func TestListMutualResolvesCounterparts(t *testing.T) {
	matchedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := NewService(Dependencies{
		Matches: matchStoreStub{records: []pgrepo.MatchRecord{
			{ID: 2, UserLowID: 1, UserHighID: 7, MatchedAt: matchedAt},
			{ID: 1, UserLowID: 3, UserHighID: 7, MatchedAt: matchedAt.Add(-time.Hour)},
		}},
		Users: directoryStub{users: map[int64]model.User{
			1: {ID: 1, DisplayName: "Alice"},
			3: {ID: 3, DisplayName: "Carol"},
		}},
	})

	mutual, err := svc.ListMutual(context.Background(), 7)
	if err != nil {
		t.Fatalf("list mutual: %v", err)
	}
	if len(mutual) != 2 {
		t.Fatalf("unexpected match count: %d", len(mutual))
	}
	if mutual[0].Counterpart.ID != 1 || mutual[1].Counterpart.ID != 3 {
		t.Fatalf("counterparts resolved wrong: %+v", mutual)
	}
	if mutual[0].Match.ID != 2 {
		t.Fatalf("store order not preserved: %+v", mutual)
	}
}

func TestListMutualSkipsMissingCounterpart(t *testing.T) {
	svc := NewService(Dependencies{
		Matches: matchStoreStub{records: []pgrepo.MatchRecord{
			{ID: 1, UserLowID: 1, UserHighID: 7},
			{ID: 2, UserLowID: 7, UserHighID: 9},
		}},
		Users: directoryStub{users: map[int64]model.User{
			1: {ID: 1, DisplayName: "Alice"},
		}},
	})

	mutual, err := svc.ListMutual(context.Background(), 7)
	if err != nil {
		t.Fatalf("list mutual: %v", err)
	}
	if len(mutual) != 1 || mutual[0].Counterpart.ID != 1 {
		t.Fatalf("deleted counterpart should be skipped, got %+v", mutual)
	}
}

func TestListMutualRejectsBadUserID(t *testing.T) {
	svc := NewService(Dependencies{Matches: matchStoreStub{}, Users: directoryStub{}})

	if _, err := svc.ListMutual(context.Background(), -1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
