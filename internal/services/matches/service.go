package matches

import (
	"context"
	"errors"
	"fmt"

	"github.com/Legal-Mentors-Network/backend/internal/domain/model"
	pgrepo "github.com/Legal-Mentors-Network/backend/internal/repo/postgres"
	userssvc "github.com/Legal-Mentors-Network/backend/internal/services/users"
)

var ErrValidation = errors.New("validation error")

type MatchStore interface {
	ListForUser(ctx context.Context, userID int64) ([]pgrepo.MatchRecord, error)
}

type UserDirectory interface {
	Get(ctx context.Context, userID int64) (model.User, error)
}

// MutualMatch pairs a match row with the counterpart's resolved profile.
type MutualMatch struct {
	Match       model.Match
	Counterpart model.User
}

type Service struct {
	matches MatchStore
	users   UserDirectory
}

type Dependencies struct {
	Matches MatchStore
	Users   UserDirectory
}

func NewService(deps Dependencies) *Service {
	return &Service{
		matches: deps.Matches,
		users:   deps.Users,
	}
}

// ListMutual returns the user's matches newest first, each with the other
// party's profile. Matches whose counterpart profile no longer resolves are
// skipped rather than failing the whole listing.
func (s *Service) ListMutual(ctx context.Context, userID int64) ([]MutualMatch, error) {
	if userID <= 0 {
		return nil, ErrValidation
	}
	if s.matches == nil || s.users == nil {
		return nil, fmt.Errorf("match dependencies are not configured")
	}

	records, err := s.matches.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	mutual := make([]MutualMatch, 0, len(records))
	for _, rec := range records {
		match := model.Match{
			ID:                  rec.ID,
			UserLowID:           rec.UserLowID,
			UserHighID:          rec.UserHighID,
			MatchedAt:           rec.MatchedAt,
			ConversationStarted: rec.ConversationStarted,
		}

		counterpart, err := s.users.Get(ctx, match.Counterpart(userID))
		if err != nil {
			if errors.Is(err, userssvc.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("resolve counterpart for match %d: %w", rec.ID, err)
		}

		mutual = append(mutual, MutualMatch{Match: match, Counterpart: counterpart})
	}

	return mutual, nil
}
