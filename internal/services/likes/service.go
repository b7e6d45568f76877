package likes

import (
	"context"
	"errors"
	"fmt"
	"time"

	pgrepo "github.com/Legal-Mentors-Network/backend/internal/repo/postgres"
)

var ErrValidation = errors.New("validation error")

type SwipeStore interface {
	ListIncomingLikes(ctx context.Context, userID int64) ([]pgrepo.IncomingLikeRecord, error)
}

// IncomingLike is one pending admirer: a LIKE aimed at the user that the
// user has not answered with a swipe of their own.
type IncomingLike struct {
	FromUserID  int64
	DisplayName string
	Age         int
	City        string
	Country     string
	LikedAt     time.Time
}

type Service struct {
	swipes SwipeStore
}

func NewService(swipes SwipeStore) *Service {
	return &Service{swipes: swipes}
}

// ListIncoming returns the user's unanswered likes, newest first.
func (s *Service) ListIncoming(ctx context.Context, userID int64) ([]IncomingLike, error) {
	if userID <= 0 {
		return nil, ErrValidation
	}
	if s.swipes == nil {
		return nil, fmt.Errorf("swipe store is nil")
	}

	records, err := s.swipes.ListIncomingLikes(ctx, userID)
	if err != nil {
		return nil, err
	}

	likes := make([]IncomingLike, 0, len(records))
	for _, rec := range records {
		likes = append(likes, IncomingLike{
			FromUserID:  rec.FromUserID,
			DisplayName: rec.DisplayName,
			Age:         rec.Age,
			City:        rec.City,
			Country:     rec.Country,
			LikedAt:     rec.LikedAt,
		})
	}

	return likes, nil
}
