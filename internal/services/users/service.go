package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/Legal-Mentors-Network/backend/internal/domain/enums"
	"github.com/Legal-Mentors-Network/backend/internal/domain/model"
	pgrepo "github.com/Legal-Mentors-Network/backend/internal/repo/postgres"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("user not found")
)

type UserStore interface {
	Get(ctx context.Context, userID int64) (pgrepo.UserRecord, error)
	ListByRole(ctx context.Context, role string) ([]pgrepo.UserRecord, error)
}

// Service is the boundary to the external profile collaborator: it turns raw
// store records into typed users, rejecting records that do not parse rather
// than coercing them.
type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, ErrValidation
	}
	if s.store == nil {
		return model.User{}, fmt.Errorf("user store is nil")
	}

	rec, err := s.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrUserNotFound) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, err
	}

	return FromRecord(rec)
}

// ListByRole returns the candidate pool for a role in stable store order.
func (s *Service) ListByRole(ctx context.Context, role enums.Role) ([]model.User, error) {
	if s.store == nil {
		return nil, fmt.Errorf("user store is nil")
	}

	records, err := s.store.ListByRole(ctx, string(role))
	if err != nil {
		return nil, err
	}

	pool := make([]model.User, 0, len(records))
	for _, rec := range records {
		user, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		pool = append(pool, user)
	}

	return pool, nil
}

// FromRecord maps a store record to a typed user. Any required field that
// does not parse fails the whole record.
func FromRecord(rec pgrepo.UserRecord) (model.User, error) {
	if rec.ID <= 0 {
		return model.User{}, fmt.Errorf("user record has invalid id %d", rec.ID)
	}

	role, err := enums.ParseRole(rec.Role)
	if err != nil {
		return model.User{}, fmt.Errorf("user %d: %w", rec.ID, err)
	}
	if rec.PrefMaxDistanceKM < 0 {
		return model.User{}, fmt.Errorf("user %d: negative max distance %f", rec.ID, rec.PrefMaxDistanceKM)
	}

	return model.User{
		ID:          rec.ID,
		DisplayName: rec.DisplayName,
		Age:         rec.Age,
		Role:        role,
		Location: model.Location{
			City:    rec.City,
			Country: rec.Country,
			Lat:     rec.Lat,
			Lon:     rec.Lon,
		},
		Preferences: model.Preferences{
			AgeMin:        rec.PrefAgeMin,
			AgeMax:        rec.PrefAgeMax,
			MaxDistanceKM: rec.PrefMaxDistanceKM,
		},
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}
