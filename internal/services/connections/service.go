package connections

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Legal-Mentors-Network/backend/internal/domain/enums"
	"github.com/Legal-Mentors-Network/backend/internal/domain/model"
	"github.com/Legal-Mentors-Network/backend/internal/domain/rules"
	pgrepo "github.com/Legal-Mentors-Network/backend/internal/repo/postgres"
	userssvc "github.com/Legal-Mentors-Network/backend/internal/services/users"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("user not found")
)

type ConnectionStore interface {
	GetByInitiator(ctx context.Context, initiatorUserID int64) (pgrepo.ConnectionRecord, error)
	CreateOrAppend(ctx context.Context, initiatorUserID int64, matchIDs []int64, now time.Time) (pgrepo.ConnectionRecord, error)
}

type UserDirectory interface {
	Get(ctx context.Context, userID int64) (model.User, error)
	ListByRole(ctx context.Context, role enums.Role) ([]model.User, error)
}

// ComputeResult is the legacy one-shot match scan: every compatible
// opposite-role profile, regardless of swipe history.
type ComputeResult struct {
	Profiles []model.User
	Message  string
}

// SaveResult is a scan whose hits were appended to the caller's stored
// connection list.
type SaveResult struct {
	Profiles   []model.User
	Connection model.Connection
	Message    string
}

type Service struct {
	connections ConnectionStore
	users       UserDirectory
	now         func() time.Time
}

type Dependencies struct {
	Connections ConnectionStore
	Users       UserDirectory
}

func NewService(deps Dependencies) *Service {
	return &Service{
		connections: deps.Connections,
		users:       deps.Users,
		now:         time.Now,
	}
}

// ComputeMatches runs the compatibility scan for the user without touching
// stored state.
func (s *Service) ComputeMatches(ctx context.Context, userID int64) (ComputeResult, error) {
	profiles, err := s.scan(ctx, userID)
	if err != nil {
		return ComputeResult{}, err
	}

	return ComputeResult{
		Profiles: profiles,
		Message:  fmt.Sprintf("Found %d matches", len(profiles)),
	}, nil
}

// MatchAndSave runs the scan and appends every hit to the user's connection
// list. Appends are not deduplicated: calling this twice with an unchanged
// pool doubles the stored list.
func (s *Service) MatchAndSave(ctx context.Context, userID int64) (SaveResult, error) {
	profiles, err := s.scan(ctx, userID)
	if err != nil {
		return SaveResult{}, err
	}

	matchIDs := make([]int64, 0, len(profiles))
	for _, profile := range profiles {
		matchIDs = append(matchIDs, profile.ID)
	}

	rec, err := s.connections.CreateOrAppend(ctx, userID, matchIDs, s.now().UTC())
	if err != nil {
		return SaveResult{}, fmt.Errorf("save connections: %w", err)
	}

	return SaveResult{
		Profiles:   profiles,
		Connection: connectionFromRecord(rec),
		Message:    fmt.Sprintf("Found %d matches", len(profiles)),
	}, nil
}

// Saved returns the user's stored connection list. A user who never saved a
// scan gets an empty list, not an error.
func (s *Service) Saved(ctx context.Context, userID int64) (model.Connection, error) {
	if userID <= 0 {
		return model.Connection{}, ErrValidation
	}
	if s.connections == nil {
		return model.Connection{}, fmt.Errorf("connection store is nil")
	}

	rec, err := s.connections.GetByInitiator(ctx, userID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrConnectionNotFound) {
			return model.Connection{InitiatorUserID: userID, Connections: []int64{}}, nil
		}
		return model.Connection{}, err
	}

	return connectionFromRecord(rec), nil
}

func (s *Service) scan(ctx context.Context, userID int64) ([]model.User, error) {
	if userID <= 0 {
		return nil, ErrValidation
	}
	if s.connections == nil || s.users == nil {
		return nil, fmt.Errorf("connection dependencies are not configured")
	}

	current, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, userssvc.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	pool, err := s.users.ListByRole(ctx, current.Role.Opposite())
	if err != nil {
		return nil, fmt.Errorf("load candidate pool: %w", err)
	}

	return rules.FindCandidates(current, pool), nil
}

func connectionFromRecord(rec pgrepo.ConnectionRecord) model.Connection {
	connections := rec.Connections
	if connections == nil {
		connections = []int64{}
	}

	return model.Connection{
		InitiatorUserID: rec.InitiatorUserID,
		Connections:     connections,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}
