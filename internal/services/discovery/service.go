package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/Legal-Mentors-Network/backend/internal/domain/enums"
	"github.com/Legal-Mentors-Network/backend/internal/domain/model"
	"github.com/Legal-Mentors-Network/backend/internal/domain/rules"
	userssvc "github.com/Legal-Mentors-Network/backend/internal/services/users"
)

const (
	DefaultLimit = 20
	MaxLimit     = 50
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("user not found")
)

type UserDirectory interface {
	Get(ctx context.Context, userID int64) (model.User, error)
	ListByRole(ctx context.Context, role enums.Role) ([]model.User, error)
}

type SwipeStore interface {
	ListTargets(ctx context.Context, actorUserID int64) ([]int64, error)
}

// Page is one window over the compatible, not-yet-swiped candidate list.
// Total counts the whole filtered list, not the page.
type Page struct {
	Profiles   []model.User
	Total      int
	HasMore    bool
	NextOffset int
}

type Service struct {
	users    UserDirectory
	swipes   SwipeStore
	maxLimit int
}

type Dependencies struct {
	Users  UserDirectory
	Swipes SwipeStore
}

type Config struct {
	MaxLimit int
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = MaxLimit
	}

	return &Service{
		users:    deps.Users,
		swipes:   deps.Swipes,
		maxLimit: cfg.MaxLimit,
	}
}

// Discover builds the feed for one user: everyone of the opposite role who
// passes the mutual compatibility check and whom the user has not swiped on,
// in stable pool order, windowed by limit/offset. The feed is computed from
// live data on every call.
func (s *Service) Discover(ctx context.Context, userID int64, limit, offset int) (Page, error) {
	if userID <= 0 || limit < 1 || offset < 0 {
		return Page{}, ErrValidation
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	if s.users == nil || s.swipes == nil {
		return Page{}, fmt.Errorf("discovery dependencies are not configured")
	}

	current, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, userssvc.ErrNotFound) {
			return Page{}, ErrNotFound
		}
		return Page{}, err
	}

	pool, err := s.users.ListByRole(ctx, current.Role.Opposite())
	if err != nil {
		return Page{}, fmt.Errorf("load candidate pool: %w", err)
	}

	swiped, err := s.swipes.ListTargets(ctx, userID)
	if err != nil {
		return Page{}, fmt.Errorf("load swiped targets: %w", err)
	}
	seen := make(map[int64]struct{}, len(swiped))
	for _, id := range swiped {
		seen[id] = struct{}{}
	}

	candidates := rules.FindCandidates(current, pool)
	feed := make([]model.User, 0, len(candidates))
	for _, candidate := range candidates {
		if _, ok := seen[candidate.ID]; ok {
			continue
		}
		feed = append(feed, candidate)
	}

	total := len(feed)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	page := Page{
		Profiles: feed[start:end],
		Total:    total,
		HasMore:  end < total,
	}
	if page.HasMore {
		page.NextOffset = end
	} else {
		page.NextOffset = offset
	}

	return page, nil
}
