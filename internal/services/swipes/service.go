package swipes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Legal-Mentors-Network/backend/internal/domain/enums"
	"github.com/Legal-Mentors-Network/backend/internal/domain/model"
	pgrepo "github.com/Legal-Mentors-Network/backend/internal/repo/postgres"
	userssvc "github.com/Legal-Mentors-Network/backend/internal/services/users"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrUnsupportedAction = errors.New("unsupported action")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateSwipe    = errors.New("swipe already recorded for this pair")
)

// TooFastError is returned when the burst limiter denies a swipe.
type TooFastError struct {
	RetryAfterSec int64
}

func (e TooFastError) Error() string {
	return "too fast"
}

func (e TooFastError) RetryAfter() int64 {
	if e.RetryAfterSec <= 0 {
		return 1
	}
	return e.RetryAfterSec
}

func IsTooFast(err error) (*TooFastError, bool) {
	var tf TooFastError
	if errors.As(err, &tf) {
		return &tf, true
	}
	return nil, false
}

type SwipeStore interface {
	Create(ctx context.Context, actorUserID, targetUserID int64, action string, now time.Time) (pgrepo.SwipeRecord, error)
	HasLiked(ctx context.Context, actorUserID, targetUserID int64) (bool, error)
}

type MatchStore interface {
	CreateIfAbsent(ctx context.Context, userID, targetID int64, now time.Time) (pgrepo.MatchRecord, error)
}

type UserDirectory interface {
	Get(ctx context.Context, userID int64) (model.User, error)
}

type RateLimiter interface {
	AllowSwipe(ctx context.Context, userID int64) (int64, bool, error)
}

// MatchWithProfile is a match plus the other party's profile resolved at
// read time for direct display.
type MatchWithProfile struct {
	Match       model.Match
	Counterpart model.User
}

type Result struct {
	Swipe model.Swipe
	Match *MatchWithProfile
}

type Service struct {
	swipeStore  SwipeStore
	matchStore  MatchStore
	users       UserDirectory
	rateLimiter RateLimiter
	now         func() time.Time
}

type Dependencies struct {
	SwipeStore  SwipeStore
	MatchStore  MatchStore
	Users       UserDirectory
	RateLimiter RateLimiter
}

func NewService(deps Dependencies) *Service {
	return &Service{
		swipeStore:  deps.SwipeStore,
		matchStore:  deps.MatchStore,
		users:       deps.Users,
		rateLimiter: deps.RateLimiter,
		now:         time.Now,
	}
}

// Record persists one swipe and, for a LIKE whose reverse LIKE already
// exists, materializes the canonical match. The swipe write and the match
// phase run in separate store transactions: if the match phase fails the
// recorded swipe stands and the error is reported to the caller.
func (s *Service) Record(ctx context.Context, actorID, targetID int64, action string) (Result, error) {
	if actorID <= 0 || targetID <= 0 {
		return Result{}, ErrValidation
	}

	parsedAction, err := enums.ParseSwipeAction(action)
	if err != nil {
		return Result{}, ErrUnsupportedAction
	}

	if s.swipeStore == nil || s.matchStore == nil || s.users == nil {
		return Result{}, fmt.Errorf("swipe dependencies are not configured")
	}

	if _, err := s.getUser(ctx, actorID); err != nil {
		return Result{}, err
	}
	target, err := s.getUser(ctx, targetID)
	if err != nil {
		return Result{}, err
	}

	if s.rateLimiter != nil {
		retryAfter, allowed, err := s.rateLimiter.AllowSwipe(ctx, actorID)
		if err != nil {
			return Result{}, fmt.Errorf("apply swipe rate limiter: %w", err)
		}
		if !allowed {
			return Result{}, TooFastError{RetryAfterSec: retryAfter}
		}
	}

	now := s.now().UTC()
	rec, err := s.swipeStore.Create(ctx, actorID, targetID, string(parsedAction), now)
	if err != nil {
		if errors.Is(err, pgrepo.ErrSwipeExists) {
			return Result{}, ErrDuplicateSwipe
		}
		return Result{}, err
	}

	swipe, err := swipeFromRecord(rec)
	if err != nil {
		return Result{}, err
	}
	result := Result{Swipe: swipe}

	if parsedAction != enums.SwipeActionLike {
		return result, nil
	}

	reciprocal, err := s.swipeStore.HasLiked(ctx, targetID, actorID)
	if err != nil {
		return Result{}, fmt.Errorf("check reciprocal like: %w", err)
	}
	if !reciprocal {
		return result, nil
	}

	matchRec, err := s.matchStore.CreateIfAbsent(ctx, actorID, targetID, now)
	if err != nil {
		return Result{}, fmt.Errorf("create match: %w", err)
	}

	result.Match = &MatchWithProfile{
		Match: model.Match{
			ID:                  matchRec.ID,
			UserLowID:           matchRec.UserLowID,
			UserHighID:          matchRec.UserHighID,
			MatchedAt:           matchRec.MatchedAt,
			ConversationStarted: matchRec.ConversationStarted,
		},
		Counterpart: target,
	}

	return result, nil
}

func (s *Service) getUser(ctx context.Context, userID int64) (model.User, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, userssvc.ErrNotFound) {
			return model.User{}, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
		}
		return model.User{}, err
	}
	return user, nil
}

func swipeFromRecord(rec pgrepo.SwipeRecord) (model.Swipe, error) {
	action, err := enums.ParseSwipeAction(rec.Action)
	if err != nil {
		return model.Swipe{}, fmt.Errorf("swipe %d: %w", rec.ID, err)
	}

	return model.Swipe{
		ID:           rec.ID,
		ActorUserID:  rec.ActorUserID,
		TargetUserID: rec.TargetUserID,
		Action:       action,
		CreatedAt:    rec.CreatedAt,
	}, nil
}
