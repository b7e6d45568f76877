package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSwipeExists = errors.New("swipe already exists for this pair")

const uniqueViolationCode = "23505"

type SwipeRepo struct {
	pool *pgxpool.Pool
}

type SwipeRecord struct {
	ID           int64
	ActorUserID  int64
	TargetUserID int64
	Action       string
	CreatedAt    time.Time
}

type IncomingLikeRecord struct {
	FromUserID  int64
	DisplayName string
	Age         int
	City        string
	Country     string
	LikedAt     time.Time
}

func NewSwipeRepo(pool *pgxpool.Pool) *SwipeRepo {
	return &SwipeRepo{pool: pool}
}

// Create inserts exactly one swipe row. The UNIQUE(actor_user_id,
// target_user_id) constraint makes a second attempt on the same ordered pair
// fail with ErrSwipeExists; rows are never updated or merged.
func (r *SwipeRepo) Create(ctx context.Context, actorUserID, targetUserID int64, action string, now time.Time) (SwipeRecord, error) {
	if actorUserID <= 0 || targetUserID <= 0 || strings.TrimSpace(action) == "" {
		return SwipeRecord{}, fmt.Errorf("invalid swipe payload")
	}
	if r.pool == nil {
		return SwipeRecord{}, fmt.Errorf("postgres pool is nil")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var rec SwipeRecord
	err := r.pool.QueryRow(ctx, `
INSERT INTO swipes (
	actor_user_id,
	target_user_id,
	action,
	created_at
) VALUES ($1, $2, $3, $4)
RETURNING id, actor_user_id, target_user_id, action, created_at
`, actorUserID, targetUserID, strings.ToUpper(strings.TrimSpace(action)), now.UTC()).Scan(
		&rec.ID,
		&rec.ActorUserID,
		&rec.TargetUserID,
		&rec.Action,
		&rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return SwipeRecord{}, ErrSwipeExists
		}
		return SwipeRecord{}, fmt.Errorf("create swipe: %w", err)
	}

	return rec, nil
}

// HasLiked reports whether a LIKE swipe exists for the ordered pair. A PASS
// row or no row at all both yield false.
func (r *SwipeRepo) HasLiked(ctx context.Context, actorUserID, targetUserID int64) (bool, error) {
	if actorUserID <= 0 || targetUserID <= 0 {
		return false, fmt.Errorf("invalid like lookup payload")
	}
	if r.pool == nil {
		return false, nil
	}

	var one int
	err := r.pool.QueryRow(ctx, `
SELECT 1
FROM swipes
WHERE actor_user_id = $1 AND target_user_id = $2 AND action = 'LIKE'
LIMIT 1
`, actorUserID, targetUserID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup like: %w", err)
	}

	return true, nil
}

// ListTargets returns every user id the actor has swiped on, any action.
func (r *SwipeRepo) ListTargets(ctx context.Context, actorUserID int64) ([]int64, error) {
	if actorUserID <= 0 {
		return nil, fmt.Errorf("invalid actor user id")
	}
	if r.pool == nil {
		return []int64{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT target_user_id
FROM swipes
WHERE actor_user_id = $1
`, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("list swiped targets: %w", err)
	}
	defer rows.Close()

	targets := make([]int64, 0, 32)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan swiped target: %w", err)
		}
		targets = append(targets, id)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate swiped targets: %w", rows.Err())
	}

	return targets, nil
}

// ListIncomingLikes returns users who liked userID and whom userID has not
// swiped on yet, newest like first.
func (r *SwipeRepo) ListIncomingLikes(ctx context.Context, userID int64) ([]IncomingLikeRecord, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return []IncomingLikeRecord{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT
	s.actor_user_id,
	COALESCE(u.display_name, ''),
	u.age,
	COALESCE(u.city, ''),
	COALESCE(u.country, ''),
	s.created_at
FROM swipes s
JOIN users u ON u.id = s.actor_user_id
WHERE
	s.target_user_id = $1
	AND s.action = 'LIKE'
	AND NOT EXISTS (
		SELECT 1
		FROM swipes back
		WHERE back.actor_user_id = $1
			AND back.target_user_id = s.actor_user_id
	)
ORDER BY s.created_at DESC, s.id DESC
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list incoming likes: %w", err)
	}
	defer rows.Close()

	records := make([]IncomingLikeRecord, 0, 16)
	for rows.Next() {
		var rec IncomingLikeRecord
		if err := rows.Scan(
			&rec.FromUserID,
			&rec.DisplayName,
			&rec.Age,
			&rec.City,
			&rec.Country,
			&rec.LikedAt,
		); err != nil {
			return nil, fmt.Errorf("scan incoming like: %w", err)
		}
		records = append(records, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate incoming likes: %w", rows.Err())
	}

	return records, nil
}
