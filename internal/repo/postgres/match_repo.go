package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MatchRepo struct {
	pool *pgxpool.Pool
}

type MatchRecord struct {
	ID                  int64
	UserLowID           int64
	UserHighID          int64
	MatchedAt           time.Time
	ConversationStarted bool
}

func NewMatchRepo(pool *pgxpool.Pool) *MatchRepo {
	return &MatchRepo{pool: pool}
}

// CreateIfAbsent creates the canonical match row for an unordered pair, or
// returns the existing one when a concurrent detector won the insert. The
// pair is sorted by int64 id so one unordered pair maps to one row; the
// UNIQUE(user_low_id, user_high_id) constraint backs the race.
func (r *MatchRepo) CreateIfAbsent(ctx context.Context, userID, targetID int64, now time.Time) (MatchRecord, error) {
	if userID <= 0 || targetID <= 0 {
		return MatchRecord{}, fmt.Errorf("invalid match payload")
	}
	if r.pool == nil {
		return MatchRecord{}, fmt.Errorf("postgres pool is nil")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	low, high := userID, targetID
	if low > high {
		low, high = high, low
	}

	var rec MatchRecord
	err := WithTx(ctx, r.pool, func(txCtx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(txCtx, `
INSERT INTO matches (
	user_low_id,
	user_high_id,
	matched_at,
	conversation_started
) VALUES ($1, $2, $3, FALSE)
ON CONFLICT (user_low_id, user_high_id) DO NOTHING
RETURNING id, user_low_id, user_high_id, matched_at, conversation_started
`, low, high, now.UTC()).Scan(
			&rec.ID,
			&rec.UserLowID,
			&rec.UserHighID,
			&rec.MatchedAt,
			&rec.ConversationStarted,
		)
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("create match: %w", err)
		}

		// Lost the race: the row already exists, return it.
		err = tx.QueryRow(txCtx, `
SELECT id, user_low_id, user_high_id, matched_at, conversation_started
FROM matches
WHERE user_low_id = $1 AND user_high_id = $2
`, low, high).Scan(
			&rec.ID,
			&rec.UserLowID,
			&rec.UserHighID,
			&rec.MatchedAt,
			&rec.ConversationStarted,
		)
		if err != nil {
			return fmt.Errorf("read existing match: %w", err)
		}
		return nil
	})
	if err != nil {
		return MatchRecord{}, err
	}

	return rec, nil
}

// ListForUser returns every match the user is a party of, newest first.
func (r *MatchRepo) ListForUser(ctx context.Context, userID int64) ([]MatchRecord, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return []MatchRecord{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, user_low_id, user_high_id, matched_at, conversation_started
FROM matches
WHERE user_low_id = $1 OR user_high_id = $1
ORDER BY matched_at DESC, id DESC
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	records := make([]MatchRecord, 0, 16)
	for rows.Next() {
		var rec MatchRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.UserLowID,
			&rec.UserHighID,
			&rec.MatchedAt,
			&rec.ConversationStarted,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		records = append(records, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate matches: %w", rows.Err())
	}

	return records, nil
}
