package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrConnectionNotFound = errors.New("connection not found")

// ConnectionRepo stores the legacy per-user match list. One row per
// initiator; the connections array only ever grows.
type ConnectionRepo struct {
	pool *pgxpool.Pool
}

type ConnectionRecord struct {
	InitiatorUserID int64
	Connections     []int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewConnectionRepo(pool *pgxpool.Pool) *ConnectionRepo {
	return &ConnectionRepo{pool: pool}
}

func (r *ConnectionRepo) GetByInitiator(ctx context.Context, initiatorUserID int64) (ConnectionRecord, error) {
	if initiatorUserID <= 0 {
		return ConnectionRecord{}, fmt.Errorf("invalid initiator user id")
	}
	if r.pool == nil {
		return ConnectionRecord{}, ErrConnectionNotFound
	}

	var rec ConnectionRecord
	err := r.pool.QueryRow(ctx, `
SELECT initiator_user_id, connections, created_at, updated_at
FROM connections
WHERE initiator_user_id = $1
`, initiatorUserID).Scan(
		&rec.InitiatorUserID,
		&rec.Connections,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ConnectionRecord{}, ErrConnectionNotFound
		}
		return ConnectionRecord{}, fmt.Errorf("get connection: %w", err)
	}

	return rec, nil
}

// CreateOrAppend creates the initiator's row with matchIDs, or appends them
// to the existing array. Appends are intentionally not deduplicated; repeat
// calls with overlapping results grow the list with repeats.
func (r *ConnectionRepo) CreateOrAppend(ctx context.Context, initiatorUserID int64, matchIDs []int64, now time.Time) (ConnectionRecord, error) {
	if initiatorUserID <= 0 {
		return ConnectionRecord{}, fmt.Errorf("invalid initiator user id")
	}
	if r.pool == nil {
		return ConnectionRecord{}, fmt.Errorf("postgres pool is nil")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	if matchIDs == nil {
		matchIDs = []int64{}
	}

	var rec ConnectionRecord
	err := WithTx(ctx, r.pool, func(txCtx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(txCtx, `
SELECT TRUE
FROM connections
WHERE initiator_user_id = $1
FOR UPDATE
`, initiatorUserID).Scan(&exists)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("lock connection row: %w", err)
		}

		if errors.Is(err, pgx.ErrNoRows) {
			err = tx.QueryRow(txCtx, `
INSERT INTO connections (
	initiator_user_id,
	connections,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $3)
RETURNING initiator_user_id, connections, created_at, updated_at
`, initiatorUserID, matchIDs, now.UTC()).Scan(
				&rec.InitiatorUserID,
				&rec.Connections,
				&rec.CreatedAt,
				&rec.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("create connection: %w", err)
			}
			return nil
		}

		err = tx.QueryRow(txCtx, `
UPDATE connections
SET connections = connections || $2, updated_at = $3
WHERE initiator_user_id = $1
RETURNING initiator_user_id, connections, created_at, updated_at
`, initiatorUserID, matchIDs, now.UTC()).Scan(
			&rec.InitiatorUserID,
			&rec.Connections,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("append connections: %w", err)
		}
		return nil
	})
	if err != nil {
		return ConnectionRecord{}, err
	}

	return rec, nil
}
