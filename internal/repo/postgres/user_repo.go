package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepo reads profiles owned by the external profile collaborator. This
// engine never writes to the users table.
type UserRepo struct {
	pool *pgxpool.Pool
}

type UserRecord struct {
	ID                int64
	DisplayName       string
	Age               int
	Role              string
	City              string
	Country           string
	Lat               float64
	Lon               float64
	PrefAgeMin        int
	PrefAgeMax        int
	PrefMaxDistanceKM float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `
	id,
	COALESCE(display_name, ''),
	age,
	role,
	COALESCE(city, ''),
	COALESCE(country, ''),
	lat,
	lon,
	pref_age_min,
	pref_age_max,
	pref_max_distance_km,
	created_at,
	updated_at`

func (r *UserRepo) Get(ctx context.Context, userID int64) (UserRecord, error) {
	if userID <= 0 {
		return UserRecord{}, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return UserRecord{}, ErrUserNotFound
	}

	row := r.pool.QueryRow(ctx, `
SELECT`+userColumns+`
FROM users
WHERE id = $1
`, userID)

	rec, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user: %w", err)
	}

	return rec, nil
}

// ListByRole returns all users with the given role ordered by id, which is
// the stable pool order discovery and legacy matching both rely on.
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]UserRecord, error) {
	if strings.TrimSpace(role) == "" {
		return nil, fmt.Errorf("role is required")
	}
	if r.pool == nil {
		return []UserRecord{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT`+userColumns+`
FROM users
WHERE role = $1
ORDER BY id
`, strings.ToUpper(strings.TrimSpace(role)))
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()

	records := make([]UserRecord, 0, 64)
	for rows.Next() {
		rec, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		records = append(records, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate users: %w", rows.Err())
	}

	return records, nil
}

func scanUser(row pgx.Row) (UserRecord, error) {
	var rec UserRecord
	err := row.Scan(
		&rec.ID,
		&rec.DisplayName,
		&rec.Age,
		&rec.Role,
		&rec.City,
		&rec.Country,
		&rec.Lat,
		&rec.Lon,
		&rec.PrefAgeMin,
		&rec.PrefAgeMax,
		&rec.PrefMaxDistanceKM,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}
