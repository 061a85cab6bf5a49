// Package profile implements the Profile repository using PostgreSQL.
// The profile table is keyed by the user ID; a row appears on the first
// save (upsert) and is never deleted.
package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/runprhq/runpr-backend/internal/adapter/postgres"
	"github.com/runprhq/runpr-backend/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByIDSQL = `
SELECT id, name, location, bio, profile_image_url, created_at, updated_at
FROM profiles
WHERE id = $1`

const upsertSQL = `
INSERT INTO profiles (id, name, location, bio, profile_image_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    location = EXCLUDED.location,
    bio = EXCLUDED.bio,
    profile_image_url = EXCLUDED.profile_image_url,
    updated_at = EXCLUDED.updated_at
RETURNING id, name, location, bio, profile_image_url, created_at, updated_at`

// GetByID returns the profile for the given user ID.
// Returns domain.ErrNotFound when no row exists; callers that treat a
// missing profile as a valid state must check for it explicitly.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	p, err := scanProfile(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	return p, nil
}

// Upsert inserts the profile row or, when it already exists, overwrites its
// editable fields and updated_at. created_at is set only on first insert.
func (r *Repo) Upsert(ctx context.Context, p *domain.Profile, now time.Time) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, upsertSQL,
		p.ID, p.Name, p.Location, p.Bio, p.ProfileImageURL, now)

	saved, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.ID)
	}

	return saved, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.Name, &p.Location, &p.Bio, &p.ProfileImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
