// Package record implements the PersonalRecord repository using PostgreSQL.
// The save protocol never patches rows: the full set for a user is deleted
// and the current non-empty set re-inserted, so the only write operations
// are DeleteByUser and BulkInsert.
package record

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/runprhq/runpr-backend/internal/adapter/postgres"
	"github.com/runprhq/runpr-backend/internal/domain"
)

// Repo provides personal-record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// psql builds queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const listByUserSQL = `
SELECT id, user_id, distance, time, location, date, created_at, updated_at
FROM personal_records
WHERE user_id = $1
ORDER BY created_at, id`

const deleteByUserSQL = `
DELETE FROM personal_records
WHERE user_id = $1`

// ListByUser returns all stored records for a user, zero or more per
// distance. Returns an empty slice (not nil) when none exist.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PersonalRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "personal_record", userID)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, postgres.MapError(err, "personal_record", userID)
	}

	return records, nil
}

// DeleteByUser removes every stored record for the user, regardless of
// distance. Deleting zero rows is not an error.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := querier.Exec(ctx, deleteByUserSQL, userID); err != nil {
		return postgres.MapError(err, "personal_record", userID)
	}

	return nil
}

// BulkInsert inserts the given records in a single multi-row statement.
// An empty slice performs no query.
func (r *Repo) BulkInsert(ctx context.Context, records []domain.PersonalRecord) error {
	if len(records) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	builder := psql.Insert("personal_records").
		Columns("id", "user_id", "distance", "time", "location", "date", "created_at", "updated_at")
	for _, rec := range records {
		builder = builder.Values(
			rec.ID, rec.UserID, rec.Distance, rec.Time, rec.Location, rec.Date,
			rec.CreatedAt, rec.UpdatedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "personal_record", records[0].UserID)
	}

	return nil
}

func scanRecords(rows pgx.Rows) ([]domain.PersonalRecord, error) {
	records := []domain.PersonalRecord{}
	for rows.Next() {
		var rec domain.PersonalRecord
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.Distance, &rec.Time,
			&rec.Location, &rec.Date, &rec.CreatedAt, &rec.UpdatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
