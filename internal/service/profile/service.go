// Package profile implements loading and saving of a runner's profile page:
// the profile fields plus the fixed set of per-distance personal records.
package profile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/runprhq/runpr-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by this service.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile, now time.Time) (*domain.Profile, error)
}

// recordRepo defines the record repository interface needed by this service.
type recordRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PersonalRecord, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	BulkInsert(ctx context.Context, records []domain.PersonalRecord) error
}

// clock abstracts time.Now so saves stamp deterministic timestamps in tests.
type clock interface {
	Now() time.Time
}

// idGenerator abstracts uuid.New so saves stamp deterministic IDs in tests.
type idGenerator interface {
	NewID() uuid.UUID
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type uuidGenerator struct{}

func (uuidGenerator) NewID() uuid.UUID { return uuid.New() }

// Service implements profile page operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	records  recordRepo
	clk      clock
	ids      idGenerator
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, profiles profileRepo, records recordRepo) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
		records:  records,
		clk:      systemClock{},
		ids:      uuidGenerator{},
	}
}

// View is the full profile page state: profile fields plus exactly one
// record draft per catalog distance, in catalog order.
type View struct {
	Profile domain.ProfileDraft
	Records []domain.RecordDraft
}
