package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/runprhq/runpr-backend/internal/domain"
)

// Load fetches the user's profile and stored records and aligns them to the
// catalog shape. A user with no profile row yet gets an empty draft, not an
// error; the row is created on first save.
func (s *Service) Load(ctx context.Context, userID uuid.UUID) (*View, error) {
	var draft domain.ProfileDraft

	p, err := s.profiles.GetByID(ctx, userID)
	switch {
	case err == nil:
		draft = domain.DraftFromProfile(p)
	case errors.Is(err, domain.ErrNotFound):
		// First visit, nothing persisted yet.
	default:
		return nil, fmt.Errorf("profile.Load get profile: %w", err)
	}

	stored, err := s.records.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Load list records: %w", err)
	}

	return &View{
		Profile: draft,
		Records: domain.Reconcile(stored),
	}, nil
}
