package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/runprhq/runpr-backend/internal/domain"
	"github.com/runprhq/runpr-backend/pkg/ctxutil"
)

// SaveInput is the full working copy to persist: the profile draft plus the
// complete record draft set. Records the user left empty are placeholders
// and are not persisted.
type SaveInput struct {
	Profile domain.ProfileDraft
	Records []domain.RecordDraft
}

// Save persists the working copy with a full replace: upsert the profile
// row, delete every stored record for the user, then insert only the
// non-empty drafts, and finally re-fetch the canonical state. When every
// draft is empty the insert step is skipped and the delete alone clears
// the stored set.
//
// The steps deliberately run outside a transaction and each completed step
// stays committed if a later one fails. A failure between delete and insert
// leaves the user with a saved profile and no records until the next
// successful save.
//
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Save(ctx context.Context, input SaveInput) (*View, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clk.Now().UTC()

	p := &domain.Profile{
		ID:              userID,
		Name:            emptyToNil(input.Profile.Name),
		Location:        emptyToNil(input.Profile.Location),
		Bio:             emptyToNil(input.Profile.Bio),
		ProfileImageURL: emptyToNil(input.Profile.ProfileImageURL),
	}
	if _, err := s.profiles.Upsert(ctx, p, now); err != nil {
		return nil, fmt.Errorf("profile.Save upsert profile: %w", err)
	}

	if err := s.records.DeleteByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("profile.Save delete records: %w", err)
	}

	toInsert := make([]domain.PersonalRecord, 0, len(input.Records))
	for _, draft := range input.Records {
		if !draft.NonEmpty() {
			continue
		}
		toInsert = append(toInsert, domain.PersonalRecord{
			ID:        s.ids.NewID(),
			UserID:    userID,
			Distance:  draft.Distance,
			Time:      draft.Time,
			Location:  emptyToNil(draft.Location),
			Date:      emptyToNil(draft.Date),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if len(toInsert) > 0 {
		if err := s.records.BulkInsert(ctx, toInsert); err != nil {
			return nil, fmt.Errorf("profile.Save insert records: %w", err)
		}
	}

	s.log.InfoContext(ctx, "profile saved",
		slog.String("user_id", userID.String()),
		slog.Int("records", len(toInsert)))

	view, err := s.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Save reload: %w", err)
	}

	return view, nil
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
