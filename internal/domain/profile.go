package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the runner's public profile. One row per user; the primary key
// is the user ID. Created implicitly by the first save (upsert), never
// deleted by this system. All text fields are nullable in storage.
type Profile struct {
	ID              uuid.UUID
	Name            *string
	Location        *string
	Bio             *string
	ProfileImageURL *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProfileDraft is the editable, not-yet-persisted view of a profile. Empty
// string means unset; the save coordinator maps empty fields to NULL.
type ProfileDraft struct {
	Name            string
	Location        string
	Bio             string
	ProfileImageURL string
}

// DraftFromProfile converts a stored profile (possibly nil, when no row
// exists yet) into an editable draft.
func DraftFromProfile(p *Profile) ProfileDraft {
	if p == nil {
		return ProfileDraft{}
	}
	return ProfileDraft{
		Name:            derefOrEmpty(p.Name),
		Location:        derefOrEmpty(p.Location),
		Bio:             derefOrEmpty(p.Bio),
		ProfileImageURL: derefOrEmpty(p.ProfileImageURL),
	}
}
