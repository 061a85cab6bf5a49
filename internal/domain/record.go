package domain

import (
	"time"

	"github.com/google/uuid"
)

// distances is the canonical ordered list of race distances. It defines
// which record rows exist in the editor: always one per label, in this
// order, regardless of what is stored.
var distances = [...]string{
	"1-mile",
	"5k",
	"10k",
	"Half Marathon",
	"Full Marathon",
}

// Distances returns the distance catalog as a fresh slice, in canonical order.
func Distances() []string {
	out := make([]string, len(distances))
	copy(out, distances[:])
	return out
}

// PersonalRecord is a stored personal-best row for one user and distance.
// Time is always present in storage (possibly empty); Location and Date are
// nullable.
type PersonalRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Distance  string
	Time      string
	Location  *string
	Date      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecordDraft is the editable, not-yet-persisted view of a record. All
// fields are free-form strings; an empty string means unset.
type RecordDraft struct {
	Distance string
	Time     string
	Location string
	Date     string
}

// NonEmpty reports whether the draft holds any data worth persisting.
// Empty drafts are working placeholders, not entities.
func (d RecordDraft) NonEmpty() bool {
	return d.Time != "" || d.Location != "" || d.Date != ""
}

// Reconcile aligns an arbitrary stored record set to the catalog's fixed
// shape: exactly one draft per catalog distance, in catalog order. For each
// distance the first stored record with that label wins; extra rows for the
// same label are dropped from the editable view (they remain in storage
// until the next save replaces them). Distances with no stored row get a
// placeholder carrying only the label.
func Reconcile(stored []PersonalRecord) []RecordDraft {
	drafts := make([]RecordDraft, 0, len(distances))

	for _, distance := range distances {
		draft := RecordDraft{Distance: distance}
		for i := range stored {
			if stored[i].Distance == distance {
				draft.Time = stored[i].Time
				draft.Location = derefOrEmpty(stored[i].Location)
				draft.Date = derefOrEmpty(stored[i].Date)
				break
			}
		}
		drafts = append(drafts, draft)
	}

	return drafts
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
