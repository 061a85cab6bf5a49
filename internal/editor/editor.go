// Package editor holds the working copy of a runner's profile form: the
// profile draft plus exactly one record draft per catalog distance. Field
// mutations are applied one at a time and every mutation synchronously
// pushes a full snapshot to the registered observer, mirroring how the
// profile page aggregates child edits. Values are free-form strings; no
// validation happens here, the save coordinator decides what persists.
package editor

import (
	"fmt"
	"sync"

	"github.com/runprhq/runpr-backend/internal/domain"
)

// Record field names accepted by SetRecordField.
const (
	FieldTime     = "time"
	FieldLocation = "location"
	FieldDate     = "date"
)

// Profile field names accepted by SetProfileField.
const (
	FieldName            = "name"
	FieldBio             = "bio"
	FieldProfileLocation = "location"
	FieldProfileImageURL = "profile_image_url"
)

// Snapshot is the full working copy pushed to the observer after every
// mutation and read by the save coordinator.
type Snapshot struct {
	Profile domain.ProfileDraft
	Records []domain.RecordDraft
}

// Observer receives the full snapshot after every mutation. It is invoked
// synchronously and must not call back into the editor.
type Observer func(Snapshot)

// Editor is the per-user working copy. Safe for concurrent use.
type Editor struct {
	mu       sync.Mutex
	profile  domain.ProfileDraft
	records  []domain.RecordDraft
	observer Observer
}

// New seeds an editor from a profile draft and a reconciled record set.
// A nil or empty record set is replaced by all-empty placeholders, so the
// invariant "one draft per catalog distance, in catalog order" holds from
// the start.
func New(profile domain.ProfileDraft, records []domain.RecordDraft) *Editor {
	if len(records) == 0 {
		records = domain.Reconcile(nil)
	}
	copied := make([]domain.RecordDraft, len(records))
	copy(copied, records)

	return &Editor{profile: profile, records: copied}
}

// SetObserver registers the observer notified on every mutation.
func (e *Editor) SetObserver(fn Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observer = fn
}

// SetRecordField replaces the named field on the record at index, leaving
// every other record and field untouched, then notifies the observer.
// Writing the current value again is a no-op for the data but still
// notifies, matching the form's unconditional change propagation.
func (e *Editor) SetRecordField(index int, field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.records) {
		return domain.NewValidationError("index", fmt.Sprintf("out of range [0,%d)", len(e.records)))
	}

	switch field {
	case FieldTime:
		e.records[index].Time = value
	case FieldLocation:
		e.records[index].Location = value
	case FieldDate:
		e.records[index].Date = value
	default:
		return domain.NewValidationError("field", fmt.Sprintf("unknown record field %q", field))
	}

	e.notifyLocked()
	return nil
}

// SetProfileField merges a single field into the profile draft, then
// notifies the observer.
func (e *Editor) SetProfileField(field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch field {
	case FieldName:
		e.profile.Name = value
	case FieldProfileLocation:
		e.profile.Location = value
	case FieldBio:
		e.profile.Bio = value
	case FieldProfileImageURL:
		e.profile.ProfileImageURL = value
	default:
		return domain.NewValidationError("field", fmt.Sprintf("unknown profile field %q", field))
	}

	e.notifyLocked()
	return nil
}

// Reset replaces the whole working copy, typically after a save re-fetch,
// and notifies the observer with the new state.
func (e *Editor) Reset(profile domain.ProfileDraft, records []domain.RecordDraft) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(records) == 0 {
		records = domain.Reconcile(nil)
	}
	e.profile = profile
	e.records = make([]domain.RecordDraft, len(records))
	copy(e.records, records)

	e.notifyLocked()
}

// Snapshot returns a copy of the current working state.
func (e *Editor) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Editor) snapshotLocked() Snapshot {
	records := make([]domain.RecordDraft, len(e.records))
	copy(records, e.records)
	return Snapshot{Profile: e.profile, Records: records}
}

func (e *Editor) notifyLocked() {
	if e.observer != nil {
		e.observer(e.snapshotLocked())
	}
}
