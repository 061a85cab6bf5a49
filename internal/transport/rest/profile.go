package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/runprhq/runpr-backend/internal/domain"
	"github.com/runprhq/runpr-backend/internal/editor"
	"github.com/runprhq/runpr-backend/internal/observability"
	"github.com/runprhq/runpr-backend/internal/service/profile"
	"github.com/runprhq/runpr-backend/pkg/ctxutil"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	Load(ctx context.Context, userID uuid.UUID) (*profile.View, error)
	Save(ctx context.Context, input profile.SaveInput) (*profile.View, error)
}

// ProfileHandler serves the profile page endpoints. Field edits go through
// the per-user editor; Save persists the editor's working copy and resets
// it from the re-fetched state.
type ProfileHandler struct {
	svc     profileService
	editors *editor.Store
	log     *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, editors *editor.Store, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, editors: editors, log: logger.With("handler", "profile")}
}

type profileResponse struct {
	Name            string `json:"name"`
	Location        string `json:"location"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type recordResponse struct {
	Distance string `json:"distance"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Date     string `json:"date"`
}

type viewResponse struct {
	Profile profileResponse  `json:"profile"`
	Records []recordResponse `json:"records"`
}

type fieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Get handles GET /api/profile. It loads the persisted state and seeds the
// user's editor with it, discarding any unsaved edits.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	view, err := h.svc.Load(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.seed(userID, view.Profile, view.Records)

	writeJSON(w, http.StatusOK, toViewResponse(view.Profile, view.Records))
}

// PatchField handles PATCH /api/profile/fields. It merges one profile field
// into the user's working copy without persisting anything.
func (h *ProfileHandler) PatchField(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ed, err := h.editorFor(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := ed.SetProfileField(req.Field, req.Value); err != nil {
		h.handleError(w, r, err)
		return
	}

	snap := ed.Snapshot()
	writeJSON(w, http.StatusOK, toViewResponse(snap.Profile, snap.Records))
}

// PatchRecord handles PATCH /api/profile/records/{index}. It replaces one
// field of one record draft in the working copy.
func (h *ProfileHandler) PatchRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record index")
		return
	}

	var req fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ed, err := h.editorFor(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := ed.SetRecordField(index, req.Field, req.Value); err != nil {
		h.handleError(w, r, err)
		return
	}

	snap := ed.Snapshot()
	writeJSON(w, http.StatusOK, toViewResponse(snap.Profile, snap.Records))
}

// Save handles POST /api/profile/save. It persists the working copy with
// the replace protocol and resets the editor from the re-fetched state.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ed, err := h.editorFor(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	snap := ed.Snapshot()
	view, err := h.svc.Save(r.Context(), profile.SaveInput{
		Profile: snap.Profile,
		Records: snap.Records,
	})
	if err != nil {
		observability.RecordSave("error")
		h.handleError(w, r, err)
		return
	}
	observability.RecordSave("ok")

	ed.Reset(view.Profile, view.Records)

	writeJSON(w, http.StatusOK, toViewResponse(view.Profile, view.Records))
}

// editorFor returns the user's editor, seeding it from persisted state on
// first touch.
func (h *ProfileHandler) editorFor(ctx context.Context, userID uuid.UUID) (*editor.Editor, error) {
	if ed, ok := h.editors.Get(userID); ok {
		return ed, nil
	}

	view, err := h.svc.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return h.seed(userID, view.Profile, view.Records), nil
}

// seed replaces the user's editor and hooks up the mutation observer. Each
// notification counts an edit and leaves a trace for debugging stuck forms.
func (h *ProfileHandler) seed(userID uuid.UUID, p domain.ProfileDraft, records []domain.RecordDraft) *editor.Editor {
	ed := h.editors.Seed(userID, p, records)
	ed.SetObserver(func(_ editor.Snapshot) {
		observability.RecordEdit()
		h.log.Debug("working copy changed", slog.String("user_id", userID.String()))
	})
	return ed
}

func (h *ProfileHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toViewResponse(p domain.ProfileDraft, records []domain.RecordDraft) viewResponse {
	out := viewResponse{
		Profile: profileResponse{
			Name:            p.Name,
			Location:        p.Location,
			Bio:             p.Bio,
			ProfileImageURL: p.ProfileImageURL,
		},
		Records: make([]recordResponse, 0, len(records)),
	}
	for _, rec := range records {
		out.Records = append(out.Records, recordResponse{
			Distance: rec.Distance,
			Time:     rec.Time,
			Location: rec.Location,
			Date:     rec.Date,
		})
	}
	return out
}
