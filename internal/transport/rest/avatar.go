package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/runprhq/runpr-backend/internal/domain"
	"github.com/runprhq/runpr-backend/internal/editor"
	"github.com/runprhq/runpr-backend/internal/service/avatar"
	"github.com/runprhq/runpr-backend/pkg/ctxutil"
)

// avatarService defines the minimal interface needed by AvatarHandler.
type avatarService interface {
	Upload(ctx context.Context, input avatar.UploadInput) (string, error)
}

// AvatarHandler serves profile picture uploads.
type AvatarHandler struct {
	svc      avatarService
	editors  *editor.Store
	log      *slog.Logger
	maxBytes int64
}

// NewAvatarHandler creates an AvatarHandler. maxBytes bounds the multipart
// body size accepted before the service-level validation runs.
func NewAvatarHandler(svc avatarService, editors *editor.Store, logger *slog.Logger, maxBytes int64) *AvatarHandler {
	return &AvatarHandler{
		svc:      svc,
		editors:  editors,
		log:      logger.With("handler", "avatar"),
		maxBytes: maxBytes,
	}
}

type avatarResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/profile/avatar. The file comes as multipart form
// field "file". On success the new URL is also merged into the user's
// working copy so the next save persists it.
func (h *AvatarHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// Extra slack for the multipart framing around the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read file")
		return
	}

	url, err := h.svc.Upload(r.Context(), avatar.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if ed, ok := h.editors.Get(userID); ok {
		if err := ed.SetProfileField(editor.FieldProfileImageURL, url); err != nil {
			h.log.WarnContext(r.Context(), "merge avatar url into editor",
				slog.String("error", err.Error()))
		}
	}

	writeJSON(w, http.StatusOK, avatarResponse{URL: url})
}

func (h *AvatarHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
