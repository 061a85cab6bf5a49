// Package avatar implements profile picture uploads: validate the file,
// store it under a per-user path, and hand back the public URL for the
// profile's image field.
package avatar

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/runprhq/runpr-backend/internal/config"
	"github.com/runprhq/runpr-backend/internal/domain"
	"github.com/runprhq/runpr-backend/pkg/ctxutil"
)

// objectStore defines the object storage interface needed by this service.
type objectStore interface {
	Upload(ctx context.Context, path string, data []byte) error
	PublicURL(path string) string
}

// idGenerator abstracts uuid.New so object keys are deterministic in tests.
type idGenerator interface {
	NewID() uuid.UUID
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() uuid.UUID { return uuid.New() }

// Service implements avatar upload operations.
type Service struct {
	log   *slog.Logger
	store objectStore
	ids   idGenerator
	cfg   config.StorageConfig
}

// NewService creates a new avatar service instance.
func NewService(logger *slog.Logger, store objectStore, cfg config.StorageConfig) *Service {
	return &Service{
		log:   logger.With("service", "avatar"),
		store: store,
		ids:   uuidGenerator{},
		cfg:   cfg,
	}
}

// UploadInput holds one uploaded file.
type UploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Upload validates and stores a profile picture and returns its public URL.
// Only image content types are accepted and the file must fit the
// configured size limit. Validation happens before the store is touched.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Upload(ctx context.Context, input UploadInput) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	if !strings.HasPrefix(input.ContentType, "image/") {
		return "", domain.NewValidationError("file", fmt.Sprintf("unsupported content type %q", input.ContentType))
	}
	if len(input.Data) == 0 {
		return "", domain.NewValidationError("file", "empty file")
	}
	if int64(len(input.Data)) > s.cfg.MaxUploadBytes() {
		return "", domain.NewValidationError("file",
			fmt.Sprintf("file exceeds %d MiB limit", s.cfg.MaxUploadMiB))
	}

	key := userID.String() + "/" + s.ids.NewID().String() + strings.ToLower(path.Ext(input.Filename))

	if err := s.store.Upload(ctx, key, input.Data); err != nil {
		return "", fmt.Errorf("avatar.Upload store object: %w", err)
	}

	url := s.store.PublicURL(key)

	s.log.InfoContext(ctx, "avatar uploaded",
		slog.String("user_id", userID.String()),
		slog.Int("bytes", len(input.Data)))

	return url, nil
}
