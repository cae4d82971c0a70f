// Package resume handles resume uploads and binding them to applications.
package resume

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/adapter/storage"
	"github.com/battleworld/backend/internal/domain"
)

// applicationRepo defines the application repository interface needed here.
type applicationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	BindResume(ctx context.Context, id uuid.UUID, handle string, text *string) (*domain.Application, error)
}

// objectStore is the storage service boundary.
type objectStore interface {
	CreateUploadURL(ctx context.Context, fileName string) (*storage.UploadTicket, error)
	Download(ctx context.Context, handle string) ([]byte, error)
	ResolveURL(handle string) string
}

// Service implements resume operations.
type Service struct {
	log          *slog.Logger
	applications applicationRepo
	store        objectStore
}

// NewService creates a new resume service instance.
func NewService(logger *slog.Logger, applications applicationRepo, store objectStore) *Service {
	return &Service{
		log:          logger.With("service", "resume"),
		applications: applications,
		store:        store,
	}
}
