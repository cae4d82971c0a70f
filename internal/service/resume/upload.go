package resume

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/adapter/storage"
	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

const maxFileNameLen = 255

// CreateUploadURL asks the storage service for a short-lived signed upload
// destination. The returned handle is not yet attached to anything; the
// client uploads and then calls BindResume.
func (s *Service) CreateUploadURL(ctx context.Context, fileName string) (*storage.UploadTicket, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, domain.NewValidationError("file_name", "required")
	}
	if len(fileName) > maxFileNameLen {
		return nil, domain.NewValidationError("file_name", "too long")
	}

	ticket, err := s.store.CreateUploadURL(ctx, fileName)
	if err != nil {
		return nil, fmt.Errorf("resume.CreateUploadURL: %w", err)
	}
	return ticket, nil
}

// BindResume attaches an uploaded object to the caller's own application.
// PDF uploads are downloaded once and their plain text stored alongside the
// handle so applications are searchable without another storage round trip.
// Extraction failures degrade to a handle-only bind.
func (s *Service) BindResume(ctx context.Context, applicationID uuid.UUID, handle string) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, domain.NewValidationError("handle", "required")
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("resume.BindResume load: %w", err)
	}
	if app.CandidateID != userID {
		return nil, fmt.Errorf("application %s: %w", applicationID, domain.ErrForbidden)
	}

	var text *string
	if strings.HasSuffix(strings.ToLower(handle), ".pdf") {
		if extracted, err := s.extractPDFText(ctx, handle); err != nil {
			s.log.WarnContext(ctx, "resume text extraction failed",
				slog.String("handle", handle),
				slog.Any("error", err))
		} else if extracted != "" {
			text = &extracted
		}
	}

	bound, err := s.applications.BindResume(ctx, applicationID, handle, text)
	if err != nil {
		return nil, fmt.Errorf("resume.BindResume: %w", err)
	}

	s.log.InfoContext(ctx, "resume bound",
		slog.String("application_id", applicationID.String()),
		slog.Bool("text_extracted", text != nil))

	return bound, nil
}

// ResolveURL returns the retrievable URL for a stored resume handle.
func (s *Service) ResolveURL(handle string) string {
	return s.store.ResolveURL(handle)
}
