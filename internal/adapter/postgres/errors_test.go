package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/battleworld/backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	if got := MapError(nil, "job", uuid.Nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	err := MapError(pgx.ErrNoRows, "job", uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMapError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	err := MapError(pgErr, "application", uuid.New())
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestMapError_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503"}
	err := MapError(pgErr, "application", uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMapError_CheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514"}
	err := MapError(pgErr, "comment", uuid.New())
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestMapError_SerializationFailure(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "40001"}
	err := MapError(pgErr, "application", uuid.New())
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestMapError_ContextCanceled_PassesThrough(t *testing.T) {
	err := MapError(context.Canceled, "interview", uuid.New())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled to pass through, got %v", err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Error("context errors must not map to domain errors")
	}
}

func TestMapError_Unknown_Wrapped(t *testing.T) {
	cause := errors.New("connection refused")
	err := MapError(cause, "user", uuid.New())
	if !errors.Is(err, cause) {
		t.Errorf("expected original error to be wrapped, got %v", err)
	}
}
