package chatperm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/battleworld/backend/internal/adapter/postgres/chatperm"
	"github.com/battleworld/backend/internal/adapter/postgres/testhelper"
	"github.com/battleworld/backend/internal/domain"
)

func newRepo(t *testing.T) (*chatperm.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return chatperm.New(pool), pool
}

func seedPair(t *testing.T, pool *pgxpool.Pool) (uuid.UUID, uuid.UUID) {
	t.Helper()
	u1 := testhelper.SeedUser(t, pool, domain.UserRoleCandidate)
	u2 := testhelper.SeedUser(t, pool, domain.UserRoleInterviewer)
	return domain.CanonicalPair(u1.ID, u2.ID)
}

func TestRepo_Upsert_CreatesRecord(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userA, userB := seedPair(t, pool)

	got, err := repo.Upsert(ctx, userA, userB, true)
	if err != nil {
		t.Fatalf("Upsert: unexpected error: %v", err)
	}

	if got.UserA != userA || got.UserB != userB {
		t.Errorf("pair mismatch: got (%s, %s), want (%s, %s)", got.UserA, got.UserB, userA, userB)
	}
	if !got.CanChat {
		t.Error("CanChat should be true")
	}
}

func TestRepo_Upsert_FlipsExistingRecord(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userA, userB := seedPair(t, pool)

	first, err := repo.Upsert(ctx, userA, userB, true)
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}

	second, err := repo.Upsert(ctx, userA, userB, false)
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("upsert should reuse the record: got id %s, want %s", second.ID, first.ID)
	}
	if second.CanChat {
		t.Error("CanChat should be false after revoke")
	}
}

func TestRepo_Upsert_RejectsUnorderedPair(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userA, userB := seedPair(t, pool)

	// The table CHECK constraint refuses a pair that is not canonical.
	_, err := repo.Upsert(ctx, userB, userA, true)
	assertIsDomainError(t, err, domain.ErrValidation)
}

func TestRepo_CanChat_MissingRecordReadsFalse(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userA, userB := seedPair(t, pool)

	canChat, err := repo.CanChat(ctx, userA, userB)
	if err != nil {
		t.Fatalf("CanChat: unexpected error: %v", err)
	}
	if canChat {
		t.Error("missing record should read as false")
	}
}

func TestRepo_CanChat_AfterGrant(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userA, userB := seedPair(t, pool)

	if _, err := repo.Upsert(ctx, userA, userB, true); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	canChat, err := repo.CanChat(ctx, userA, userB)
	if err != nil {
		t.Fatalf("CanChat: unexpected error: %v", err)
	}
	if !canChat {
		t.Error("expected CanChat true after grant")
	}
}

func TestRepo_GetByPair_NotFound(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userA, userB := seedPair(t, pool)

	_, err := repo.GetByPair(ctx, userA, userB)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
