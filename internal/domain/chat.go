package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatPermission records whether two users may message each other. The pair
// is canonical: UserA < UserB by UUID string ordering, so lookups are
// symmetric regardless of argument order at the service boundary.
type ChatPermission struct {
	ID        uuid.UUID
	UserA     uuid.UUID
	UserB     uuid.UUID
	CanChat   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanonicalPair orders two user ids into (UserA, UserB) canonical form.
// allow(a,b) and revoke(b,a) must address the same stored record.
func CanonicalPair(x, y uuid.UUID) (uuid.UUID, uuid.UUID) {
	if x.String() > y.String() {
		return y, x
	}
	return x, y
}
