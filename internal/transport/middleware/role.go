package middleware

import (
	"context"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// RequireInterviewer returns domain.ErrForbidden if the context user does
// not carry an interviewer role claim. Use inside REST handlers, not as
// HTTP middleware: most routes mix candidate and interviewer access.
func RequireInterviewer(ctx context.Context) error {
	if !ctxutil.IsInterviewerCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
