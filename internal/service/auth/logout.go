package auth

import (
	"context"
	"errors"

	"goldchip_backend/internal/repository"
)

// Logout drops the refresh session. A missing session is not an error,
// logout is idempotent.
func (s *serv) Logout(ctx context.Context, sessionID string) error {
	err := s.sessionRepo.DeleteSession(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil
	}
	return err
}
