package auth

import (
	"context"
	"errors"
	"fmt"

	"goldchip_backend/internal/repository"
	"goldchip_backend/internal/service"
	"goldchip_backend/pkg/token"
)

// Refresh exchanges a valid refresh token for a new access token.
func (s *serv) Refresh(ctx context.Context, sessionID, refreshToken string) (string, error) {
	storedHash, err := s.sessionRepo.GetRefreshTokenBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return "", service.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if !token.VerifyRefreshToken(refreshToken, storedHash) {
		return "", service.ErrInvalidCredentials
	}

	user, err := s.sessionRepo.GetUserBySessionID(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to get session user: %w", err)
	}

	if user.Banned {
		return "", service.ErrUserBanned
	}

	return token.GenerateAccessToken(user, s.jwtConfig.AccessTokenSecretKey(), s.jwtConfig.AccessTokenDuration())
}
