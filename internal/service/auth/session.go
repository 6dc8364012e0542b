package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"goldchip_backend/internal/model"
	"goldchip_backend/pkg/token"
)

// issueSession creates a refresh session for the user and returns the
// token pair. Only the refresh token hash is stored.
func (s *serv) issueSession(ctx context.Context, user *model.User) (*model.AuthData, error) {
	accessToken, err := token.GenerateAccessToken(user, s.jwtConfig.AccessTokenSecretKey(), s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := &model.Session{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		RefreshToken: token.HashRefreshToken(refreshToken),
		ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
	}

	err = s.sessionRepo.CreateSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
	}, nil
}
