package auth

import (
	"context"
	"errors"
	"fmt"

	"goldchip_backend/internal/model"
	"goldchip_backend/internal/repository"
	"goldchip_backend/internal/service"
	"goldchip_backend/pkg/pass"
)

func (s *serv) Login(ctx context.Context, username, password string) (*model.AuthData, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !pass.VerifyPassword(user.Password, password) {
		return nil, service.ErrInvalidCredentials
	}

	if user.Banned {
		return nil, service.ErrUserBanned
	}

	return s.issueSession(ctx, user)
}
