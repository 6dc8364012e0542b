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

// Register creates a new player account with the starting chip balance
// and logs it in.
func (s *serv) Register(ctx context.Context, username, password string) (*model.AuthData, error) {
	if username == "" || password == "" {
		return nil, service.ErrInvalidCredentials
	}

	hashed, err := pass.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var authData *model.AuthData

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		_, err := s.userRepo.GetUserByUsername(txCtx, username)
		if err == nil {
			return service.ErrUsernameTaken
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return fmt.Errorf("failed to check username: %w", err)
		}

		user := &model.User{
			Username: username,
			Password: hashed,
			Chips:    s.gameConfig.StartingChips(),
			Role:     model.RolePlayer,
		}

		user.ID, err = s.userRepo.CreateUser(txCtx, user)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		authData, err = s.issueSession(txCtx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return authData, nil
}
