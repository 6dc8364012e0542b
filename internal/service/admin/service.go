package admin

import (
	"context"

	"goldchip_backend/internal/repository"
	"goldchip_backend/internal/service"
)

type serv struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) service.AdminService {
	return &serv{userRepo: userRepo}
}

// Ban blocks the user from logging in. Live access tokens keep working
// until they expire; refresh is denied.
func (s *serv) Ban(ctx context.Context, username string) error {
	return s.userRepo.SetBanned(ctx, username, true)
}

func (s *serv) Unban(ctx context.Context, username string) error {
	return s.userRepo.SetBanned(ctx, username, false)
}
