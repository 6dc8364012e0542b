package auth

import (
	"context"

	"goldchip_backend/internal/model"
)

func (s *serv) Me(ctx context.Context, userID int) (*model.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
