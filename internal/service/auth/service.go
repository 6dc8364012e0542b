package auth

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"goldchip_backend/internal/config"
	"goldchip_backend/internal/repository"
	"goldchip_backend/internal/service"
)

type serv struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtConfig   config.JWTConfig
	gameConfig  config.GameConfig
	txManager   trm.Manager
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtConfig config.JWTConfig,
	gameConfig config.GameConfig,
	txManager trm.Manager,
) service.AuthService {
	return &serv{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtConfig:   jwtConfig,
		gameConfig:  gameConfig,
		txManager:   txManager,
	}
}
