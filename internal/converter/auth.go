package converter

import (
	dto "goldchip_backend/internal/api/dto/auth"
	"goldchip_backend/internal/model"
)

func ToMeResponse(user *model.User) dto.MeResponse {
	return dto.MeResponse{
		ID:       user.ID,
		Username: user.Username,
		Chips:    user.Chips,
		Role:     user.Role,
		Banned:   user.Banned,
	}
}
