package roulette

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	dto "goldchip_backend/internal/api/dto/roulette"
	"goldchip_backend/internal/converter"
	rl "goldchip_backend/internal/game/roulette"
	"goldchip_backend/internal/middleware"
	"goldchip_backend/internal/service"
	"goldchip_backend/pkg/req"
	"goldchip_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.RouletteService
}

type Handler struct {
	serv service.RouletteService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Play resolves all submitted bets against a single spin.
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	requestBody, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	outcome, err := h.serv.Play(r.Context(), userID, converter.ToRouletteBets(requestBody.Bets))
	if err != nil {
		switch {
		case errors.Is(err, rl.ErrInvalidBetFormat),
			errors.Is(err, rl.ErrInvalidBetType),
			errors.Is(err, rl.ErrInvalidBetAmount),
			errors.Is(err, rl.ErrInvalidBetValue),
			errors.Is(err, service.ErrInsufficientBalance):
			resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
		default:
			logrus.WithError(err).Error("roulette play failed")
			resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoulettePlayResponse(outcome))
}

// BetTypes returns static bet metadata and the wheel layout.
func (h *Handler) BetTypes(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, h.serv.BetTypes())
}
