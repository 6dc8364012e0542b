package slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	dto "goldchip_backend/internal/api/dto/slots"
	"goldchip_backend/internal/converter"
	sl "goldchip_backend/internal/game/slots"
	"goldchip_backend/internal/middleware"
	"goldchip_backend/internal/service"
	"goldchip_backend/pkg/req"
	"goldchip_backend/pkg/resp"
)

const maxSimulationSpins = 1_000_000

type HandlerDeps struct {
	Serv service.SlotsService
}

type Handler struct {
	serv service.SlotsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Play runs one spin for the authenticated player.
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

	outcome, err := h.serv.Play(r.Context(), userID, requestBody.Bet)
	if err != nil {
		switch {
		case errors.Is(err, sl.ErrInvalidBet), errors.Is(err, service.ErrInsufficientBalance):
			resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
		default:
			logrus.WithError(err).Error("slots play failed")
			resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotsPlayResponse(outcome))
}

// Paytable returns the machine's payout schedule.
func (h *Handler) Paytable(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, h.serv.Paytable())
}

// Probabilities returns per-symbol draw probabilities.
func (h *Handler) Probabilities(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, h.serv.Probabilities())
}

// Simulate runs free spins for statistics; spins is a query parameter
// capped to keep the request bounded.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	spins := 1000
	if raw := r.URL.Query().Get("spins"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxSimulationSpins {
			resp.WriteJSONError(w, http.StatusBadRequest, "spins must be between 1 and 1000000")
			return
		}
		spins = n
	}

	result, err := h.serv.Simulate(spins)
	if err != nil {
		logrus.WithError(err).Error("slots simulation failed")
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}
