package blackjack

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	dto "goldchip_backend/internal/api/dto/blackjack"
	"goldchip_backend/internal/converter"
	bj "goldchip_backend/internal/game/blackjack"
	"goldchip_backend/internal/middleware"
	"goldchip_backend/internal/service"
	"goldchip_backend/pkg/req"
	"goldchip_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.BlackjackService
}

type Handler struct {
	serv service.BlackjackService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Start deals a new round, deducting the stake up front.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	requestBody, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	outcome, err := h.serv.Start(r.Context(), userID, requestBody.Bet)
	if err != nil {
		writeGameError(w, err, "blackjack start failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackStartResponse(outcome))
}

// Hit draws one card for the player.
func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	outcome, err := h.serv.Hit(r.Context(), userID)
	if err != nil {
		writeGameError(w, err, "blackjack hit failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackHitResponse(outcome))
}

// Stand resolves the dealer's hand and settles the round.
func (h *Handler) Stand(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	outcome, err := h.serv.Stand(r.Context(), userID)
	if err != nil {
		writeGameError(w, err, "blackjack stand failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackStandResponse(outcome))
}

// State returns the current round without mutating it.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	snapshot, err := h.serv.State(r.Context(), userID)
	if err != nil {
		writeGameError(w, err, "blackjack state failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackStateResponse(snapshot))
}

func writeGameError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, bj.ErrInvalidBet):
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInsufficientBalance):
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoActiveRound):
		resp.WriteJSONError(w, http.StatusConflict, err.Error())
	default:
		logrus.WithError(err).Error(logMsg)
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
