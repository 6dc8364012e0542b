package stats

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"goldchip_backend/internal/converter"
	"goldchip_backend/internal/middleware"
	"goldchip_backend/internal/service"
	"goldchip_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.StatsService
}

type Handler struct {
	serv service.StatsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Get returns the authenticated player's win/loss record for one game.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	game := chi.URLParam(r, "game")

	gameStats, err := h.serv.Get(r.Context(), userID, game)
	if err != nil {
		if errors.Is(err, service.ErrUnknownGame) {
			resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		logrus.WithError(err).Error("stats query failed")
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(game, gameStats))
}
