package leaderboard

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"goldchip_backend/internal/converter"
	repo "goldchip_backend/internal/repository/leaderboard_repo"
	"goldchip_backend/internal/service"
	"goldchip_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.LeaderboardService
}

type Handler struct {
	serv service.LeaderboardService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Top returns the ranked players. Category defaults to "players",
// otherwise a game name; sort is a query parameter.
func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "players"
	}
	sortBy := r.URL.Query().Get("sort")

	entries, err := h.serv.Top(r.Context(), category, sortBy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownGame), errors.Is(err, repo.ErrInvalidSort):
			resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
		default:
			logrus.WithError(err).Error("leaderboard query failed")
			resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(category, sortBy, entries))
}
