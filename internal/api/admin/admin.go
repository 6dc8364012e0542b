package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	dto "goldchip_backend/internal/api/dto/admin"
	"goldchip_backend/internal/repository"
	"goldchip_backend/internal/service"
	"goldchip_backend/pkg/req"
	"goldchip_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AdminService
}

type Handler struct {
	serv service.AdminService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Ban blocks a player from logging in.
func (h *Handler) Ban(w http.ResponseWriter, r *http.Request) {
	h.setBanned(w, r, h.serv.Ban, "ban failed")
}

// Unban restores a player's access.
func (h *Handler) Unban(w http.ResponseWriter, r *http.Request) {
	h.setBanned(w, r, h.serv.Unban, "unban failed")
}

func (h *Handler) setBanned(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, username string) error, logMsg string) {
	requestBody, err := req.Decode[dto.BanRequest](r.Body)
	if err != nil || requestBody.Username == "" {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := op(r.Context(), requestBody.Username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			resp.WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		logrus.WithError(err).Error(logMsg)
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
