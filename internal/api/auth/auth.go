package auth

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	dto "goldchip_backend/internal/api/dto/auth"
	"goldchip_backend/internal/converter"
	"goldchip_backend/internal/middleware"
	"goldchip_backend/internal/service"
	"goldchip_backend/pkg/req"
	"goldchip_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Register creates a player account, opens a session and returns the
// access token both in the body and as a cookie.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Register(r.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			resp.WriteJSONError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			resp.WriteJSONError(w, http.StatusBadRequest, "username and password are required")
		default:
			logrus.WithError(err).Error("register failed")
			resp.WriteJSONError(w, http.StatusInternalServerError, "register failed")
		}
		return
	}

	setAuthCookies(w, data.AccessToken, data.RefreshToken, data.SessionID)

	resp.WriteJSONResponse(w, http.StatusCreated, dto.AuthResponse{AccessToken: data.AccessToken})
}

// Login opens a session and returns the access token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			resp.WriteJSONError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrUserBanned):
			resp.WriteJSONError(w, http.StatusForbidden, err.Error())
		default:
			logrus.WithError(err).Error("login failed")
			resp.WriteJSONError(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	setAuthCookies(w, data.AccessToken, data.RefreshToken, data.SessionID)

	resp.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{AccessToken: data.AccessToken})
}

// Refresh exchanges the refresh token cookie for a fresh access token.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie("session_id")
	if err != nil {
		resp.WriteJSONError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}

	refreshCookie, err := r.Cookie("refresh_token")
	if err != nil {
		resp.WriteJSONError(w, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), sessionCookie.Value, refreshCookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			resp.WriteJSONError(w, http.StatusUnauthorized, "refresh failed")
		case errors.Is(err, service.ErrUserBanned):
			resp.WriteJSONError(w, http.StatusForbidden, err.Error())
		default:
			logrus.WithError(err).Error("refresh failed")
			resp.WriteJSONError(w, http.StatusInternalServerError, "refresh failed")
		}
		return
	}

	setAccessTokenCookie(w, accessToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{AccessToken: accessToken})
}

// Logout closes the session and clears the auth cookies.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie("session_id"); err == nil {
		if err := h.serv.Logout(r.Context(), c.Value); err != nil {
			logrus.WithError(err).Error("logout failed")
			resp.WriteJSONError(w, http.StatusInternalServerError, "logout failed")
			return
		}
	}

	deleteAuthCookies(w)

	w.WriteHeader(http.StatusNoContent)
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.serv.Me(r.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("me failed")
		resp.WriteJSONError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMeResponse(user))
}

func setAuthCookies(w http.ResponseWriter, accessToken, refreshToken, sessionID string) {
	setAccessTokenCookie(w, accessToken)

	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/api/auth",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   30 * 24 * 60 * 60,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   30 * 24 * 60 * 60,
	})
}

func setAccessTokenCookie(w http.ResponseWriter, accessToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   15 * 60,
	})
}

func deleteAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{"access_token", "refresh_token", "session_id"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
