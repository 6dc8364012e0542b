package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"goldchip_backend/internal/model"
	"goldchip_backend/pkg/resp"
	"goldchip_backend/pkg/token"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	claimsKey
)

// UserIDFromContext returns the authenticated user's id set by Auth.
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// ClaimsFromContext returns the verified token claims set by Auth.
func ClaimsFromContext(ctx context.Context) (*model.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*model.UserClaims)
	return claims, ok
}

// Auth verifies the access token and puts the user identity on the
// request context. The token is read from the access_token cookie,
// falling back to the Authorization header.
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := tokenFromRequest(r)
			if tokenStr == "" {
				resp.WriteJSONError(w, http.StatusUnauthorized, "missing access token")
				return
			}

			claims, err := token.VerifyToken(tokenStr, secretKey)
			if err != nil {
				resp.WriteJSONError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			userID, err := strconv.Atoi(claims.ID)
			if err != nil {
				resp.WriteJSONError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, claimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose token does not carry the admin
// role. Must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != model.RoleAdmin {
			resp.WriteJSONError(w, http.StatusForbidden, "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}
