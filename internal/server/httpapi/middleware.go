package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"wallboard/internal/common"
	"wallboard/internal/server/models"
)

type ctxKeyUser struct{}

func withUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser{}, user)
}

func userFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(ctxKeyUser{}).(*models.User)
	return user, ok
}

// requireAuth verifies the bearer token and re-resolves its subject against
// the user store before letting the request through. A token for a user
// that no longer exists is rejected the same way as a bad token.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		authz := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(authz, prefix) {
			s.writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		token := strings.TrimSpace(authz[len(prefix):])

		user, err := s.users.Authenticate(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrTokenExpired):
				s.writeError(w, http.StatusUnauthorized, "Token has expired")
			case errors.Is(err, common.ErrTokenInvalid):
				s.writeError(w, http.StatusUnauthorized, "Invalid token")
			case errors.Is(err, common.ErrNotFound):
				s.writeError(w, http.StatusUnauthorized, "User not found")
			default:
				s.logger.Error(r.Context(), "authentication failure", "error", err.Error())
				s.writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

type statusRW struct {
	http.ResponseWriter
	status int
}

func (w *statusRW) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// withAccessLog logs METHOD PATH -> STATUS with the request duration.
func (s *Server) withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusRW{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).Truncate(time.Millisecond).String(),
		)
	})
}
