package middleware

import (
	"net/http"

	"hunarhub/internal/data/repository"
	"hunarhub/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the session cookie and loads the account behind it.
// User id, name and role are placed into the request context.
func AuthSession(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	cookieName string,
	logger *zap.Logger,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			token := cookie.Value

			// Find valid session
			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			// Load the account; role lives on the user row, not the session
			user, err := userRepo.FindByID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to load session user",
					zap.Error(err),
					zap.String("user_id", session.UserID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Name, string(user.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose session role differs from the wanted
// one. Must run after AuthSession.
func RequireRole(role string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if current != role {
				logger.Warn("Role check failed",
					zap.String("required", role),
					zap.String("actual", current),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
