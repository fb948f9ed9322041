package middleware

import (
	"DocKeeper/internal/auth"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "user_id"

// GetUserIDFromContext достаёт id пользователя, положенный WithAuth.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithAuth проверяет bearer-токен из заголовка Authorization и кладёт
// id пользователя в контекст запроса. Запрос без токена или с невалидным
// токеном отклоняется с 401 — дальше хендлеров он не проходит.
func WithAuth(tm *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeAuthError(w, "access denied. no authentication token provided.")
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			userID, err := tm.Verify(raw)
			if err != nil {
				writeAuthError(w, "invalid or expired token. please log in again.")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
