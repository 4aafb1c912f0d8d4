package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rdesai/chatrelay/internal/auth"
)

type contextKey string

const UserKey contextKey = "user"

// Auth rejects requests without a valid bearer token and stores the caller's
// email in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "Access denied", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Access denied", http.StatusUnauthorized)
			return
		}

		email, err := auth.VerifyToken(parts[1])
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
