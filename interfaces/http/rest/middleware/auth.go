package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"hai-backend/pkg/auth"
)

// Claims are the token claims the API cares about.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Authenticate validates the bearer token and puts the caller's
// identity on the request context.
func Authenticate(secret, issuer string, logger *zap.Logger) func(next http.Handler) http.Handler {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				respondUnauthorized(w, "Missing authorization header")
				return
			}

			claims := &Claims{}
			token, err := parser.ParseWithClaims(
				strings.TrimPrefix(authHeader, "Bearer "), claims, keyFunc)
			if err != nil || !token.Valid {
				logger.Warn("Rejected token", zap.Error(err))
				respondUnauthorized(w, "Invalid token")
				return
			}
			if claims.Subject == "" {
				respondUnauthorized(w, "Token has no subject")
				return
			}

			ctx := auth.WithUser(r.Context(), &auth.UserContext{
				UserID: claims.Subject,
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    http.StatusUnauthorized,
	})
}
