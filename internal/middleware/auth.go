package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

// subjectKey carries the authenticated subject through the request context.
const subjectKey ctxKey = "auth.subject"

// Subject returns the authenticated subject of r, if any.
func Subject(r *http.Request) string {
	s, _ := r.Context().Value(subjectKey).(string)
	return s
}

// IssueToken signs an HS256 token for subject.
func IssueToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	})
	return tok.SignedString(secret)
}

func parseBearer(secret []byte, r *http.Request) (string, bool) {
	bearer := r.Header.Get("Authorization")
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}
	token, err := jwt.Parse(bearer[7:], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, _ := claims["sub"].(string)
	return sub, true
}

// JWT rejects requests without a valid bearer token. An empty secret
// disables enforcement entirely; local setups run open.
func JWT(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(secret) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			sub, ok := parseBearer(secret, r)
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), subjectKey, sub)))
		})
	}
}

// OptionalJWT attaches the subject when a valid token is present but never
// rejects. Anonymous reports are stored without an owner.
func OptionalJWT(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(secret) > 0 {
				if sub, ok := parseBearer(secret, r); ok {
					r = r.WithContext(context.WithValue(r.Context(), subjectKey, sub))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
