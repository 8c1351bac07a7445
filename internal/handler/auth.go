package handler

import (
	"net/http"
	"strings"
	"time"

	"truthguard/internal/middleware"
)

// AuthHandler issues bearer tokens. There is no user database; a token
// names its subject and lets reports be attributed across sessions.
type AuthHandler struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthHandler(secret []byte, ttl time.Duration) *AuthHandler {
	return &AuthHandler{secret: secret, ttl: ttl}
}

type tokenRequest struct {
	Subject string `json:"subject"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if len(h.secret) == 0 {
		writeError(w, http.StatusServiceUnavailable, "auth is not configured")
		return
	}
	var req tokenRequest
	if !readJSON(w, r, &req) {
		return
	}
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		writeError(w, http.StatusUnprocessableEntity, "subject is required")
		return
	}

	token, err := middleware.IssueToken(h.secret, subject, h.ttl)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(h.ttl.Seconds()),
	})
}
