package handler

import (
	"log"
	"net/http"
	"strings"
	"unicode/utf8"
)

const (
	triageMinChars = 10
	triageMaxChars = 2000
)

// TriageHandler serves the extension's quick-check endpoint.
type TriageHandler struct {
	svc Triager
}

func NewTriageHandler(svc Triager) *TriageHandler {
	return &TriageHandler{svc: svc}
}

type triageRequest struct {
	Text string `json:"text"`
}

func (h *TriageHandler) Triage(w http.ResponseWriter, r *http.Request) {
	var req triageRequest
	if !readJSON(w, r, &req) {
		return
	}
	text := strings.TrimSpace(req.Text)
	if n := utf8.RuneCountInString(text); n < triageMinChars || n > triageMaxChars {
		writeError(w, http.StatusUnprocessableEntity, "text must be between 10 and 2000 characters")
		return
	}

	res, err := h.svc.Run(r.Context(), text)
	if err != nil {
		log.Printf("triage pipeline error: %v", err)
		writeError(w, http.StatusInternalServerError, "AI pipeline error")
		return
	}
	writeJSON(w, http.StatusOK, res)
}
