package handler

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"truthguard/internal/cache/memory"
	"truthguard/internal/debate"
	"truthguard/internal/middleware"
	"truthguard/internal/report"
)

const (
	claimCacheSize = 512
	claimCacheTTL  = 24 * time.Hour
)

// FactCheckHandler runs the debate pipeline and persists the outcome.
type FactCheckHandler struct {
	pipeline ClaimChecker
	reports  *report.Store
	cache    *memory.LRUTTL[string, debate.Result]
}

func NewFactCheckHandler(pipeline ClaimChecker, reports *report.Store) *FactCheckHandler {
	return &FactCheckHandler{
		pipeline: pipeline,
		reports:  reports,
		cache:    memory.NewLRUTTL[string, debate.Result](claimCacheSize, claimCacheTTL),
	}
}

type factCheckRequest struct {
	Text    string `json:"text"`
	Context string `json:"context,omitempty"`
}

type factCheckResponse struct {
	ReportID string        `json:"report_id"`
	Cached   bool          `json:"cached"`
	Report   reportPayload `json:"report"`
}

type reportPayload struct {
	SourceRef  string        `json:"source_ref"`
	Verdict    string        `json:"verdict"`
	Confidence int           `json:"confidence"`
	Summary    string        `json:"summary"`
	Category   string        `json:"category"`
	UserID     string        `json:"user_id,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	Debate     debate.Result `json:"debate"`
}

func (h *FactCheckHandler) FactCheck(w http.ResponseWriter, r *http.Request) {
	var req factCheckRequest
	if !readJSON(w, r, &req) {
		return
	}
	content := strings.TrimSpace(req.Text)
	if content == "" {
		writeError(w, http.StatusUnprocessableEntity, "text is required")
		return
	}
	if ctx := strings.TrimSpace(req.Context); ctx != "" {
		content = content + "\n\nAdditional context: " + ctx
	}

	key := memory.HashKey([]byte(content))
	result, cached := h.cache.Get(key)
	if !cached {
		res, err := h.pipeline.Run(r.Context(), content)
		if err != nil {
			log.Printf("debate pipeline error: %v", err)
			writeError(w, http.StatusInternalServerError, "AI pipeline error")
			return
		}
		result = *res
		h.cache.Add(key, result)
	}

	reportID := uuid.NewString()
	now := time.Now().UTC()
	if err := h.reports.Add(report.Report{
		ID:         reportID,
		Kind:       report.KindClaim,
		Subject:    truncateRunes(result.ClaimText, 500),
		Verdict:    result.Judgment.Verdict,
		Confidence: float64(result.Judgment.Confidence) / 100,
		Category:   result.Judgment.Category,
		CreatedAt:  now,
	}); err != nil {
		log.Printf("persist claim report: %v", err)
	}

	writeJSON(w, http.StatusCreated, factCheckResponse{
		ReportID: reportID,
		Cached:   cached,
		Report: reportPayload{
			SourceRef:  truncateRunes(content, 80),
			Verdict:    result.Judgment.Verdict,
			Confidence: result.Judgment.Confidence,
			Summary:    result.Judgment.Summary,
			Category:   result.Judgment.Category,
			UserID:     middleware.Subject(r),
			CreatedAt:  now,
			Debate:     result,
		},
	})
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
