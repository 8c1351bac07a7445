package handler

import (
	"encoding/base64"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"truthguard/internal/cache/memory"
	"truthguard/internal/deepfake"
	"truthguard/internal/report"
)

const (
	// ~50 MB of media is ~67 MB of base64.
	maxMediaB64Chars = 67_000_000

	mediaCacheSize = 256
	mediaCacheTTL  = 24 * time.Hour
)

// DeepfakeHandler runs the media pipeline, persists the verdict, and
// archives the analysed bytes when an archiver is configured.
type DeepfakeHandler struct {
	pipeline MediaAnalyzer
	reports  *report.Store
	archive  MediaArchiver
	cache    *memory.LRUTTL[string, deepfake.Verdict]
}

func NewDeepfakeHandler(pipeline MediaAnalyzer, reports *report.Store, archive MediaArchiver) *DeepfakeHandler {
	return &DeepfakeHandler{
		pipeline: pipeline,
		reports:  reports,
		archive:  archive,
		cache:    memory.NewLRUTTL[string, deepfake.Verdict](mediaCacheSize, mediaCacheTTL),
	}
}

type deepfakeRequest struct {
	MediaB64 string `json:"media_b64"`
	Filename string `json:"filename"`
}

type deepfakeResponse struct {
	AnalysisID string                   `json:"analysis_id"`
	MediaType  string                   `json:"media_type"`
	IsFake     bool                     `json:"is_deepfake"`
	Confidence float64                  `json:"confidence"`
	Label      string                   `json:"verdict_label"`
	Reasoning  string                   `json:"reasoning"`
	Stages     []deepfake.AnalysisStage `json:"stages"`
	ArchiveKey string                   `json:"archive_key,omitempty"`
}

func (h *DeepfakeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req deepfakeRequest
	if !readJSON(w, r, &req) {
		return
	}
	b64 := strings.TrimSpace(req.MediaB64)
	if b64 == "" {
		writeError(w, http.StatusUnprocessableEntity, "media_b64 is required")
		return
	}
	if len(b64) > maxMediaB64Chars {
		writeError(w, http.StatusRequestEntityTooLarge, "media exceeds the 50 MB file size limit")
		return
	}

	media, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "media_b64 is not valid base64")
		return
	}
	mime := deepfake.MIMEFromFilename(req.Filename)

	key := memory.HashKey(media, []byte(mime))
	verdict, cached := h.cache.Get(key)
	if !cached {
		v, err := h.pipeline.Run(r.Context(), media, mime)
		if err != nil {
			log.Printf("deepfake pipeline error: %v", err)
			writeJSON(w, http.StatusOK, deepfakeResponse{
				AnalysisID: uuid.NewString(),
				IsFake:     false,
				Confidence: 0.5,
				Label:      deepfake.LabelUncertain,
				Reasoning:  "Analysis failed, result inconclusive.",
				Stages:     []deepfake.AnalysisStage{},
			})
			return
		}
		verdict = *v
		h.cache.Add(key, verdict)
	}

	analysisID := uuid.NewString()
	archiveKey := ""
	if h.archive != nil {
		archiveKey, err = h.archive.Archive(r.Context(), analysisID, req.Filename, media, mime)
		if err != nil {
			log.Printf("media archive failed: %v", err)
			archiveKey = ""
		}
	}

	if err := h.reports.Add(report.Report{
		ID:         analysisID,
		Kind:       report.KindMedia,
		Subject:    strings.TrimSpace(req.Filename),
		Verdict:    verdict.Label,
		Confidence: verdict.Confidence,
		MediaURL:   archiveKey,
	}); err != nil {
		log.Printf("persist media report: %v", err)
	}

	writeJSON(w, http.StatusOK, deepfakeResponse{
		AnalysisID: analysisID,
		MediaType:  verdict.MediaType,
		IsFake:     verdict.IsFake,
		Confidence: verdict.Confidence,
		Label:      verdict.Label,
		Reasoning:  verdict.Reasoning,
		Stages:     verdict.Stages,
		ArchiveKey: archiveKey,
	})
}
