package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"truthguard/internal/deepfake"
	"truthguard/internal/report"
)

const (
	reportsDefaultLimit = 10
	reportsMaxLimit     = 100
)

// ReportsHandler serves the report archive: paginated list, by-id lookup,
// and export of a report or its archived media.
type ReportsHandler struct {
	reports *report.Store
	media   MediaFetcher
}

func NewReportsHandler(reports *report.Store, media MediaFetcher) *ReportsHandler {
	return &ReportsHandler{reports: reports, media: media}
}

type reportListResponse struct {
	Items []report.Report `json:"items"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Pages int             `json:"pages"`
}

type reportDetail struct {
	report.Report
	DownloadURL string `json:"download_url,omitempty"`
}

func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(r, "limit", reportsDefaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > reportsMaxLimit {
		limit = reportsMaxLimit
	}
	verdict := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("verdict")))
	if verdict == "ALL" {
		verdict = ""
	}

	items, total := h.reports.List(verdict, (page-1)*limit, limit)
	if items == nil {
		items = []report.Report{}
	}
	pages := 0
	if total > 0 {
		pages = (total + limit - 1) / limit
	}
	writeJSON(w, http.StatusOK, reportListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	})
}

func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.reports.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Report not found")
		return
	}

	detail := reportDetail{Report: rep}
	if rep.MediaURL != "" && h.media != nil {
		url, err := h.media.PresignedURL(r.Context(), rep.MediaURL)
		if err != nil {
			log.Printf("presign media %s: %v", rep.MediaURL, err)
		} else {
			detail.DownloadURL = url
		}
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *ReportsHandler) Download(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.reports.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Report not found")
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	switch format {
	case "", "json":
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "report-"+rep.ID+".json"))
		writeJSON(w, http.StatusOK, rep)
	case "media":
		if rep.MediaURL == "" || h.media == nil {
			writeError(w, http.StatusNotFound, "Report has no archived media")
			return
		}
		data, err := h.media.Fetch(r.Context(), rep.MediaURL)
		if err != nil {
			log.Printf("fetch media %s: %v", rep.MediaURL, err)
			writeError(w, http.StatusNotFound, "Archived media unavailable")
			return
		}
		filename := rep.Subject
		if filename == "" {
			filename = rep.ID
		}
		w.Header().Set("Content-Type", deepfake.MIMEFromFilename(filename))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			log.Printf("write media response: %v", err)
		}
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported format %q. Use 'json' or 'media'.", format))
	}
}

func queryInt(r *http.Request, key string, def int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
