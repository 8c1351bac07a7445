package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"truthguard/internal/report"
)

type stubFetcher struct {
	data       []byte
	fetchErr   error
	presignErr error
	lastKey    string
}

func (s *stubFetcher) Fetch(_ context.Context, key string) ([]byte, error) {
	s.lastKey = key
	return s.data, s.fetchErr
}

func (s *stubFetcher) PresignedURL(_ context.Context, key string) (string, error) {
	if s.presignErr != nil {
		return "", s.presignErr
	}
	return "https://media.example.com/" + key + "?sig=abc", nil
}

func seedReports(t *testing.T, s *report.Store, n int) {
	t.Helper()
	base := time.Now().UTC()
	for i := 0; i < n; i++ {
		verdict := "TRUE"
		if i%2 == 0 {
			verdict = "FALSE"
		}
		if err := s.Add(report.Report{
			ID:        fmt.Sprintf("r-%d", i),
			Kind:      report.KindClaim,
			Subject:   fmt.Sprintf("claim %d", i),
			Verdict:   verdict,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
}

func getPath(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func reportsMux(h *ReportsHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/reports", h.List)
	mux.HandleFunc("GET /api/v1/reports/{id}", h.Get)
	mux.HandleFunc("GET /api/v1/reports/{id}/download", h.Download)
	return mux
}

func TestReports_ListPaginatesNewestFirst(t *testing.T) {
	store := newReportStore(t)
	seedReports(t, store, 7)
	mux := reportsMux(NewReportsHandler(store, nil))

	rec := getPath(t, mux, "/api/v1/reports?page=2&limit=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp reportListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 7 || resp.Page != 2 || resp.Limit != 3 || resp.Pages != 3 {
		t.Fatalf("meta = %+v", resp)
	}
	if len(resp.Items) != 3 || resp.Items[0].ID != "r-3" {
		t.Fatalf("items = %+v", resp.Items)
	}
}

func TestReports_ListVerdictFilter(t *testing.T) {
	store := newReportStore(t)
	seedReports(t, store, 6)
	mux := reportsMux(NewReportsHandler(store, nil))

	rec := getPath(t, mux, "/api/v1/reports?verdict=false")
	var resp reportListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 3 {
		t.Fatalf("total = %d", resp.Total)
	}
	for _, item := range resp.Items {
		if item.Verdict != "FALSE" {
			t.Fatalf("filter leaked %q", item.Verdict)
		}
	}

	rec = getPath(t, mux, "/api/v1/reports?verdict=ALL")
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode all: %v", err)
	}
	if resp.Total != 6 {
		t.Fatalf("ALL total = %d", resp.Total)
	}
}

func TestReports_GetIncludesDownloadURL(t *testing.T) {
	store := newReportStore(t)
	if err := store.Add(report.Report{
		ID:       "m-1",
		Kind:     report.KindMedia,
		Subject:  "clip.mp4",
		Verdict:  "FAKE",
		MediaURL: "m-1/clip.mp4",
	}); err != nil {
		t.Fatalf("add: %v", err)
	}
	mux := reportsMux(NewReportsHandler(store, &stubFetcher{}))

	rec := getPath(t, mux, "/api/v1/reports/m-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var detail struct {
		ID          string `json:"id"`
		DownloadURL string `json:"download_url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.ID != "m-1" {
		t.Fatalf("id = %q", detail.ID)
	}
	if detail.DownloadURL != "https://media.example.com/m-1/clip.mp4?sig=abc" {
		t.Fatalf("download_url = %q", detail.DownloadURL)
	}

	if rec := getPath(t, mux, "/api/v1/reports/missing"); rec.Code != http.StatusNotFound {
		t.Fatalf("missing report: %d", rec.Code)
	}
}

func TestReports_DownloadJSONAttachment(t *testing.T) {
	store := newReportStore(t)
	if err := store.Add(report.Report{ID: "r-1", Verdict: "TRUE"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	mux := reportsMux(NewReportsHandler(store, nil))

	rec := getPath(t, mux, "/api/v1/reports/r-1/download")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="report-r-1.json"` {
		t.Fatalf("disposition = %q", got)
	}
	var rep report.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.Verdict != "TRUE" {
		t.Fatalf("verdict = %q", rep.Verdict)
	}
}

func TestReports_DownloadArchivedMedia(t *testing.T) {
	store := newReportStore(t)
	if err := store.Add(report.Report{
		ID:       "m-1",
		Kind:     report.KindMedia,
		Subject:  "clip.mp4",
		MediaURL: "m-1/clip.mp4",
	}); err != nil {
		t.Fatalf("add: %v", err)
	}
	fetcher := &stubFetcher{data: []byte("raw-video-bytes")}
	mux := reportsMux(NewReportsHandler(store, fetcher))

	rec := getPath(t, mux, "/api/v1/reports/m-1/download?format=media")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if fetcher.lastKey != "m-1/clip.mp4" {
		t.Fatalf("fetched key = %q", fetcher.lastKey)
	}
	if rec.Body.String() != "raw-video-bytes" {
		t.Fatalf("body = %q", rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "video/mp4" {
		t.Fatalf("content type = %q", got)
	}

	// A claim report has no archived media to stream.
	if err := store.Add(report.Report{ID: "r-2", Kind: report.KindClaim}); err != nil {
		t.Fatalf("add claim: %v", err)
	}
	if rec := getPath(t, mux, "/api/v1/reports/r-2/download?format=media"); rec.Code != http.StatusNotFound {
		t.Fatalf("claim media download: %d", rec.Code)
	}
}

func TestReports_DownloadUnsupportedFormat(t *testing.T) {
	store := newReportStore(t)
	if err := store.Add(report.Report{ID: "r-1"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	mux := reportsMux(NewReportsHandler(store, nil))

	if rec := getPath(t, mux, "/api/v1/reports/r-1/download?format=pdf"); rec.Code != http.StatusBadRequest {
		t.Fatalf("pdf format: %d", rec.Code)
	}
}
