// Package report persists verdict reports produced by the debate and
// media pipelines. Two backends share one interface: Postgres when a DSN
// is configured, a JSON file otherwise.
package report

import (
	"strings"
	"time"
)

// Kinds of report.
const (
	KindClaim = "claim"
	KindMedia = "media"
)

// Report is one stored analysis outcome.
type Report struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Subject    string    `json:"subject"`
	Verdict    string    `json:"verdict"`
	Confidence float64   `json:"confidence"`
	Category   string    `json:"category,omitempty"`
	SourceURL  string    `json:"source_url,omitempty"`
	MediaURL   string    `json:"media_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func normalizeReport(r Report) Report {
	r.ID = strings.TrimSpace(r.ID)
	r.Kind = strings.TrimSpace(r.Kind)
	if r.Kind == "" {
		r.Kind = KindClaim
	}
	r.Subject = strings.TrimSpace(r.Subject)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return r
}
