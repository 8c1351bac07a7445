package report

import "fmt"

func (s *Store) ensureSchema() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS reports (
  id TEXT PRIMARY KEY,
  kind TEXT NOT NULL DEFAULT 'claim',
  subject TEXT NOT NULL DEFAULT '',
  verdict TEXT NOT NULL DEFAULT '',
  confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
  category TEXT NOT NULL DEFAULT '',
  source_url TEXT NOT NULL DEFAULT '',
  media_url TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports (created_at DESC);
`)
	})
	return s.schemaErr
}

func (s *Store) addDB(r Report) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	_, err := s.db.Exec(`
INSERT INTO reports (id, kind, subject, verdict, confidence, category, source_url, media_url, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (id)
DO UPDATE SET verdict=EXCLUDED.verdict,
  confidence=EXCLUDED.confidence,
  media_url=EXCLUDED.media_url`,
		r.ID, r.Kind, r.Subject, r.Verdict, r.Confidence, r.Category, r.SourceURL, r.MediaURL, r.CreatedAt)
	return err
}

func (s *Store) getDB(id string) (Report, bool) {
	if err := s.ensureSchema(); err != nil {
		return Report{}, false
	}
	row := s.db.QueryRow(`SELECT id, kind, subject, verdict, confidence, category, source_url, media_url, created_at
FROM reports WHERE id = $1`, id)
	var r Report
	if err := row.Scan(&r.ID, &r.Kind, &r.Subject, &r.Verdict, &r.Confidence, &r.Category, &r.SourceURL, &r.MediaURL, &r.CreatedAt); err != nil {
		return Report{}, false
	}
	return normalizeReport(r), true
}

func (s *Store) listDB(verdict string, offset, limit int) ([]Report, int) {
	if err := s.ensureSchema(); err != nil {
		return nil, 0
	}
	where := ""
	args := []any{}
	if verdict != "" {
		where = " WHERE verdict = $1"
		args = append(args, verdict)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM reports`+where, args...).Scan(&total); err != nil {
		return nil, 0
	}

	query := fmt.Sprintf(`SELECT id, kind, subject, verdict, confidence, category, source_url, media_url, created_at
FROM reports%s ORDER BY created_at DESC OFFSET $%d LIMIT $%d`, where, len(args)+1, len(args)+2)
	rows, err := s.db.Query(query, append(args, offset, limit)...)
	if err != nil {
		return nil, total
	}
	defer rows.Close()
	out := make([]Report, 0, limit)
	for rows.Next() {
		var r Report
		if err := rows.Scan(&r.ID, &r.Kind, &r.Subject, &r.Verdict, &r.Confidence, &r.Category, &r.SourceURL, &r.MediaURL, &r.CreatedAt); err != nil {
			continue
		}
		out = append(out, normalizeReport(r))
	}
	return out, total
}

func (s *Store) countDB() int {
	if err := s.ensureSchema(); err != nil {
		return 0
	}
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM reports`).Scan(&n); err != nil {
		return 0
	}
	return n
}
