package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

func (s *Store) ensureLoadedFile() {
	s.loadOnce.Do(func() {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var rows []Report
		if err := json.Unmarshal(b, &rows); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, row := range rows {
			id := strings.TrimSpace(row.ID)
			if id == "" {
				continue
			}
			if _, seen := s.byID[id]; !seen {
				s.order = append(s.order, id)
			}
			s.byID[id] = normalizeReport(row)
		}
	})
}

func (s *Store) saveFileLocked() {
	rows := make([]Report, 0, len(s.order))
	for _, id := range s.order {
		rows = append(rows, s.byID[id])
	}
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = os.WriteFile(s.path, b, 0o644)
}

func (s *Store) addFile(r Report) error {
	s.ensureLoadedFile()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.byID[r.ID]; !seen {
		s.order = append(s.order, r.ID)
	}
	s.byID[r.ID] = r
	s.saveFileLocked()
	return nil
}

func (s *Store) getFile(id string) (Report, bool) {
	s.ensureLoadedFile()
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	return r, ok
}

func (s *Store) listFile(verdict string, offset, limit int) ([]Report, int) {
	s.ensureLoadedFile()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Report, 0, limit)
	total := 0
	// order is append-only, so walk it back to front for newest first.
	for i := len(s.order) - 1; i >= 0; i-- {
		r := s.byID[s.order[i]]
		if verdict != "" && r.Verdict != verdict {
			continue
		}
		if total >= offset && len(out) < limit {
			out = append(out, r)
		}
		total++
	}
	return out, total
}

func (s *Store) countFile() int {
	s.ensureLoadedFile()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
