package report

import (
	"database/sql"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const byIDCacheSize = 1024

// Store persists reports. With a db handle it speaks Postgres; without
// one it keeps an in-memory map flushed to a JSON file.
type Store struct {
	path string
	db   *sql.DB

	loadOnce sync.Once
	mu       sync.RWMutex
	byID     map[string]Report
	order    []string

	schemaOnce sync.Once
	schemaErr  error

	byIDCache *lru.Cache[string, Report]
}

// New returns a file-backed store rooted at path.
func New(path string) *Store {
	return &Store{
		path: path,
		byID: make(map[string]Report),
	}
}

// NewPostgres connects to dsn and verifies the connection before use.
func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, Report](byIDCacheSize)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, byIDCache: cache}, nil
}

// NewFromEnv prefers Postgres when dsn is set and reachable, and falls
// back to the file backend at path.
func NewFromEnv(dsn, path string) *Store {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return New(path)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New(path)
	}
	return s
}

// Close releases the database handle, if any.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add stores one report. The ID must already be set.
func (s *Store) Add(r Report) error {
	if s == nil {
		return nil
	}
	r = normalizeReport(r)
	if r.ID == "" {
		return nil
	}
	if s.db != nil {
		err := s.addDB(r)
		if err == nil && s.byIDCache != nil {
			s.byIDCache.Add(r.ID, r)
		}
		return err
	}
	return s.addFile(r)
}

// Get returns a report by ID.
func (s *Store) Get(id string) (Report, bool) {
	if s == nil {
		return Report{}, false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Report{}, false
	}
	if s.db != nil {
		if s.byIDCache != nil {
			if cached, ok := s.byIDCache.Get(id); ok {
				return cached, true
			}
		}
		r, ok := s.getDB(id)
		if ok && s.byIDCache != nil {
			s.byIDCache.Add(id, r)
		}
		return r, ok
	}
	return s.getFile(id)
}

// List returns one page of reports, newest first, plus the total number
// of matches. A non-empty verdict restricts the page to that verdict.
func (s *Store) List(verdict string, offset, limit int) ([]Report, int) {
	if s == nil || limit <= 0 {
		return nil, 0
	}
	if offset < 0 {
		offset = 0
	}
	verdict = strings.TrimSpace(verdict)
	if s.db != nil {
		return s.listDB(verdict, offset, limit)
	}
	return s.listFile(verdict, offset, limit)
}

// Count returns the number of stored reports.
func (s *Store) Count() int {
	if s == nil {
		return 0
	}
	if s.db != nil {
		return s.countDB()
	}
	return s.countFile()
}
