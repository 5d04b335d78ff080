// ============================================================================
// inside - front end for a small expression language
// ============================================================================
//
// Package:     journal
// Description: SQLite implementation of the journal store
// Author:      dipakw
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package journal

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
	mdwlog "github.com/dipakw/inside/foundation/core/log"
)

// DefaultListLimit caps List when the filter sets no limit
const DefaultListLimit = 50

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	path   string
	logger *mdwlog.Logger
}

// Config holds configuration for the SQLite store
type Config struct {
	Path   string
	Logger *mdwlog.Logger
}

// DefaultPath returns the journal location under the user cache directory
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".", "inside-journal.db")
	}
	return filepath.Join(dir, "inside", "journal.db")
}

// Open creates or opens a journal database
func Open(cfg Config) (*SQLiteStore, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultPath()
	}
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.Nop()
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, storageError(err, "failed to create journal directory", "journal.Open")
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, storageError(err, "failed to open journal", "journal.Open")
	}

	store := &SQLiteStore{
		db:     db,
		path:   cfg.Path,
		logger: cfg.Logger.WithField("component", "journal"),
	}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "failed to initialize journal schema", "journal.Open")
	}

	store.logger.Debug("journal opened", mdwlog.Fields{"path": cfg.Path})
	return store, nil
}

// Path returns the database file location
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		digest TEXT NOT NULL,
		ok INTEGER NOT NULL,
		statements INTEGER NOT NULL DEFAULT 0,
		stage TEXT,
		code TEXT,
		message TEXT,
		line INTEGER,
		"column" INTEGER,
		duration_ms REAL NOT NULL,
		request_id TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
	CREATE INDEX IF NOT EXISTS idx_runs_ok ON runs(ok);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores entry, filling in a missing ID and timestamp
func (s *SQLiteStore) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source, digest, ok, statements, stage, code, message, line, "column", duration_ms, request_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Source, entry.Digest, entry.OK, entry.Statements,
		entry.Stage, entry.Code, entry.Message, entry.Line, entry.Column,
		durationMillis(entry.Duration), entry.RequestID, entry.CreatedAt.UTC())
	if err != nil {
		return storageError(err, "failed to record run", "journal.Record").WithDetail("id", entry.ID)
	}

	s.logger.Debug("run recorded", mdwlog.Fields{"id": entry.ID, "source": entry.Source, "ok": entry.OK})
	return nil
}

// List returns entries matching filter, newest first
func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT ` + columns + ` FROM runs WHERE 1=1`
	var args []interface{}

	if filter.Source != "" {
		query += " AND source = ?"
		args = append(args, filter.Source)
	}
	if filter.FailedOnly {
		query += " AND ok = 0"
	}
	if !filter.Since.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, filter.Since.UTC())
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	query += " ORDER BY created_at DESC, rowid DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(err, "failed to list runs", "journal.List")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, storageError(err, "failed to read run", "journal.List")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to read runs", "journal.List")
	}
	return entries, nil
}

// Get returns the entry with the given ID. A unique ID prefix is accepted.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, mdwerror.New("run id is required").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("journal.Get")
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM runs WHERE substr(id, 1, length(?)) = ? LIMIT 2`, id, id)
	if err != nil {
		return nil, storageError(err, "failed to get run", "journal.Get")
	}
	defer rows.Close()

	var found []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, storageError(err, "failed to read run", "journal.Get")
		}
		if entry.ID == id {
			return entry, nil
		}
		found = append(found, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to read run", "journal.Get")
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return nil, mdwerror.Newf("run %s not found", id).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("journal.Get")
	default:
		return nil, mdwerror.Newf("run id prefix %s is ambiguous", id).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("journal.Get")
	}
}

// Stats returns journal totals. ByStage and ByCode count failed runs only.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{
		ByStage: make(map[string]int64),
		ByCode:  make(map[string]int64),
	}

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(CASE WHEN ok = 0 THEN 1 ELSE 0 END), 0) FROM runs`).
		Scan(&stats.Total, &stats.Failed)
	if err != nil {
		return nil, storageError(err, "failed to count runs", "journal.Stats")
	}

	if err := s.countBy(ctx, "stage", stats.ByStage); err != nil {
		return nil, err
	}
	if err := s.countBy(ctx, "code", stats.ByCode); err != nil {
		return nil, err
	}

	var last sql.NullString
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(created_at) FROM runs`).Scan(&last); err != nil {
		return nil, storageError(err, "failed to read last run", "journal.Stats")
	}
	if last.Valid {
		if t, ok := parseTimestamp(last.String); ok {
			stats.LastRun = t
		}
	}
	return stats, nil
}

func (s *SQLiteStore) countBy(ctx context.Context, column string, into map[string]int64) error {
	rows, err := s.db.QueryContext(ctx, `SELECT `+column+`, COUNT(*) FROM runs WHERE ok = 0 GROUP BY `+column)
	if err != nil {
		return storageError(err, "failed to group runs", "journal.Stats").WithDetail("column", column)
	}
	defer rows.Close()

	for rows.Next() {
		var key sql.NullString
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return storageError(err, "failed to read run group", "journal.Stats")
		}
		into[key.String] = count
	}
	return rows.Err()
}

// Prune removes entries older than olderThan and returns how many went
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, storageError(err, "failed to prune runs", "journal.Prune")
	}
	deleted, _ := result.RowsAffected()

	s.logger.Info("journal pruned", mdwlog.Fields{"deleted": deleted, "older_than": olderThan.String()})
	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

const columns = `id, source, digest, ok, statements, stage, code, message, line, "column", duration_ms, request_id, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var (
		e                       Entry
		stage, code, msg, reqID sql.NullString
		line, column            sql.NullInt64
		durationMs              float64
	)

	err := row.Scan(&e.ID, &e.Source, &e.Digest, &e.OK, &e.Statements,
		&stage, &code, &msg, &line, &column, &durationMs, &reqID, &e.CreatedAt)
	if err != nil {
		return nil, err
	}

	e.Stage = stage.String
	e.Code = code.String
	e.Message = msg.String
	e.RequestID = reqID.String
	e.Line = int(line.Int64)
	e.Column = int(column.Int64)
	e.Duration = time.Duration(durationMs * float64(time.Millisecond))
	return &e, nil
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func storageError(err error, message, operation string) *mdwerror.Error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return mdwerror.Wrap(err, message).WithOperation(operation)
	}
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeStorageError).
		WithOperation(operation)
}
