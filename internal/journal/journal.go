// ============================================================================
// inside - front end for a small expression language
// ============================================================================
//
// Package:     journal
// Description: Persistent record of compile runs
// Author:      dipakw
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package journal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dipakw/inside/foundation/lang"
)

// Entry is one recorded compile run
type Entry struct {
	ID         string        `json:"id" yaml:"id"`
	Source     string        `json:"source" yaml:"source"`
	Digest     string        `json:"digest" yaml:"digest"`
	OK         bool          `json:"ok" yaml:"ok"`
	Statements int           `json:"statements" yaml:"statements"`
	Stage      string        `json:"stage,omitempty" yaml:"stage,omitempty"`
	Code       string        `json:"code,omitempty" yaml:"code,omitempty"`
	Message    string        `json:"message,omitempty" yaml:"message,omitempty"`
	Line       int           `json:"line,omitempty" yaml:"line,omitempty"`
	Column     int           `json:"column,omitempty" yaml:"column,omitempty"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	RequestID  string        `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	CreatedAt  time.Time     `json:"created_at" yaml:"created_at"`
}

// Filter selects entries for List
type Filter struct {
	Source     string
	FailedOnly bool
	Since      time.Time
	Limit      int
}

// Stats summarizes the journal
type Stats struct {
	Total   int64            `json:"total"`
	Failed  int64            `json:"failed"`
	ByStage map[string]int64 `json:"by_stage"`
	ByCode  map[string]int64 `json:"by_code"`
	LastRun time.Time        `json:"last_run,omitempty"`
}

// Store persists compile runs
type Store interface {
	Record(ctx context.Context, entry *Entry) error
	List(ctx context.Context, filter Filter) ([]*Entry, error)
	Get(ctx context.Context, id string) (*Entry, error)
	Stats(ctx context.Context) (*Stats, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// NewEntry builds an entry from an engine result
func NewEntry(res *lang.Result, requestID string) *Entry {
	e := &Entry{
		ID:        uuid.NewString(),
		Source:    res.Name,
		Digest:    res.Digest,
		OK:        res.OK(),
		Duration:  res.Duration,
		RequestID: requestID,
		CreatedAt: time.Now().UTC(),
	}

	if res.Program != nil {
		e.Statements = len(res.Program.Body)
	}
	if d, ok := res.Diagnostic(); ok {
		e.Stage = string(d.Stage)
		e.Code = string(d.Code)
		e.Message = d.Text
		e.Line = d.Line
		e.Column = d.Column
	} else if res.Err != nil {
		e.Message = res.Err.Error()
	}
	return e
}
