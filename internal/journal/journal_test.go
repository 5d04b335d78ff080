package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
	mdwlog "github.com/dipakw/inside/foundation/core/log"
	"github.com/dipakw/inside/foundation/lang"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(Config{Path: filepath.Join(t.TempDir(), "nested", "journal.db")})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func compile(t *testing.T, name, code string) *lang.Result {
	t.Helper()
	return lang.NewEngine(lang.Options{Logger: mdwlog.Nop()}).Compile(context.Background(), name, code)
}

func TestNewEntry(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantOK     bool
		wantStmts  int
		wantStage  string
		wantCode   string
		wantLine   int
		wantColumn int
	}{
		{"success", "var a = 1\nfix b = 2", true, 2, "", "", 0, 0},
		{"lex failure", "var a = $", false, 0, "lex", string(mdwerror.CodeLexInvalidToken), 1, 9},
		{"parse failure", "var a = 1\nvar b = )", false, 0, "parse", string(mdwerror.CodeParseUnexpectedToken), 2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEntry(compile(t, "x.in", tt.code), "req-1")
			if e.ID == "" || e.RequestID != "req-1" || e.Source != "x.in" {
				t.Errorf("identity = %q/%q/%q", e.ID, e.RequestID, e.Source)
			}
			if e.OK != tt.wantOK || e.Statements != tt.wantStmts {
				t.Errorf("ok/statements = %v/%d, want %v/%d", e.OK, e.Statements, tt.wantOK, tt.wantStmts)
			}
			if e.Stage != tt.wantStage || e.Code != tt.wantCode {
				t.Errorf("stage/code = %q/%q, want %q/%q", e.Stage, e.Code, tt.wantStage, tt.wantCode)
			}
			if e.Line != tt.wantLine || e.Column != tt.wantColumn {
				t.Errorf("position = %d:%d, want %d:%d", e.Line, e.Column, tt.wantLine, tt.wantColumn)
			}
			if !tt.wantOK && e.Message == "" {
				t.Error("failure without message")
			}
		})
	}
}

func TestSQLiteStore_RecordAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	entry := NewEntry(compile(t, "bad.in", "var a = )"), "")
	entry.Duration = 1500 * time.Microsecond
	if err := store.Record(ctx, entry); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	got, err := store.Get(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Source != "bad.in" || got.OK || got.Stage != "parse" || got.Line != 1 || got.Column != 9 {
		t.Errorf("Get() = %+v", got)
	}
	if got.Duration != entry.Duration {
		t.Errorf("Duration = %v, want %v", got.Duration, entry.Duration)
	}
	if !got.CreatedAt.Equal(entry.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, entry.CreatedAt)
	}

	byPrefix, err := store.Get(ctx, entry.ID[:8])
	if err != nil || byPrefix.ID != entry.ID {
		t.Errorf("Get(prefix) = %v, %v", byPrefix, err)
	}
}

func TestSQLiteStore_GetErrors(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Get(missing) error = %v, want %s", err, mdwerror.CodeNotFound)
	}
	if _, err := store.Get(ctx, " "); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Get(blank) error = %v, want %s", err, mdwerror.CodeInvalidInput)
	}

	for _, id := range []string{"abc-1", "abc-2"} {
		if err := store.Record(ctx, &Entry{ID: id, Source: "s", Digest: "d", OK: true}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.Get(ctx, "abc"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Get(ambiguous) error = %v, want %s", err, mdwerror.CodeInvalidInput)
	}

	// % and _ in a prefix match literally
	for _, id := range []string{"%", "_", "a_c", "abc-%"} {
		if _, err := store.Get(ctx, id); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Get(%q) error = %v, want %s", id, err, mdwerror.CodeNotFound)
		}
	}
}

func TestSQLiteStore_List(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	runs := []*Entry{
		{Source: "a.in", Digest: "1", OK: true, CreatedAt: base},
		{Source: "b.in", Digest: "2", OK: false, Stage: "lex", CreatedAt: base.Add(time.Minute)},
		{Source: "a.in", Digest: "3", OK: false, Stage: "parse", CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		if err := store.Record(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all newest first", Filter{}, []string{"3", "2", "1"}},
		{"by source", Filter{Source: "a.in"}, []string{"3", "1"}},
		{"failed only", Filter{FailedOnly: true}, []string{"3", "2"}},
		{"limit", Filter{Limit: 1}, []string{"3"}},
		{"since", Filter{Since: base.Add(30 * time.Second)}, []string{"3", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := store.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			var got []string
			for _, e := range entries {
				got = append(got, e.Digest)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("List() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("List() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestSQLiteStore_StatsAndPrune(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	old := &Entry{Source: "old.in", Digest: "o", OK: true, CreatedAt: time.Now().Add(-48 * time.Hour)}
	if err := store.Record(ctx, old); err != nil {
		t.Fatal(err)
	}
	for _, code := range []string{"var a = 1", "var a = $", "var a = )", "var b = *"} {
		if err := store.Record(ctx, NewEntry(compile(t, "x.in", code), "")); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Total != 5 || stats.Failed != 3 {
		t.Errorf("total/failed = %d/%d, want 5/3", stats.Total, stats.Failed)
	}
	if stats.ByStage["parse"] != 2 || stats.ByStage["lex"] != 1 {
		t.Errorf("ByStage = %v", stats.ByStage)
	}
	if stats.ByCode[string(mdwerror.CodeParseUnexpectedToken)] != 2 {
		t.Errorf("ByCode = %v", stats.ByCode)
	}
	if stats.LastRun.IsZero() {
		t.Error("LastRun is zero")
	}

	deleted, err := store.Prune(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("Prune() = %d, want 1", deleted)
	}
	if _, err := store.Get(ctx, old.ID); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("pruned entry still present: %v", err)
	}
}

func TestEmptyStats(t *testing.T) {
	stats, err := openTestStore(t).Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 0 || !stats.LastRun.IsZero() {
		t.Errorf("Stats() = %+v", stats)
	}
}
