package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/dipakw/inside/foundation/core/log"
	"github.com/dipakw/inside/foundation/lang"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("inside")

	if cfg.Name != "inside" {
		t.Errorf("Name = %v, want inside", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel mdwlog.Level
	}{
		{"debug", "debug", mdwlog.LevelDebug},
		{"warning alias", "warning", mdwlog.LevelWarn},
		{"unknown falls back to info", "loud", mdwlog.LevelInfo},
		{"empty is info", "", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Name: "test", Level: tt.level, Output: &bytes.Buffer{}})
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "info",
		Format:            "logfmt",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("hello", mdwlog.Fields{"k": 1})

	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "extra": &extra} {
		if !strings.Contains(buf.String(), `message="hello"`) || !strings.Contains(buf.String(), "k=1") {
			t.Errorf("%s output = %q", name, buf.String())
		}
	}
}

func TestFromSettings(t *testing.T) {
	tests := []struct {
		name      string
		level     mdwlog.Level
		verbose   bool
		wantLevel mdwlog.Level
	}{
		{"settings level", mdwlog.LevelError, false, mdwlog.LevelError},
		{"verbose lowers to debug", mdwlog.LevelWarn, true, mdwlog.LevelDebug},
		{"verbose keeps trace", mdwlog.LevelTrace, true, mdwlog.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := lang.DefaultSettings()
			s.LogLevel = tt.level

			var buf bytes.Buffer
			logger := FromSettings("inside", s, tt.verbose, &buf)
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}

			logger.Error("boom")
			if !strings.Contains(buf.String(), "boom") || !strings.Contains(buf.String(), "inside") {
				t.Errorf("output = %q", buf.String())
			}
		})
	}
}
