// File: settings.go
// Title: Front End Settings
// Description: Reads engine, lexer, logging and journal settings from a
//              loaded configuration.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lang

import (
	mdwconfig "github.com/dipakw/inside/foundation/core/config"
	mdwerror "github.com/dipakw/inside/foundation/core/error"
	mdwlog "github.com/dipakw/inside/foundation/core/log"
	mdwlexer "github.com/dipakw/inside/foundation/lang/lexer"
	mdwparser "github.com/dipakw/inside/foundation/lang/parser"
)

// Configuration keys
const (
	KeyLexerAllow          = "lexer.allow"
	KeyLexerDeny           = "lexer.deny"
	KeyLexerUnicodeStrings = "lexer.allow_unicode_strings"
	KeyParserMaxDepth      = "parser.max_depth"
	KeyEngineMaxSource     = "engine.max_source_length"
	KeyLogLevel            = "log.level"
	KeyLogFormat           = "log.format"
	KeyJournalEnabled      = "journal.enabled"
	KeyJournalPath         = "journal.path"
)

// Settings is the typed view of a configuration
type Settings struct {
	Lexer           mdwlexer.Config
	MaxDepth        int
	MaxSourceLength int
	LogLevel        mdwlog.Level
	LogFormat       mdwlog.Format
	JournalEnabled  bool
	JournalPath     string
}

// DefaultSettings returns the settings used without a configuration file
func DefaultSettings() Settings {
	return Settings{
		Lexer:           mdwlexer.DefaultConfig(),
		MaxDepth:        mdwparser.DefaultMaxDepth,
		MaxSourceLength: DefaultMaxSourceLength,
		LogLevel:        mdwlog.LevelError,
		LogFormat:       mdwlog.FormatText,
	}
}

// SettingsFromConfig reads settings from cfg. lexer.allow is applied
// before lexer.deny; each entry must be a single ASCII character.
func SettingsFromConfig(cfg *mdwconfig.Config) (Settings, error) {
	s := DefaultSettings()
	if cfg == nil {
		return s, nil
	}

	for _, key := range []string{KeyLexerAllow, KeyLexerDeny} {
		for _, entry := range cfg.GetStringSlice(key) {
			if len(entry) != 1 || entry[0] >= 0x80 {
				return s, invalidSetting(key, entry, "expected a single ASCII character")
			}
			if key == KeyLexerAllow {
				s.Lexer.Permit(entry)
			} else {
				s.Lexer.Deny(entry)
			}
		}
	}
	s.Lexer.AllowUnicodeStrings = cfg.GetBool(KeyLexerUnicodeStrings, s.Lexer.AllowUnicodeStrings)

	s.MaxDepth = cfg.GetInt(KeyParserMaxDepth, s.MaxDepth)
	if s.MaxDepth <= 0 {
		return s, invalidSetting(KeyParserMaxDepth, s.MaxDepth, "must be positive")
	}
	s.MaxSourceLength = cfg.GetInt(KeyEngineMaxSource, s.MaxSourceLength)
	if s.MaxSourceLength <= 0 {
		return s, invalidSetting(KeyEngineMaxSource, s.MaxSourceLength, "must be positive")
	}

	if cfg.Has(KeyLogLevel) {
		level, err := mdwlog.ParseLevel(cfg.GetString(KeyLogLevel))
		if err != nil {
			return s, invalidSetting(KeyLogLevel, cfg.GetString(KeyLogLevel), err.Error())
		}
		s.LogLevel = level
	}
	if cfg.Has(KeyLogFormat) {
		format, err := mdwlog.ParseFormat(cfg.GetString(KeyLogFormat))
		if err != nil {
			return s, invalidSetting(KeyLogFormat, cfg.GetString(KeyLogFormat), err.Error())
		}
		s.LogFormat = format
	}

	s.JournalEnabled = cfg.GetBool(KeyJournalEnabled, s.JournalEnabled)
	s.JournalPath = cfg.GetString(KeyJournalPath, s.JournalPath)
	return s, nil
}

// EngineOptions converts settings to engine options
func (s Settings) EngineOptions(logger *mdwlog.Logger) Options {
	lexerCfg := s.Lexer
	return Options{
		Logger:          logger,
		Lexer:           &lexerCfg,
		MaxDepth:        s.MaxDepth,
		MaxSourceLength: s.MaxSourceLength,
	}
}

func invalidSetting(key string, value interface{}, reason string) error {
	return mdwerror.Newf("invalid setting %s: %s", key, reason).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("lang.SettingsFromConfig").
		WithDetail("key", key).
		WithDetail("value", value)
}
