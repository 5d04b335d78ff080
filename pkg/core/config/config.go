// ============================================================================
// inside - front end for a small expression language
// ============================================================================
//
// Package:     config
// Description: Application settings loading and settings file rendering
// Author:      dipakw
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwconfig "github.com/dipakw/inside/foundation/core/config"
	mdwerror "github.com/dipakw/inside/foundation/core/error"
	"github.com/dipakw/inside/foundation/lang"
	mdwlexer "github.com/dipakw/inside/foundation/lang/lexer"
)

// EnvPrefix prefixes environment overrides, e.g. INSIDE_PARSER_MAX_DEPTH
const EnvPrefix = "INSIDE"

// File mirrors the settings file layout
type File struct {
	Lexer   LexerSection   `toml:"lexer" yaml:"lexer"`
	Parser  ParserSection  `toml:"parser" yaml:"parser"`
	Engine  EngineSection  `toml:"engine" yaml:"engine"`
	Log     LogSection     `toml:"log" yaml:"log"`
	Journal JournalSection `toml:"journal" yaml:"journal"`
}

// LexerSection holds character permission overrides
type LexerSection struct {
	Allow               []string `toml:"allow" yaml:"allow"`
	Deny                []string `toml:"deny" yaml:"deny"`
	AllowUnicodeStrings bool     `toml:"allow_unicode_strings" yaml:"allow_unicode_strings"`
}

// ParserSection holds parser limits
type ParserSection struct {
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
}

// EngineSection holds engine limits
type EngineSection struct {
	MaxSourceLength int `toml:"max_source_length" yaml:"max_source_length"`
}

// LogSection holds logging settings
type LogSection struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// JournalSection holds journal settings
type JournalSection struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"`
}

// Load reads settings from path, or discovers a settings file when path is
// empty. Environment variables with the INSIDE prefix override file values.
func Load(path string) (lang.Settings, *mdwconfig.Config, error) {
	var (
		cfg *mdwconfig.Config
		err error
	)

	if path != "" {
		cfg, err = mdwconfig.LoadWithOptions(os.ExpandEnv(path), mdwconfig.LoadOptions{EnvPrefix: EnvPrefix})
	} else {
		options := mdwconfig.DefaultDiscoveryOptions()
		options.EnvPrefix = EnvPrefix
		cfg, err = mdwconfig.Discover(options)
	}
	if err != nil {
		return lang.DefaultSettings(), nil, err
	}

	settings, err := lang.SettingsFromConfig(cfg)
	if err != nil {
		return settings, cfg, mdwerror.Wrap(err, "failed to apply settings").WithDetail("path", cfg.FilePath())
	}
	return settings, cfg, nil
}

// FromSettings converts settings back to the file layout. Lexer permissions
// are expressed as differences from the default table.
func FromSettings(s lang.Settings) File {
	def := mdwlexer.DefaultConfig()

	var allow, deny []string
	for c := 0; c < 128; c++ {
		r := rune(c)
		switch on, base := s.Lexer.Allowed(r, false), def.Allowed(r, false); {
		case on && !base:
			allow = append(allow, string(r))
		case !on && base:
			deny = append(deny, string(r))
		}
	}
	sort.Strings(allow)
	sort.Strings(deny)

	return File{
		Lexer: LexerSection{
			Allow:               allow,
			Deny:                deny,
			AllowUnicodeStrings: s.Lexer.AllowUnicodeStrings,
		},
		Parser:  ParserSection{MaxDepth: s.MaxDepth},
		Engine:  EngineSection{MaxSourceLength: s.MaxSourceLength},
		Log:     LogSection{Level: s.LogLevel.String(), Format: s.LogFormat.String()},
		Journal: JournalSection{Enabled: s.JournalEnabled, Path: s.JournalPath},
	}
}

// TOML renders the file as TOML
func (f File) TOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, mdwerror.Wrap(err, "failed to encode settings").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.TOML")
	}
	return buf.Bytes(), nil
}

// YAML renders the file as YAML
func (f File) YAML() ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to encode settings").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.YAML")
	}
	return data, nil
}
