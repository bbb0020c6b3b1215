// Package config loads stylint.toml and translates it into rule settings.
// Configuration problems are reported as CFG diagnostics and never abort a
// run: the affected setting falls back to its default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"stylint/internal/diag"
	"stylint/internal/rules"
	"stylint/internal/source"
)

// FileName is the configuration file stylint looks for.
const FileName = "stylint.toml"

// RuleSetting tunes a single rule. Pointer fields distinguish "absent" from
// an explicit false.
type RuleSetting struct {
	Enabled  *bool  `toml:"enabled"`
	Severity string `toml:"severity"`
	Autofix  *bool  `toml:"autofix"`
}

// Config is the full configuration surface.
type Config struct {
	Terminator     string                 `toml:"terminator"`
	Markers        []string               `toml:"markers"`
	Extensions     []string               `toml:"extensions"`
	MaxDiagnostics int                    `toml:"max_diagnostics"`
	Jobs           int                    `toml:"jobs"`
	Rules          map[string]RuleSetting `toml:"rules"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Terminator:     ";",
		Markers:        append([]string(nil), rules.DefaultMarkers...),
		Extensions:     []string{".sx"},
		MaxDiagnostics: 1000,
		Jobs:           0, // 0 means GOMAXPROCS
		Rules:          make(map[string]RuleSetting),
	}
}

// Load reads a configuration file. Parse failures produce a CfgLoadError
// diagnostic in bag and the defaults are returned, so callers never have to
// treat configuration as fatal.
func Load(path string, bag *diag.Bag) *Config {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		bag.Add(diag.NewWarning(diag.CfgLoadError, source.Span{},
			fmt.Sprintf("cannot read config %s: %v", path, err)))
		return Default()
	}
	for _, key := range meta.Undecoded() {
		bag.Add(diag.NewWarning(diag.CfgLoadError, source.Span{},
			fmt.Sprintf("%s: unknown key %q", path, key.String())))
	}
	cfg.fillDefaults()
	return cfg
}

// Discover walks from startDir toward the filesystem root looking for a
// stylint.toml. Returns the path of the nearest one.
func Discover(startDir string) (string, bool) {
	dir := startDir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(abs, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", false
		}
		abs = parent
	}
}

func (c *Config) fillDefaults() {
	if c.Terminator == "" {
		c.Terminator = ";"
	}
	if len(c.Markers) == 0 {
		c.Markers = append([]string(nil), rules.DefaultMarkers...)
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".sx"}
	}
	if c.MaxDiagnostics <= 0 {
		c.MaxDiagnostics = 1000
	}
	if c.Jobs < 0 {
		c.Jobs = 0
	}
	if c.Rules == nil {
		c.Rules = make(map[string]RuleSetting)
	}
}

// Settings converts the configuration into the rule engine's settings.
// Unknown rule ids and malformed severities produce one CFG warning each
// here, once per run, and leave the rest of the configuration in effect.
func (c *Config) Settings(bag *diag.Bag) rules.Settings {
	st := rules.Settings{
		Disabled: make(map[string]bool),
		Severity: make(map[string]diag.Severity),
		NoFix:    make(map[string]bool),
		Options: rules.Options{
			Terminator: c.Terminator,
			Markers:    append([]string(nil), c.Markers...),
		},
	}

	ids := make([]string, 0, len(c.Rules))
	for id := range c.Rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		rs := c.Rules[id]
		if _, known := rules.ByID(id); !known {
			if bag != nil {
				bag.Add(diag.NewWarning(diag.CfgUnknownRule, source.Span{},
					fmt.Sprintf("configuration references unknown rule %q", id)))
			}
			continue
		}
		if rs.Enabled != nil && !*rs.Enabled {
			st.Disabled[id] = true
		}
		if rs.Autofix != nil && !*rs.Autofix {
			st.NoFix[id] = true
		}
		if rs.Severity != "" {
			sev, ok := diag.ParseSeverity(rs.Severity)
			if !ok {
				if bag != nil {
					bag.Add(diag.NewWarning(diag.CfgBadSeverity, source.Span{},
						fmt.Sprintf("rule %q: bad severity %q (want info, warning or error)", id, rs.Severity)))
				}
				continue
			}
			st.Severity[id] = sev
		}
	}
	return st
}
