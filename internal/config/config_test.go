package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != Summary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Summary)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if cfg.StopOnError {
		t.Error("StopOnError should be false by default")
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

// TestGameConfig_Defaults verifies GameConfig has sensible defaults
func TestGameConfig_Defaults(t *testing.T) {
	cfg := NewGameConfig()

	if cfg.StartPlacement != StandardPlacement {
		t.Errorf("StartPlacement = %q, want %q", cfg.StartPlacement, StandardPlacement)
	}
	if cfg.FirstMover != chess.White {
		t.Errorf("FirstMover = %s, want White", cfg.FirstMover)
	}
	if cfg.DrawPlies != DefaultDrawPlies {
		t.Errorf("DrawPlies = %d, want %d", cfg.DrawPlies, DefaultDrawPlies)
	}
}

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.ShowBoard {
		t.Error("ShowBoard should be false by default")
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"commentary", func(c *Config) { c.Verbosity = Commentary }, false},
		{"silent", func(c *Config) { c.Verbosity = Silent }, false},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"eight workers", func(c *Config) { c.Workers = 8 }, false},
		{"negative workers", func(c *Config) { c.Workers = -1 }, true},
		{"missing game settings", func(c *Config) { c.Game = nil }, true},
		{"missing duplicate settings", func(c *Config) { c.Duplicate = nil }, true},
		{"empty placement", func(c *Config) { c.Game.StartPlacement = "  " }, true},
		{"black first", func(c *Config) { c.Game.FirstMover = chess.Black }, false},
		{"nobody first", func(c *Config) { c.Game.FirstMover = chess.NoTeam }, true},
		{"both first", func(c *Config) { c.Game.FirstMover = chess.BothTeams }, true},
		{"zero draw plies", func(c *Config) { c.Game.DrawPlies = 0 }, true},
		{"short draw limit", func(c *Config) { c.Game.DrawPlies = 4 }, false},
		{"narrow lines", func(c *Config) { c.Output.MaxLineLength = 10 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestParseTeam verifies team names from the command line
func TestParseTeam(t *testing.T) {
	tests := []struct {
		input   string
		want    chess.Team
		wantErr bool
	}{
		{"white", chess.White, false},
		{"White", chess.White, false},
		{"w", chess.White, false},
		{"black", chess.Black, false},
		{" B ", chess.Black, false},
		{"red", chess.NoTeam, true},
		{"", chess.NoTeam, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTeam(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTeam(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTeam(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_Logf verifies diagnostics are gated by verbosity
func TestConfig_Logf(t *testing.T) {
	tests := []struct {
		verbosity int
		level     int
		want      string
	}{
		{Silent, Summary, ""},
		{Summary, Summary, "game 1: 1-0\n"},
		{Summary, Commentary, ""},
		{Commentary, Commentary, "game 1: 1-0\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		cfg := NewConfig()
		cfg.Verbosity = tt.verbosity
		cfg.SetLogFile(&buf)

		cfg.Logf(tt.level, "game %d: %s", 1, "1-0")

		if buf.String() != tt.want {
			t.Errorf("verbosity %d, level %d: logged %q, want %q", tt.verbosity, tt.level, buf.String(), tt.want)
		}
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out, log, dups bytes.Buffer
	cfg := NewConfigBuilder().
		WithVerbosity(Commentary).
		WithWorkers(4).
		WithStopOnError(true).
		WithStartPlacement("4k3/8/8/8/8/8/8/4K3").
		WithFirstMover(chess.Black).
		WithDrawPlies(10).
		WithJSONOutput(true).
		WithBoard(true).
		WithMaxLineLength(120).
		WithDuplicateSuppression(true).
		WithDuplicateFile(&dups).
		WithOutput(&out).
		WithLogFile(&log).
		Build()

	if cfg.Verbosity != Commentary || cfg.Workers != 4 || !cfg.StopOnError {
		t.Errorf("top-level settings not applied: %+v", cfg)
	}
	if cfg.Game.StartPlacement != "4k3/8/8/8/8/8/8/4K3" || cfg.Game.FirstMover != chess.Black || cfg.Game.DrawPlies != 10 {
		t.Errorf("game settings not applied: %+v", cfg.Game)
	}
	if !cfg.Output.JSONFormat || !cfg.Output.ShowBoard || cfg.Output.MaxLineLength != 120 {
		t.Errorf("output settings not applied: %+v", cfg.Output)
	}
	if !cfg.Duplicate.Suppress || !cfg.Duplicate.ExactMatch || cfg.Duplicate.DuplicateFile != &dups {
		t.Errorf("duplicate settings not applied: %+v", cfg.Duplicate)
	}
	if cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("streams not applied")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("built config is invalid: %v", err)
	}
}

func TestDuplicateConfig_Enabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  DuplicateConfig
		want bool
	}{
		{"default", DuplicateConfig{}, false},
		{"suppress", DuplicateConfig{Suppress: true}, true},
		{"duplicate file only", DuplicateConfig{DuplicateFile: &bytes.Buffer{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}
