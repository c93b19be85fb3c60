package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithWorkers sets the number of concurrent replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithStopOnError stops dispatching after the first failed game.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.StopOnError = enabled
	return b
}

// WithStartPlacement sets the FEN piece placement games start from.
func (b *ConfigBuilder) WithStartPlacement(placement string) *ConfigBuilder {
	b.cfg.Game.StartPlacement = placement
	return b
}

// WithFirstMover sets the team that moves first.
func (b *ConfigBuilder) WithFirstMover(team chess.Team) *ConfigBuilder {
	b.cfg.Game.FirstMover = team
	return b
}

// WithDrawPlies sets the reversible ply count that draws a game.
func (b *ConfigBuilder) WithDrawPlies(n int) *ConfigBuilder {
	b.cfg.Game.DrawPlies = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoard enables the final board diagram in text output.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithDuplicateSuppression leaves later copies of a game out of the output.
// exactMatch requires the same move sequence as well as the same final position.
func (b *ConfigBuilder) WithDuplicateSuppression(exactMatch bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = true
	b.cfg.Duplicate.ExactMatch = exactMatch
	return b
}

// WithDuplicateFile sets the writer that receives duplicate games.
func (b *ConfigBuilder) WithDuplicateFile(w io.Writer) *ConfigBuilder {
	b.cfg.Duplicate.DuplicateFile = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
