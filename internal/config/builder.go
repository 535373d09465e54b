package config

import "io"

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

// WithVerbosity sets the log verbosity.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithHistoryCapacity sets the number of snapshots kept for undo.
func (b *ConfigBuilder) WithHistoryCapacity(n int) *ConfigBuilder {
	b.cfg.History.Capacity = n
	return b
}

// WithEvictOldest selects the evict-oldest history policy.
func (b *ConfigBuilder) WithEvictOldest(enabled bool) *ConfigBuilder {
	b.cfg.History.EvictOldest = enabled
	return b
}

// WithWorkers sets the number of concurrent script workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithShowBoard enables or disables board printing after moves.
func (b *ConfigBuilder) WithShowBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithSVGFile sets the diagram output file.
func (b *ConfigBuilder) WithSVGFile(path string) *ConfigBuilder {
	b.cfg.Output.SVGFile = path
	return b
}

// WithDiagram sets the SVG square size and orientation.
func (b *ConfigBuilder) WithDiagram(squareSize int, flip bool) *ConfigBuilder {
	b.cfg.Output.SquareSize = squareSize
	b.cfg.Output.FlipBoard = flip
	return b
}

// WithOutputFile sets the output writer.
func (b *ConfigBuilder) WithOutputFile(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithStrict stops scripts at the first rejected move.
func (b *ConfigBuilder) WithStrict(enabled bool) *ConfigBuilder {
	b.cfg.Strict = enabled
	return b
}

// WithJSON selects JSON position output.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithDuplicates enables duplicate final-position reporting.
func (b *ConfigBuilder) WithDuplicates(enabled, exact bool) *ConfigBuilder {
	b.cfg.Duplicate.Detect = enabled
	b.cfg.Duplicate.ExactMatch = exact
	return b
}
