package vanguard

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Default locations of the raw export and of the converted CSV.
const (
	DefaultInputPath  = "test_data/vanguard_raw.txt"
	DefaultOutputPath = "test_data/vanguard.csv"
)

// Config holds the paths of a conversion.
type Config struct {
	InputPath  string // InputPath is the raw text export to read.
	OutputPath string // OutputPath is the CSV file to create or overwrite.
}

// DefaultConfig returns the configuration using the default paths.
func DefaultConfig() Config {
	return Config{InputPath: DefaultInputPath, OutputPath: DefaultOutputPath}
}

// Converter runs the conversion pipeline for a Config.
type Converter struct {
	cfg    Config
	logger *log.Logger
}

// NewConverter returns a Converter for cfg. A nil logger discards logs.
func NewConverter(cfg Config, logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Converter{cfg: cfg, logger: logger}
}

// Run reads the raw export, normalizes it, parses it and writes the CSV.
// Nothing is written if any step before the write fails.
func (c *Converter) Run() (*Table, error) {
	raw, err := ReadRawText(c.cfg.InputPath)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("reassembled raw export", "input", c.cfg.InputPath, "bytes", len(raw))

	text := Normalize(raw)

	t, err := ParseTable(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q: %w", c.cfg.InputPath, err)
	}
	c.logger.Debug("parsed table", "rows", t.Len())

	if err := WriteTable(c.cfg.OutputPath, t); err != nil {
		return nil, err
	}
	c.logger.Info("converted", "input", c.cfg.InputPath, "output", c.cfg.OutputPath, "rows", t.Len())
	return t, nil
}

// Convert runs the pipeline for cfg without logging.
func Convert(cfg Config) (*Table, error) {
	return NewConverter(cfg, nil).Run()
}
