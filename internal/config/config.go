// Package config loads run settings from a YAML file, a .env file and
// MISCLASS_* environment variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"misclass/internal/classify"
	"misclass/internal/logging"
	"misclass/internal/protocol"
	"misclass/internal/report"
)

// Config holds all misclass settings.
type Config struct {
	Report     ReportConfig     `yaml:"report"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Handoff    HandoffConfig    `yaml:"handoff"`
	Logging    LoggingConfig    `yaml:"logging"`
	Output     OutputConfig     `yaml:"output"`
}

// ReportConfig locates and interprets the QUAST report.
type ReportConfig struct {
	Vocabulary    string `yaml:"vocabulary"`
	ContigsStdout string `yaml:"contigs_stdout"` // relative to the report root
}

// ClassifierConfig tunes the classifier.
type ClassifierConfig struct {
	OverlapThreshold int `yaml:"overlap_threshold"`
}

// HandoffConfig names the files exchanged with the assembler.
type HandoffConfig struct {
	InputFile    string `yaml:"input_file"`  // relative to the assembler dir
	OutputFile   string `yaml:"output_file"` // relative to the assembler dir
	Dialect      string `yaml:"dialect"`     // legacy | tagged
	WaitTimeout  string `yaml:"wait_timeout"`
	PollInterval string `yaml:"poll_interval"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// OutputConfig controls the final report.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, yaml
	Header bool   `yaml:"header"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Vocabulary:    report.DefaultVocabulary,
			ContigsStdout: "contigs_reports/contigs_report_contigs.stdout",
		},
		Classifier: ClassifierConfig{
			OverlapThreshold: classify.DefaultOverlapThreshold,
		},
		Handoff: HandoffConfig{
			InputFile:    "__miss_classification_dist_est_input.txt",
			OutputFile:   "__miss_classification_dist_est_output.txt",
			Dialect:      string(protocol.Legacy),
			WaitTimeout:  "30m",
			PollInterval: "2s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "text",
			Header: true,
		},
	}
}

// Load reads path over the defaults, then applies .env and environment
// overrides. An empty path, or a path that does not exist, yields defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	// A missing .env file is normal.
	_ = godotenv.Load()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML. An existing file is only replaced when
// overwrite is set.
func (c *Config) Save(path string, overwrite bool) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return f.Close()
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("MISCLASS_OVERLAP_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MISCLASS_OVERLAP_THRESHOLD: %w", err)
		}
		c.Classifier.OverlapThreshold = n
	}
	if v := os.Getenv("MISCLASS_VOCABULARY"); v != "" {
		c.Report.Vocabulary = v
	}
	if v := os.Getenv("MISCLASS_DIALECT"); v != "" {
		c.Handoff.Dialect = v
	}
	if v := os.Getenv("MISCLASS_WAIT_TIMEOUT"); v != "" {
		c.Handoff.WaitTimeout = v
	}
	if v := os.Getenv("MISCLASS_POLL_INTERVAL"); v != "" {
		c.Handoff.PollInterval = v
	}
	if v := os.Getenv("MISCLASS_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("MISCLASS_LOG_FORMAT"); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Classifier.OverlapThreshold < 0 {
		return fmt.Errorf("classifier.overlap_threshold must be ≥ 0, got %d", c.Classifier.OverlapThreshold)
	}
	if _, err := report.LookupVocabulary(c.Report.Vocabulary); err != nil {
		return err
	}
	if _, err := protocol.ParseDialect(c.Handoff.Dialect); err != nil {
		return err
	}
	if c.Handoff.InputFile == "" || c.Handoff.OutputFile == "" {
		return errors.New("handoff.input_file and handoff.output_file are required")
	}
	if c.Handoff.InputFile == c.Handoff.OutputFile {
		return errors.New("handoff.input_file and handoff.output_file must differ")
	}
	if _, err := c.WaitTimeout(); err != nil {
		return err
	}
	if _, err := c.PollInterval(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	return nil
}

// WaitTimeout parses handoff.wait_timeout; 0 means wait forever.
func (c *Config) WaitTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Handoff.WaitTimeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid handoff.wait_timeout %q", c.Handoff.WaitTimeout)
	}
	return d, nil
}

// PollInterval parses handoff.poll_interval.
func (c *Config) PollInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Handoff.PollInterval)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid handoff.poll_interval %q", c.Handoff.PollInterval)
	}
	return d, nil
}
