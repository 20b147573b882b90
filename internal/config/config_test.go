package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Classifier.OverlapThreshold != 200 {
		t.Errorf("expected threshold 200, got %d", cfg.Classifier.OverlapThreshold)
	}
	if cfg.Handoff.Dialect != "legacy" {
		t.Errorf("expected legacy dialect, got %s", cfg.Handoff.Dialect)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("MISCLASS_OVERLAP_THRESHOLD", "")
	t.Setenv("MISCLASS_DIALECT", "")
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "misclass.yaml")
	cfg := Default()
	cfg.Classifier.OverlapThreshold = 350
	cfg.Handoff.Dialect = "tagged"
	if err := cfg.Save(path, false); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := cfg.Save(path, false); !errors.Is(err, os.ErrExist) {
		t.Fatalf("expected ErrExist without overwrite, got %v", err)
	}
	if err := cfg.Save(path, true); err != nil {
		t.Fatalf("Save with overwrite failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Classifier.OverlapThreshold != 350 || loaded.Handoff.Dialect != "tagged" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestConfig_PartialFileKeepsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("classifier:\n  overlap_threshold: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Classifier.OverlapThreshold != 10 || cfg.Handoff.InputFile != Default().Handoff.InputFile {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestConfig_MissingFileIsDefault(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Classifier.OverlapThreshold != 200 {
		t.Errorf("expected defaults")
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MISCLASS_OVERLAP_THRESHOLD", "500")
	t.Setenv("MISCLASS_LOG_LEVEL", "DEBUG")
	t.Setenv("MISCLASS_WAIT_TIMEOUT", "90s")
	t.Setenv("MISCLASS_POLL_INTERVAL", "250ms")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Classifier.OverlapThreshold != 500 {
		t.Errorf("threshold override ignored: %d", cfg.Classifier.OverlapThreshold)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level override ignored: %s", cfg.Logging.Level)
	}
	if d, _ := cfg.WaitTimeout(); d != 90*time.Second {
		t.Errorf("wait timeout override ignored: %v", d)
	}
	if d, _ := cfg.PollInterval(); d != 250*time.Millisecond {
		t.Errorf("poll interval override ignored: %v", d)
	}
}

func TestConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MISCLASS_DIALECT=tagged\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MISCLASS_DIALECT", "")
	os.Unsetenv("MISCLASS_DIALECT")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Handoff.Dialect != "tagged" {
		t.Errorf("expected dialect from .env, got %q", cfg.Handoff.Dialect)
	}
}

func TestConfig_LevelSpellingsFromFile(t *testing.T) {
	t.Setenv("MISCLASS_LOG_LEVEL", "")
	t.Setenv("MISCLASS_LOG_FORMAT", "")
	chdir(t, t.TempDir())
	for _, lvl := range []string{"INFO", "warning", "Debug"} {
		path := filepath.Join(t.TempDir(), "misclass.yaml")
		data := "logging:\n  level: " + lvl + "\n  format: JSON\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("level %q should validate: %v", lvl, err)
		}
	}
}

func TestConfig_BadEnvThreshold(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MISCLASS_OVERLAP_THRESHOLD", "lots")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for non-numeric threshold")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"negative threshold", func(c *Config) { c.Classifier.OverlapThreshold = -1 }},
		{"unknown vocabulary", func(c *Config) { c.Report.Vocabulary = "quast-0" }},
		{"unknown dialect", func(c *Config) { c.Handoff.Dialect = "binary" }},
		{"same handoff files", func(c *Config) { c.Handoff.OutputFile = c.Handoff.InputFile }},
		{"bad timeout", func(c *Config) { c.Handoff.WaitTimeout = "soon" }},
		{"zero poll", func(c *Config) { c.Handoff.PollInterval = "0s" }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

// chdir moves into dir for the duration of the test so stray .env files in
// the working tree do not leak into Load.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
