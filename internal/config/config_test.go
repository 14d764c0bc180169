package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("blacklist check is off by default", func(t *testing.T) {
		t.Parallel()
		if cfg.BlacklistCheck {
			t.Error("expected BlacklistCheck to be false")
		}
	})

	t.Run("default blacklist path is files/rockyou.txt", func(t *testing.T) {
		t.Parallel()
		if got := cfg.BlacklistPath(); got != filepath.Join("files", "rockyou.txt") {
			t.Errorf("BlacklistPath() = %q", got)
		}
	})

	t.Run("default backend and charset", func(t *testing.T) {
		t.Parallel()
		if cfg.BlacklistBackend != "file" || cfg.Charset != "ascii" {
			t.Errorf("backend=%q charset=%q", cfg.BlacklistBackend, cfg.Charset)
		}
	})

	t.Run("estimation is on with the default length", func(t *testing.T) {
		t.Parallel()
		if !cfg.Estimate || cfg.MaxEstimateLength != 100 {
			t.Errorf("Estimate=%v MaxEstimateLength=%d", cfg.Estimate, cfg.MaxEstimateLength)
		}
	})

	t.Run("default BatchSize and Color", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != DefaultBatchSize || cfg.Color != ColorAuto {
			t.Errorf("BatchSize=%d Color=%q", cfg.BatchSize, cfg.Color)
		}
	})

	t.Run("index lives in the XDG data dir", func(t *testing.T) {
		t.Parallel()
		if cfg.IndexDir != XDGDataDir() {
			t.Errorf("IndexDir = %q", cfg.IndexDir)
		}
	})
}

func TestBlacklistPath(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(t.TempDir(), "list.txt")
	testCases := []struct {
		name string
		dir  string
		file string
		want string
	}{
		{"relative", "files", "rockyou.txt", filepath.Join("files", "rockyou.txt")},
		{"absolute", "files", abs, abs},
		{"empty file", "files", "", ""},
		{"custom dir", "/data/lists", "top1000.txt", filepath.Join("/data/lists", "top1000.txt")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{BlacklistDir: tc.dir, BlacklistFile: tc.file}
			if got := cfg.BlacklistPath(); got != tc.want {
				t.Errorf("BlacklistPath() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		cfg := NewConfig()
		cfg.Passwords = []string{"hunter2"}
		return cfg
	}

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()
		if err := validConfig().Validate(); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("interactive needs no passwords", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Passwords = nil
		cfg.Interactive = true
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("list file counts as input", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Passwords = nil
		cfg.ListFile = "passwords.txt"
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	testCases := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"no passwords", func(c *Config) { c.Passwords = nil }, ErrNoPasswords},
		{"zero batch size", func(c *Config) { c.BatchSize = 0 }, ErrInvalidBatchSize},
		{"json and markdown", func(c *Config) { c.JSONReport, c.MarkdownReport = true, true }, ErrConflictingReportFormats},
		{"tee without output", func(c *Config) { c.Tee, c.ReportFile = true, "" }, ErrTeeWithoutOutput},
		{"bad charset", func(c *Config) { c.Charset = "latin1" }, ErrInvalidCharset},
		{"bad backend", func(c *Config) { c.BlacklistBackend = "redis" }, ErrInvalidBackend},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, ErrInvalidColorMode},
		{"negative estimate length", func(c *Config) { c.MaxEstimateLength = -1 }, ErrInvalidMaxEstimateLength},
		{"missing blacklist file", func(c *Config) { c.BlacklistCheck, c.BlacklistFile = true, "" }, ErrNoBlacklistFile},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tc.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("index backend needs no file", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.BlacklistCheck = true
		cfg.BlacklistFile = ""
		cfg.BlacklistBackend = "index"
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("reports every problem", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Passwords = nil
		cfg.BatchSize = -1
		cfg.Color = "rainbow"

		err := cfg.Validate()
		var merr *multierror.Error
		if !errors.As(err, &merr) {
			t.Fatalf("expected *multierror.Error, got %T", err)
		}
		if len(merr.Errors) != 3 {
			t.Errorf("got %d errors, want 3: %v", len(merr.Errors), err)
		}
		for _, want := range []error{ErrNoPasswords, ErrInvalidBatchSize, ErrInvalidColorMode} {
			if !errors.Is(err, want) {
				t.Errorf("missing %v", want)
			}
		}
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads password_checker section", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `password_checker:
  blacklist_check: true
  blacklist_file: top1000.txt
  blacklist_dir: /srv/lists
  blacklist_backend: memory
  charset: unicode
  estimate: false
  max_estimate_length: 64
  user_inputs: [alice, acme]
  color: never
  batch_size: 8
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		file, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error: %v", err)
		}

		cfg := NewConfig()
		file.Apply(cfg)

		if !cfg.BlacklistCheck || cfg.BlacklistFile != "top1000.txt" || cfg.BlacklistDir != "/srv/lists" {
			t.Errorf("blacklist settings not applied: %+v", cfg)
		}
		if cfg.BlacklistBackend != "memory" || cfg.Charset != "unicode" {
			t.Errorf("backend/charset = %q/%q", cfg.BlacklistBackend, cfg.Charset)
		}
		if cfg.Estimate || cfg.MaxEstimateLength != 64 {
			t.Errorf("estimate settings = %v/%d", cfg.Estimate, cfg.MaxEstimateLength)
		}
		if !slices.Equal(cfg.UserInputs, []string{"alice", "acme"}) {
			t.Errorf("UserInputs = %v", cfg.UserInputs)
		}
		if cfg.Color != "never" || cfg.BatchSize != 8 {
			t.Errorf("color/batch = %q/%d", cfg.Color, cfg.BatchSize)
		}
	})

	t.Run("unset values keep defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "partial.yaml")
		if err := os.WriteFile(path, []byte("password_checker:\n  blacklist_file: other.txt\n"), 0600); err != nil {
			t.Fatal(err)
		}
		file, err := LoadConfigFile(path)
		if err != nil {
			t.Fatal(err)
		}

		cfg := NewConfig()
		file.Apply(cfg)
		if cfg.BlacklistCheck || !cfg.Estimate || cfg.BatchSize != DefaultBatchSize {
			t.Errorf("defaults overwritten: %+v", cfg)
		}
		if cfg.BlacklistFile != "other.txt" {
			t.Errorf("BlacklistFile = %q", cfg.BlacklistFile)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("password_checker: [unclosed"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil || errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected parse error, got %v", err)
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path that exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte(""), 0600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("explicit path that does not exist", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("FindConfigFile() = %q, want empty", got)
		}
	})
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	lookupFrom := func(m map[string]string) LookupFunc {
		return func(k string) (string, bool) {
			v, ok := m[k]
			return v, ok
		}
	}

	t.Run("overrides values", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		err := cfg.ApplyEnv(lookupFrom(map[string]string{
			EnvBlacklistCheck:   "true",
			EnvBlacklistFile:    "env.txt",
			EnvBlacklistBackend: "index",
			EnvCharset:          "unicode",
		}))
		if err != nil {
			t.Fatal(err)
		}
		if !cfg.BlacklistCheck || cfg.BlacklistFile != "env.txt" || cfg.BlacklistBackend != "index" || cfg.Charset != "unicode" {
			t.Errorf("env not applied: %+v", cfg)
		}
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := cfg.ApplyEnv(lookupFrom(map[string]string{EnvBlacklistFile: "", EnvBlacklistCheck: " "})); err != nil {
			t.Fatal(err)
		}
		if cfg.BlacklistFile != DefaultBlacklistFile || cfg.BlacklistCheck {
			t.Errorf("empty env changed config: %+v", cfg)
		}
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		err := cfg.ApplyEnv(lookupFrom(map[string]string{EnvBlacklistCheck: "maybe"}))
		if !errors.Is(err, ErrInvalidEnvValue) {
			t.Errorf("expected ErrInvalidEnvValue, got %v", err)
		}
	})
}

func TestEnvLookup(t *testing.T) {
	t.Parallel()

	t.Run("reads dotenv file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".env")
		content := "PASSCHECK_TEST_ONLY_FILE=from-dotenv\n# comment\nPASSCHECK_TEST_ONLY_QUOTED=\"quoted value\"\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		lookup, err := EnvLookup(path)
		if err != nil {
			t.Fatalf("EnvLookup() error: %v", err)
		}
		if v, ok := lookup("PASSCHECK_TEST_ONLY_FILE"); !ok || v != "from-dotenv" {
			t.Errorf("lookup = (%q, %v)", v, ok)
		}
		if v, _ := lookup("PASSCHECK_TEST_ONLY_QUOTED"); v != "quoted value" {
			t.Errorf("quoted value = %q", v)
		}
		if _, ok := lookup("PASSCHECK_TEST_ONLY_MISSING"); ok {
			t.Error("unexpected value for missing key")
		}
	})

	t.Run("missing file is fine", func(t *testing.T) {
		t.Parallel()

		lookup, err := EnvLookup(filepath.Join(t.TempDir(), ".env"))
		if err != nil {
			t.Fatalf("EnvLookup() error: %v", err)
		}
		if _, ok := lookup("PASSCHECK_TEST_ONLY_MISSING"); ok {
			t.Error("unexpected value")
		}
	})

	t.Run("directory is an error", func(t *testing.T) {
		t.Parallel()

		if _, err := EnvLookup(t.TempDir()); err == nil || strings.Contains(err.Error(), "no such file") {
			t.Errorf("expected read error, got %v", err)
		}
	})
}
