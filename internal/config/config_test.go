package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/sdui/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Icons.Prefix != DefaultIconPrefix {
		t.Errorf("Icons.Prefix = %q, want %q", cfg.Icons.Prefix, DefaultIconPrefix)
	}
	if cfg.Icons.LoadTimeout != DefaultIconTimeout {
		t.Errorf("Icons.LoadTimeout = %v, want %v", cfg.Icons.LoadTimeout, DefaultIconTimeout)
	}
	if cfg.Groups.Gap != "sm" {
		t.Errorf("Groups.Gap = %q, want %q", cfg.Groups.Gap, "sm")
	}
	if cfg.Inputs.Commit != "change" {
		t.Errorf("Inputs.Commit = %q, want %q", cfg.Inputs.Commit, "change")
	}
	if cfg.Serve.Addr != DefaultAddr {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, DefaultAddr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	// Missing file
	_, err := Load(path)
	if !errors.HasCode(err, "E207") {
		t.Fatalf("Load(missing) error = %v, want E207", err)
	}

	configYAML := `
icons:
  fallback: IconFileUnknown
  loadTimeout: 500ms
groups:
  gap: md
  duplicateValues: error
inputs:
  commit: debounce
  debounce: 1s
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Icons.Prefix != DefaultIconPrefix {
		t.Errorf("Icons.Prefix = %q, want default", cfg.Icons.Prefix)
	}
	if cfg.Icons.Fallback != "IconFileUnknown" {
		t.Errorf("Icons.Fallback = %q", cfg.Icons.Fallback)
	}
	if cfg.Icons.LoadTimeout != 500*time.Millisecond {
		t.Errorf("Icons.LoadTimeout = %v", cfg.Icons.LoadTimeout)
	}
	if cfg.Groups.Gap != "md" || cfg.Groups.DuplicateValues != "error" {
		t.Errorf("Groups = %+v", cfg.Groups)
	}
	if cfg.Inputs.Commit != "debounce" || cfg.Inputs.Debounce != time.Second {
		t.Errorf("Inputs = %+v", cfg.Inputs)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v", cfg.SlogLevel())
	}
	if cfg.Path() != path || cfg.Dir() != tmpDir {
		t.Errorf("Path() = %q, Dir() = %q", cfg.Path(), cfg.Dir())
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	if cfg.Groups.Gap != DefaultGap {
		t.Errorf("Groups.Gap = %q", cfg.Groups.Gap)
	}
}

func TestParseExplicitEmptyKeepsDefault(t *testing.T) {
	cfg, err := Parse([]byte("groups:\n  gap: \"\"\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Groups.Gap != DefaultGap {
		t.Errorf("Groups.Gap = %q, want %q", cfg.Groups.Gap, DefaultGap)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad commit", "inputs:\n  commit: sometimes\n", "inputs.commit"},
		{"bad duplicates", "groups:\n  duplicateValues: first-wins\n", "groups.duplicateValues"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"negative timeout", "icons:\n  loadTimeout: -1s\n", "icons.loadTimeout"},
		{"bad prefix", "icons:\n  prefix: \"Ic-on\"\n", "icons.prefix"},
		{"bad addr", "serve:\n  addr: nowhere\n", "serve.addr"},
		{"unknown key", "icons:\n  size: 3\n", "size"},
		{"bad duration", "inputs:\n  debounce: soon\n", "Failed to parse"},
		{"not yaml", "icons: [", "Failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.HasCode(err, "E207") {
				t.Errorf("error %v does not carry E207", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoadFromDir(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	// No file anywhere: defaults.
	cfg, err := LoadFromDir(nested)
	if err != nil {
		t.Fatalf("LoadFromDir error: %v", err)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}

	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("groups:\n  gap: xl\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(root) || Exists(nested) {
		t.Error("Exists reported the wrong directory")
	}

	cfg, err = LoadFromDir(nested)
	if err != nil {
		t.Fatalf("LoadFromDir error: %v", err)
	}
	if cfg.Groups.Gap != "xl" {
		t.Errorf("Groups.Gap = %q, want xl", cfg.Groups.Gap)
	}
	if dir, ok := FindRoot(nested); !ok || dir != root {
		t.Errorf("FindRoot = %q, %v", dir, ok)
	}
}
