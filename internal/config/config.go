package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/sdui/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "sdui.yaml"

	// DefaultIconPrefix is prepended to icon names during canonicalization.
	DefaultIconPrefix = "Icon"

	// DefaultIconFallback is the icon rendered for misses and failures.
	DefaultIconFallback = "IconQuestionMark"

	// DefaultIconTimeout bounds one icon lookup.
	DefaultIconTimeout = 2 * time.Second

	// DefaultGap is the spacing of generated option items.
	DefaultGap = "sm"

	// DefaultDebounce is the quiet period of the debounce commit mode.
	DefaultDebounce = 300 * time.Millisecond

	// DefaultAddr is the preview server address.
	DefaultAddr = "localhost:3100"
)

// Config is the sdui.yaml configuration.
type Config struct {
	// Icons configures the icon resolver.
	Icons IconsConfig `yaml:"icons"`

	// Groups configures the option-group renderer.
	Groups GroupsConfig `yaml:"groups"`

	// Inputs configures free-text input commit timing.
	Inputs InputsConfig `yaml:"inputs"`

	// Log configures the CLI logger.
	Log LogConfig `yaml:"log"`

	// Serve configures the preview server.
	Serve ServeConfig `yaml:"serve"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// IconsConfig contains icon resolver settings.
type IconsConfig struct {
	// Prefix is prepended to names that do not already carry it.
	Prefix string `yaml:"prefix" validate:"required,alphanum"`

	// Fallback is the canonical name of the icon shown for unknown names.
	Fallback string `yaml:"fallback" validate:"required"`

	// LoadTimeout bounds one lookup; slower lookups fail.
	LoadTimeout time.Duration `yaml:"loadTimeout" validate:"gt=0"`
}

// GroupsConfig contains option-group settings.
type GroupsConfig struct {
	// Gap is the default spacing of the generated items.
	Gap string `yaml:"gap" validate:"required"`

	// DuplicateValues is "last-wins" or "error".
	DuplicateValues string `yaml:"duplicateValues" validate:"oneof=last-wins error"`
}

// InputsConfig contains text input settings.
type InputsConfig struct {
	// Commit is "change", "blur" or "debounce".
	Commit string `yaml:"commit" validate:"oneof=change blur debounce"`

	// Debounce is the quiet period used by the debounce commit mode.
	Debounce time.Duration `yaml:"debounce" validate:"gt=0"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr" validate:"required,hostname_port"`
}

// Default returns a Config holding the default values.
func Default() *Config {
	return &Config{
		Icons: IconsConfig{
			Prefix:      DefaultIconPrefix,
			Fallback:    DefaultIconFallback,
			LoadTimeout: DefaultIconTimeout,
		},
		Groups: GroupsConfig{
			Gap:             DefaultGap,
			DuplicateValues: "last-wins",
		},
		Inputs: InputsConfig{
			Commit:   "change",
			Debounce: DefaultDebounce,
		},
		Log: LogConfig{
			Level: "info",
		},
		Serve: ServeConfig{
			Addr: DefaultAddr,
		},
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E207").
				WithDetail("No " + ConfigFileName + " found at " + path).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use the defaults")
		}
		return nil, errors.New("E207").Wrap(err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// Parse decodes and validates YAML configuration. Missing keys keep
// their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.New("E207").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid YAML")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in default values for keys present but empty.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Icons.Prefix == "" {
		c.Icons.Prefix = d.Icons.Prefix
	}
	if c.Icons.Fallback == "" {
		c.Icons.Fallback = d.Icons.Fallback
	}
	if c.Icons.LoadTimeout == 0 {
		c.Icons.LoadTimeout = d.Icons.LoadTimeout
	}
	if c.Groups.Gap == "" {
		c.Groups.Gap = d.Groups.Gap
	}
	if c.Groups.DuplicateValues == "" {
		c.Groups.DuplicateValues = d.Groups.DuplicateValues
	}
	if c.Inputs.Commit == "" {
		c.Inputs.Commit = d.Inputs.Commit
	}
	if c.Inputs.Debounce == 0 {
		c.Inputs.Debounce = d.Inputs.Debounce
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = d.Serve.Addr
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks the configuration. Errors carry code E207 and name
// the offending key.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.New("E207").Wrap(err)
	}
	fe := verrs[0]
	return errors.New("E207").
		WithDetail(fmt.Sprintf("%s: failed %q (got %v)", keyPath(fe.Namespace()), fe.Tag(), fe.Value()))
}

// keyPath turns "Config.icons.prefix" into "icons.prefix".
func keyPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindRoot walks up from startDir to the directory holding sdui.yaml.
func FindRoot(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	for {
		if Exists(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// LoadFromDir loads sdui.yaml from dir or its nearest ancestor holding
// one. Without a config file the defaults are returned.
func LoadFromDir(dir string) (*Config, error) {
	root, ok := FindRoot(dir)
	if !ok {
		return Default(), nil
	}
	return Load(filepath.Join(root, ConfigFileName))
}
